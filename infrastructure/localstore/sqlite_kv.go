package localstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fintrak-api/infrastructure/database/sqlite"
	"github.com/vfg2006/fintrak-api/internal/usecases/reconciling"
)

const (
	kvTable    = "kv"
	dirtyTable = "dirty_keys"
)

type txKey struct{}

type runner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteKV é o KV persistido no arquivo sqlite do cliente.
// Também guarda as marcas de escritas remotas não confirmadas.
type SQLiteKV struct {
	conn *sqlite.Conn
	now  func() time.Time
}

func NewSQLiteKV(conn *sqlite.Conn) *SQLiteKV {
	return &SQLiteKV{conn: conn, now: time.Now}
}

func (s *SQLiteKV) runner(ctx context.Context) runner {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.conn.DB
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var value string
	err = s.runner(ctx).QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reconciling.ErrNotFound
		}
		return nil, errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	return []byte(value), nil
}

func (s *SQLiteKV) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), s.now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar chave %s", key)
	}
	return nil
}

func (s *SQLiteKV) Delete(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao remover chave %s", key)
	}
	return nil
}

// InTx executa fn em uma transação. Chamadas com o ctx recebido usam a mesma
// transação; uma chamada aninhada apenas reaproveita a transação externa.
func (s *SQLiteKV) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação local")
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrap(rbErr, err.Error())
		}
		return err
	}

	return tx.Commit()
}

func (s *SQLiteKV) MarkDirty(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Insert(dirtyTable).
		Columns("key", "marked_at").
		Values(key, s.now().UTC().Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(key) DO UPDATE SET marked_at = excluded.marked_at").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao marcar chave %s", key)
	}
	return nil
}

func (s *SQLiteKV) ClearDirty(ctx context.Context, key string) error {
	query, args, err := squirrel.
		Delete(dirtyTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	if _, err := s.runner(ctx).ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao desmarcar chave %s", key)
	}
	return nil
}

func (s *SQLiteKV) IsDirty(ctx context.Context, key string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(dirtyTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir a query")
	}

	var count int
	if err := s.runner(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, errors.Wrapf(err, "erro ao consultar marca da chave %s", key)
	}
	return count > 0, nil
}

var (
	_ KV                       = (*SQLiteKV)(nil)
	_ reconciling.Transactor   = (*SQLiteKV)(nil)
	_ reconciling.DirtyTracker = (*SQLiteKV)(nil)
)
