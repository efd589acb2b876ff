package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Conn é a conexão com o cache local do cliente
type Conn struct {
	*sql.DB
	path string
}

// Open cria o diretório do arquivo, aplica as migrações e abre a conexão.
func Open(ctx context.Context, path string) (*Conn, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "erro ao criar diretório do banco local")
		}
	}

	if err := RunMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir banco local")
	}
	// o sqlite serializa escritas; uma conexão evita SQLITE_BUSY entre transações
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "erro ao testar conexão com banco local")
	}

	return &Conn{DB: db, path: path}, nil
}

// Path retorna o caminho do arquivo
func (c *Conn) Path() string {
	return c.path
}
