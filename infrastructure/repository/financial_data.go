package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/fintrak-api/infrastructure/database/postgres"
)

const financialDataTable = "financial_data"

// FinancialDataRepository guarda o snapshot financeiro de cada usuário como JSONB
type FinancialDataRepository interface {
	Get(ctx context.Context, userID string) ([]byte, error)
	Merge(ctx context.Context, userID string, data []byte) ([]byte, error)
	Delete(ctx context.Context, userID string) error
}

type financialDataRepository struct {
	conn postgres.Queryer
}

func NewFinancialDataRepository(conn postgres.Queryer) FinancialDataRepository {
	return &financialDataRepository{
		conn: conn,
	}
}

// Get retorna o JSON armazenado ou nil quando o usuário ainda não tem registro
func (r *financialDataRepository) Get(ctx context.Context, userID string) ([]byte, error) {
	query, args, err := squirrel.
		Select("data").
		From(financialDataTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var data []byte
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar dados financeiros: %w", err)
	}

	return data, nil
}

// Merge grava os campos de topo informados sobre o JSON existente
func (r *financialDataRepository) Merge(ctx context.Context, userID string, data []byte) ([]byte, error) {
	query, args, err := mergeFinancialDataQuery(userID, data)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var merged []byte
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&merged); err != nil {
		return nil, fmt.Errorf("erro ao salvar dados financeiros: %w", err)
	}

	return merged, nil
}

func (r *financialDataRepository) Delete(ctx context.Context, userID string) error {
	query, args, err := squirrel.
		Delete(financialDataTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover dados financeiros: %w", err)
	}

	return nil
}

func mergeFinancialDataQuery(userID string, data []byte) (string, []any, error) {
	return squirrel.
		Insert(financialDataTable).
		Columns("user_id", "data").
		Values(userID, squirrel.Expr("?::jsonb", string(data))).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET data = financial_data.data || EXCLUDED.data, updated_at = NOW() RETURNING data").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
