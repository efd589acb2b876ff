package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/fintrak-api/infrastructure/database/postgres"
	"github.com/vfg2006/fintrak-api/internal/domain"
)

const inventoryBatchesTable = "inventory_batches"

var batchColumns = []string{
	"id",
	"user_id",
	"batch_name",
	"product_name",
	"qty_in_stock",
	"qty_sold",
	"cost_per_unit",
	"projected_sale_cost_per_unit",
	"actual_sale_cost_per_unit",
	"created_at",
	"updated_at",
}

type InventoryBatchRepository interface {
	List(ctx context.Context, userID string) ([]domain.InventoryBatch, error)
	Get(ctx context.Context, userID, id string) (*domain.InventoryBatch, error)
	Upsert(ctx context.Context, batch domain.InventoryBatch) (*domain.InventoryBatch, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type inventoryBatchRepository struct {
	conn postgres.Queryer
}

func NewInventoryBatchRepository(conn postgres.Queryer) InventoryBatchRepository {
	return &inventoryBatchRepository{
		conn: conn,
	}
}

// List retorna os lotes do usuário, mais recentes primeiro
func (r *inventoryBatchRepository) List(ctx context.Context, userID string) ([]domain.InventoryBatch, error) {
	query, args, err := squirrel.
		Select(batchColumns...).
		From(inventoryBatchesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lotes: %w", err)
	}
	defer rows.Close()

	batches := make([]domain.InventoryBatch, 0)
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		batches = append(batches, *batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return batches, nil
}

// Get retorna nil quando o lote não existe para o usuário
func (r *inventoryBatchRepository) Get(ctx context.Context, userID, id string) (*domain.InventoryBatch, error) {
	query, args, err := squirrel.
		Select(batchColumns...).
		From(inventoryBatchesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	batch, err := scanBatch(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lote: %w", err)
	}

	return batch, nil
}

// Upsert cria o lote ou atualiza todos os campos mutáveis.
// Um id que pertence a outro usuário resulta em ErrNotFound.
func (r *inventoryBatchRepository) Upsert(ctx context.Context, batch domain.InventoryBatch) (*domain.InventoryBatch, error) {
	query, args, err := upsertBatchQuery(batch)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	saved, err := scanBatch(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar lote: %w", err)
	}

	return saved, nil
}

func (r *inventoryBatchRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(inventoryBatchesTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover lote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func upsertBatchQuery(batch domain.InventoryBatch) (string, []any, error) {
	return squirrel.
		Insert(inventoryBatchesTable).
		Columns(batchColumns...).
		Values(
			batch.ID,
			batch.UserID,
			batch.BatchName,
			batch.ProductName,
			batch.QtyInStock,
			batch.QtySold,
			toNumeric(batch.CostPerUnit),
			toNumeric(batch.ProjectedSaleCostPerUnit),
			toNumeric(batch.ActualSaleCostPerUnit),
			squirrel.Expr("COALESCE(?::timestamptz, NOW())", batch.CreatedAt),
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			batch_name = EXCLUDED.batch_name,
			product_name = EXCLUDED.product_name,
			qty_in_stock = EXCLUDED.qty_in_stock,
			qty_sold = EXCLUDED.qty_sold,
			cost_per_unit = EXCLUDED.cost_per_unit,
			projected_sale_cost_per_unit = EXCLUDED.projected_sale_cost_per_unit,
			actual_sale_cost_per_unit = EXCLUDED.actual_sale_cost_per_unit,
			updated_at = NOW()
		WHERE inventory_batches.user_id = EXCLUDED.user_id
		RETURNING ` + joinColumns(batchColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBatch(row rowScanner) (*domain.InventoryBatch, error) {
	var (
		batch                   domain.InventoryBatch
		cost, projected, actual decimal.Decimal
		createdAt, updatedAt    time.Time
	)

	if err := row.Scan(
		&batch.ID,
		&batch.UserID,
		&batch.BatchName,
		&batch.ProductName,
		&batch.QtyInStock,
		&batch.QtySold,
		&cost,
		&projected,
		&actual,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	batch.CostPerUnit = cost.InexactFloat64()
	batch.ProjectedSaleCostPerUnit = projected.InexactFloat64()
	batch.ActualSaleCostPerUnit = actual.InexactFloat64()
	batch.CreatedAt = &createdAt
	batch.UpdatedAt = &updatedAt

	return &batch, nil
}
