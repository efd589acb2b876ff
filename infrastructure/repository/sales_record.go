package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/fintrak-api/infrastructure/database/postgres"
	"github.com/vfg2006/fintrak-api/internal/domain"
)

const salesRecordsTable = "sales_records"

var saleColumns = []string{
	"id",
	"user_id",
	"batch_id",
	"qty",
	"price_per_unit",
	"total_price",
	"amount_paid",
	"balance_owing",
	"notes",
	"created_at",
	"updated_at",
}

type SalesRecordRepository interface {
	ListByBatch(ctx context.Context, userID, batchID string) ([]domain.SalesRecord, error)
	CountByBatch(ctx context.Context, userID, batchID string) (int, error)
	Create(ctx context.Context, sale domain.SalesRecord) (*domain.SalesRecord, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ListByBatch retorna as vendas do lote, mais recentes primeiro
func (r *salesRecordRepository) ListByBatch(ctx context.Context, userID, batchID string) ([]domain.SalesRecord, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(salesRecordsTable).
		Where(squirrel.Eq{"user_id": userID, "batch_id": batchID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.SalesRecord, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		sales = append(sales, *sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return sales, nil
}

func (r *salesRecordRepository) CountByBatch(ctx context.Context, userID, batchID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(salesRecordsTable).
		Where(squirrel.Eq{"user_id": userID, "batch_id": batchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// Create grava a venda. Repetir o mesmo id devolve a venda já gravada.
func (r *salesRecordRepository) Create(ctx context.Context, sale domain.SalesRecord) (*domain.SalesRecord, error) {
	query, args, err := createSaleQuery(sale)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	saved, err := scanSale(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao salvar venda: %w", err)
	}

	return saved, nil
}

func (r *salesRecordRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(salesRecordsTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover venda: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func createSaleQuery(sale domain.SalesRecord) (string, []any, error) {
	var createdAt *time.Time
	if !sale.CreatedAt.IsZero() {
		createdAt = &sale.CreatedAt
	}

	return squirrel.
		Insert(salesRecordsTable).
		Columns(saleColumns...).
		Values(
			sale.ID,
			sale.UserID,
			sale.BatchID,
			sale.Qty,
			toNumeric(sale.PricePerUnit),
			toNumeric(sale.TotalPrice),
			toNumeric(sale.AmountPaid),
			toNumeric(sale.BalanceOwing),
			sale.Notes,
			squirrel.Expr("COALESCE(?::timestamptz, NOW())", createdAt),
			squirrel.Expr("NOW()"),
		).
		// no-op update para que RETURNING devolva a linha existente
		Suffix(`ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id
		WHERE sales_records.user_id = EXCLUDED.user_id
		RETURNING ` + joinColumns(saleColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanSale(row rowScanner) (*domain.SalesRecord, error) {
	var (
		sale                      domain.SalesRecord
		price, total, paid, owing decimal.Decimal
		updatedAt                 time.Time
	)

	if err := row.Scan(
		&sale.ID,
		&sale.UserID,
		&sale.BatchID,
		&sale.Qty,
		&price,
		&total,
		&paid,
		&owing,
		&sale.Notes,
		&sale.CreatedAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	sale.PricePerUnit = price.InexactFloat64()
	sale.TotalPrice = total.InexactFloat64()
	sale.AmountPaid = paid.InexactFloat64()
	sale.BalanceOwing = owing.InexactFloat64()
	sale.UpdatedAt = &updatedAt

	return &sale, nil
}

func toNumeric(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
