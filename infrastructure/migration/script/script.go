// Script de carga inicial: importa um export do localStorage do navegador
// (objeto JSON chave -> valor) para as tabelas do servidor.
package main

import (
	"bytes"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fintrak-api/infrastructure/database/postgres"
	"github.com/vfg2006/fintrak-api/infrastructure/localstore"
	"github.com/vfg2006/fintrak-api/internal/config"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/money"
	"github.com/vfg2006/fintrak-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	financialPrefix = strings.TrimSuffix(localstore.FinancialDataKey, "%s")
	batchesPrefix   = strings.TrimSuffix(localstore.InventoryBatchesKey, "%s")
	salesPrefix     = strings.TrimSuffix(localstore.SalesRecordsKey, "%s")
)

// legacyID aceita ids numéricos das versões antigas e ids em texto
type legacyID string

func (id *legacyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = legacyID(s)
		return nil
	}
	*id = legacyID(data)
	return nil
}

type Batch struct {
	ID                       legacyID   `json:"id"`
	BatchName                string     `json:"batchName"`
	ProductName              string     `json:"productName"`
	QtyInStock               int        `json:"qtyInStock"`
	QtySold                  int        `json:"qtySold"`
	CostPerUnit              float64    `json:"costPerUnit"`
	ProjectedSaleCostPerUnit float64    `json:"projectedSaleCostPerUnit"`
	ActualSaleCostPerUnit    float64    `json:"actualSaleCostPerUnit"`
	CreatedAt                *time.Time `json:"createdAt"`
}

type Sale struct {
	ID           legacyID   `json:"id"`
	BatchID      legacyID   `json:"batchId"`
	Qty          int        `json:"qty"`
	PricePerUnit float64    `json:"pricePerUnit"`
	TotalPrice   float64    `json:"totalPrice"`
	AmountPaid   float64    `json:"amountPaid"`
	BalanceOwing *float64   `json:"balanceOwing"`
	Notes        string     `json:"notes"`
	CreatedAt    *time.Time `json:"createdAt"`
}

// Export é o conteúdo do arquivo agrupado por usuário e por lote
type Export struct {
	Financial map[string][]byte
	Batches   map[string][]Batch
	Sales     map[string][]Sale
}

// parseExport lê o export. Os valores do localStorage chegam como texto com JSON
// dentro; valores que já são objetos ou listas também são aceitos.
func parseExport(raw []byte) (*Export, error) {
	var entries map[string]jsoniter.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("export inválido: %w", err)
	}

	exp := &Export{
		Financial: make(map[string][]byte),
		Batches:   make(map[string][]Batch),
		Sales:     make(map[string][]Sale),
	}

	for key, value := range entries {
		payload, err := unwrapValue(value)
		if err != nil {
			return nil, fmt.Errorf("chave %s: %w", key, err)
		}

		switch {
		case strings.HasPrefix(key, financialPrefix):
			data, err := normalizeFinancialData(payload)
			if err != nil {
				return nil, fmt.Errorf("chave %s: %w", key, err)
			}
			exp.Financial[strings.TrimPrefix(key, financialPrefix)] = data

		case strings.HasPrefix(key, batchesPrefix):
			var batches []Batch
			if err := json.Unmarshal(payload, &batches); err != nil {
				return nil, fmt.Errorf("chave %s: %w", key, err)
			}
			exp.Batches[strings.TrimPrefix(key, batchesPrefix)] = batches

		case strings.HasPrefix(key, salesPrefix):
			var sales []Sale
			if err := json.Unmarshal(payload, &sales); err != nil {
				return nil, fmt.Errorf("chave %s: %w", key, err)
			}
			exp.Sales[strings.TrimPrefix(key, salesPrefix)] = sales

		default:
			log.L.WithField("key", key).Debug("Chave ignorada")
		}
	}

	return exp, nil
}

func unwrapValue(value jsoniter.RawMessage) ([]byte, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || value[0] != '"' {
		return value, nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// normalizeFinancialData garante um objeto JSON e remove o userId embutido
func normalizeFinancialData(payload []byte) ([]byte, error) {
	var data map[string]any
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("dados financeiros devem ser um objeto: %w", err)
	}
	delete(data, "userId")
	return json.Marshal(data)
}

func insertFinancialData(ctx context.Context, tx *sql.Tx, financial map[string][]byte) error {
	log.L.Infof("Iniciando inserção de %d registros financeiros...", len(financial))

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO financial_data (user_id, data) VALUES ($1, $2::jsonb)
		ON CONFLICT (user_id) DO UPDATE SET data = financial_data.data || EXCLUDED.data, updated_at = NOW()`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para financial_data: %w", err)
	}
	defer stmt.Close()

	for userID, data := range financial {
		if _, err := stmt.ExecContext(ctx, userID, string(data)); err != nil {
			return fmt.Errorf("erro ao inserir dados financeiros de %s: %w", userID, err)
		}
	}
	return nil
}

// insertBatches grava os lotes e devolve o mapa id antigo -> id gravado.
// Lotes sem id recebem um novo.
func insertBatches(ctx context.Context, tx *sql.Tx, batchesByUser map[string][]Batch) (map[string]string, map[string]string, error) {
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO inventory_batches
		(id, user_id, batch_name, product_name, qty_in_stock, qty_sold, cost_per_unit,
		 projected_sale_cost_per_unit, actual_sale_cost_per_unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10::timestamptz, NOW()), NOW())
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return nil, nil, fmt.Errorf("erro ao preparar statement para inventory_batches: %w", err)
	}
	defer stmt.Close()

	batchMap := make(map[string]string)
	owners := make(map[string]string)
	successCount := 0

	for userID, batches := range batchesByUser {
		log.L.Infof("Iniciando inserção de %d lotes do usuário %s...", len(batches), userID)
		for _, b := range batches {
			id := string(b.ID)
			if id == "" || isNumeric(id) {
				id = utils.MustNewID(utils.PrefixBatch)
			}

			_, err := stmt.ExecContext(ctx, id, userID, b.BatchName, b.ProductName,
				max(b.QtyInStock, 0), max(b.QtySold, 0),
				money.Round(b.CostPerUnit), money.Round(b.ProjectedSaleCostPerUnit),
				money.Round(b.ActualSaleCostPerUnit), b.CreatedAt)
			if err != nil {
				return nil, nil, fmt.Errorf("erro ao inserir lote %s: %w", b.BatchName, err)
			}

			if b.ID != "" {
				batchMap[string(b.ID)] = id
			}
			owners[id] = userID
			successCount++
		}
	}

	log.L.Infof("Inserção de lotes concluída em %v. Sucesso: %d", time.Since(startTime), successCount)
	return batchMap, owners, nil
}

func insertSales(ctx context.Context, tx *sql.Tx, salesByBatch map[string][]Sale, batchMap, owners map[string]string) error {
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sales_records
		(id, user_id, batch_id, qty, price_per_unit, total_price, amount_paid, balance_owing, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10::timestamptz, NOW()), NOW())
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para sales_records: %w", err)
	}
	defer stmt.Close()

	successCount := 0
	batchNotFoundCount := 0

	for legacyBatchID, sales := range salesByBatch {
		batchID, exists := batchMap[legacyBatchID]
		if !exists {
			log.L.Warnf("AVISO: Lote %s não encontrado, %d vendas ignoradas", legacyBatchID, len(sales))
			batchNotFoundCount += len(sales)
			continue
		}

		for _, s := range sales {
			if s.Qty <= 0 {
				log.L.Warnf("AVISO: Venda %s sem quantidade ignorada", s.ID)
				continue
			}

			id := string(s.ID)
			if id == "" || isNumeric(id) {
				id = utils.MustNewID(utils.PrefixSale)
			}

			owing := money.Sub(s.TotalPrice, s.AmountPaid)
			if s.BalanceOwing != nil {
				owing = money.Round(*s.BalanceOwing)
			}

			_, err := stmt.ExecContext(ctx, id, owners[batchID], batchID, s.Qty,
				money.Round(s.PricePerUnit), money.Round(s.TotalPrice), money.Round(s.AmountPaid),
				owing, s.Notes, s.CreatedAt)
			if err != nil {
				return fmt.Errorf("erro ao inserir venda %s: %w", id, err)
			}
			successCount++
		}
	}

	log.L.Infof("Inserção de vendas concluída em %v. Sucesso: %d, Lotes não encontrados: %d",
		time.Since(startTime), successCount, batchNotFoundCount)
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func main() {
	file := flag.String("file", "", "arquivo JSON exportado do localStorage")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "uso: script -file <export.json>")
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)
	log.L.Info("Iniciando carga inicial...")

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.L.Fatalf("ERRO ao ler export: %v", err)
	}

	exp, err := parseExport(raw)
	if err != nil {
		log.L.Fatalf("ERRO ao interpretar export: %v", err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	if err := postgres.RunMigrations(conn); err != nil {
		log.L.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertFinancialData(ctx, tx, exp.Financial); err != nil {
			return err
		}
		batchMap, owners, err := insertBatches(ctx, tx, exp.Batches)
		if err != nil {
			return err
		}
		return insertSales(ctx, tx, exp.Sales, batchMap, owners)
	})
	if err != nil {
		log.L.Errorf("ERRO na carga, transação revertida: %v", err)
		os.Exit(1)
	}

	log.L.Infof("Carga inicial concluída em %v!", time.Since(startTime))
}
