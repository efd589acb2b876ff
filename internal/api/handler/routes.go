package handler

import (
	"net/http"

	"github.com/vfg2006/fintrak-api/internal/api/handler/router"
	"github.com/vfg2006/fintrak-api/internal/usecases/authenticating"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func FinancialData(service persisting.FinancialDataService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/financial-data",
			Method:  http.MethodGet,
			Handler: GetFinancialData(service),
		},
		{
			Path:    "/api/financial-data",
			Method:  http.MethodPut,
			Handler: SaveFinancialData(service),
		},
		{
			Path:    "/api/financial-data",
			Method:  http.MethodPost,
			Handler: SaveFinancialData(service),
		},
		{
			Path:    "/api/financial-data",
			Method:  http.MethodDelete,
			Handler: DeleteFinancialData(service),
		},
	}
}

func InventoryBatches(service persisting.InventoryService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/inventory-batches",
			Method:  http.MethodGet,
			Handler: ListBatches(service),
		},
		{
			Path:    "/api/inventory-batches",
			Method:  http.MethodPost,
			Handler: CreateBatch(service),
		},
		{
			Path:    "/api/inventory-batches/:id",
			Method:  http.MethodPut,
			Handler: UpdateBatch(service),
		},
		{
			Path:    "/api/inventory-batches/:id",
			Method:  http.MethodDelete,
			Handler: DeleteBatch(service),
		},
	}
}

func SalesRecords(service persisting.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales-records",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/api/sales-records",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/api/sales-records/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}
