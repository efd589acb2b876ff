package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

// ListSales exige o parâmetro batchId
func ListSales(service persisting.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - ListSales")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		sales, err := service.ListSales(r.Context(), userID, r.URL.Query().Get("batchId"))
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func CreateSale(service persisting.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateSale")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req persisting.SaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.CreateSale(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	})
}

func DeleteSale(service persisting.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteSale")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		saleID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteSale(r.Context(), userID, saleID); err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	})
}
