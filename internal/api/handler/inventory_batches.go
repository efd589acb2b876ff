package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

// ListBatches devolve os lotes do usuário, mais recentes primeiro
func ListBatches(service persisting.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - ListBatches")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		batches, err := service.ListBatches(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, batches)
	})
}

func CreateBatch(service persisting.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - CreateBatch")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		var req persisting.BatchRequest
		if !decodeBody(w, r, &req) {
			return
		}

		batch, err := service.CreateBatch(r.Context(), userID, req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, batch)
	})
}

// UpdateBatch grava o lote do caminho, criando-o quando ainda não existe
func UpdateBatch(service persisting.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - UpdateBatch")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		batchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if batchID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lote não fornecido", nil)
			return
		}

		var req persisting.BatchRequest
		if !decodeBody(w, r, &req) {
			return
		}

		batch, err := service.SaveBatch(r.Context(), userID, batchID, req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("batch_id", batch.ID).Debug("Lote salvo")
		writeJSON(w, http.StatusOK, batch)
	})
}

func DeleteBatch(service persisting.InventoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteBatch")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		batchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if err := service.DeleteBatch(r.Context(), userID, batchID); err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	})
}
