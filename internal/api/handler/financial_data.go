package handler

import (
	"io"
	"net/http"

	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
)

// GetFinancialData devolve o snapshot do usuário ou {}
func GetFinancialData(service persisting.FinancialDataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetFinancialData")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		data, err := service.GetFinancialData(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeRawJSON(w, http.StatusOK, data)
	})
}

// SaveFinancialData atende PUT e POST; os campos enviados são mesclados ao registro
func SaveFinancialData(service persisting.FinancialDataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - SaveFinancialData")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil || !json.Valid(body) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		merged, err := service.SaveFinancialData(r.Context(), userID, body)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeRawJSON(w, http.StatusOK, merged)
	})
}

func DeleteFinancialData(service persisting.FinancialDataService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - DeleteFinancialData")

		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteFinancialData(r.Context(), userID); err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	})
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.L.WithError(err).Error("Erro ao escrever resposta")
	}
}
