package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fintrak-api/internal/usecases/persisting"
	"github.com/vfg2006/fintrak-api/pkg/apiErrors"
	"github.com/vfg2006/fintrak-api/pkg/log"
	"github.com/vfg2006/fintrak-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type SuccessResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// currentUserID obtém o usuário do token; responde 401 quando ausente
func currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok || claims.UserID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}
	return claims.UserID, true
}

// handleServiceError traduz erros dos casos de uso para a resposta HTTP
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var persistErr *persisting.PersistError
	if errors.As(err, &persistErr) {
		if apiErrors.Status(persistErr.Code) >= http.StatusInternalServerError {
			logger.Error("Erro ao processar requisição")
		} else {
			logger.Warn("Requisição recusada")
		}
		apiErrors.WriteError(w, persistErr.Code, persistErr.Error(), nil)
		return
	}

	logger.Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
