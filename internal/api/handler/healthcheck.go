package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/fintrak-api/pkg/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde a liveness; com um Pinger também verifica o banco
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Healthcheck sem banco de dados")
				status["status"] = "degraded"
				status["database"] = err.Error()
				writeJSON(w, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}

		writeJSON(w, http.StatusOK, status)
	})
}
