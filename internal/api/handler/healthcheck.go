package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/econoapp-api/pkg/log"
)

// Pinger é implementado pela conexão com o banco de resumos, quando habilitado
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database,omitempty"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Database = "ok"
			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de resumos indisponível no healthcheck")
				response.Database = "unavailable"
			}
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}
