package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/econoapp-api/pkg/log"
)

// LogRouteParams anexa os parâmetros da rota ao log da requisição.
// Só funciona como middleware de rota, onde o httprouter já resolveu os parâmetros.
func LogRouteParams(names ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params := httprouter.ParamsFromContext(r.Context())
			for _, name := range names {
				if value := params.ByName(name); value != "" {
					log.AddField(r.Context(), name, value)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimitBody limita o corpo das rotas de escrita a maxBytes. A leitura além do
// limite falha e o handler responde como corpo inválido.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
