package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/econoapp-api/internal/usecases/insighting"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/apiErrors"
	"github.com/vfg2006/econoapp-api/pkg/log"
)

const ensureCurrentAction = "ensure-current"

// ListMonths lista os meses existentes, opcionalmente com o resumo de cada um
func ListMonths(resolver month.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSummary := false
		if raw := r.URL.Query().Get("withSummary"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "withSummary deve ser true ou false", nil)
				return
			}
			withSummary = parsed
		}

		months, err := resolver.ListMonths(r.Context(), withSummary)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar meses")
			return
		}

		writeJSON(w, r, http.StatusOK, months)
	}
}

// EnsureCurrentMonth cria o mês corrente caso ainda não exista.
// É registrado como /months/:month porque o httprouter não aceita um segmento fixo
// na mesma posição do parâmetro :month das demais rotas POST.
func EnsureCurrentMonth(resolver month.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if action := httprouter.ParamsFromContext(r.Context()).ByName("month"); action != "" && action != ensureCurrentAction {
			http.NotFound(w, r)
			return
		}

		current, err := resolver.EnsureCurrentMonth(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar o mês corrente")
			return
		}

		log.ForContext(r.Context()).WithField("month", current).Info("Mês corrente garantido")
		writeJSON(w, r, http.StatusOK, map[string]string{"month": current})
	}
}

func GetMonthSummary(summarizer summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		summary, err := summarizer.GetMonthSummary(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular resumo do mês")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

func GetMonthComparison(summarizer summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		comparison, err := summarizer.CompareWithPreviousMonth(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao comparar com o mês anterior")
			return
		}

		writeJSON(w, r, http.StatusOK, comparison)
	}
}

func GetMonthInsights(insighter insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		insights, err := insighter.GenerateInsights(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar insights do mês")
			return
		}

		writeJSON(w, r, http.StatusOK, insights)
	}
}
