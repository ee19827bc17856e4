package handler

import (
	"net/http"

	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
)

func GetSettings(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		settings, err := recorder.GetSettings(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar configurações do mês")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	}
}

// UpdateSettings altera as metas do mês. Campos ausentes ficam como estão.
func UpdateSettings(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req domain.UpdateSettingsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		settings, err := recorder.UpdateSettings(r.Context(), m, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar configurações do mês")
			return
		}

		writeJSON(w, r, http.StatusOK, settings)
	}
}

func ListCategories(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		categories, err := recorder.ListCategories(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar categorias")
			return
		}

		writeJSON(w, r, http.StatusOK, categories)
	}
}
