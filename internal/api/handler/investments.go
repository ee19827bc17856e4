package handler

import (
	"net/http"

	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
)

func ListInvestments(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		investments, err := recorder.ListInvestments(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar investimentos")
			return
		}

		writeJSON(w, r, http.StatusOK, investments)
	}
}

func CreateInvestment(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req domain.CreateInvestmentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		investment, err := recorder.CreateInvestment(r.Context(), m, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar investimento")
			return
		}

		writeJSON(w, r, http.StatusCreated, investment)
	}
}

func UpdateInvestment(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req domain.UpdateInvestmentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		investment, err := recorder.UpdateInvestment(r.Context(), m, idParam(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar investimento")
			return
		}

		writeJSON(w, r, http.StatusOK, investment)
	}
}

func DeleteInvestment(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		if err := recorder.DeleteInvestment(r.Context(), m, idParam(r)); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir investimento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
