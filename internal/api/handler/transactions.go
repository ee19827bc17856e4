package handler

import (
	"net/http"

	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
)

func ListTransactions(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		transactions, err := recorder.ListTransactions(r.Context(), m)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar transações")
			return
		}

		writeJSON(w, r, http.StatusOK, transactions)
	}
}

func CreateTransaction(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req domain.CreateTransactionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		transaction, err := recorder.CreateTransaction(r.Context(), m, &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar transação")
			return
		}

		writeJSON(w, r, http.StatusCreated, transaction)
	}
}

// UpdateTransaction altera apenas os campos enviados no corpo
func UpdateTransaction(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTransactionRequest
		if !decodeBody(w, r, &req) {
			return
		}

		transaction, err := recorder.UpdateTransaction(r.Context(), m, idParam(r), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar transação")
			return
		}

		writeJSON(w, r, http.StatusOK, transaction)
	}
}

func DeleteTransaction(recorder recording.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := monthParam(w, r)
		if !ok {
			return
		}

		if err := recorder.DeleteTransaction(r.Context(), m, idParam(r)); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir transação")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
