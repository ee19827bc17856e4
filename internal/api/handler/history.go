package handler

import (
	"net/http"

	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/pkg/apiErrors"
	"github.com/vfg2006/econoapp-api/pkg/log"
)

// GetSummaryHistory retorna os resumos arquivados no banco, do mês mais recente para o mais antigo
func GetSummaryHistory(snapshotRepo repository.SummarySnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if snapshotRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Histórico de resumos desabilitado", nil)
			return
		}

		snapshots, err := snapshotRepo.List(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar histórico de resumos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar histórico de resumos", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	}
}
