package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/econoapp-api/internal/scheduler"
	"github.com/vfg2006/econoapp-api/pkg/apiErrors"
	"github.com/vfg2006/econoapp-api/pkg/log"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeRollover = "rollover"
	CronJobTypeSnapshot = "snapshot"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os agendadores que podem ser disparados pela API.
// SummarySnapshotSyncService é nil quando o banco de resumos está desabilitado.
type CronJobServices struct {
	MonthRolloverService       *scheduler.MonthRolloverService
	SummarySnapshotSyncService *scheduler.SummarySnapshotSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRollover:
			if services.MonthRolloverService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Virada de mês não disponível", nil)
				return
			}
			services.MonthRolloverService.TriggerManualSync()

		case CronJobTypeSnapshot:
			if services.SummarySnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Arquivamento de resumos desabilitado", nil)
				return
			}
			services.SummarySnapshotSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.MonthRolloverService != nil {
				services.MonthRolloverService.TriggerManualSync()
			}
			if services.SummarySnapshotSyncService != nil {
				services.SummarySnapshotSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: rollover, snapshot, all", nil)
			return
		}

		logger.WithField("job", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.MonthRolloverService != nil {
			status[CronJobTypeRollover] = services.MonthRolloverService.GetStatus()
		}
		if services.SummarySnapshotSyncService != nil {
			status[CronJobTypeSnapshot] = services.SummarySnapshotSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
