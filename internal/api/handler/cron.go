package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/consultant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/consultant-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlyRevenue = "monthly-revenue"
	CronJobTypeAll            = "all"
)

// SyncJob é implementado pelos agendadores em internal/scheduler
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	MonthlyRevenueSync SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := map[string]SyncJob{}
	if s.MonthlyRevenueSync != nil {
		jobs[CronJobTypeMonthlyRevenue] = s.MonthlyRevenueSync
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica. O acesso é restrito pela rota.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, exists := jobs[cronType]
			if !exists {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-revenue, all", nil)
				return
			}
			job.TriggerManualSync()
		}

		logger.WithField("job", cronType).Info("cron: execução manual iniciada")

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
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
