package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/scheduler"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
)

// CronJobs é a parte do registro de agendamentos exposta pela API
type CronJobs interface {
	Trigger(name string) (bool, error)
	Statuses() []scheduler.Status
}

type RunCronJobResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Started bool   `json:"started"`
}

// RunCronJob executa manualmente um agendamento
func RunCronJob(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")

		started, err := jobs.Trigger(cronType)
		if errors.Is(err, scheduler.ErrUnknownJob) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": []string{scheduler.JobGoalsSync, scheduler.JobStockAlert, scheduler.JobPaymentDue},
			})
			return
		}
		if err != nil {
			writeServiceError(w, r, err, "Erro ao executar cron job")
			return
		}

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}
		logrus.WithFields(logrus.Fields{"job": cronType, "started": started}).Info("Execução manual solicitada")

		writeJSON(w, http.StatusAccepted, RunCronJobResponse{Message: message, Type: cronType, Started: started})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(jobs CronJobs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jobs.Statuses())
	}
}
