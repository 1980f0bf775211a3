package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

// AutoRefresher é o agendador de atualização automática
type AutoRefresher interface {
	TriggerManualRefresh(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunAutoRefresh dispara manualmente o job de atualização
func RunAutoRefresh(refresher AutoRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAutoRefresh")

		if refresher == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização automática não disponível", nil)
			return
		}

		started := refresher.TriggerManualRefresh(r.Context())
		message := "Atualização do dashboard iniciada"
		if !started {
			message = "Atualização do dashboard já em andamento"
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"started": started,
			"message": message,
		})
	}
}

func GetAutoRefreshStatus(refresher AutoRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if refresher == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização automática não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, refresher.GetStatus())
	}
}
