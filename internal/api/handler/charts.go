package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

// ChartReader lê o último quadro e os tooltips de cada slot
type ChartReader interface {
	Frame(slot domain.Slot) ([]byte, string, bool)
	Tooltips(slot domain.Slot) ([]string, bool)
}

type tooltipsResponse struct {
	Slot     domain.Slot `json:"slot"`
	Tooltips []string    `json:"tooltips"`
}

func GetChartFrame(charts ChartReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		frame, contentType, ok := charts.Frame(slot)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrChartNotRendered, "Gráfico ainda não renderizado", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write(frame); err != nil {
			logrus.WithError(err).WithField("slot", slot).Warn("Erro ao enviar quadro do gráfico")
		}
	}
}

func GetChartTooltips(charts ChartReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot, ok := slotParam(w, r)
		if !ok {
			return
		}

		tooltips, ok := charts.Tooltips(slot)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrChartNotRendered, "Gráfico ainda não renderizado", nil)
			return
		}

		writeJSON(w, http.StatusOK, tooltipsResponse{Slot: slot, Tooltips: tooltips})
	}
}

func slotParam(w http.ResponseWriter, r *http.Request) (domain.Slot, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("slot")
	slot, ok := domain.ParseSlot(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrUnknownSlot, "Slot de gráfico inexistente", raw)
	}
	return slot, ok
}
