package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/internal/usecases/ranging"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/format"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultWaitTimeout limita ?wait=true quando nenhum timeout é informado
const defaultWaitTimeout = 30 * time.Second

// StateReader expõe o estado atual do dashboard
type StateReader interface {
	Snapshot() viewmodel.Snapshot
}

// DashboardDeps agrupa o que os handlers do dashboard precisam
type DashboardDeps struct {
	Orchestrator dashboarding.Orchestrator
	State        StateReader
	Formatter    *format.Formatter
	WaitTimeout  time.Duration
}

// RangeRequest aceita um atalho ou um período explícito, nunca os dois
type RangeRequest struct {
	Range domain.QuickRange `json:"range"`
	From  string            `json:"from"`
	To    string            `json:"to"`
}

type cycleResponse struct {
	Generation uint64    `json:"generation"`
	Range      rangeView `json:"range"`
}

func GetDashboard(deps DashboardDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, dashboardView(deps))
	}
}

func ApplyDashboardRange(deps DashboardDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RangeRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		ctx := r.Context()
		var (
			cycle *dashboarding.Cycle
			err   error
		)
		switch {
		case req.Range != "" && (req.From != "" || req.To != ""):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Informe um atalho ou um período, não ambos", nil)
			return
		case req.Range != "":
			cycle, err = deps.Orchestrator.ApplyQuickRange(ctx, req.Range)
		default:
			cycle, err = deps.Orchestrator.ApplyRange(ctx, req.From, req.To)
		}

		if err != nil {
			writeRangeError(w, err)
			return
		}

		respondCycle(w, r, deps, cycle)
	}
}

func RefreshDashboard(deps DashboardDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cycle, err := deps.Orchestrator.Refresh(r.Context())
		if err != nil {
			writeRangeError(w, err)
			return
		}

		respondCycle(w, r, deps, cycle)
	}
}

// respondCycle responde 202 com a geração iniciada, ou 200 com o estado
// final quando ?wait=true
func respondCycle(w http.ResponseWriter, r *http.Request, deps DashboardDeps, cycle *dashboarding.Cycle) {
	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if !wait {
		writeJSON(w, http.StatusAccepted, cycleResponse{
			Generation: cycle.Generation,
			Range:      newRangeView(cycle.Range),
		})
		return
	}

	timeout := deps.WaitTimeout
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	if err := cycle.Wait(ctx); err != nil {
		logrus.WithError(err).WithField("generation", cycle.Generation).Warn("Espera pelo ciclo do dashboard interrompida")
		apiErrors.WriteError(w, apiErrors.ErrTimeout, "Carga do dashboard não concluiu a tempo", nil)
		return
	}

	writeJSON(w, http.StatusOK, dashboardView(deps))
}

func dashboardView(deps DashboardDeps) DashboardView {
	var selection *dashboarding.Selection
	if s, ok := deps.Orchestrator.Selection(); ok {
		selection = &s
	}
	return newDashboardView(deps.State.Snapshot(), selection, deps.Formatter)
}

func writeRangeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ranging.ErrUnknownQuickRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Atalho de período desconhecido", quickRangeNames())
	case errors.Is(err, ranging.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
	case errors.Is(err, ranging.ErrInvertedRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Data inicial maior que a final", nil)
	default:
		logrus.WithError(err).Error("Erro ao aplicar período do dashboard")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao aplicar período", nil)
	}
}

func quickRangeNames() string {
	names := make([]string, len(domain.QuickRanges))
	for i, q := range domain.QuickRanges {
		names[i] = string(q)
	}
	return strings.Join(names, ", ")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}
