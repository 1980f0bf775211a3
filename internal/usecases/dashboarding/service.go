package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/ranging"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

const queriesPerCycle = 3

// Orchestrator dispara as consultas do dashboard e aplica os resultados no store
type Orchestrator interface {
	Reload(ctx context.Context, dateRange domain.DateRange) *Cycle
	ApplyQuickRange(ctx context.Context, token domain.QuickRange) (*Cycle, error)
	ApplyRange(ctx context.Context, from, to string) (*Cycle, error)
	Refresh(ctx context.Context) (*Cycle, error)
	Selection() (Selection, bool)
}

// Selection é a última escolha de período feita pelo usuário
type Selection struct {
	QuickRange domain.QuickRange `json:"range,omitempty"`
	From       string            `json:"from,omitempty"`
	To         string            `json:"to,omitempty"`
}

func (s Selection) IsQuickRange() bool {
	return s.QuickRange != ""
}

type Service struct {
	integrator dashboard.DashboardIntegrator
	resolver   ranging.DateRangeResolver
	store      *viewmodel.Store

	// callbackMu serializa as conclusões das consultas: cada callback
	// atualiza o store e re-renderiza o gráfico sem intercalar com outro
	callbackMu sync.Mutex

	selectionMu  sync.RWMutex
	selection    Selection
	hasSelection bool
}

func NewService(integrator dashboard.DashboardIntegrator, resolver ranging.DateRangeResolver, store *viewmodel.Store) *Service {
	return &Service{
		integrator: integrator,
		resolver:   resolver,
		store:      store,
	}
}

// ApplyQuickRange resolve o atalho contra a data atual e recarrega
func (s *Service) ApplyQuickRange(ctx context.Context, token domain.QuickRange) (*Cycle, error) {
	dateRange, err := s.resolver.Resolve(token)
	if err != nil {
		return nil, err
	}

	s.remember(Selection{QuickRange: token})
	return s.Reload(ctx, dateRange), nil
}

// ApplyRange valida o período informado e recarrega
func (s *Service) ApplyRange(ctx context.Context, from, to string) (*Cycle, error) {
	dateRange, err := s.resolver.Explicit(from, to)
	if err != nil {
		return nil, err
	}

	s.remember(Selection{From: dateRange.FromString(), To: dateRange.ToString()})
	return s.Reload(ctx, dateRange), nil
}

// Refresh repete a última seleção; atalhos são resolvidos de novo e
// acompanham o relógio. Sem seleção anterior recarrega sem filtro.
func (s *Service) Refresh(ctx context.Context) (*Cycle, error) {
	selection, ok := s.Selection()
	if !ok {
		return s.Reload(ctx, domain.DateRange{}), nil
	}

	if selection.IsQuickRange() {
		return s.ApplyQuickRange(ctx, selection.QuickRange)
	}
	return s.ApplyRange(ctx, selection.From, selection.To)
}

func (s *Service) Selection() (Selection, bool) {
	s.selectionMu.RLock()
	defer s.selectionMu.RUnlock()

	return s.selection, s.hasSelection
}

func (s *Service) remember(selection Selection) {
	s.selectionMu.Lock()
	defer s.selectionMu.Unlock()

	s.selection = selection
	s.hasSelection = true
}

// Reload inicia um novo ciclo com as três consultas em paralelo. Um novo
// Reload não cancela o anterior; resultados de gerações antigas são descartados.
func (s *Service) Reload(ctx context.Context, dateRange domain.DateRange) *Cycle {
	ctx = context.WithoutCancel(ctx)
	logger := log.ForContext(ctx)

	s.callbackMu.Lock()
	generation := s.store.BeginCycle(dateRange)
	s.callbackMu.Unlock()

	cycle := newCycle(generation, dateRange)

	logger.WithFields(log.Fields{
		"generation": generation,
		"from":       dateRange.FromString(),
		"to":         dateRange.ToString(),
	}).Info("dashboard: iniciando carga")

	queries := []query{
		{
			name:     "kpis",
			fallback: MsgKPIsFailed,
			fetch: func() (func(), int, error) {
				kpis, err := s.integrator.GetKPIs(ctx, dateRange)
				return func() { s.store.SetKPIs(kpis) }, len(kpis.TopProducts), err
			},
		},
		{
			name:     "timeseries",
			fallback: MsgTimeSeriesFailed,
			fetch: func() (func(), int, error) {
				points, err := s.integrator.GetTimeSeries(ctx, dateRange)
				return func() { s.store.SetSales(points) }, len(points), err
			},
		},
		{
			name:     "payments",
			fallback: MsgDistributionFailed,
			fetch: func() (func(), int, error) {
				entries, err := s.integrator.GetPaymentDistribution(ctx, dateRange)
				return func() { s.store.SetPayments(entries) }, len(entries), err
			},
		},
	}

	for _, q := range queries {
		go s.run(logger, cycle, q)
	}

	return cycle
}

type query struct {
	name     string
	fallback string
	fetch    func() (apply func(), items int, err error)
}

func (s *Service) run(logger log.Logger, cycle *Cycle, q query) {
	logger = logger.WithFields(log.Fields{
		"query":      q.name,
		"generation": cycle.Generation,
	})

	logger.Debug("dashboard: consulta iniciada")
	start := time.Now()
	apply, items, err := q.fetch()

	s.callbackMu.Lock()
	defer s.callbackMu.Unlock()

	current := s.store.Generation() == cycle.Generation

	switch {
	case !current:
		logger.Debug("dashboard: resultado de geração antiga descartado")
	case err != nil:
		logger.WithError(err).Error("dashboard: consulta falhou")
		s.store.SetError(MessageFor(err, q.fallback))
	default:
		logger.WithFields(log.Fields{
			"items":       items,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("dashboard: consulta concluída")
		apply()
	}

	cycle.record(q.name, err)
	if !cycle.settle() {
		return
	}

	if current {
		s.store.SetLoading(false)
	}
	close(cycle.done)
}
