// Package viewmodel guarda o estado exibido pelo dashboard: indicador de
// carregamento, mensagem de erro e os três slots de dados normalizados.
package viewmodel

import (
	"sync"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

type EventKind string

const (
	LoadingChanged  EventKind = "loading"
	ErrorChanged    EventKind = "error"
	RangeChanged    EventKind = "range"
	KPIsChanged     EventKind = "kpis"
	SalesChanged    EventKind = "sales"
	PaymentsChanged EventKind = "payments"
)

// Snapshot é uma cópia imutável do estado no momento do evento
type Snapshot struct {
	Loading      bool                              `json:"loading"`
	ErrorMessage string                            `json:"errorMessage"`
	Range        domain.DateRange                  `json:"-"`
	Generation   uint64                            `json:"generation"`
	KPIs         *domain.KPISnapshot               `json:"kpis"`
	Sales        []domain.TimeSeriesPoint          `json:"sales"`
	Payments     []domain.PaymentDistributionEntry `json:"payments"`
}

type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

type Listener func(Event)

type Store struct {
	mu        sync.RWMutex
	state     Snapshot
	listeners []Listener
}

func NewStore() *Store {
	return &Store{
		state: Snapshot{
			Sales:    []domain.TimeSeriesPoint{},
			Payments: []domain.PaymentDistributionEntry{},
		},
	}
}

// Subscribe registra um observador. Os observadores são chamados na ordem de
// registro, fora do lock do store.
func (s *Store) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.clone()
}

// BeginCycle marca o início de um novo ciclo de carga: loading ligado,
// erro limpo, novo intervalo e nova geração
func (s *Store) BeginCycle(dateRange domain.DateRange) uint64 {
	var generation uint64
	s.update(func(state *Snapshot) []EventKind {
		state.Generation++
		generation = state.Generation
		state.Range = dateRange

		kinds := []EventKind{RangeChanged}
		if state.ErrorMessage != "" {
			state.ErrorMessage = ""
			kinds = append(kinds, ErrorChanged)
		}
		if !state.Loading {
			state.Loading = true
			kinds = append(kinds, LoadingChanged)
		}
		return kinds
	})

	return generation
}

func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Generation
}

func (s *Store) SetLoading(loading bool) {
	s.update(func(state *Snapshot) []EventKind {
		if state.Loading == loading {
			return nil
		}
		state.Loading = loading
		return []EventKind{LoadingChanged}
	})
}

// SetError sobrescreve a mensagem anterior, não há acúmulo de erros
func (s *Store) SetError(message string) {
	s.update(func(state *Snapshot) []EventKind {
		state.ErrorMessage = message
		return []EventKind{ErrorChanged}
	})
}

func (s *Store) SetKPIs(kpis domain.KPISnapshot) {
	s.update(func(state *Snapshot) []EventKind {
		kpis.TopProducts = append([]domain.TopProductEntry{}, kpis.TopProducts...)
		state.KPIs = &kpis
		return []EventKind{KPIsChanged}
	})
}

func (s *Store) SetSales(points []domain.TimeSeriesPoint) {
	s.update(func(state *Snapshot) []EventKind {
		state.Sales = append([]domain.TimeSeriesPoint{}, points...)
		return []EventKind{SalesChanged}
	})
}

func (s *Store) SetPayments(entries []domain.PaymentDistributionEntry) {
	s.update(func(state *Snapshot) []EventKind {
		state.Payments = append([]domain.PaymentDistributionEntry{}, entries...)
		return []EventKind{PaymentsChanged}
	})
}

func (s *Store) update(mutate func(state *Snapshot) []EventKind) {
	s.mu.Lock()
	kinds := mutate(&s.state)
	snapshot := s.state.clone()
	listeners := append([]Listener{}, s.listeners...)
	s.mu.Unlock()

	for _, kind := range kinds {
		event := Event{Kind: kind, Snapshot: snapshot}
		for _, listener := range listeners {
			listener(event)
		}
	}
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.KPIs != nil {
		kpis := *s.KPIs
		kpis.TopProducts = append([]domain.TopProductEntry{}, s.KPIs.TopProducts...)
		out.KPIs = &kpis
	}
	out.Sales = append([]domain.TimeSeriesPoint{}, s.Sales...)
	out.Payments = append([]domain.PaymentDistributionEntry{}, s.Payments...)
	return out
}
