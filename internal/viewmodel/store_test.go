package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

func TestStore_InitialState(t *testing.T) {
	store := NewStore()
	snapshot := store.Snapshot()

	assert.False(t, snapshot.Loading)
	assert.Empty(t, snapshot.ErrorMessage)
	assert.Nil(t, snapshot.KPIs)
	assert.NotNil(t, snapshot.Sales)
	assert.NotNil(t, snapshot.Payments)
	assert.Zero(t, snapshot.Generation)
}

func TestStore_BeginCycle(t *testing.T) {
	store := NewStore()
	store.SetError("falhou")

	var kinds []EventKind
	store.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
	})

	dateRange := domain.DateRange{From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)}
	generation := store.BeginCycle(dateRange)

	assert.Equal(t, uint64(1), generation)
	assert.Equal(t, []EventKind{RangeChanged, ErrorChanged, LoadingChanged}, kinds)

	snapshot := store.Snapshot()
	assert.True(t, snapshot.Loading)
	assert.Empty(t, snapshot.ErrorMessage)
	assert.Equal(t, dateRange, snapshot.Range)

	assert.Equal(t, uint64(2), store.BeginCycle(dateRange))
	assert.Equal(t, uint64(2), store.Generation())
}

func TestStore_SettersReplaceWholesale(t *testing.T) {
	store := NewStore()

	store.SetSales([]domain.TimeSeriesPoint{{Date: "2024-01-01", Total: 1}, {Date: "2024-01-02", Total: 2}})
	store.SetSales([]domain.TimeSeriesPoint{{Date: "2024-02-01", Total: 3}})
	assert.Equal(t, []domain.TimeSeriesPoint{{Date: "2024-02-01", Total: 3}}, store.Snapshot().Sales)

	store.SetPayments([]domain.PaymentDistributionEntry{{Method: "card", Count: 8}})
	store.SetPayments(nil)
	assert.Empty(t, store.Snapshot().Payments)
	assert.NotNil(t, store.Snapshot().Payments)

	store.SetError("primeiro")
	store.SetError("segundo")
	assert.Equal(t, "segundo", store.Snapshot().ErrorMessage)
}

func TestStore_SnapshotIsIsolated(t *testing.T) {
	store := NewStore()
	products := []domain.TopProductEntry{{Name: "Widget", Sold: 10, Revenue: 500}}
	store.SetKPIs(domain.KPISnapshot{TotalSales: 1500, TopProducts: products})

	products[0].Name = "alterado"
	snapshot := store.Snapshot()
	require.NotNil(t, snapshot.KPIs)
	assert.Equal(t, "Widget", snapshot.KPIs.TopProducts[0].Name)

	snapshot.KPIs.TopProducts[0].Name = "outro"
	assert.Equal(t, "Widget", store.Snapshot().KPIs.TopProducts[0].Name)
}

func TestStore_EventsCarrySnapshots(t *testing.T) {
	store := NewStore()

	var events []Event
	store.Subscribe(func(e Event) {
		events = append(events, e)
	})

	store.SetLoading(false)
	assert.Empty(t, events, "sem mudança não há evento")

	store.SetKPIs(domain.KPISnapshot{TotalSales: 10})
	store.SetPayments([]domain.PaymentDistributionEntry{{Method: "cash", Count: 2}})

	require.Len(t, events, 2)
	assert.Equal(t, KPIsChanged, events[0].Kind)
	assert.Equal(t, 10.0, events[0].Snapshot.KPIs.TotalSales)
	assert.Empty(t, events[0].Snapshot.Payments)
	assert.Equal(t, PaymentsChanged, events[1].Kind)
	assert.Equal(t, []domain.PaymentDistributionEntry{{Method: "cash", Count: 2}}, events[1].Snapshot.Payments)
}
