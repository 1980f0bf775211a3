package dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

const kpiBody = `{"data":{"totalSales":"1500","ordersCount":null,"averageTicket":75.5,
	"topProducts":[{"name":"Widget","quantity":"10","revenue":500}],
	"paymentDistribution":[{"paymentMethod":"card","orders":8},{"paymentMethod":"cash","orders":2}]}}`

func newTestIntegrator(t *testing.T, handler http.HandlerFunc) DashboardIntegrator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.URL = server.URL
	cfg.Backend.Timeout = 5 * time.Second

	return New(dashboardclient.NewClient(cfg))
}

func testRange() domain.DateRange {
	return domain.DateRange{
		From: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.Local),
	}
}

func TestDashboardService_KPIsAndDistributionUseSeparateRequests(t *testing.T) {
	var kpiCalls atomic.Int32
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dashboard/kpis" {
			kpiCalls.Add(1)
		}
		_, _ = w.Write([]byte(kpiBody))
	})

	kpis, err := integrator.GetKPIs(context.Background(), testRange())
	require.NoError(t, err)
	assert.Equal(t, 1500.0, kpis.TotalSales)
	assert.Equal(t, 0.0, kpis.TotalOrders)
	assert.Equal(t, 75.5, kpis.AvgTicket)
	assert.Equal(t, []domain.TopProductEntry{{Name: "Widget", Sold: 10, Revenue: 500}}, kpis.TopProducts)

	distribution, err := integrator.GetPaymentDistribution(context.Background(), testRange())
	require.NoError(t, err)
	assert.Equal(t, []domain.PaymentDistributionEntry{
		{Method: "card", Count: 8},
		{Method: "cash", Count: 2},
	}, distribution)

	assert.Equal(t, int32(2), kpiCalls.Load())
}

func TestDashboardService_TimeSeries(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/timeseries", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"period":"2024-01-01","total":"200"}]}`))
	})

	points, err := integrator.GetTimeSeries(context.Background(), testRange())
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSeriesPoint{{Date: "2024-01-01", Total: 200}}, points)
}

func TestDashboardService_WrapsResponseError(t *testing.T) {
	integrator := newTestIntegrator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := integrator.GetTimeSeries(context.Background(), testRange())
	require.Error(t, err)

	var respErr *dashboardclient.ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusInternalServerError, respErr.StatusCode)
	assert.Empty(t, respErr.Message)
}
