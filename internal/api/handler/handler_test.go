package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/mocks"
	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/internal/usecases/ranging"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

type testServer struct {
	handler    http.Handler
	integrator *mocks.MockDashboardIntegrator
	store      *viewmodel.Store
	manager    *charting.Manager
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockDashboardIntegrator(ctrl)
	store := viewmodel.NewStore()

	surfaces := charting.NewSurfaces()
	for _, slot := range domain.Slots {
		surfaces.Mount(slot, charting.NewCanvas(320, 160, charting.FormatPNG))
	}
	manager := charting.NewManager(surfaces, format.Default(), 250)
	charting.Bind(store, manager)

	orchestrator := dashboarding.NewService(integrator, ranging.NewResolver(func() time.Time { return fixedNow }), store)
	deps := DashboardDeps{
		Orchestrator: orchestrator,
		State:        store,
		Formatter:    format.Default(),
		WaitTimeout:  2 * time.Second,
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Dashboard(deps)...),
		router.WithRoutes(Charts(manager)...),
	)

	return testServer{handler: rt, integrator: integrator, store: store, manager: manager}
}

func (s testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s testServer) expectScenario(dateRange any) {
	s.integrator.EXPECT().GetKPIs(gomock.Any(), dateRange).Return(domain.KPISnapshot{
		TotalSales:  1500,
		AvgTicket:   75.5,
		TopProducts: []domain.TopProductEntry{{Name: "Widget", Sold: 10, Revenue: 500}},
	}, nil)
	s.integrator.EXPECT().GetTimeSeries(gomock.Any(), dateRange).Return([]domain.TimeSeriesPoint{{Date: "2024-01-01", Total: 200}}, nil)
	s.integrator.EXPECT().GetPaymentDistribution(gomock.Any(), dateRange).Return([]domain.PaymentDistributionEntry{
		{Method: "card", Count: 8},
		{Method: "cash", Count: 2},
	}, nil)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestApplyRange_WaitReturnsDashboard(t *testing.T) {
	s := newTestServer(t)
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	s.expectScenario(domain.DateRange{From: today.AddDate(0, 0, -6), To: today})

	rec := s.do(t, http.MethodPost, "/v1/dashboard/range?wait=true", `{"range":"7d"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var view DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))

	assert.False(t, view.Loading)
	assert.Empty(t, view.ErrorMessage)
	assert.Equal(t, rangeView{From: "2024-03-09", To: "2024-03-15", Days: 7}, view.Range)
	require.NotNil(t, view.Selection)
	assert.Equal(t, domain.QuickRangeLast7Days, view.Selection.QuickRange)
	require.NotNil(t, view.Formatted)
	assert.Equal(t, "$1,500", view.Formatted.TotalSales)
	assert.Equal(t, "0", view.Formatted.TotalOrders)
	assert.Equal(t, "$75.50", view.Formatted.AvgTicket)
	require.Len(t, view.Payments, 2)
	assert.Equal(t, 80, view.Payments[0].Percentage)
	assert.Equal(t, 20, view.Payments[1].Percentage)
	assert.Equal(t, "#3f51b5", view.Payments[0].Color)
	assert.Equal(t, "10", view.PaymentTotal)
	require.Len(t, view.TopProducts, 1)
	assert.Equal(t, "Widget", view.TopProducts[0].Name)

	frame := s.do(t, http.MethodGet, "/v1/charts/distribution", "")
	require.Equal(t, http.StatusOK, frame.Code)
	assert.Equal(t, "image/png", frame.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", frame.Header().Get("Cache-Control"))
	assert.True(t, bytes.HasPrefix(frame.Body.Bytes(), []byte("\x89PNG")))

	tooltips := s.do(t, http.MethodGet, "/v1/charts/distribution/tooltips", "")
	require.Equal(t, http.StatusOK, tooltips.Code)
	var body tooltipsResponse
	require.NoError(t, json.Unmarshal(tooltips.Body.Bytes(), &body))
	assert.Equal(t, []string{"card: 8 (80%)", "cash: 2 (20%)"}, body.Tooltips)
}

func TestApplyRange_AcceptedWithoutWait(t *testing.T) {
	s := newTestServer(t)
	expected := domain.DateRange{
		From: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		To:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
	}
	s.expectScenario(expected)

	rec := s.do(t, http.MethodPost, "/v1/dashboard/range", `{"from":"2024-02-01","to":"2024-02-29"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body cycleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(1), body.Generation)
	assert.Equal(t, 29, body.Range.Days)

	require.Eventually(t, func() bool { return s.manager.Live() == 3 && !s.store.Snapshot().Loading }, 2*time.Second, 10*time.Millisecond)
}

func TestApplyRange_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "json inválido", body: `{"range":`, code: apiErrors.ErrInvalidFormat},
		{name: "atalho desconhecido", body: `{"range":"1y"}`, code: apiErrors.ErrInvalidRange},
		{name: "atalho e período", body: `{"range":"7d","from":"2024-01-01"}`, code: apiErrors.ErrInvalidRequest},
		{name: "data malformada", body: `{"from":"01/02/2024"}`, code: apiErrors.ErrInvalidFormat},
		{name: "período invertido", body: `{"from":"2024-02-10","to":"2024-02-01"}`, code: apiErrors.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			rec := s.do(t, http.MethodPost, "/v1/dashboard/range", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestRefresh_WithoutSelectionReloadsUnfiltered(t *testing.T) {
	s := newTestServer(t)
	s.expectScenario(domain.DateRange{})

	rec := s.do(t, http.MethodPost, "/v1/dashboard/refresh?wait=true", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Nil(t, view.Selection)
	assert.Equal(t, rangeView{}, view.Range)
}

func TestGetDashboard_InitialState(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view DashboardView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Nil(t, view.KPIs)
	assert.Nil(t, view.Formatted)
	assert.Empty(t, view.Sales)
	assert.Empty(t, view.Payments)
	assert.Equal(t, "0", view.PaymentTotal)
}

func TestCharts_Errors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/charts/time-series", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrChartNotRendered, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodGet, "/v1/charts/pizza/tooltips", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrUnknownSlot, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodGet, "/v1/nada", "")
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)

	rec = s.do(t, http.MethodDelete, "/v1/dashboard", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
