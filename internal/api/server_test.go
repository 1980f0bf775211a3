package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/mocks"
	"github.com/vfg2006/sales-dashboard/internal/api/handler"
	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/internal/usecases/ranging"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "0"
	cfg.Auth.Enabled = true
	cfg.Auth.Secret = "segredo"
	return cfg
}

func TestServer_GuardsDashboardRoutes(t *testing.T) {
	cfg := newTestConfig()
	guard, err := authenticating.NewService(cfg)
	require.NoError(t, err)

	store := viewmodel.NewStore()
	manager := charting.NewManager(charting.NewSurfaces(), format.Default(), 250)
	orchestrator := dashboarding.NewService(mocks.NewMockDashboardIntegrator(gomock.NewController(t)), ranging.NewResolver(nil), store)

	shutdownCalled := false
	srv, err := New(cfg, Dependencies{
		Dashboard: handler.DashboardDeps{Orchestrator: orchestrator, State: store, Formatter: format.Default()},
		Charts:    manager,
		Guard:     guard,
		OnShutdown: []func(){
			func() { shutdownCalled = true },
		},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(log.CorrelationIDHeader))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := guard.IssueToken("dashboard", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(log.CorrelationIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc-123", rec.Header().Get(log.CorrelationIDHeader))

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.True(t, shutdownCalled)
}

func TestNew_RequiresGuard(t *testing.T) {
	_, err := New(newTestConfig(), Dependencies{})
	assert.Error(t, err)
}
