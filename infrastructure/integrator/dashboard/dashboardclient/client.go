package dashboardclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	dashboarddomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// QueryParams são os filtros opcionais das consultas; vazios são omitidos
type QueryParams struct {
	From string
	To   string
}

type Client interface {
	GetKPIs(ctx context.Context, params QueryParams) (*dashboarddomain.KPIResponse, error)
	GetTimeSeries(ctx context.Context, params QueryParams) (*dashboarddomain.TimeSeriesResponse, error)
}

type DashboardClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient cria o cliente da API de dashboard do backend de vendas
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DashboardClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Backend.URL,
		token:   cfg.Backend.Token,
	}
}
