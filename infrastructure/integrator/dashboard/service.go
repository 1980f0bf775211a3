package dashboard

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/normalizer"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// DashboardIntegrator expõe as consultas remotas já normalizadas
type DashboardIntegrator interface {
	GetKPIs(ctx context.Context, dateRange domain.DateRange) (domain.KPISnapshot, error)
	GetTimeSeries(ctx context.Context, dateRange domain.DateRange) ([]domain.TimeSeriesPoint, error)
	// GetPaymentDistribution faz sua própria requisição ao endpoint de KPIs
	GetPaymentDistribution(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentDistributionEntry, error)
}

type DashboardService struct {
	Client dashboardclient.Client
}

func New(client dashboardclient.Client) DashboardIntegrator {
	return &DashboardService{
		Client: client,
	}
}

func (s *DashboardService) GetKPIs(ctx context.Context, dateRange domain.DateRange) (domain.KPISnapshot, error) {
	resp, err := s.Client.GetKPIs(ctx, paramsFor(dateRange))
	if err != nil {
		return domain.KPISnapshot{}, errors.Wrap(err, "dashboard: erro ao buscar KPIs")
	}

	kpis := normalizer.KPIs(resp)

	logrus.WithFields(logrus.Fields{
		"from":         dateRange.FromString(),
		"to":           dateRange.ToString(),
		"top_products": len(kpis.TopProducts),
	}).Debug("dashboard: KPIs normalizados")

	return kpis, nil
}

func (s *DashboardService) GetTimeSeries(ctx context.Context, dateRange domain.DateRange) ([]domain.TimeSeriesPoint, error) {
	resp, err := s.Client.GetTimeSeries(ctx, paramsFor(dateRange))
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: erro ao buscar série temporal")
	}

	points := normalizer.TimeSeries(resp)

	logrus.WithFields(logrus.Fields{
		"from":   dateRange.FromString(),
		"to":     dateRange.ToString(),
		"points": len(points),
	}).Debug("dashboard: série temporal normalizada")

	return points, nil
}

func (s *DashboardService) GetPaymentDistribution(ctx context.Context, dateRange domain.DateRange) ([]domain.PaymentDistributionEntry, error) {
	resp, err := s.Client.GetKPIs(ctx, paramsFor(dateRange))
	if err != nil {
		return nil, errors.Wrap(err, "dashboard: erro ao buscar métodos de pagamento")
	}

	entries := normalizer.PaymentDistribution(resp)

	logrus.WithFields(logrus.Fields{
		"from":    dateRange.FromString(),
		"to":      dateRange.ToString(),
		"methods": len(entries),
	}).Debug("dashboard: distribuição de pagamentos normalizada")

	return entries, nil
}

func paramsFor(dateRange domain.DateRange) dashboardclient.QueryParams {
	return dashboardclient.QueryParams{
		From: dateRange.FromString(),
		To:   dateRange.ToString(),
	}
}
