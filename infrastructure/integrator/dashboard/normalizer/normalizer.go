// Package normalizer converte os payloads do backend em modelos de exibição.
// Nenhuma função aqui falha: campos ausentes, nulos ou inválidos viram zero,
// string vazia ou coleção vazia.
package normalizer

import (
	"strings"

	"github.com/spf13/cast"
	dashboarddomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/domain"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// KPIs converte a resposta de /dashboard/kpis em KPISnapshot
func KPIs(res *dashboarddomain.KPIResponse) domain.KPISnapshot {
	data := kpiData(res)

	snapshot := domain.KPISnapshot{
		TotalSales:  Number(data.TotalSales),
		TotalOrders: Number(data.OrdersCount),
		AvgTicket:   Number(data.AverageTicket),
		TopProducts: make([]domain.TopProductEntry, 0, len(data.TopProducts)),
	}

	for _, p := range data.TopProducts {
		if p == nil {
			p = &dashboarddomain.TopProduct{}
		}
		snapshot.TopProducts = append(snapshot.TopProducts, domain.TopProductEntry{
			Name:    Text(p.Name),
			Sold:    Number(p.Quantity),
			Revenue: Number(p.Revenue),
		})
	}

	return snapshot
}

// PaymentDistribution extrai a distribuição por forma de pagamento da resposta de /dashboard/kpis
func PaymentDistribution(res *dashboarddomain.KPIResponse) []domain.PaymentDistributionEntry {
	data := kpiData(res)

	entries := make([]domain.PaymentDistributionEntry, 0, len(data.PaymentDistribution))
	for _, d := range data.PaymentDistribution {
		if d == nil {
			d = &dashboarddomain.PaymentShare{}
		}
		entries = append(entries, domain.PaymentDistributionEntry{
			Method: Text(d.PaymentMethod),
			Count:  Number(d.Orders),
		})
	}

	return entries
}

// TimeSeries converte a resposta de /dashboard/timeseries mantendo a ordem recebida
func TimeSeries(res *dashboarddomain.TimeSeriesResponse) []domain.TimeSeriesPoint {
	if res == nil {
		return []domain.TimeSeriesPoint{}
	}

	points := make([]domain.TimeSeriesPoint, 0, len(res.Data))
	for _, p := range res.Data {
		if p == nil {
			p = &dashboarddomain.TimeSeriesPeriod{}
		}
		points = append(points, domain.TimeSeriesPoint{
			Date:  Text(p.Period),
			Total: Number(p.Total),
		})
	}

	return points
}

// Number converte v em float64; nil, string vazia, lixo, NaN e infinitos viram 0
func Number(v any) float64 {
	switch value := v.(type) {
	case nil:
		return 0
	case string:
		value = strings.TrimSpace(value)
		if value == "" {
			return 0
		}
		v = value
	case []any, map[string]any:
		return 0
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}

	return utils.Finite(f)
}

// Text converte v em string; nil e valores compostos viram ""
func Text(v any) string {
	switch v.(type) {
	case nil, []any, map[string]any:
		return ""
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}

	return s
}

func kpiData(res *dashboarddomain.KPIResponse) *dashboarddomain.KPIData {
	if res == nil || res.Data == nil {
		return &dashboarddomain.KPIData{}
	}
	return res.Data
}
