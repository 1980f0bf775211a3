package dashboardclient

import (
	"context"

	dashboarddomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/domain"
)

const kpisPath = "/dashboard/kpis"

func (c *DashboardClient) GetKPIs(ctx context.Context, params QueryParams) (*dashboarddomain.KPIResponse, error) {
	var response dashboarddomain.KPIResponse

	if err := c.get(ctx, kpisPath, params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
