package dashboardclient

import (
	"context"

	dashboarddomain "github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/domain"
)

const timeseriesPath = "/dashboard/timeseries"

func (c *DashboardClient) GetTimeSeries(ctx context.Context, params QueryParams) (*dashboarddomain.TimeSeriesResponse, error) {
	var response dashboarddomain.TimeSeriesResponse

	if err := c.get(ctx, timeseriesPath, params, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
