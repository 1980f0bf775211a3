package dashboarddomain

// Os payloads do backend não têm tipos garantidos: campos numéricos podem vir
// ausentes, nulos ou como string. Escalares ficam como any e são convertidos
// pelo normalizer.

// KPIResponse é a resposta de GET /dashboard/kpis
type KPIResponse struct {
	Data *KPIData `json:"data"`
}

type KPIData struct {
	TotalSales          any             `json:"totalSales"`
	OrdersCount         any             `json:"ordersCount"`
	AverageTicket       any             `json:"averageTicket"`
	TopProducts         []*TopProduct   `json:"topProducts"`
	PaymentDistribution []*PaymentShare `json:"paymentDistribution"`
}

type TopProduct struct {
	Name     any `json:"name"`
	Quantity any `json:"quantity"`
	Revenue  any `json:"revenue"`
}

type PaymentShare struct {
	PaymentMethod any `json:"paymentMethod"`
	Orders        any `json:"orders"`
}

// TimeSeriesResponse é a resposta de GET /dashboard/timeseries
type TimeSeriesResponse struct {
	Data []*TimeSeriesPeriod `json:"data"`
}

type TimeSeriesPeriod struct {
	Period any `json:"period"`
	Total  any `json:"total"`
}

// ErrorBody cobre os formatos de erro conhecidos do backend
type ErrorBody struct {
	Message any `json:"message"`
	Error   any `json:"error"`
}
