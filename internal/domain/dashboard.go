package domain

// KPISnapshot é o modelo de exibição dos indicadores do período
type KPISnapshot struct {
	TotalSales  float64           `json:"totalSales"`
	TotalOrders float64           `json:"totalOrders"`
	AvgTicket   float64           `json:"avgTicket"`
	TopProducts []TopProductEntry `json:"topProducts"`
}

// TopProductEntry mantém a ordem de ranking recebida do backend
type TopProductEntry struct {
	Name    string  `json:"name"`
	Sold    float64 `json:"sold"`
	Revenue float64 `json:"revenue"`
}

// TimeSeriesPoint é um ponto da série de vendas, na ordem recebida
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// PaymentDistributionEntry representa a quantidade de pedidos por forma de pagamento
type PaymentDistributionEntry struct {
	Method string  `json:"method"`
	Count  float64 `json:"count"`
}

// MaxTopProducts é a quantidade de produtos exibidos no gráfico de ranking
const MaxTopProducts = 5

// Top retorna os primeiros MaxTopProducts produtos, sem reordenar
func (k KPISnapshot) Top() []TopProductEntry {
	if len(k.TopProducts) <= MaxTopProducts {
		return k.TopProducts
	}
	return k.TopProducts[:MaxTopProducts]
}
