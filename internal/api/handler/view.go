package handler

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/format"
)

type rangeView struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Days int    `json:"days"`
}

type formattedKPIs struct {
	TotalSales  string `json:"totalSales"`
	TotalOrders string `json:"totalOrders"`
	AvgTicket   string `json:"avgTicket"`
}

type topProductView struct {
	domain.TopProductEntry
	SoldLabel    string `json:"soldLabel"`
	RevenueLabel string `json:"revenueLabel"`
	Color        string `json:"color"`
}

type paymentView struct {
	domain.PaymentDistributionEntry
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// DashboardView é o estado exposto para a UI
type DashboardView struct {
	Loading      bool                     `json:"loading"`
	ErrorMessage string                   `json:"errorMessage"`
	Generation   uint64                   `json:"generation"`
	Range        rangeView                `json:"range"`
	Selection    *dashboarding.Selection  `json:"selection,omitempty"`
	KPIs         *domain.KPISnapshot      `json:"kpis"`
	Formatted    *formattedKPIs           `json:"formatted,omitempty"`
	TopProducts  []topProductView         `json:"topProducts"`
	Sales        []domain.TimeSeriesPoint `json:"sales"`
	Payments     []paymentView            `json:"payments"`
	PaymentTotal string                   `json:"paymentTotal"`
}

func newRangeView(r domain.DateRange) rangeView {
	return rangeView{From: r.FromString(), To: r.ToString(), Days: r.Days()}
}

func newDashboardView(snapshot viewmodel.Snapshot, selection *dashboarding.Selection, formatter *format.Formatter) DashboardView {
	view := DashboardView{
		Loading:      snapshot.Loading,
		ErrorMessage: snapshot.ErrorMessage,
		Generation:   snapshot.Generation,
		Range:        newRangeView(snapshot.Range),
		Selection:    selection,
		KPIs:         snapshot.KPIs,
		TopProducts:  []topProductView{},
		Sales:        snapshot.Sales,
		Payments:     make([]paymentView, 0, len(snapshot.Payments)),
	}

	if snapshot.KPIs != nil {
		view.Formatted = &formattedKPIs{
			TotalSales:  formatter.Currency(snapshot.KPIs.TotalSales),
			TotalOrders: formatter.Number(snapshot.KPIs.TotalOrders),
			AvgTicket:   formatter.Currency(snapshot.KPIs.AvgTicket, 2),
		}

		for i, p := range snapshot.KPIs.Top() {
			view.TopProducts = append(view.TopProducts, topProductView{
				TopProductEntry: p,
				SoldLabel:       formatter.Number(p.Sold),
				RevenueLabel:    formatter.Currency(p.Revenue),
				Color:           format.PaletteColor(i),
			})
		}
	}

	total := 0.0
	for _, p := range snapshot.Payments {
		total += p.Count
	}
	colors := format.Palette(len(snapshot.Payments))
	for i, p := range snapshot.Payments {
		view.Payments = append(view.Payments, paymentView{
			PaymentDistributionEntry: p,
			Percentage:               format.Percentage(p.Count, total),
			Color:                    colors[i],
		})
	}
	view.PaymentTotal = formatter.Number(total)

	return view
}
