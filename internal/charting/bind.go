package charting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
)

// Bind re-renderiza o gráfico do slot sempre que o dado correspondente muda no store
func Bind(store *viewmodel.Store, manager *Manager) {
	store.Subscribe(func(e viewmodel.Event) {
		var cfg Config
		switch e.Kind {
		case viewmodel.KPIsChanged:
			if e.Snapshot.KPIs == nil {
				return
			}
			cfg = RankedBar{Products: e.Snapshot.KPIs.Top()}
		case viewmodel.SalesChanged:
			cfg = TimeSeries{Points: e.Snapshot.Sales}
		case viewmodel.PaymentsChanged:
			cfg = Distribution{Entries: e.Snapshot.Payments}
		default:
			return
		}

		if err := manager.Render(cfg); err != nil {
			logrus.WithError(err).WithField("slot", cfg.Slot()).Error("charting: falha ao re-renderizar slot")
		}
	})
}
