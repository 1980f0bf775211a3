package charting

import (
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/format"
)

// Config é a configuração de um gráfico: TimeSeries, RankedBar ou Distribution
type Config interface {
	Slot() domain.Slot
	build(env buildEnv) *instance
}

type buildEnv struct {
	id                string
	surface           Surface
	formatter         *format.Formatter
	decimationSamples int
}

// TimeSeries desenha a série temporal de vendas como linha preenchida
type TimeSeries struct {
	Points []domain.TimeSeriesPoint
}

func (TimeSeries) Slot() domain.Slot {
	return domain.SlotTimeSeries
}

// RankedBar desenha os primeiros produtos na ordem recebida
type RankedBar struct {
	Products []domain.TopProductEntry
}

func (RankedBar) Slot() domain.Slot {
	return domain.SlotRankedBar
}

// Distribution desenha a distribuição por forma de pagamento em rosca
type Distribution struct {
	Entries []domain.PaymentDistributionEntry
}

func (Distribution) Slot() domain.Slot {
	return domain.SlotDistribution
}
