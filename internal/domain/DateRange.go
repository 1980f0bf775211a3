package domain

import "time"

// QuickRange representa um atalho de período resolvido contra a data atual
type QuickRange string

const (
	QuickRangeLast7Days  QuickRange = "7d"
	QuickRangeLast30Days QuickRange = "30d"
	QuickRangeMonth      QuickRange = "month"
)

// QuickRanges lista os atalhos aceitos, na ordem exibida pelo seletor
var QuickRanges = []QuickRange{
	QuickRangeLast7Days,
	QuickRangeLast30Days,
	QuickRangeMonth,
}

// IsValid indica se o atalho é conhecido
func (q QuickRange) IsValid() bool {
	for _, known := range QuickRanges {
		if q == known {
			return true
		}
	}
	return false
}

// DateRange é um par de datas de calendário [From, To].
// Datas zeradas são omitidas dos parâmetros de consulta.
type DateRange struct {
	From time.Time
	To   time.Time
}

// FromString retorna From no formato YYYY-MM-DD, ou vazio quando não definida
func (r DateRange) FromString() string {
	return formatDate(r.From)
}

// ToString retorna To no formato YYYY-MM-DD, ou vazio quando não definida
func (r DateRange) ToString() string {
	return formatDate(r.To)
}

// Days retorna a quantidade de dias inclusivos do período (0 se algum lado não estiver definido)
func (r DateRange) Days() int {
	if r.From.IsZero() || r.To.IsZero() {
		return 0
	}

	from := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours()/24) + 1
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
