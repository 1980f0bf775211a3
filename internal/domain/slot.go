package domain

// Slot identifica um dos três gráficos do dashboard
type Slot string

const (
	SlotTimeSeries   Slot = "time-series"
	SlotRankedBar    Slot = "ranked-bar"
	SlotDistribution Slot = "distribution"
)

var Slots = []Slot{SlotTimeSeries, SlotRankedBar, SlotDistribution}

// ParseSlot converte o identificador recebido na URL
func ParseSlot(s string) (Slot, bool) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, true
		}
	}
	return "", false
}
