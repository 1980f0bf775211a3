package utils

import "time"

// ParseDate interpreta uma data YYYY-MM-DD no calendário local.
// String vazia retorna a data zero sem erro.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	return time.ParseInLocation(time.DateOnly, dateStr, time.Local)
}

// StartOfDay trunca o horário mantendo o dia de calendário local de t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
