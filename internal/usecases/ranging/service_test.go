package ranging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard/internal/domain"
)

func fixedClock(year int, month time.Month, day, hour int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, hour, 30, 0, 0, time.Local)
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		now      func() time.Time
		token    domain.QuickRange
		wantFrom string
		wantTo   string
		wantDays int
	}{
		{
			name:     "7d no meio do mês",
			now:      fixedClock(2024, time.March, 15, 10),
			token:    domain.QuickRangeLast7Days,
			wantFrom: "2024-03-09",
			wantTo:   "2024-03-15",
			wantDays: 7,
		},
		{
			name:     "7d atravessando a virada do ano",
			now:      fixedClock(2024, time.January, 3, 23),
			token:    domain.QuickRangeLast7Days,
			wantFrom: "2023-12-28",
			wantTo:   "2024-01-03",
			wantDays: 7,
		},
		{
			name:     "30d atravessando fevereiro bissexto",
			now:      fixedClock(2024, time.March, 10, 8),
			token:    domain.QuickRangeLast30Days,
			wantFrom: "2024-02-10",
			wantTo:   "2024-03-10",
			wantDays: 30,
		},
		{
			name:     "month no dia 1",
			now:      fixedClock(2024, time.May, 1, 0),
			token:    domain.QuickRangeMonth,
			wantFrom: "2024-05-01",
			wantTo:   "2024-05-01",
			wantDays: 1,
		},
		{
			name:     "month no fim do mês",
			now:      fixedClock(2024, time.August, 31, 12),
			token:    domain.QuickRangeMonth,
			wantFrom: "2024-08-01",
			wantTo:   "2024-08-31",
			wantDays: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewResolver(tt.now).Resolve(tt.token)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFrom, r.FromString())
			assert.Equal(t, tt.wantTo, r.ToString())
			assert.Equal(t, tt.wantDays, r.Days())
			assert.False(t, r.From.After(r.To))
			assert.Equal(t, tt.now().Format(time.DateOnly), r.ToString())
		})
	}
}

func TestResolver_Resolve_AllTokensEndToday(t *testing.T) {
	resolver := NewResolver(nil)
	today := time.Now().Format(time.DateOnly)

	for _, token := range domain.QuickRanges {
		r, err := resolver.Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, today, r.ToString(), "token %s", token)
		assert.False(t, r.From.After(r.To), "token %s", token)
	}
}

func TestResolver_Resolve_UnknownToken(t *testing.T) {
	_, err := NewResolver(nil).Resolve("90d")
	assert.ErrorIs(t, err, ErrUnknownQuickRange)
}

func TestResolver_Explicit(t *testing.T) {
	resolver := NewResolver(nil)

	r, err := resolver.Explicit("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", r.FromString())
	assert.Equal(t, "2024-01-31", r.ToString())

	r, err = resolver.Explicit("", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "", r.FromString())
	assert.Equal(t, "2024-01-31", r.ToString())

	_, err = resolver.Explicit("2024-02-01", "2024-01-31")
	assert.ErrorIs(t, err, ErrInvertedRange)

	_, err = resolver.Explicit("01/02/2024", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
