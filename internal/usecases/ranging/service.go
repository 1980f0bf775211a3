package ranging

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// DateRangeResolver converte atalhos e datas informadas em um DateRange
type DateRangeResolver interface {
	Resolve(token domain.QuickRange) (domain.DateRange, error)
	Explicit(from, to string) (domain.DateRange, error)
}

type Resolver struct {
	now func() time.Time
}

// NewResolver cria um Resolver; now nil usa time.Now
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// Resolve calcula o período do atalho usando o calendário local
func (r *Resolver) Resolve(token domain.QuickRange) (domain.DateRange, error) {
	today := utils.StartOfDay(r.now())

	var from time.Time
	switch token {
	case domain.QuickRangeLast7Days:
		from = today.AddDate(0, 0, -6)
	case domain.QuickRangeLast30Days:
		from = today.AddDate(0, 0, -29)
	case domain.QuickRangeMonth:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	default:
		return domain.DateRange{}, fmt.Errorf("%w: %q", ErrUnknownQuickRange, token)
	}

	return domain.DateRange{From: from, To: today}, nil
}

// Explicit valida um período informado manualmente; qualquer um dos lados pode ficar vazio
func (r *Resolver) Explicit(from, to string) (domain.DateRange, error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: from=%q", ErrInvalidDate, from)
	}

	toDate, err := utils.ParseDate(to)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: to=%q", ErrInvalidDate, to)
	}

	if !fromDate.IsZero() && !toDate.IsZero() && fromDate.After(toDate) {
		return domain.DateRange{}, ErrInvertedRange
	}

	return domain.DateRange{From: fromDate, To: toDate}, nil
}
