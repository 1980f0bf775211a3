package dashboarding

import (
	"context"
	"sync"

	"github.com/vfg2006/sales-dashboard/internal/domain"
)

// Cycle acompanha as três consultas de um Reload
type Cycle struct {
	Generation uint64
	Range      domain.DateRange

	mu      sync.Mutex
	pending int
	errs    map[string]error
	done    chan struct{}
}

func newCycle(generation uint64, dateRange domain.DateRange) *Cycle {
	return &Cycle{
		Generation: generation,
		Range:      dateRange,
		pending:    queriesPerCycle,
		errs:       make(map[string]error),
		done:       make(chan struct{}),
	}
}

// Done é fechado quando as três consultas terminam, com sucesso ou falha
func (c *Cycle) Done() <-chan struct{} {
	return c.done
}

func (c *Cycle) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Errors devolve as falhas por consulta; só é completo depois de Done
func (c *Cycle) Errors() map[string]error {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]error, len(c.errs))
	for name, err := range c.errs {
		out[name] = err
	}
	return out
}

func (c *Cycle) record(name string, err error) {
	if err == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[name] = err
}

// settle retorna true para a última consulta do ciclo
func (c *Cycle) settle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending--
	return c.pending == 0
}
