package charting

import (
	"bytes"
	"errors"
	"io"
	"sync"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
)

var ErrInstanceDestroyed = errors.New("instância de gráfico destruída")

// Instance é um gráfico vivo vinculado à superfície de um slot
type Instance interface {
	ID() string
	Slot() domain.Slot
	Draw() error
	Destroy()
	Destroyed() bool
	Tooltip(index int) (string, bool)
	Tooltips() []string
}

// renderFunc desenha o gráfico com o provider e as dimensões da superfície
type renderFunc func(rp chart.RendererProvider, width, height int, w io.Writer) error

type instance struct {
	mu        sync.Mutex
	id        string
	slot      domain.Slot
	surface   Surface
	tooltips  []string
	render    renderFunc
	destroyed bool
}

func (i *instance) ID() string {
	return i.id
}

func (i *instance) Slot() domain.Slot {
	return i.slot
}

func (i *instance) Draw() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return ErrInstanceDestroyed
	}

	width, height := i.surface.Size()
	buf := &bytes.Buffer{}
	if err := i.render(i.surface.Provider(), width, height, buf); err != nil {
		return err
	}

	return i.surface.Paint(i.id, buf.Bytes())
}

// Destroy libera a superfície; chamadas repetidas não têm efeito
func (i *instance) Destroy() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.destroyed {
		return
	}
	i.destroyed = true
	i.surface.Release(i.id)
}

func (i *instance) Destroyed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.destroyed
}

func (i *instance) Tooltip(index int) (string, bool) {
	if index < 0 || index >= len(i.tooltips) {
		return "", false
	}
	return i.tooltips[index], true
}

func (i *instance) Tooltips() []string {
	return append([]string{}, i.tooltips...)
}
