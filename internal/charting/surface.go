package charting

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
)

var (
	ErrSurfaceBusy     = errors.New("superfície já vinculada a outra instância")
	ErrSurfaceNotOwned = errors.New("superfície não pertence a esta instância")
	ErrUnknownFormat   = errors.New("formato de gráfico desconhecido")
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG, "":
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Surface é a área de desenho emprestada pelo host a um slot. Só uma
// instância de gráfico pode estar vinculada de cada vez.
type Surface interface {
	Size() (width, height int)
	Provider() chart.RendererProvider
	ContentType() string
	Bind(owner string) error
	Release(owner string)
	Paint(owner string, frame []byte) error
	Frame() []byte
	Owner() string
}

// Canvas guarda em memória o último quadro pintado
type Canvas struct {
	mu     sync.RWMutex
	width  int
	height int
	format Format
	owner  string
	frame  []byte
}

func NewCanvas(width, height int, format Format) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		format: format,
	}
}

func (c *Canvas) Size() (int, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.width, c.height
}

// Resize altera as dimensões usadas no próximo render
func (c *Canvas) Resize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.width, c.height = width, height
}

func (c *Canvas) Provider() chart.RendererProvider {
	if c.format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

func (c *Canvas) ContentType() string {
	if c.format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (c *Canvas) Bind(owner string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner != "" && c.owner != owner {
		return fmt.Errorf("%w: %s", ErrSurfaceBusy, c.owner)
	}
	c.owner = owner
	return nil
}

// Release desvincula o dono atual; o último quadro continua disponível
func (c *Canvas) Release(owner string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner == owner {
		c.owner = ""
	}
}

func (c *Canvas) Paint(owner string, frame []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.owner != owner {
		return ErrSurfaceNotOwned
	}
	c.frame = frame
	return nil
}

func (c *Canvas) Frame() []byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.frame
}

func (c *Canvas) Owner() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.owner
}

// Surfaces é o registro de superfícies montadas pelo host, uma por slot
type Surfaces struct {
	mu     sync.RWMutex
	mounts map[domain.Slot]Surface
}

func NewSurfaces() *Surfaces {
	return &Surfaces{mounts: make(map[domain.Slot]Surface)}
}

func (s *Surfaces) Mount(slot domain.Slot, surface Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mounts[slot] = surface
}

func (s *Surfaces) Unmount(slot domain.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.mounts, slot)
}

func (s *Surfaces) Surface(slot domain.Slot) (Surface, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	surface, ok := s.mounts[slot]
	return surface, ok
}
