package charting

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

// SurfaceProvider entrega a superfície montada para o slot
type SurfaceProvider interface {
	Surface(slot domain.Slot) (Surface, bool)
}

// Manager mantém no máximo uma instância viva por slot
type Manager struct {
	mu                sync.Mutex
	surfaces          SurfaceProvider
	formatter         *format.Formatter
	decimationSamples int
	handles           map[domain.Slot]Instance
}

func NewManager(surfaces SurfaceProvider, formatter *format.Formatter, decimationSamples int) *Manager {
	if formatter == nil {
		formatter = format.Default()
	}

	return &Manager{
		surfaces:          surfaces,
		formatter:         formatter,
		decimationSamples: decimationSamples,
		handles:           make(map[domain.Slot]Instance),
	}
}

// Render destrói a instância anterior do slot e desenha uma nova.
// Sem superfície montada o render é ignorado e o slot mantém o estado anterior.
func (m *Manager) Render(cfg Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	slot := cfg.Slot()
	logger := logrus.WithField("slot", slot)

	surface, ok := m.surfaces.Surface(slot)
	if !ok {
		logger.Debug("charting: superfície indisponível, render ignorado")
		return nil
	}

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("charting: erro ao gerar id da instância")
		return err
	}

	if prior, ok := m.handles[slot]; ok {
		prior.Destroy()
		delete(m.handles, slot)
	}

	inst := cfg.build(buildEnv{
		id:                id,
		surface:           surface,
		formatter:         m.formatter,
		decimationSamples: m.decimationSamples,
	})

	if err := surface.Bind(inst.ID()); err != nil {
		return err
	}
	m.handles[slot] = inst

	logger = logger.WithField("instance_id", inst.ID())
	if err := inst.Draw(); err != nil {
		logger.WithError(err).Error("charting: erro ao desenhar gráfico")
		return err
	}

	logger.Debug("charting: gráfico renderizado")
	return nil
}

// Handle devolve a instância viva do slot
func (m *Manager) Handle(slot domain.Slot) (Instance, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inst, ok := m.handles[slot]
	return inst, ok
}

// Live conta as instâncias vivas em todos os slots
func (m *Manager) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.handles)
}

func (m *Manager) Tooltips(slot domain.Slot) ([]string, bool) {
	inst, ok := m.Handle(slot)
	if !ok {
		return nil, false
	}
	return inst.Tooltips(), true
}

// Frame devolve o último quadro do slot e o content type da superfície
func (m *Manager) Frame(slot domain.Slot) ([]byte, string, bool) {
	if _, ok := m.Handle(slot); !ok {
		return nil, "", false
	}

	surface, ok := m.surfaces.Surface(slot)
	if !ok {
		return nil, "", false
	}

	frame := surface.Frame()
	if len(frame) == 0 {
		return nil, "", false
	}
	return frame, surface.ContentType(), true
}

// Destroy libera todas as instâncias, usado no desligamento
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for slot, inst := range m.handles {
		inst.Destroy()
		delete(m.handles, slot)
	}
}
