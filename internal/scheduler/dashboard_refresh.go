package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
)

// Refresher repete a última seleção de período do dashboard
type Refresher interface {
	Refresh(ctx context.Context) (*dashboarding.Cycle, error)
}

type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
	// CycleTimeout limita a espera por um ciclo antes de liberar o próximo
	CycleTimeout time.Duration
}

// DashboardRefreshService recarrega o dashboard periodicamente
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	refresher Refresher

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastErrors      int
}

func NewDashboardRefreshService(refresher Refresher, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.AutoRefresh.CronSchedule,
		Enabled:      appConfig.AutoRefresh.Enabled,
		CycleTimeout: appConfig.Backend.Timeout + 5*time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração da atualização automática do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start agenda a atualização; o agendador para quando ctx é cancelado
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização automática do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) refresh(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	failures := 0
	defer func() {
		s.mu.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.lastErrors = failures
		s.mu.Unlock()
	}()

	cycle, err := s.refresher.Refresh(ctx)
	if err != nil {
		failures = 1
		logrus.WithError(err).Error("Erro ao iniciar atualização do dashboard")
		return
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.config.CycleTimeout)
	defer cancel()

	if err := cycle.Wait(waitCtx); err != nil {
		failures = 1
		logrus.WithError(err).Warn("Atualização do dashboard não concluiu no tempo esperado")
		return
	}

	failures = len(cycle.Errors())
	logrus.WithFields(logrus.Fields{
		"generation": cycle.Generation,
		"failures":   failures,
	}).Info("Atualização do dashboard concluída")
}

// TriggerManualRefresh dispara uma atualização fora do agendamento
func (s *DashboardRefreshService) TriggerManualRefresh(ctx context.Context) bool {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if running {
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return false
	}

	go s.refresh(context.WithoutCancel(ctx))
	return true
}

// GetStatus retorna o status atual da atualização automática
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"refresh_running":           s.running,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_enabled":           s.config.Enabled,
		"last_refresh_started_at":   s.lastStartedAt,
		"last_refresh_completed_at": s.lastCompletedAt,
		"last_refresh_failures":     s.lastErrors,
	}
}
