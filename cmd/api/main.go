package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard"
	"github.com/vfg2006/sales-dashboard/infrastructure/integrator/dashboard/dashboardclient"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/api/handler"
	"github.com/vfg2006/sales-dashboard/internal/charting"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-dashboard/internal/usecases/ranging"
	"github.com/vfg2006/sales-dashboard/internal/viewmodel"
	"github.com/vfg2006/sales-dashboard/pkg/format"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

func main() {
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Setup(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	formatter, err := format.New(cfg.Dashboard.Locale, cfg.Dashboard.Currency)
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de formatação inválida")
	}

	chartFormat, err := charting.ParseFormat(cfg.Chart.Format)
	if err != nil {
		logrus.WithError(err).Fatal("Formato de gráfico inválido")
	}

	guard, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar autenticação")
	}

	dashboardClient := dashboardclient.NewClient(cfg)
	integrator := dashboard.New(dashboardClient)

	store := viewmodel.NewStore()

	surfaces := charting.NewSurfaces()
	for _, slot := range domain.Slots {
		surfaces.Mount(slot, charting.NewCanvas(cfg.Chart.Width, cfg.Chart.Height, chartFormat))
	}
	chartManager := charting.NewManager(surfaces, formatter, cfg.Chart.DecimationSamples)
	charting.Bind(store, chartManager)

	orchestrator := dashboarding.NewService(integrator, ranging.NewResolver(nil), store)

	refreshService := scheduler.NewDashboardRefreshService(orchestrator, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar atualização automática do dashboard")
	}

	// Carga inicial com o período padrão
	if _, err := orchestrator.ApplyQuickRange(ctx, domain.QuickRange(cfg.Dashboard.DefaultRange)); err != nil {
		logrus.WithError(err).WithField("range", cfg.Dashboard.DefaultRange).Warn("Período padrão inválido, carregando sem filtro")
		orchestrator.Reload(ctx, domain.DateRange{})
	}

	server, err := api.New(cfg, api.Dependencies{
		Dashboard: handler.DashboardDeps{
			Orchestrator: orchestrator,
			State:        store,
			Formatter:    formatter,
			WaitTimeout:  cfg.Backend.Timeout,
		},
		Charts:     chartManager,
		Refresher:  refreshService,
		Guard:      guard,
		OnShutdown: []func(){cancel, chartManager.Destroy},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar servidor")
	}
}
