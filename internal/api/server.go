package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/api/handler"
	"github.com/vfg2006/sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/sales-dashboard/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	onShutdown []func()
}

// Dependencies reúne o que o servidor expõe nas rotas
type Dependencies struct {
	Dashboard handler.DashboardDeps
	Charts    handler.ChartReader
	Refresher handler.AutoRefresher
	Guard     authenticating.Guard
	// OnShutdown roda antes do desligamento do servidor HTTP
	OnShutdown []func()
}

func New(config *config.Config, deps Dependencies) (*Server, error) {
	if deps.Guard == nil {
		return nil, fmt.Errorf("guarda de autenticação não configurada")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(deps.Dashboard)...),
		router.WithRoutes(handler.Charts(deps.Charts)...),
		router.WithRoutes(handler.AutoRefresh(deps.Refresher)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(deps.Guard),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		onShutdown: deps.OnShutdown,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	for _, fn := range s.onShutdown {
		fn()
	}

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
