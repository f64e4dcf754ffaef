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
	"github.com/vfg2006/consultant-dashboard-api/internal/api/handler"
	"github.com/vfg2006/consultant-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/consultant-dashboard-api/internal/config"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/recording"
	"github.com/vfg2006/consultant-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/consultant-dashboard-api/pkg/middleware"
)

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Recorder      recording.Recorder
	Reporter      reporting.Reporter
	Exporter      exporting.Exporter
	Profiler      profiling.Profiler
	CronJobs      handler.CronJobServices
	Dependencies  map[string]handler.Pinger
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Dependencies)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Records(services.Recorder)...),
		router.WithRoutes(handler.Reports(services.Reporter, services.Exporter)...),
		router.WithRoutes(handler.Integrations(services.Exporter)...),
		router.WithRoutes(handler.CV(services.Profiler)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
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

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
