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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/memotag-sales-api/internal/api/handler"
	"github.com/vfg2006/memotag-sales-api/internal/api/handler/router"
	"github.com/vfg2006/memotag-sales-api/internal/config"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/advising"
	"github.com/vfg2006/memotag-sales-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(
	config *config.Config,
	advisor advising.Advisor,
) (*Server, error) {
	handler, err := NewHandler(config, advisor, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: config.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}

	return srv, nil
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares.
// As métricas são registradas em reg e expostas em config.Metrics.Path quando habilitadas.
func NewHandler(config *config.Config, advisor advising.Advisor, reg *prometheus.Registry) (http.Handler, error) {
	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Home()...),
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Sales(advisor)...),
	}

	if config.Metrics.Enabled {
		if err := reg.Register(collectors.NewGoCollector()); err != nil {
			return nil, fmt.Errorf("erro ao registrar métricas do runtime: %w", err)
		}
		if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
			return nil, fmt.Errorf("erro ao registrar métricas do processo: %w", err)
		}

		metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		routes = append(routes, router.WithRoutes(handler.Metrics(config.Metrics.Path, metricsHandler)...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.RequestID(),
		middleware.LoggingMiddleware(),
	}

	if config.Metrics.Enabled {
		middlewares = append(middlewares, middleware.Metrics(reg, rt.Paths()))
	}

	// A recuperação de panic fica dentro de log e métricas para que o 500 seja registrado
	middlewares = append(middlewares,
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.BodyLimit(config.Server.MaxBodyBytes),
	)

	return alice.New(middlewares...).Then(rt), nil
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
