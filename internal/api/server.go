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
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/api/handler"
	"github.com/vfg2006/econoapp-api/internal/api/handler/router"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/usecases/insighting"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/middleware"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// Services reúne as dependências expostas pela API.
// SnapshotRepo e Database ficam nil quando o banco de resumos está desabilitado.
type Services struct {
	Resolver     month.Resolver
	Summarizer   summarizing.Summarizer
	Insighter    insighting.Insighter
	Recorder     recording.Recorder
	SnapshotRepo repository.SummarySnapshotRepository
	Database     handler.Pinger
	CronJobs     handler.CronJobServices
}

func New(config *config.Config, services Services) (*Server, error) {
	handler := NewHandler(config, services)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: config.Server.ShutdownTimeout,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 15 * time.Second
	}

	return srv, nil
}

// NewHandler monta as rotas da API com a cadeia de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Months(services.Resolver, services.Summarizer, services.Insighter)...),
		router.WithRoutes(handler.Transactions(services.Recorder)...),
		router.WithRoutes(handler.Investments(services.Recorder)...),
		router.WithRoutes(handler.Settings(services.Recorder)...),
		router.WithRoutes(handler.History(services.SnapshotRepo)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.CORSAllowedOrigins),
		middleware.RateLimit(config.Server.RateLimitRPS, config.Server.RateLimitBurst),
	}

	return alice.New(middlewares...).Then(rt)
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
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
