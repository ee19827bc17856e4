package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/database/postgres"
	"github.com/vfg2006/econoapp-api/infrastructure/migration"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/api"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/scheduler"
	"github.com/vfg2006/econoapp-api/internal/usecases/insighting"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/recording"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	log.SetDevelopment(cfg.App.IsDevelopment())
	if !cfg.App.IsDevelopment() {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := recordStore(cfg.Storage)

	summarizer := summarizing.NewService(store)
	insighter := insighting.NewService(store, summarizer)
	recorder := recording.NewService(store)
	resolver := month.NewService(store, summarizer)

	// O mês corrente precisa existir antes da primeira requisição
	current, err := resolver.EnsureCurrentMonth(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o mês corrente")
	}
	logrus.WithField("month", current).Info("Mês corrente disponível")

	services := api.Services{
		Resolver:   resolver,
		Summarizer: summarizer,
		Insighter:  insighter,
		Recorder:   recorder,
	}

	monthRolloverService := scheduler.NewMonthRolloverService(resolver, cfg)
	services.CronJobs.MonthRolloverService = monthRolloverService

	if err := monthRolloverService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de virada de mês")
	} else {
		logrus.Info("Agendador de virada de mês iniciado com sucesso")
	}

	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		if err := migration.Up(pgConn.DB, "postgres"); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}

		snapshotRepo := repository.NewSummarySnapshotRepository(pgConn)
		services.SnapshotRepo = snapshotRepo
		services.Database = pgConn

		summarySnapshotSyncService := scheduler.NewSummarySnapshotSyncService(
			store,
			snapshotRepo,
			summarizer,
			resolver,
			cfg,
		)
		services.CronJobs.SummarySnapshotSyncService = summarySnapshotSyncService

		if err := summarySnapshotSyncService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de arquivamento de resumos")
		} else {
			logrus.Info("Agendador de arquivamento de resumos iniciado com sucesso")
		}
	} else {
		logrus.Info("Banco de resumos desabilitado, histórico indisponível")
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// recordStore abre o diretório das planilhas, com cache de leitura quando CACHE_TTL > 0
func recordStore(cfg config.Storage) repository.RecordStore {
	excelStore, err := repository.NewExcelStore(cfg.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o diretório das planilhas")
	}

	logrus.WithField("data_dir", cfg.DataDir).Info("Planilhas mensais carregadas")

	if cfg.CacheTTL <= 0 {
		return excelStore
	}

	return repository.NewCachedStore(excelStore, cfg.CacheTTL)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
