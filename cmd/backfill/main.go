// Arquiva no PostgreSQL o resumo de meses já existentes nas planilhas.
//
//	go run ./cmd/backfill                      # todos os meses
//	go run ./cmd/backfill -months 2024-01,2024-02
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/database/postgres"
	"github.com/vfg2006/econoapp-api/infrastructure/migration"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/scheduler"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

func main() {
	monthsFlag := flag.String("months", "", "meses separados por vírgula (yyyy-mm); vazio arquiva todos")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	months, err := parseMonths(*monthsFlag)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := migration.Up(conn.DB, "postgres"); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	store, err := repository.NewExcelStore(cfg.Storage.DataDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o diretório das planilhas")
	}

	summarizer := summarizing.NewService(store)
	syncService := scheduler.NewSummarySnapshotSyncService(
		store,
		repository.NewSummarySnapshotRepository(conn),
		summarizer,
		month.NewService(store, summarizer),
		cfg,
	)

	var snapshots []*domain.SummarySnapshot
	if len(months) == 0 {
		snapshots, err = syncService.SyncAllMonths(ctx)
	} else {
		snapshots, err = syncService.SyncMonths(ctx, months)
	}
	if err != nil {
		logrus.WithError(err).Error("Arquivamento concluído com falhas")
	}

	fmt.Println(utils.PrettyJson(snapshots))
}

func parseMonths(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	months := make([]string, 0)
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if !utils.IsValidMonth(m) {
			return nil, fmt.Errorf("mês inválido: %q", m)
		}
		months = append(months, m)
	}
	return months, nil
}
