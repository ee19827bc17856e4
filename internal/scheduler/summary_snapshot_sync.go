package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

// SummarySnapshotSyncConfig representa a configuração do arquivamento de resumos
type SummarySnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
	MonthLookBack     int
}

// SummarySnapshotSyncService recalcula os resumos dos últimos meses e os arquiva no banco
type SummarySnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SummarySnapshotSyncConfig
	store               repository.RecordStore
	snapshotRepo        repository.SummarySnapshotRepository
	summarizer          summarizing.Summarizer
	resolver            month.Resolver
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncedMonths    int
	lastSyncFailures    int
}

func NewSummarySnapshotSyncService(
	store repository.RecordStore,
	snapshotRepo repository.SummarySnapshotRepository,
	summarizer summarizing.Summarizer,
	resolver month.Resolver,
	appConfig *config.Config,
) *SummarySnapshotSyncService {
	syncConfig := SummarySnapshotSyncConfig{
		CronSchedule:      appConfig.SummarySnapshotSync.CronSchedule,
		MaxConcurrentJobs: appConfig.SummarySnapshotSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.Database.Enabled,
		MonthLookBack:     appConfig.SummarySnapshotSync.MonthLookBack,
	}

	if syncConfig.MaxConcurrentJobs < 1 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"month_lookback":      syncConfig.MonthLookBack,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de arquivamento de resumos carregada")

	return &SummarySnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       syncConfig,
		store:        store,
		snapshotRepo: snapshotRepo,
		summarizer:   summarizer,
		resolver:     resolver,
	}
}

func (s *SummarySnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Arquivamento de resumos desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de arquivamento de resumos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.syncRecentMonths(ctx); err != nil {
			logrus.WithError(err).Error("Erro no arquivamento de resumos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar arquivamento de resumos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de arquivamento de resumos")
		s.scheduler.Stop()
	}()

	return nil
}

// recentMonths retorna o mês corrente e os anteriores, até MonthLookBack meses
func (s *SummarySnapshotSyncService) recentMonths() ([]string, error) {
	lookBack := s.config.MonthLookBack
	if lookBack < 1 {
		lookBack = 1
	}

	months := make([]string, 0, lookBack)
	current := s.resolver.GetCurrentMonth()
	for i := 0; i < lookBack; i++ {
		months = append(months, current)

		previous, err := utils.PreviousMonth(current)
		if err != nil {
			return nil, err
		}
		current = previous
	}

	return months, nil
}

func (s *SummarySnapshotSyncService) syncRecentMonths(ctx context.Context) ([]*domain.SummarySnapshot, error) {
	months, err := s.recentMonths()
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular meses para arquivamento: %w", err)
	}
	return s.SyncMonths(ctx, months)
}

// SyncAllMonths arquiva o resumo de todos os meses existentes
func (s *SummarySnapshotSyncService) SyncAllMonths(ctx context.Context) ([]*domain.SummarySnapshot, error) {
	months, err := s.store.ListMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar meses: %w", err)
	}
	return s.SyncMonths(ctx, months)
}

// SyncMonths arquiva o resumo dos meses informados em paralelo, limitado por MaxConcurrentJobs
func (s *SummarySnapshotSyncService) SyncMonths(ctx context.Context, months []string) ([]*domain.SummarySnapshot, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Arquivamento de resumos já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	logrus.WithField("months", months).Info("Iniciando arquivamento de resumos")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg        sync.WaitGroup
		resultsMu sync.Mutex
		snapshots = make([]*domain.SummarySnapshot, 0, len(months))
		errs      []error
	)

	for _, m := range months {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func() {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			snapshot, err := s.syncMonth(ctx, m)

			resultsMu.Lock()
			defer resultsMu.Unlock()

			if err != nil {
				logrus.WithError(err).WithField("month", m).Error("Erro ao arquivar resumo do mês")
				errs = append(errs, fmt.Errorf("%s: %w", m, err))
				return
			}
			if snapshot != nil {
				snapshots = append(snapshots, snapshot)
			}
		}()
	}

	wg.Wait()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncedMonths = len(snapshots)
	s.lastSyncFailures = len(errs)
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"synced":   len(snapshots),
		"failures": len(errs),
	}).Info("Arquivamento de resumos concluído")

	return snapshots, errors.Join(errs...)
}

// syncMonth calcula e grava o resumo de um mês. Meses sem arquivo são ignorados.
func (s *SummarySnapshotSyncService) syncMonth(ctx context.Context, m string) (*domain.SummarySnapshot, error) {
	exists, err := s.store.MonthExists(ctx, m)
	if err != nil {
		return nil, err
	}
	if !exists {
		logrus.WithField("month", m).Debug("Mês sem arquivo, nada a arquivar")
		return nil, nil
	}

	summary, err := s.summarizer.GetMonthSummary(ctx, m)
	if err != nil {
		return nil, err
	}

	existing, err := s.snapshotRepo.GetByMonth(ctx, m)
	if err != nil {
		return nil, err
	}

	var id string
	if existing != nil {
		id = existing.ID
	} else {
		id, err = utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar id do resumo: %w", err)
		}
	}

	snapshot := domain.NewSummarySnapshot(id, summary)
	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// TriggerManualSync inicia manualmente o arquivamento dos meses recentes
func (s *SummarySnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Arquivamento de resumos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando arquivamento manual de resumos")
	go func() {
		if _, err := s.syncRecentMonths(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro no arquivamento manual de resumos")
		}
	}()
}

// GetStatus retorna o status atual do arquivamento
func (s *SummarySnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_synced_months":     s.lastSyncedMonths,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
