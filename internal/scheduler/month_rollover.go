// Package scheduler contém os serviços de agendamento das rotinas periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/internal/config"
	"github.com/vfg2006/econoapp-api/internal/usecases/month"
)

type MonthRolloverConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// MonthRolloverService cria o arquivo do mês corrente na virada do mês
type MonthRolloverService struct {
	scheduler           *gocron.Scheduler
	resolver            month.Resolver
	config              MonthRolloverConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastMonth           string
	lastError           string
}

func NewMonthRolloverService(resolver month.Resolver, cfg *config.Config) *MonthRolloverService {
	rolloverConfig := MonthRolloverConfig{
		CronSchedule: cfg.MonthRollover.CronSchedule, // Default: dia 1 às 00:05
		SyncEnabled:  cfg.MonthRollover.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rolloverConfig.CronSchedule,
		"sync_enabled":  rolloverConfig.SyncEnabled,
	}).Info("Configuração do agendador de virada de mês carregada")

	return &MonthRolloverService{
		scheduler: gocron.NewScheduler(time.Local),
		resolver:  resolver,
		config:    rolloverConfig,
	}
}

func (s *MonthRolloverService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Virada de mês automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de virada de mês")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.rollover(ctx); err != nil {
			logrus.WithError(err).Error("Erro na virada de mês")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar virada de mês: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de virada de mês")
		s.scheduler.Stop()
	}()

	return nil
}

// rollover garante que o arquivo do mês corrente exista
func (s *MonthRolloverService) rollover(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Virada de mês já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	current, err := s.resolver.EnsureCurrentMonth(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.lastMonth = current
	s.lastError = ""

	logrus.WithField("month", current).Info("Mês corrente disponível")
	return nil
}

// TriggerManualSync executa a virada de mês fora do agendamento
func (s *MonthRolloverService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Virada de mês já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando virada de mês manual")
	go func() {
		if err := s.rollover(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na virada de mês manual")
		}
	}()
}

// GetStatus retorna o status atual da virada de mês
func (s *MonthRolloverService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_month":             s.lastMonth,
		"last_error":             s.lastError,
	}
}
