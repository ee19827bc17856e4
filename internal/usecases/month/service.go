package month

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Máximo de meses resumidos em paralelo na listagem
const summaryConcurrency = 4

type Service struct {
	store      repository.RecordStore
	summarizer summarizing.Summarizer
	now        func() time.Time
}

func NewService(store repository.RecordStore, summarizer summarizing.Summarizer) *Service {
	return &Service{
		store:      store,
		summarizer: summarizer,
		now:        time.Now,
	}
}

// WithClock troca o relógio usado para definir o mês corrente
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetCurrentMonth() string {
	return utils.FormatMonth(s.now())
}

func (s *Service) EnsureCurrentMonth(ctx context.Context) (string, error) {
	current := s.GetCurrentMonth()

	exists, err := s.store.MonthExists(ctx, current)
	if err != nil {
		return "", fmt.Errorf("erro ao verificar mês %s: %w", current, err)
	}

	if exists {
		return current, nil
	}

	if err := s.store.CreateMonth(ctx, current); err != nil {
		return "", fmt.Errorf("erro ao criar mês %s: %w", current, err)
	}

	logrus.WithField("month", current).Info("Mês corrente criado a partir do template")

	return current, nil
}

func (s *Service) ListMonths(ctx context.Context, withSummary bool) ([]*domain.MonthInfo, error) {
	months, err := s.store.ListMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar meses: %w", err)
	}

	current := s.GetCurrentMonth()
	result := make([]*domain.MonthInfo, len(months))
	for i, month := range months {
		result[i] = &domain.MonthInfo{
			Month:     month,
			FileName:  repository.MonthFileName(month),
			IsCurrent: month == current,
		}
	}

	if !withSummary {
		return result, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)

	for _, info := range result {
		g.Go(func() error {
			summary, err := s.summarizer.GetMonthSummary(gctx, info.Month)
			if err != nil {
				return err
			}

			info.Summary = &domain.MonthBrief{
				TotalIncome:   summary.TotalIncome,
				TotalExpenses: summary.TotalExpenses,
				Balance:       summary.Balance,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
