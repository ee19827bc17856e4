package summarizing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store repository.RecordStore
}

func NewService(store repository.RecordStore) Summarizer {
	return &Service{store: store}
}

func (s *Service) GetMonthSummary(ctx context.Context, month string) (*domain.MonthSummary, error) {
	var (
		transactions []*domain.Transaction
		investments  []*domain.Investment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		transactions, err = s.store.ListTransactions(gctx, month)
		if err != nil {
			return fmt.Errorf("erro ao carregar transações de %s: %w", month, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		investments, err = s.store.ListInvestments(gctx, month)
		if err != nil {
			return fmt.Errorf("erro ao carregar investimentos de %s: %w", month, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ComputeSummary(month, transactions, investments), nil
}

func (s *Service) CompareWithPreviousMonth(ctx context.Context, month string) (*domain.Comparison, error) {
	current, err := s.GetMonthSummary(ctx, month)
	if err != nil {
		return nil, err
	}

	comparison := &domain.Comparison{Current: current}

	previousMonth, err := utils.PreviousMonth(month)
	if err != nil {
		return nil, err
	}

	exists, err := s.store.MonthExists(ctx, previousMonth)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar mês anterior %s: %w", previousMonth, err)
	}

	if !exists {
		logrus.WithField("month", month).Debug("Mês anterior inexistente, comparação zerada")
		return comparison, nil
	}

	previous, err := s.GetMonthSummary(ctx, previousMonth)
	if err != nil {
		return nil, err
	}

	comparison.Previous = previous
	comparison.Changes = CompareSummaries(current, previous)

	return comparison, nil
}
