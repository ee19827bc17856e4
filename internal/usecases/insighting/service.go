package insighting

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
)

type Service struct {
	store      repository.RecordStore
	summarizer summarizing.Summarizer
}

// NewService cria o serviço de insights
func NewService(store repository.RecordStore, summarizer summarizing.Summarizer) Insighter {
	return &Service{
		store:      store,
		summarizer: summarizer,
	}
}

func (s *Service) GenerateInsights(ctx context.Context, month string) ([]*domain.Insight, error) {
	transactions, err := s.store.ListTransactions(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar transações de %s: %w", month, err)
	}

	comparison, err := s.summarizer.CompareWithPreviousMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	var previousTransactions []*domain.Transaction
	if comparison.Previous != nil {
		previousTransactions, err = s.store.ListTransactions(ctx, comparison.Previous.Month)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar transações de %s: %w", comparison.Previous.Month, err)
		}
	}

	insights := Generate(transactions, comparison, previousTransactions)

	logrus.WithFields(logrus.Fields{
		"month":    month,
		"insights": len(insights),
	}).Debug("Insights gerados")

	return insights, nil
}
