package recording

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/econoapp-api/infrastructure/repository"
	"github.com/vfg2006/econoapp-api/internal/domain"
)

type Service struct {
	store repository.RecordStore
}

func NewService(store repository.RecordStore) Recorder {
	return &Service{store: store}
}

func (s *Service) ListTransactions(ctx context.Context, month string) ([]*domain.Transaction, error) {
	return s.store.ListTransactions(ctx, month)
}

func (s *Service) CreateTransaction(ctx context.Context, month string, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateCreateTransaction(req); err != nil {
		return nil, err
	}

	transaction, err := s.store.CreateTransaction(ctx, month, req.ToTransaction())
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar transação em %s: %w", month, err)
	}

	logrus.WithFields(logrus.Fields{
		"month": month,
		"id":    transaction.ID,
		"type":  transaction.Type,
	}).Info("Transação criada")

	return transaction, nil
}

func (s *Service) UpdateTransaction(ctx context.Context, month, id string, req *domain.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := validateUpdateTransaction(req); err != nil {
		return nil, err
	}

	transaction, err := s.store.UpdateTransaction(ctx, month, id, req)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar transação %s em %s: %w", id, month, err)
	}

	return transaction, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, month, id string) error {
	if err := s.store.DeleteTransaction(ctx, month, id); err != nil {
		return fmt.Errorf("erro ao remover transação %s em %s: %w", id, month, err)
	}

	logrus.WithFields(logrus.Fields{"month": month, "id": id}).Info("Transação removida")
	return nil
}

func (s *Service) ListInvestments(ctx context.Context, month string) ([]*domain.Investment, error) {
	return s.store.ListInvestments(ctx, month)
}

func (s *Service) CreateInvestment(ctx context.Context, month string, req *domain.CreateInvestmentRequest) (*domain.Investment, error) {
	if err := validateCreateInvestment(req); err != nil {
		return nil, err
	}

	investment, err := s.store.CreateInvestment(ctx, month, req.ToInvestment())
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar investimento em %s: %w", month, err)
	}

	logrus.WithFields(logrus.Fields{
		"month": month,
		"id":    investment.ID,
		"type":  investment.InvestmentType,
	}).Info("Investimento criado")

	return investment, nil
}

func (s *Service) UpdateInvestment(ctx context.Context, month, id string, req *domain.UpdateInvestmentRequest) (*domain.Investment, error) {
	if err := validateUpdateInvestment(req); err != nil {
		return nil, err
	}

	investment, err := s.store.UpdateInvestment(ctx, month, id, req)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar investimento %s em %s: %w", id, month, err)
	}

	return investment, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, month, id string) error {
	if err := s.store.DeleteInvestment(ctx, month, id); err != nil {
		return fmt.Errorf("erro ao remover investimento %s em %s: %w", id, month, err)
	}

	logrus.WithFields(logrus.Fields{"month": month, "id": id}).Info("Investimento removido")
	return nil
}

func (s *Service) GetSettings(ctx context.Context, month string) (*domain.Settings, error) {
	return s.store.GetSettings(ctx, month)
}

func (s *Service) UpdateSettings(ctx context.Context, month string, req *domain.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := validateUpdateSettings(req); err != nil {
		return nil, err
	}

	if req.CategoryLimits != nil && *req.CategoryLimits == "" {
		limits := domain.DefaultCategoryLimits
		req.CategoryLimits = &limits
	}

	settings, err := s.store.UpdateSettings(ctx, month, req)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar configurações de %s: %w", month, err)
	}

	return settings, nil
}

func (s *Service) ListCategories(ctx context.Context, month string) ([]*domain.Category, error) {
	return s.store.ListCategories(ctx, month)
}
