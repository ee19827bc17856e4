package recording

import (
	"context"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

// Recorder valida e grava os registros de um mês
type Recorder interface {
	ListTransactions(ctx context.Context, month string) ([]*domain.Transaction, error)
	CreateTransaction(ctx context.Context, month string, req *domain.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, month, id string, req *domain.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, month, id string) error

	ListInvestments(ctx context.Context, month string) ([]*domain.Investment, error)
	CreateInvestment(ctx context.Context, month string, req *domain.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, month, id string, req *domain.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, month, id string) error

	GetSettings(ctx context.Context, month string) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, month string, req *domain.UpdateSettingsRequest) (*domain.Settings, error)
	ListCategories(ctx context.Context, month string) ([]*domain.Category, error)
}
