// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=record_store.go -destination=mocks/mock_record_store.go -package=mocks

import (
	"context"
	"errors"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

var (
	ErrMonthNotFound       = errors.New("month not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvestmentNotFound  = errors.New("investment not found")
	ErrSheetNotFound       = errors.New("sheet not found")
)

// IsNotFound indica se o erro se refere a um mês ou registro inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMonthNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrInvestmentNotFound)
}

// RecordStore guarda as transações, investimentos e configurações de cada mês
type RecordStore interface {
	MonthExists(ctx context.Context, month string) (bool, error)
	// ListMonths retorna os meses existentes do mais recente para o mais antigo
	ListMonths(ctx context.Context) ([]string, error)
	// CreateMonth cria o mês a partir do template. Não faz nada se o mês já existir.
	CreateMonth(ctx context.Context, month string) error

	ListTransactions(ctx context.Context, month string) ([]*domain.Transaction, error)
	// CreateTransaction atribui um novo ID à transação e a grava
	CreateTransaction(ctx context.Context, month string, transaction *domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, month string, id string, update *domain.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, month string, id string) error

	ListInvestments(ctx context.Context, month string) ([]*domain.Investment, error)
	CreateInvestment(ctx context.Context, month string, investment *domain.Investment) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, month string, id string, update *domain.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, month string, id string) error

	GetSettings(ctx context.Context, month string) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, month string, update *domain.UpdateSettingsRequest) (*domain.Settings, error)
	ListCategories(ctx context.Context, month string) ([]*domain.Category, error)
}
