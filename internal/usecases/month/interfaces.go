package month

import (
	"context"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

// Resolver resolve o mês corrente e lista os meses existentes
type Resolver interface {
	// GetCurrentMonth retorna o mês corrente no formato yyyy-mm
	GetCurrentMonth() string

	// EnsureCurrentMonth cria o mês corrente a partir do template caso ainda não exista
	EnsureCurrentMonth(ctx context.Context) (string, error)

	// ListMonths lista os meses do mais recente para o mais antigo
	ListMonths(ctx context.Context, withSummary bool) ([]*domain.MonthInfo, error)
}
