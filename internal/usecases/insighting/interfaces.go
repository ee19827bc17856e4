package insighting

import (
	"context"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

// Insighter gera as observações de um mês a partir das suas transações e da
// comparação com o mês anterior
type Insighter interface {
	// GenerateInsights retorna os insights do mês na ordem fixa das regras
	GenerateInsights(ctx context.Context, month string) ([]*domain.Insight, error)
}
