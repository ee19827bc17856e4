package summarizing

import (
	"context"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

// Summarizer calcula resumos e comparações de meses a partir do repositório
type Summarizer interface {
	// GetMonthSummary carrega o mês e calcula o resumo
	GetMonthSummary(ctx context.Context, month string) (*domain.MonthSummary, error)

	// CompareWithPreviousMonth calcula o resumo do mês e do mês anterior, quando existir
	CompareWithPreviousMonth(ctx context.Context, month string) (*domain.Comparison, error)
}
