package domain

import "time"

// SummarySnapshot é a cópia arquivada de um MonthSummary no banco
type SummarySnapshot struct {
	ID               string          `json:"id"`
	Month            string          `json:"month"`
	TotalIncome      float64         `json:"totalIncome"`
	TotalExpenses    float64         `json:"totalExpenses"`
	Balance          float64         `json:"balance"`
	Savings          float64         `json:"savings"`
	TransactionCount int             `json:"transactionCount"`
	InvestmentCount  int             `json:"investmentCount"`
	TotalInvested    float64         `json:"totalInvested"`
	InvestmentsValue float64         `json:"investmentsValue"`
	TopCategories    []CategoryTotal `json:"topCategories"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// NewSummarySnapshot copia o resumo calculado para ser arquivado
func NewSummarySnapshot(id string, summary *MonthSummary) *SummarySnapshot {
	return &SummarySnapshot{
		ID:               id,
		Month:            summary.Month,
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		Balance:          summary.Balance,
		Savings:          summary.Savings,
		TransactionCount: summary.TransactionCount,
		InvestmentCount:  summary.InvestmentCount,
		TotalInvested:    summary.TotalInvested,
		InvestmentsValue: summary.InvestmentsValue,
		TopCategories:    summary.TopCategories,
	}
}
