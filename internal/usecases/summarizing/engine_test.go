package summarizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/econoapp-api/internal/domain"
)

func income(amount float64) *domain.Transaction {
	return &domain.Transaction{Type: domain.TransactionTypeIncome, Category: "Salário", Description: "Salário", Amount: amount}
}

func expense(category string, amount float64) *domain.Transaction {
	return &domain.Transaction{Type: domain.TransactionTypeExpense, Category: category, Description: category, Amount: amount}
}

func TestComputeSummary_ScenarioA(t *testing.T) {
	transactions := []*domain.Transaction{
		income(1000),
		expense("Alimentação", 300),
		expense("Transporte", 100),
	}

	summary := ComputeSummary("2024-05", transactions, nil)

	assert.Equal(t, "2024-05", summary.Month)
	assert.Equal(t, 1000.0, summary.TotalIncome)
	assert.Equal(t, 400.0, summary.TotalExpenses)
	assert.Equal(t, 600.0, summary.Balance)
	assert.Equal(t, 600.0, summary.Savings)
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, 0, summary.InvestmentCount)
	assert.Equal(t, []domain.CategoryTotal{
		{Category: "Alimentação", Amount: 300, Percentage: 75},
		{Category: "Transporte", Amount: 100, Percentage: 25},
	}, summary.TopCategories)
}

func TestComputeSummary_Empty(t *testing.T) {
	summary := ComputeSummary("2024-05", nil, nil)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpenses)
	assert.Zero(t, summary.Balance)
	assert.Zero(t, summary.Savings)
	assert.Zero(t, summary.TransactionCount)
	assert.Zero(t, summary.InvestmentCount)
	require.NotNil(t, summary.TopCategories)
	assert.Empty(t, summary.TopCategories)
}

func TestComputeSummary_NegativeBalanceHasNoSavings(t *testing.T) {
	summary := ComputeSummary("2024-05", []*domain.Transaction{
		income(100),
		expense("Lazer", 250.5),
	}, nil)

	assert.Equal(t, 100.0-250.5, summary.Balance)
	assert.Equal(t, 0.0, summary.Savings)
}

func TestComputeSummary_BalanceIdentity(t *testing.T) {
	transactions := []*domain.Transaction{
		income(0.1), income(0.2), income(1234.56),
		expense("A", 0.3), expense("B", 99.99), expense("A", 0.01),
	}

	summary := ComputeSummary("2024-05", transactions, nil)

	assert.Equal(t, summary.TotalIncome-summary.TotalExpenses, summary.Balance)
	assert.Equal(t, 1234.86, summary.TotalIncome)
	assert.Equal(t, 100.3, summary.TotalExpenses)
	assert.GreaterOrEqual(t, summary.TotalIncome, 0.0)
	assert.GreaterOrEqual(t, summary.TotalExpenses, 0.0)
}

func TestComputeSummary_TopCategoriesLimitedToFive(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("A", 10), expense("B", 60), expense("C", 30),
		expense("D", 50), expense("E", 20), expense("F", 40),
		expense("G", 5),
	}

	summary := ComputeSummary("2024-05", transactions, nil)

	require.Len(t, summary.TopCategories, TopCategoriesLimit)
	names := make([]string, 0, len(summary.TopCategories))
	total := 0.0
	for i, c := range summary.TopCategories {
		names = append(names, c.Category)
		total += c.Percentage
		if i > 0 {
			assert.GreaterOrEqual(t, summary.TopCategories[i-1].Amount, c.Amount)
		}
	}
	assert.Equal(t, []string{"B", "D", "F", "C", "E"}, names)
	assert.Less(t, total, 100.0)
}

func TestComputeSummary_TiesKeepDiscoveryOrder(t *testing.T) {
	transactions := []*domain.Transaction{
		expense("Lazer", 50),
		expense("Compras", 80),
		expense("Transporte", 50),
		expense("Lazer", 30),
	}

	summary := ComputeSummary("2024-05", transactions, nil)

	require.Len(t, summary.TopCategories, 3)
	assert.Equal(t, "Lazer", summary.TopCategories[0].Category)
	assert.Equal(t, 80.0, summary.TopCategories[0].Amount)
	assert.Equal(t, "Compras", summary.TopCategories[1].Category)
	assert.Equal(t, "Transporte", summary.TopCategories[2].Category)
}

func TestComputeSummary_Investments(t *testing.T) {
	current := 1200.0
	investments := []*domain.Investment{
		{AmountApplied: 1000, CurrentValue: &current},
		{AmountApplied: 500},
	}

	summary := ComputeSummary("2024-05", []*domain.Transaction{income(10)}, investments)

	assert.Equal(t, 2, summary.InvestmentCount)
	assert.Equal(t, 1500.0, summary.TotalInvested)
	assert.Equal(t, 1700.0, summary.InvestmentsValue)
	assert.Equal(t, 10.0, summary.Balance)
}

func TestTopCategories_ZeroTotalExpenses(t *testing.T) {
	categories := []domain.CategoryTotal{{Category: "Outros", Amount: 0}}

	top := TopCategories(categories, 0, TopCategoriesLimit)

	require.Len(t, top, 1)
	assert.Equal(t, 0.0, top[0].Percentage)
}

func TestCompareSummaries(t *testing.T) {
	tests := []struct {
		name     string
		current  *domain.MonthSummary
		previous *domain.MonthSummary
		expected domain.Changes
	}{
		{
			name:     "sem mês anterior",
			current:  &domain.MonthSummary{TotalIncome: 1000, TotalExpenses: 500, Balance: 500},
			previous: nil,
			expected: domain.Changes{},
		},
		{
			name:     "variações normais",
			current:  &domain.MonthSummary{TotalIncome: 1500, TotalExpenses: 500, Balance: 1000},
			previous: &domain.MonthSummary{TotalIncome: 1000, TotalExpenses: 400, Balance: 600},
			expected: domain.Changes{IncomeChange: 50, ExpensesChange: 25, BalanceChange: 400},
		},
		{
			name:     "receita anterior zero não divide por zero",
			current:  &domain.MonthSummary{TotalIncome: 1500, TotalExpenses: 100, Balance: 1400},
			previous: &domain.MonthSummary{TotalIncome: 0, TotalExpenses: 0, Balance: 0},
			expected: domain.Changes{IncomeChange: 0, ExpensesChange: 0, BalanceChange: 1400},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareSummaries(tt.current, tt.previous))
		})
	}
}
