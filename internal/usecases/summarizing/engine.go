package summarizing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

// TopCategoriesLimit é o número máximo de categorias no resumo do mês
const TopCategoriesLimit = 5

// ComputeSummary calcula o resumo agregado de um mês. Não faz I/O.
func ComputeSummary(month string, transactions []*domain.Transaction, investments []*domain.Investment) *domain.MonthSummary {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionTypeIncome:
			income = income.Add(decimal.NewFromFloat(t.Amount))
		case domain.TransactionTypeExpense:
			expenses = expenses.Add(decimal.NewFromFloat(t.Amount))
		}
	}

	totalIncome := income.InexactFloat64()
	totalExpenses := expenses.InexactFloat64()
	balance := totalIncome - totalExpenses

	savings := 0.0
	if balance > 0 {
		savings = balance
	}

	invested := decimal.Zero
	marketValue := decimal.Zero
	for _, i := range investments {
		invested = invested.Add(decimal.NewFromFloat(i.AmountApplied))
		marketValue = marketValue.Add(decimal.NewFromFloat(i.MarketValue()))
	}

	return &domain.MonthSummary{
		Month:            month,
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Balance:          balance,
		Savings:          savings,
		TransactionCount: len(transactions),
		InvestmentCount:  len(investments),
		TotalInvested:    invested.InexactFloat64(),
		InvestmentsValue: marketValue.InexactFloat64(),
		TopCategories:    TopCategories(ExpensesByCategory(transactions), totalExpenses, TopCategoriesLimit),
	}
}

// ExpensesByCategory soma as despesas por categoria, na ordem em que cada
// categoria aparece pela primeira vez. Percentage não é preenchido.
func ExpensesByCategory(transactions []*domain.Transaction) []domain.CategoryTotal {
	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsExpense() {
			continue
		}

		current, exists := totals[t.Category]
		if !exists {
			order = append(order, t.Category)
		}
		totals[t.Category] = current.Add(decimal.NewFromFloat(t.Amount))
	}

	result := make([]domain.CategoryTotal, 0, len(order))
	for _, category := range order {
		result = append(result, domain.CategoryTotal{
			Category: category,
			Amount:   totals[category].InexactFloat64(),
		})
	}

	return result
}

// TopCategories ordena por valor decrescente (empates mantêm a ordem de
// descoberta) e devolve até limit categorias com o percentual preenchido.
func TopCategories(categories []domain.CategoryTotal, totalExpenses float64, limit int) []domain.CategoryTotal {
	sorted := make([]domain.CategoryTotal, len(categories))
	copy(sorted, categories)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	for i := range sorted {
		sorted[i].Percentage = utils.PercentOf(sorted[i].Amount, totalExpenses)
	}

	return sorted
}

// CompareSummaries calcula as variações entre dois meses. Com previous nil
// todas as variações são zero.
func CompareSummaries(current, previous *domain.MonthSummary) domain.Changes {
	if current == nil || previous == nil {
		return domain.Changes{}
	}

	return domain.Changes{
		IncomeChange:   utils.PercentChange(current.TotalIncome, previous.TotalIncome),
		ExpensesChange: utils.PercentChange(current.TotalExpenses, previous.TotalExpenses),
		BalanceChange:  current.Balance - previous.Balance,
	}
}
