package insighting

import (
	"fmt"
	"math"
	"strings"

	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/internal/usecases/summarizing"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

const (
	expenseIncreaseThreshold = 10.0 // Percentual sobre o mês anterior
	deliveryShareThreshold   = 10.0 // Percentual das despesas do mês
	categoryChangeThreshold  = 20.0 // Percentual por categoria
	savingsTipRate           = 0.1
)

var (
	deliveryKeywords = []string{"ifood", "rappi"}
	fixedCategories  = []string{"moradia", "contas", "assinaturas", "saúde"}
)

// Generate aplica as regras, em ordem, sobre as transações do mês.
// previousTransactions só é usado quando comparison.Previous existe.
func Generate(transactions []*domain.Transaction, comparison *domain.Comparison, previousTransactions []*domain.Transaction) []*domain.Insight {
	insights := make([]*domain.Insight, 0)
	expenses := onlyExpenses(transactions)
	current := comparison.Current

	if insight := expenseIncrease(comparison); insight != nil {
		insights = append(insights, insight)
	}

	categoryTotals := summarizing.ExpensesByCategory(expenses)
	top := summarizing.TopCategories(categoryTotals, current.TotalExpenses, 1)

	if len(top) > 0 {
		insights = append(insights, &domain.Insight{
			ID:          "top-category",
			Type:        domain.InsightTypeInfo,
			Title:       "Maior categoria de gastos",
			Description: fmt.Sprintf("%s representa %.1f%% dos seus gastos este mês.", top[0].Category, top[0].Percentage),
			Amount:      amount(top[0].Amount),
			Category:    top[0].Category,
		})
	}

	if insight := recurringExpenses(expenses); insight != nil {
		insights = append(insights, insight)
	}

	if insight := deliveryHigh(expenses, current.TotalExpenses); insight != nil {
		insights = append(insights, insight)
	}

	if insight := balanceSign(current.Balance); insight != nil {
		insights = append(insights, insight)
	}

	if len(top) > 0 {
		potential := top[0].Amount * savingsTipRate
		insights = append(insights, &domain.Insight{
			ID:          "savings-tip",
			Type:        domain.InsightTypeTip,
			Title:       "Dica de economia",
			Description: fmt.Sprintf("Se você reduzir 10%% em %s, pode economizar R$ %.2f.", top[0].Category, potential),
			Amount:      amount(potential),
			Category:    top[0].Category,
		})
	}

	if insight := creditUsage(expenses, current.TotalExpenses); insight != nil {
		insights = append(insights, insight)
	}

	if comparison.Previous != nil {
		previousTotals := summarizing.ExpensesByCategory(onlyExpenses(previousTransactions))
		insights = append(insights, categoryChanges(categoryTotals, previousTotals)...)
	}

	if insight := variableHigh(expenses); insight != nil {
		insights = append(insights, insight)
	}

	return insights
}

func expenseIncrease(comparison *domain.Comparison) *domain.Insight {
	if comparison.Previous == nil || comparison.Changes.ExpensesChange <= expenseIncreaseThreshold {
		return nil
	}

	return &domain.Insight{
		ID:          "expense-increase",
		Type:        domain.InsightTypeWarning,
		Title:       "Gastos aumentaram significativamente",
		Description: fmt.Sprintf("Seus gastos aumentaram %.1f%% em relação ao mês anterior.", comparison.Changes.ExpensesChange),
		Amount:      amount(comparison.Current.TotalExpenses - comparison.Previous.TotalExpenses),
	}
}

func recurringExpenses(expenses []*domain.Transaction) *domain.Insight {
	count := 0
	total := 0.0
	for _, t := range expenses {
		if t.IsRecurring {
			count++
			total += t.Amount
		}
	}

	if count == 0 {
		return nil
	}

	return &domain.Insight{
		ID:          "recurring-expenses",
		Type:        domain.InsightTypeInfo,
		Title:       "Gastos recorrentes",
		Description: fmt.Sprintf("Você tem %d gastos recorrentes totalizando R$ %.2f.", count, total),
		Amount:      amount(total),
	}
}

func deliveryHigh(expenses []*domain.Transaction, totalExpenses float64) *domain.Insight {
	found := false
	total := 0.0
	for _, t := range expenses {
		if isDelivery(t) {
			found = true
			total += t.Amount
		}
	}

	if !found {
		return nil
	}

	share := utils.PercentOf(total, totalExpenses)
	if share <= deliveryShareThreshold {
		return nil
	}

	return &domain.Insight{
		ID:          "delivery-high",
		Type:        domain.InsightTypeWarning,
		Title:       "Gastos com delivery acima da média",
		Description: fmt.Sprintf("Você gastou R$ %.2f com delivery (%.1f%% dos gastos).", total, share),
		Amount:      amount(total),
		Category:    "Delivery",
	}
}

func isDelivery(t *domain.Transaction) bool {
	category := strings.ToLower(t.Category)
	description := strings.ToLower(t.Description)

	if strings.Contains(category, "delivery") || strings.Contains(description, "delivery") {
		return true
	}

	for _, keyword := range deliveryKeywords {
		if strings.Contains(description, keyword) {
			return true
		}
	}

	return false
}

func balanceSign(balance float64) *domain.Insight {
	switch {
	case balance > 0:
		return &domain.Insight{
			ID:          "savings-success",
			Type:        domain.InsightTypeSuccess,
			Title:       "Parabéns! Você economizou este mês",
			Description: fmt.Sprintf("Seu saldo positivo é de R$ %.2f.", balance),
			Amount:      amount(balance),
		}
	case balance < 0:
		return &domain.Insight{
			ID:          "negative-balance",
			Type:        domain.InsightTypeWarning,
			Title:       "Atenção: Saldo negativo",
			Description: fmt.Sprintf("Você gastou R$ %.2f a mais do que ganhou.", math.Abs(balance)),
			Amount:      amount(balance),
		}
	}

	return nil
}

func creditUsage(expenses []*domain.Transaction, totalExpenses float64) *domain.Insight {
	found := false
	total := 0.0
	for _, t := range expenses {
		if t.PaymentMethod == domain.PaymentMethodCredit {
			found = true
			total += t.Amount
		}
	}

	if !found {
		return nil
	}

	return &domain.Insight{
		ID:          "credit-usage",
		Type:        domain.InsightTypeInfo,
		Title:       "Uso de cartão de crédito",
		Description: fmt.Sprintf("%.1f%% dos seus gastos foram no crédito (R$ %.2f).", utils.PercentOf(total, totalExpenses), total),
		Amount:      amount(total),
	}
}

// categoryChanges compara cada categoria do mês atual com o mês anterior.
// Categorias sem gasto no mês anterior são ignoradas.
func categoryChanges(current, previous []domain.CategoryTotal) []*domain.Insight {
	previousByCategory := make(map[string]float64, len(previous))
	for _, c := range previous {
		previousByCategory[c.Category] = c.Amount
	}

	insights := make([]*domain.Insight, 0)
	for _, c := range current {
		previousAmount := previousByCategory[c.Category]
		if previousAmount <= 0 {
			continue
		}

		change := utils.PercentChange(c.Amount, previousAmount)
		if math.Abs(change) <= categoryChangeThreshold {
			continue
		}

		insightType, direction, verb := domain.InsightTypeSuccess, "Redução", "diminuíram"
		if change > 0 {
			insightType, direction, verb = domain.InsightTypeWarning, "Aumento", "aumentaram"
		}

		insights = append(insights, &domain.Insight{
			ID:          "category-change-" + c.Category,
			Type:        insightType,
			Title:       fmt.Sprintf("%s: %s significativo", c.Category, direction),
			Description: fmt.Sprintf("Gastos em %s %s %.1f%% vs mês anterior.", c.Category, verb, math.Abs(change)),
			Amount:      amount(c.Amount - previousAmount),
			Category:    c.Category,
		})
	}

	return insights
}

func variableHigh(expenses []*domain.Transaction) *domain.Insight {
	fixed := 0.0
	variable := 0.0
	for _, t := range expenses {
		if isFixed(t.Category) {
			fixed += t.Amount
		} else {
			variable += t.Amount
		}
	}

	if variable <= fixed {
		return nil
	}

	return &domain.Insight{
		ID:          "variable-high",
		Type:        domain.InsightTypeInfo,
		Title:       "Gastos variáveis predominam",
		Description: fmt.Sprintf("Seus gastos variáveis (R$ %.2f) são maiores que os fixos (R$ %.2f).", variable, fixed),
	}
}

func isFixed(category string) bool {
	category = strings.ToLower(category)
	for _, fixedCategory := range fixedCategories {
		if strings.Contains(category, fixedCategory) {
			return true
		}
	}
	return false
}

func onlyExpenses(transactions []*domain.Transaction) []*domain.Transaction {
	expenses := make([]*domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.IsExpense() {
			expenses = append(expenses, t)
		}
	}
	return expenses
}

func amount(value float64) *float64 {
	return &value
}
