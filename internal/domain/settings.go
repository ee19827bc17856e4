package domain

const (
	SettingMonthlyIncomeGoal  = "monthlyIncomeGoal"
	SettingMonthlySavingsGoal = "monthlySavingsGoal"
	SettingCategoryLimits     = "categoryLimits"

	// DefaultCategoryLimits é o valor gravado pelo template de um mês novo
	DefaultCategoryLimits = "{}"
)

// Settings guarda as metas do mês. CategoryLimits é um mapa serializado em JSON.
type Settings struct {
	MonthlyIncomeGoal  *float64 `json:"monthlyIncomeGoal,omitempty"`
	MonthlySavingsGoal *float64 `json:"monthlySavingsGoal,omitempty"`
	CategoryLimits     string   `json:"categoryLimits,omitempty"`
}

type UpdateSettingsRequest struct {
	MonthlyIncomeGoal  *float64 `json:"monthlyIncomeGoal"`
	MonthlySavingsGoal *float64 `json:"monthlySavingsGoal"`
	CategoryLimits     *string  `json:"categoryLimits"`
}

func (u *UpdateSettingsRequest) Apply(s *Settings) {
	if u == nil || s == nil {
		return
	}
	if u.MonthlyIncomeGoal != nil {
		goal := *u.MonthlyIncomeGoal
		s.MonthlyIncomeGoal = &goal
	}
	if u.MonthlySavingsGoal != nil {
		goal := *u.MonthlySavingsGoal
		s.MonthlySavingsGoal = &goal
	}
	if u.CategoryLimits != nil {
		s.CategoryLimits = *u.CategoryLimits
	}
}

type Category struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
}

// DefaultCategories é a lista de categorias semeada em todo mês novo
var DefaultCategories = []Category{
	{Category: "Alimentação", Type: TransactionTypeExpense},
	{Category: "Transporte", Type: TransactionTypeExpense},
	{Category: "Moradia", Type: TransactionTypeExpense},
	{Category: "Saúde", Type: TransactionTypeExpense},
	{Category: "Educação", Type: TransactionTypeExpense},
	{Category: "Lazer", Type: TransactionTypeExpense},
	{Category: "Assinaturas", Type: TransactionTypeExpense},
	{Category: "Delivery", Type: TransactionTypeExpense},
	{Category: "Compras", Type: TransactionTypeExpense},
	{Category: "Contas", Type: TransactionTypeExpense},
	{Category: "Outros", Type: TransactionTypeExpense},
	{Category: "Salário", Type: TransactionTypeIncome},
	{Category: "Freelance", Type: TransactionTypeIncome},
	{Category: "Investimentos", Type: TransactionTypeIncome},
	{Category: "Outros", Type: TransactionTypeIncome},
}
