package domain

// CategoryTotal é o total gasto em uma categoria e sua fatia das despesas do mês
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// MonthSummary é a visão agregada de um mês. Não é persistida no arquivo do mês.
type MonthSummary struct {
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
}

type Changes struct {
	IncomeChange   float64 `json:"incomeChange"`   // Percentual
	ExpensesChange float64 `json:"expensesChange"` // Percentual
	BalanceChange  float64 `json:"balanceChange"`  // Diferença absoluta
}

// Comparison junta o resumo do mês com o do mês anterior, quando existir
type Comparison struct {
	Current  *MonthSummary `json:"current"`
	Previous *MonthSummary `json:"previous"`
	Changes  Changes       `json:"changes"`
}

// MonthBrief é o resumo curto exibido na listagem de meses
type MonthBrief struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

type MonthInfo struct {
	Month     string      `json:"month"`
	FileName  string      `json:"fileName"`
	IsCurrent bool        `json:"isCurrent"`
	Summary   *MonthBrief `json:"summary,omitempty"`
}
