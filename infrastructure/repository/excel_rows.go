package repository

import (
	"strconv"
	"strings"

	"github.com/vfg2006/econoapp-api/internal/domain"
)

const (
	sheetTransactions = "Transactions"
	sheetInvestments  = "Investments"
	sheetSettings     = "Settings"
	sheetCategories   = "Categories"
)

type column struct {
	header string
	width  float64
}

// sheetLayout define o cabeçalho (linha 1) e a largura das colunas de uma aba
type sheetLayout struct {
	name    string
	columns []column
}

var (
	transactionsLayout = sheetLayout{
		name: sheetTransactions,
		columns: []column{
			{"id", 40}, {"date", 12}, {"type", 10}, {"description", 30}, {"category", 20},
			{"subcategory", 20}, {"amount", 15}, {"paymentMethod", 15}, {"isRecurring", 12}, {"tags", 30},
		},
	}

	investmentsLayout = sheetLayout{
		name: sheetInvestments,
		columns: []column{
			{"id", 40}, {"date", 12}, {"investmentType", 15}, {"broker", 20}, {"description", 30},
			{"amountApplied", 15}, {"currentValue", 15}, {"notes", 40},
		},
	}

	settingsLayout = sheetLayout{
		name:    sheetSettings,
		columns: []column{{"key", 30}, {"value", 50}},
	}

	categoriesLayout = sheetLayout{
		name:    sheetCategories,
		columns: []column{{"category", 30}, {"type", 15}},
	}

	monthLayouts = []sheetLayout{transactionsLayout, investmentsLayout, settingsLayout, categoriesLayout}
)

func (l sheetLayout) header() []interface{} {
	header := make([]interface{}, len(l.columns))
	for i, c := range l.columns {
		header[i] = c.header
	}
	return header
}

// cell retorna a coluna i da linha, ou vazio quando a linha é mais curta
func cell(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// textCell retorna a coluna i sem aparar espaços, para campos de texto livre
func textCell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseAmount(value string) float64 {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return amount
}

func parseOptionalAmount(value string) *float64 {
	if value == "" {
		return nil
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &amount
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1":
		return true
	}
	return false
}

func optionalAmountCell(value *float64) interface{} {
	if value == nil {
		return ""
	}
	return *value
}

func transactionToRow(t *domain.Transaction) []interface{} {
	return []interface{}{
		t.ID,
		t.Date,
		string(t.Type),
		t.Description,
		t.Category,
		t.Subcategory,
		t.Amount,
		string(t.PaymentMethod),
		strconv.FormatBool(t.IsRecurring),
		t.Tags,
	}
}

func rowToTransaction(row []string) *domain.Transaction {
	return &domain.Transaction{
		ID:            cell(row, 0),
		Date:          cell(row, 1),
		Type:          domain.TransactionType(cell(row, 2)),
		Description:   textCell(row, 3),
		Category:      textCell(row, 4),
		Subcategory:   textCell(row, 5),
		Amount:        parseAmount(cell(row, 6)),
		PaymentMethod: domain.PaymentMethod(cell(row, 7)),
		IsRecurring:   parseBool(cell(row, 8)),
		Tags:          textCell(row, 9),
	}
}

func investmentToRow(i *domain.Investment) []interface{} {
	return []interface{}{
		i.ID,
		i.Date,
		string(i.InvestmentType),
		i.Broker,
		i.Description,
		i.AmountApplied,
		optionalAmountCell(i.CurrentValue),
		i.Notes,
	}
}

func rowToInvestment(row []string) *domain.Investment {
	return &domain.Investment{
		ID:             cell(row, 0),
		Date:           cell(row, 1),
		InvestmentType: domain.InvestmentType(cell(row, 2)),
		Broker:         textCell(row, 3),
		Description:    textCell(row, 4),
		AmountApplied:  parseAmount(cell(row, 5)),
		CurrentValue:   parseOptionalAmount(cell(row, 6)),
		Notes:          textCell(row, 7),
	}
}

// settingsRows gera as linhas chave/valor na ordem do template
func settingsRows(s *domain.Settings) [][]interface{} {
	limits := s.CategoryLimits
	if limits == "" {
		limits = domain.DefaultCategoryLimits
	}

	return [][]interface{}{
		{domain.SettingMonthlyIncomeGoal, optionalAmountCell(s.MonthlyIncomeGoal)},
		{domain.SettingMonthlySavingsGoal, optionalAmountCell(s.MonthlySavingsGoal)},
		{domain.SettingCategoryLimits, limits},
	}
}

func rowsToSettings(rows [][]string) *domain.Settings {
	settings := &domain.Settings{CategoryLimits: domain.DefaultCategoryLimits}

	for _, row := range rows {
		value := cell(row, 1)
		switch cell(row, 0) {
		case domain.SettingMonthlyIncomeGoal:
			settings.MonthlyIncomeGoal = parseOptionalAmount(value)
		case domain.SettingMonthlySavingsGoal:
			settings.MonthlySavingsGoal = parseOptionalAmount(value)
		case domain.SettingCategoryLimits:
			if value != "" {
				settings.CategoryLimits = value
			}
		}
	}

	return settings
}

func rowToCategory(row []string) *domain.Category {
	return &domain.Category{
		Category: cell(row, 0),
		Type:     domain.TransactionType(cell(row, 1)),
	}
}
