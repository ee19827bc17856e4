package recording

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/econoapp-api/internal/domain"
	"github.com/vfg2006/econoapp-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	msgRequired      = "campo obrigatório"
	msgInvalidDate   = "data deve estar no formato yyyy-mm-dd"
	msgPositive      = "deve ser maior que zero"
	msgNonNegative   = "não pode ser negativo"
	msgInvalidOption = "valor inválido"
	msgInvalidJSON   = "deve ser um objeto JSON"
	msgMarkup        = "não pode conter marcação HTML"
	msgControlChars  = "contém caracteres de controle"
)

func validateDate(v *ValidationError, field, date string) {
	if strings.TrimSpace(date) == "" {
		v.add(field, msgRequired)
		return
	}
	if _, err := utils.ParseDate(date); err != nil {
		v.add(field, msgInvalidDate)
	}
}

func validateNotEmpty(v *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, msgRequired)
	}
}

func validatePositive(v *ValidationError, field string, value float64) {
	if value <= 0 {
		v.add(field, msgPositive)
	}
}

func validateCreateTransaction(req *domain.CreateTransactionRequest) error {
	v := &ValidationError{}

	validateDate(v, "date", req.Date)
	if !req.Type.IsValid() {
		v.add("type", msgInvalidOption)
	}
	validateNotEmpty(v, "description", req.Description)
	validateText(v, "description", req.Description)
	validateNotEmpty(v, "category", req.Category)
	validateText(v, "category", req.Category)
	validateText(v, "subcategory", req.Subcategory)
	validatePositive(v, "amount", req.Amount)
	if !req.PaymentMethod.IsValid() {
		v.add("paymentMethod", msgInvalidOption)
	}
	validateText(v, "tags", req.Tags)

	return v.errOrNil()
}

// validateUpdateTransaction valida apenas os campos informados
func validateUpdateTransaction(req *domain.UpdateTransactionRequest) error {
	v := &ValidationError{}

	if req.Date != nil {
		validateDate(v, "date", *req.Date)
	}
	if req.Type != nil && !req.Type.IsValid() {
		v.add("type", msgInvalidOption)
	}
	if req.Description != nil {
		validateNotEmpty(v, "description", *req.Description)
		validateText(v, "description", *req.Description)
	}
	if req.Category != nil {
		validateNotEmpty(v, "category", *req.Category)
		validateText(v, "category", *req.Category)
	}
	validateOptionalText(v, "subcategory", req.Subcategory)
	if req.Amount != nil {
		validatePositive(v, "amount", *req.Amount)
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.IsValid() {
		v.add("paymentMethod", msgInvalidOption)
	}
	validateOptionalText(v, "tags", req.Tags)

	return v.errOrNil()
}

func validateCreateInvestment(req *domain.CreateInvestmentRequest) error {
	v := &ValidationError{}

	validateDate(v, "date", req.Date)
	if !req.InvestmentType.IsValid() {
		v.add("investmentType", msgInvalidOption)
	}
	validateText(v, "broker", req.Broker)
	validateNotEmpty(v, "description", req.Description)
	validateText(v, "description", req.Description)
	validatePositive(v, "amountApplied", req.AmountApplied)
	validateText(v, "notes", req.Notes)

	return v.errOrNil()
}

func validateUpdateInvestment(req *domain.UpdateInvestmentRequest) error {
	v := &ValidationError{}

	if req.Date != nil {
		validateDate(v, "date", *req.Date)
	}
	if req.InvestmentType != nil && !req.InvestmentType.IsValid() {
		v.add("investmentType", msgInvalidOption)
	}
	validateOptionalText(v, "broker", req.Broker)
	if req.Description != nil {
		validateNotEmpty(v, "description", *req.Description)
		validateText(v, "description", *req.Description)
	}
	if req.AmountApplied != nil {
		validatePositive(v, "amountApplied", *req.AmountApplied)
	}
	validateOptionalText(v, "notes", req.Notes)

	return v.errOrNil()
}

func validateUpdateSettings(req *domain.UpdateSettingsRequest) error {
	v := &ValidationError{}

	if req.MonthlyIncomeGoal != nil && *req.MonthlyIncomeGoal < 0 {
		v.add("monthlyIncomeGoal", msgNonNegative)
	}
	if req.MonthlySavingsGoal != nil && *req.MonthlySavingsGoal < 0 {
		v.add("monthlySavingsGoal", msgNonNegative)
	}
	if req.CategoryLimits != nil && *req.CategoryLimits != "" {
		var limits map[string]any
		if err := json.Unmarshal([]byte(*req.CategoryLimits), &limits); err != nil || limits == nil {
			v.add("categoryLimits", msgInvalidJSON)
		}
	}

	return v.errOrNil()
}
