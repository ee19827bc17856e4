package domain

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodDebit    PaymentMethod = "DEBIT"
	PaymentMethodCredit   PaymentMethod = "CREDIT"
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodPix, PaymentMethodDebit, PaymentMethodCredit,
		PaymentMethodCash, PaymentMethodTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Transaction representa uma entrada ou saída registrada em um mês
type Transaction struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // Formato yyyy-mm-dd
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Amount        float64         `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	IsRecurring   bool            `json:"isRecurring"`
	Tags          string          `json:"tags,omitempty"`
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

type CreateTransactionRequest struct {
	Date          string          `json:"date"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Amount        float64         `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	IsRecurring   bool            `json:"isRecurring"`
	Tags          string          `json:"tags,omitempty"`
}

// ToTransaction monta a transação sem ID; o ID é atribuído pelo repositório
func (r *CreateTransactionRequest) ToTransaction() *Transaction {
	return &Transaction{
		Date:          r.Date,
		Type:          r.Type,
		Description:   r.Description,
		Category:      r.Category,
		Subcategory:   r.Subcategory,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		IsRecurring:   r.IsRecurring,
		Tags:          r.Tags,
	}
}

// UpdateTransactionRequest contém apenas os campos informados pelo cliente
type UpdateTransactionRequest struct {
	Date          *string          `json:"date"`
	Type          *TransactionType `json:"type"`
	Description   *string          `json:"description"`
	Category      *string          `json:"category"`
	Subcategory   *string          `json:"subcategory"`
	Amount        *float64         `json:"amount"`
	PaymentMethod *PaymentMethod   `json:"paymentMethod"`
	IsRecurring   *bool            `json:"isRecurring"`
	Tags          *string          `json:"tags"`
}

// Apply aplica a atualização parcial sobre a transação. O ID nunca muda.
func (u *UpdateTransactionRequest) Apply(t *Transaction) {
	if u == nil || t == nil {
		return
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Subcategory != nil {
		t.Subcategory = *u.Subcategory
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.PaymentMethod != nil {
		t.PaymentMethod = *u.PaymentMethod
	}
	if u.IsRecurring != nil {
		t.IsRecurring = *u.IsRecurring
	}
	if u.Tags != nil {
		t.Tags = *u.Tags
	}
}
