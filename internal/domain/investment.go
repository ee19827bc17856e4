package domain

type InvestmentType string

const (
	InvestmentTypeCDB      InvestmentType = "CDB"
	InvestmentTypeTesouro  InvestmentType = "TESOURO"
	InvestmentTypeFII      InvestmentType = "FII"
	InvestmentTypeAcoes    InvestmentType = "ACOES"
	InvestmentTypeCripto   InvestmentType = "CRIPTO"
	InvestmentTypePoupanca InvestmentType = "POUPANCA"
	InvestmentTypeOther    InvestmentType = "OTHER"
)

func (i InvestmentType) IsValid() bool {
	switch i {
	case InvestmentTypeCDB, InvestmentTypeTesouro, InvestmentTypeFII, InvestmentTypeAcoes,
		InvestmentTypeCripto, InvestmentTypePoupanca, InvestmentTypeOther:
		return true
	}
	return false
}

type Investment struct {
	ID             string         `json:"id"`
	Date           string         `json:"date"`
	InvestmentType InvestmentType `json:"investmentType"`
	Broker         string         `json:"broker,omitempty"`
	Description    string         `json:"description"`
	AmountApplied  float64        `json:"amountApplied"`
	CurrentValue   *float64       `json:"currentValue,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// MarketValue retorna o valor atual, ou o valor aplicado quando não informado
func (i *Investment) MarketValue() float64 {
	if i.CurrentValue != nil {
		return *i.CurrentValue
	}
	return i.AmountApplied
}

type CreateInvestmentRequest struct {
	Date           string         `json:"date"`
	InvestmentType InvestmentType `json:"investmentType"`
	Broker         string         `json:"broker,omitempty"`
	Description    string         `json:"description"`
	AmountApplied  float64        `json:"amountApplied"`
	CurrentValue   *float64       `json:"currentValue,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

func (r *CreateInvestmentRequest) ToInvestment() *Investment {
	return &Investment{
		Date:           r.Date,
		InvestmentType: r.InvestmentType,
		Broker:         r.Broker,
		Description:    r.Description,
		AmountApplied:  r.AmountApplied,
		CurrentValue:   r.CurrentValue,
		Notes:          r.Notes,
	}
}

type UpdateInvestmentRequest struct {
	Date           *string         `json:"date"`
	InvestmentType *InvestmentType `json:"investmentType"`
	Broker         *string         `json:"broker"`
	Description    *string         `json:"description"`
	AmountApplied  *float64        `json:"amountApplied"`
	CurrentValue   *float64        `json:"currentValue"`
	Notes          *string         `json:"notes"`
}

func (u *UpdateInvestmentRequest) Apply(i *Investment) {
	if u == nil || i == nil {
		return
	}
	if u.Date != nil {
		i.Date = *u.Date
	}
	if u.InvestmentType != nil {
		i.InvestmentType = *u.InvestmentType
	}
	if u.Broker != nil {
		i.Broker = *u.Broker
	}
	if u.Description != nil {
		i.Description = *u.Description
	}
	if u.AmountApplied != nil {
		i.AmountApplied = *u.AmountApplied
	}
	if u.CurrentValue != nil {
		value := *u.CurrentValue
		i.CurrentValue = &value
	}
	if u.Notes != nil {
		i.Notes = *u.Notes
	}
}
