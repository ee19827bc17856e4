package domain

type InsightType string

const (
	InsightTypeWarning InsightType = "warning"
	InsightTypeInfo    InsightType = "info"
	InsightTypeSuccess InsightType = "success"
	InsightTypeTip     InsightType = "tip"
)

// Insight é uma observação gerada por regra sobre os dados de um mês
type Insight struct {
	ID          string      `json:"id"`
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Amount      *float64    `json:"amount,omitempty"`
	Category    string      `json:"category,omitempty"`
}
