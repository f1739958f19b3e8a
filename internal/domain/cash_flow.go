package domain

import "time"

type CashFlowType string

const (
	CashFlowIncome  CashFlowType = "income"
	CashFlowExpense CashFlowType = "expense"
)

type CashFlowStatus string

const (
	CashFlowCompleted CashFlowStatus = "completed"
	CashFlowPending   CashFlowStatus = "pending"
	CashFlowCanceled  CashFlowStatus = "canceled"
)

// Formas de pagamento usadas pelo cálculo de taxas de cartão
const (
	PaymentMethodCash        = "dinheiro"
	PaymentMethodPix         = "pix"
	PaymentMethodCreditCard  = "cartao_credito"
	PaymentMethodDebitCard   = "cartao_debito"
	PaymentMethodBankSlip    = "boleto"
	PaymentMethodTransfer    = "transferencia"
	PaymentMethodMealVoucher = "vale_refeicao"
)

type CashFlowEntry struct {
	ID            string         `json:"id"`
	RestaurantID  string         `json:"restaurant_id"`
	Date          time.Time      `json:"date"`
	Description   string         `json:"description"`
	Amount        float64        `json:"amount"`
	Type          CashFlowType   `json:"type"`
	Category      string         `json:"category"`
	PaymentMethod string         `json:"payment_method"`
	Status        CashFlowStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CashFlowFilter struct {
	Period        *Period
	Type          *CashFlowType
	Category      *string
	Status        *CashFlowStatus
	PaymentMethod *string
	Search        *string
	Limit         uint64
}

type CategoryTotal struct {
	Category string       `json:"category"`
	Type     CashFlowType `json:"type"`
	Total    float64      `json:"total"`
	Count    int          `json:"count"`
}

type CashFlowSummary struct {
	Period         Period          `json:"period"`
	TotalIncome    float64         `json:"total_income"`
	TotalExpense   float64         `json:"total_expense"`
	Balance        float64         `json:"balance"`
	PendingIncome  float64         `json:"pending_income"`
	PendingExpense float64         `json:"pending_expense"`
	EntriesCount   int             `json:"entries_count"`
	ProfitMargin   float64         `json:"profit_margin"`
	Categories     []CategoryTotal `json:"categories"`
}

func (t CashFlowType) IsValid() bool {
	return t == CashFlowIncome || t == CashFlowExpense
}

func (s CashFlowStatus) IsValid() bool {
	return s == CashFlowCompleted || s == CashFlowPending || s == CashFlowCanceled
}

// IsCardPayment indica se a forma de pagamento sofre taxa de cartão
func IsCardPayment(method string) bool {
	return method == PaymentMethodCreditCard || method == PaymentMethodDebitCard
}
