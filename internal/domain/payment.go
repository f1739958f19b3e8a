package domain

import "time"

type PaymentKind string

const (
	PaymentPayable    PaymentKind = "payable"
	PaymentReceivable PaymentKind = "receivable"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentOverdue  PaymentStatus = "overdue"
	PaymentCanceled PaymentStatus = "canceled"
)

// Payment representa uma conta a pagar ou a receber
type Payment struct {
	ID              string        `json:"id"`
	RestaurantID    string        `json:"restaurant_id"`
	Description     string        `json:"description"`
	Kind            PaymentKind   `json:"kind"`
	Amount          float64       `json:"amount"`
	Category        string        `json:"category"`
	Counterparty    *string       `json:"counterparty"`
	DueDate         time.Time     `json:"due_date"`
	PaidAt          *time.Time    `json:"paid_at"`
	Status          PaymentStatus `json:"status"`
	CashFlowEntryID *string       `json:"cash_flow_entry_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type PaymentFilter struct {
	Kind   *PaymentKind
	Status *PaymentStatus
	DueTo  *time.Time
}

type PayRequest struct {
	Date          *time.Time `json:"date"`
	PaymentMethod string     `json:"payment_method"`
}

type PaymentSummary struct {
	PendingPayable    float64 `json:"pending_payable"`
	PendingReceivable float64 `json:"pending_receivable"`
	OverduePayable    float64 `json:"overdue_payable"`
	OverdueReceivable float64 `json:"overdue_receivable"`
	PaidPayable       float64 `json:"paid_payable"`
	PaidReceivable    float64 `json:"paid_receivable"`
	OverdueCount      int     `json:"overdue_count"`
}

func (k PaymentKind) IsValid() bool {
	return k == PaymentPayable || k == PaymentReceivable
}
