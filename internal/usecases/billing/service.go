// Package billing gerencia as contas a pagar e a receber
package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const eventSource = "payments"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type PaymentManager interface {
	Create(ctx context.Context, restaurantID string, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, restaurantID string, id string, payment *domain.Payment) (*domain.Payment, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.Payment, error)
	List(ctx context.Context, restaurantID string, filter domain.PaymentFilter) ([]*domain.Payment, error)
	Pay(ctx context.Context, restaurantID string, id string, request domain.PayRequest) (*domain.Payment, error)
	Summary(ctx context.Context, restaurantID string) (*domain.PaymentSummary, error)
}

type Service struct {
	paymentRepo repository.PaymentRepository
	publisher   events.Publisher
}

func NewService(paymentRepo repository.PaymentRepository, publisher events.Publisher) PaymentManager {
	return &Service{
		paymentRepo: paymentRepo,
		publisher:   publisher,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, payment *domain.Payment) (*domain.Payment, error) {
	payment.RestaurantID = restaurantID
	if payment.ID == "" {
		payment.ID = utils.NewID()
	}
	payment.Status = domain.PaymentPending
	payment.PaidAt = nil
	payment.CashFlowEntryID = nil

	if err := validate(payment); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, business.Database(err, "erro ao criar conta")
	}

	return payment, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, payment *domain.Payment) (*domain.Payment, error) {
	current, err := s.paymentRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar conta")
	}
	if current == nil {
		return nil, business.NotFound("conta " + id)
	}
	if current.Status == domain.PaymentPaid {
		return nil, business.Conflict("conta já quitada não pode ser alterada")
	}

	payment.ID = id
	payment.RestaurantID = restaurantID
	payment.CreatedAt = current.CreatedAt
	payment.PaidAt = nil
	payment.CashFlowEntryID = nil
	switch payment.Status {
	case "", domain.PaymentPaid:
		payment.Status = current.Status
	}

	if err := validate(payment); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, business.Database(err, "erro ao atualizar conta")
	}

	return payment, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.paymentRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "conta "+id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar conta")
	}
	if payment == nil {
		return nil, business.NotFound("conta " + id)
	}
	return payment, nil
}

func (s *Service) List(ctx context.Context, restaurantID string, filter domain.PaymentFilter) ([]*domain.Payment, error) {
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, business.Invalid("tipo de conta inválido")
	}

	payments, err := s.paymentRepo.List(ctx, restaurantID, filter)
	if err != nil {
		return nil, business.Database(err, "erro ao listar contas")
	}
	return payments, nil
}

// Pay quita a conta gerando o lançamento correspondente no fluxo de caixa.
// Contas a receber viram receita e contas a pagar viram despesa.
func (s *Service) Pay(ctx context.Context, restaurantID string, id string, request domain.PayRequest) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar conta")
	}
	if payment == nil {
		return nil, business.NotFound("conta " + id)
	}
	if payment.Status == domain.PaymentPaid || payment.Status == domain.PaymentCanceled {
		return nil, business.Conflict("conta já quitada ou cancelada")
	}

	paidAt := time.Now()
	if request.Date != nil {
		paidAt = *request.Date
	}

	entry := NewSettlementEntry(payment, paidAt, request.PaymentMethod)

	payment.Status = domain.PaymentPaid
	payment.PaidAt = &paidAt
	payment.CashFlowEntryID = &entry.ID

	if err := s.paymentRepo.MarkPaid(ctx, payment, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, business.Conflict("conta já quitada ou cancelada")
		}
		return nil, business.Database(err, "erro ao quitar conta")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"payment_id":    payment.ID,
		"entry_id":      entry.ID,
		"amount":        payment.Amount,
	}).Info("Conta quitada")

	s.publisher.Publish(ctx, events.NewChange(events.FinancialDataUpdated, restaurantID, eventSource, payment.ID, events.ActionUpdated))
	return payment, nil
}

func (s *Service) Summary(ctx context.Context, restaurantID string) (*domain.PaymentSummary, error) {
	payments, err := s.paymentRepo.List(ctx, restaurantID, domain.PaymentFilter{})
	if err != nil {
		return nil, business.Database(err, "erro ao listar contas")
	}
	return Summarize(payments), nil
}

// NewSettlementEntry monta o lançamento de fluxo de caixa da quitação
func NewSettlementEntry(payment *domain.Payment, paidAt time.Time, method string) *domain.CashFlowEntry {
	entryType := domain.CashFlowExpense
	prefix := "Pagamento: "
	if payment.Kind == domain.PaymentReceivable {
		entryType = domain.CashFlowIncome
		prefix = "Recebimento: "
	}

	return &domain.CashFlowEntry{
		ID:            utils.NewID(),
		RestaurantID:  payment.RestaurantID,
		Date:          paidAt,
		Description:   prefix + payment.Description,
		Amount:        payment.Amount,
		Type:          entryType,
		Category:      payment.Category,
		PaymentMethod: method,
		Status:        domain.CashFlowCompleted,
	}
}

// Summarize totaliza as contas por status e tipo
func Summarize(payments []*domain.Payment) *domain.PaymentSummary {
	summary := &domain.PaymentSummary{}
	for _, payment := range payments {
		receivable := payment.Kind == domain.PaymentReceivable
		switch payment.Status {
		case domain.PaymentPending:
			if receivable {
				summary.PendingReceivable += payment.Amount
			} else {
				summary.PendingPayable += payment.Amount
			}
		case domain.PaymentOverdue:
			summary.OverdueCount++
			if receivable {
				summary.OverdueReceivable += payment.Amount
			} else {
				summary.OverduePayable += payment.Amount
			}
		case domain.PaymentPaid:
			if receivable {
				summary.PaidReceivable += payment.Amount
			} else {
				summary.PaidPayable += payment.Amount
			}
		}
	}

	summary.PendingPayable = utils.RoundWithTwoDecimalPlace(summary.PendingPayable)
	summary.PendingReceivable = utils.RoundWithTwoDecimalPlace(summary.PendingReceivable)
	summary.OverduePayable = utils.RoundWithTwoDecimalPlace(summary.OverduePayable)
	summary.OverdueReceivable = utils.RoundWithTwoDecimalPlace(summary.OverdueReceivable)
	summary.PaidPayable = utils.RoundWithTwoDecimalPlace(summary.PaidPayable)
	summary.PaidReceivable = utils.RoundWithTwoDecimalPlace(summary.PaidReceivable)
	return summary
}

func validate(payment *domain.Payment) error {
	if strings.TrimSpace(payment.Description) == "" {
		return business.Missing("descrição é obrigatória")
	}
	if payment.Amount <= 0 {
		return business.Invalid("valor deve ser maior que zero")
	}
	if !payment.Kind.IsValid() {
		return business.Invalid("tipo deve ser payable ou receivable")
	}
	if payment.DueDate.IsZero() {
		return business.Missing("vencimento é obrigatório")
	}
	switch payment.Status {
	case domain.PaymentPending, domain.PaymentOverdue, domain.PaymentCanceled:
		return nil
	}
	return business.Invalid("status de conta inválido")
}
