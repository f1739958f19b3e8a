// Package alerting mantém os alertas do sistema e as verificações que os geram
package alerting

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const DefaultDaysInAdvance = 3

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type AlertManager interface {
	List(ctx context.Context, restaurantID string, unreadOnly bool) ([]*domain.SystemAlert, error)
	MarkRead(ctx context.Context, restaurantID string, id string) error
	MarkAllRead(ctx context.Context, restaurantID string) (int64, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	CheckStock(ctx context.Context, restaurantID string) (int, error)
	CheckPayments(ctx context.Context, restaurantID string, now time.Time) (int, error)
}

type Service struct {
	alertRepo     repository.SystemAlertRepository
	inventoryRepo repository.InventoryRepository
	paymentRepo   repository.PaymentRepository
	daysInAdvance int
}

func NewService(
	alertRepo repository.SystemAlertRepository,
	inventoryRepo repository.InventoryRepository,
	paymentRepo repository.PaymentRepository,
	daysInAdvance int,
) AlertManager {
	if daysInAdvance <= 0 {
		daysInAdvance = DefaultDaysInAdvance
	}

	return &Service{
		alertRepo:     alertRepo,
		inventoryRepo: inventoryRepo,
		paymentRepo:   paymentRepo,
		daysInAdvance: daysInAdvance,
	}
}

func (s *Service) List(ctx context.Context, restaurantID string, unreadOnly bool) ([]*domain.SystemAlert, error) {
	alerts, err := s.alertRepo.List(ctx, restaurantID, unreadOnly)
	if err != nil {
		return nil, business.Database(err, "erro ao listar alertas")
	}
	return alerts, nil
}

func (s *Service) MarkRead(ctx context.Context, restaurantID string, id string) error {
	if err := s.alertRepo.MarkRead(ctx, restaurantID, id); err != nil {
		return business.Database(err, "alerta "+id)
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, restaurantID string) (int64, error) {
	count, err := s.alertRepo.MarkAllRead(ctx, restaurantID)
	if err != nil {
		return 0, business.Database(err, "erro ao marcar alertas como lidos")
	}
	return count, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.alertRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "alerta "+id)
	}
	return nil
}

// CheckStock cria alertas para itens no estoque mínimo que ainda não têm alerta não lido
func (s *Service) CheckStock(ctx context.Context, restaurantID string) (int, error) {
	items, err := s.inventoryRepo.List(ctx, restaurantID)
	if err != nil {
		return 0, business.Database(err, "erro ao listar estoque")
	}

	created := 0
	for _, item := range items {
		if !item.IsLowStock() {
			continue
		}

		severity := domain.SeverityWarning
		message := fmt.Sprintf("%s está com %.2f %s (mínimo %.2f)", item.Name, item.Quantity, item.Unit, item.MinQuantity)
		if item.Quantity <= 0 {
			severity = domain.SeverityCritical
			message = fmt.Sprintf("%s está sem estoque", item.Name)
		}

		ok, err := Raise(ctx, s.alertRepo, &domain.SystemAlert{
			RestaurantID: restaurantID,
			Type:         domain.AlertLowStock,
			Severity:     severity,
			Title:        "Estoque baixo",
			Message:      message,
			ReferenceID:  &item.ID,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		logrus.WithFields(logrus.Fields{
			"restaurant_id": restaurantID,
			"alerts":        created,
		}).Info("Alertas de estoque baixo criados")
	}

	return created, nil
}

// CheckPayments marca como vencidas as contas pendentes com vencimento passado e
// alerta as que vencem nos próximos dias
func (s *Service) CheckPayments(ctx context.Context, restaurantID string, now time.Time) (int, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	overdue, err := s.paymentRepo.MarkOverdue(ctx, restaurantID, today)
	if err != nil {
		return 0, business.Database(err, "erro ao marcar contas vencidas")
	}
	if overdue > 0 {
		logrus.WithFields(logrus.Fields{
			"restaurant_id": restaurantID,
			"payments":      overdue,
		}).Info("Contas marcadas como vencidas")
	}

	status := domain.PaymentPending
	limit := today.AddDate(0, 0, s.daysInAdvance)
	payments, err := s.paymentRepo.List(ctx, restaurantID, domain.PaymentFilter{Status: &status, DueTo: &limit})
	if err != nil {
		return 0, business.Database(err, "erro ao listar contas")
	}

	created := 0
	for _, payment := range payments {
		days := int(payment.DueDate.Sub(today).Hours() / 24)
		if days < 0 {
			continue
		}

		severity := domain.SeverityInfo
		when := fmt.Sprintf("vence em %d dia(s)", days)
		if days == 0 {
			severity = domain.SeverityWarning
			when = "vence hoje"
		}

		label := "Conta a pagar"
		if payment.Kind == domain.PaymentReceivable {
			label = "Conta a receber"
		}

		ok, err := Raise(ctx, s.alertRepo, &domain.SystemAlert{
			RestaurantID: restaurantID,
			Type:         domain.AlertPaymentDue,
			Severity:     severity,
			Title:        label + " próxima do vencimento",
			Message:      fmt.Sprintf("%s de R$ %.2f %s", payment.Description, payment.Amount, when),
			ReferenceID:  &payment.ID,
		})
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// Raise grava o alerta, a menos que já exista um não lido para a mesma referência
func Raise(ctx context.Context, alertRepo repository.SystemAlertRepository, alert *domain.SystemAlert) (bool, error) {
	if alert.ReferenceID != nil {
		exists, err := alertRepo.ExistsUnread(ctx, alert.RestaurantID, alert.Type, *alert.ReferenceID)
		if err != nil {
			return false, business.Database(err, "erro ao consultar alertas")
		}
		if exists {
			return false, nil
		}
	}

	if alert.ID == "" {
		alert.ID = utils.NewID()
	}
	if err := alertRepo.Create(ctx, alert); err != nil {
		return false, business.Database(err, "erro ao criar alerta")
	}
	return true, nil
}
