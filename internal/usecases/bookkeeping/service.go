// Package bookkeeping gerencia os lançamentos do fluxo de caixa
package bookkeeping

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const eventSource = "cash_flow"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type CashFlowManager interface {
	Create(ctx context.Context, restaurantID string, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error)
	Update(ctx context.Context, restaurantID string, id string, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.CashFlowEntry, error)
	List(ctx context.Context, restaurantID string, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error)
	Summary(ctx context.Context, restaurantID string, period domain.Period) (*domain.CashFlowSummary, error)
}

type Service struct {
	cashFlowRepo repository.CashFlowRepository
	publisher    events.Publisher
}

func NewService(cashFlowRepo repository.CashFlowRepository, publisher events.Publisher) CashFlowManager {
	return &Service{
		cashFlowRepo: cashFlowRepo,
		publisher:    publisher,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error) {
	entry.RestaurantID = restaurantID
	if entry.ID == "" {
		entry.ID = utils.NewID()
	}
	if entry.Status == "" {
		entry.Status = domain.CashFlowCompleted
	}

	if err := Validate(entry); err != nil {
		return nil, err
	}

	if err := s.cashFlowRepo.Create(ctx, entry); err != nil {
		return nil, business.Database(err, "erro ao criar lançamento")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"entry_id":      entry.ID,
		"type":          entry.Type,
		"amount":        entry.Amount,
	}).Info("Lançamento criado")

	s.publish(ctx, restaurantID, entry.ID, events.ActionCreated)
	return entry, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, entry *domain.CashFlowEntry) (*domain.CashFlowEntry, error) {
	current, err := s.cashFlowRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar lançamento")
	}
	if current == nil {
		return nil, business.NotFound("lançamento " + id)
	}

	entry.ID = id
	entry.RestaurantID = restaurantID
	entry.CreatedAt = current.CreatedAt
	if entry.Status == "" {
		entry.Status = current.Status
	}

	if err := Validate(entry); err != nil {
		return nil, err
	}

	if err := s.cashFlowRepo.Update(ctx, entry); err != nil {
		return nil, business.Database(err, "erro ao atualizar lançamento")
	}

	s.publish(ctx, restaurantID, id, events.ActionUpdated)
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.cashFlowRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "lançamento "+id)
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"entry_id":      id,
	}).Info("Lançamento removido")

	s.publish(ctx, restaurantID, id, events.ActionDeleted)
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.CashFlowEntry, error) {
	entry, err := s.cashFlowRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar lançamento")
	}
	if entry == nil {
		return nil, business.NotFound("lançamento " + id)
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context, restaurantID string, filter domain.CashFlowFilter) ([]*domain.CashFlowEntry, error) {
	if filter.Period != nil && !filter.Period.IsValid() {
		return nil, business.Invalid("data final anterior à data inicial")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, business.Invalid("tipo de lançamento inválido")
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, business.Invalid("status de lançamento inválido")
	}

	entries, err := s.cashFlowRepo.List(ctx, restaurantID, filter)
	if err != nil {
		return nil, business.Database(err, "erro ao listar lançamentos")
	}
	return entries, nil
}

func (s *Service) Summary(ctx context.Context, restaurantID string, period domain.Period) (*domain.CashFlowSummary, error) {
	if !period.IsValid() {
		return nil, business.Invalid("data final anterior à data inicial")
	}

	entries, err := s.cashFlowRepo.List(ctx, restaurantID, domain.CashFlowFilter{Period: &period})
	if err != nil {
		return nil, business.Database(err, "erro ao listar lançamentos")
	}

	return Summarize(period, entries), nil
}

func (s *Service) publish(ctx context.Context, restaurantID, entityID, action string) {
	s.publisher.Publish(ctx, events.NewChange(events.FinancialDataUpdated, restaurantID, eventSource, entityID, action))
}

// Validate confere os campos obrigatórios de um lançamento
func Validate(entry *domain.CashFlowEntry) error {
	if strings.TrimSpace(entry.Description) == "" {
		return business.Missing("descrição é obrigatória")
	}
	if entry.Amount <= 0 {
		return business.Invalid("valor deve ser maior que zero")
	}
	if !entry.Type.IsValid() {
		return business.Invalid("tipo deve ser income ou expense")
	}
	if !entry.Status.IsValid() {
		return business.Invalid("status deve ser completed, pending ou canceled")
	}
	if entry.Date.IsZero() {
		return business.Missing("data é obrigatória")
	}
	return nil
}

// Summarize consolida os lançamentos do período. Apenas lançamentos concluídos
// entram nos totais; pendentes são somados à parte e cancelados são ignorados.
func Summarize(period domain.Period, entries []*domain.CashFlowEntry) *domain.CashFlowSummary {
	summary := &domain.CashFlowSummary{Period: period}
	categories := make(map[string]*domain.CategoryTotal)

	for _, entry := range entries {
		switch entry.Status {
		case domain.CashFlowCanceled:
			continue
		case domain.CashFlowPending:
			summary.EntriesCount++
			if entry.Type == domain.CashFlowIncome {
				summary.PendingIncome += entry.Amount
			} else {
				summary.PendingExpense += entry.Amount
			}
			continue
		}

		summary.EntriesCount++
		if entry.Type == domain.CashFlowIncome {
			summary.TotalIncome += entry.Amount
		} else {
			summary.TotalExpense += entry.Amount
		}

		key := string(entry.Type) + "|" + entry.Category
		total, ok := categories[key]
		if !ok {
			total = &domain.CategoryTotal{Category: entry.Category, Type: entry.Type}
			categories[key] = total
		}
		total.Total += entry.Amount
		total.Count++
	}

	summary.Balance = utils.RoundWithTwoDecimalPlace(summary.TotalIncome - summary.TotalExpense)
	summary.ProfitMargin = utils.Percentage(summary.Balance, summary.TotalIncome)
	summary.TotalIncome = utils.RoundWithTwoDecimalPlace(summary.TotalIncome)
	summary.TotalExpense = utils.RoundWithTwoDecimalPlace(summary.TotalExpense)
	summary.PendingIncome = utils.RoundWithTwoDecimalPlace(summary.PendingIncome)
	summary.PendingExpense = utils.RoundWithTwoDecimalPlace(summary.PendingExpense)

	summary.Categories = make([]domain.CategoryTotal, 0, len(categories))
	for _, total := range categories {
		total.Total = utils.RoundWithTwoDecimalPlace(total.Total)
		summary.Categories = append(summary.Categories, *total)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total == summary.Categories[j].Total {
			return summary.Categories[i].Category < summary.Categories[j].Category
		}
		return summary.Categories[i].Total > summary.Categories[j].Total
	})

	return summary
}

// CurrentMonth retorna o mês corrente
func CurrentMonth() domain.Period {
	return domain.MonthPeriod(time.Now())
}
