// Package stocking gerencia os itens de estoque
package stocking

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const eventSource = "inventory"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type InventoryManager interface {
	Create(ctx context.Context, restaurantID string, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Update(ctx context.Context, restaurantID string, id string, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, restaurantID string, id string, adjustment domain.StockAdjustment) (*domain.InventoryItem, error)
	LowStock(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error)
	Valuation(ctx context.Context, restaurantID string) (*domain.InventoryValuation, error)
}

type Service struct {
	inventoryRepo repository.InventoryRepository
	publisher     events.Publisher
}

func NewService(inventoryRepo repository.InventoryRepository, publisher events.Publisher) InventoryManager {
	return &Service{
		inventoryRepo: inventoryRepo,
		publisher:     publisher,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	item.RestaurantID = restaurantID
	if item.ID == "" {
		item.ID = utils.NewID()
	}

	if err := validate(item); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, business.Database(err, "erro ao criar item de estoque")
	}

	s.publish(ctx, restaurantID, item.ID, events.ActionCreated)
	return item, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	current, err := s.inventoryRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar item de estoque")
	}
	if current == nil {
		return nil, business.NotFound("item de estoque " + id)
	}

	item.ID = id
	item.RestaurantID = restaurantID
	item.CreatedAt = current.CreatedAt

	if err := validate(item); err != nil {
		return nil, err
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, business.Database(err, "erro ao atualizar item de estoque")
	}

	s.publish(ctx, restaurantID, id, events.ActionUpdated)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.inventoryRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "item de estoque "+id)
	}

	s.publish(ctx, restaurantID, id, events.ActionDeleted)
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar item de estoque")
	}
	if item == nil {
		return nil, business.NotFound("item de estoque " + id)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar estoque")
	}
	return items, nil
}

// AdjustQuantity soma delta à quantidade atual. A quantidade nunca fica negativa.
func (s *Service) AdjustQuantity(ctx context.Context, restaurantID string, id string, adjustment domain.StockAdjustment) (*domain.InventoryItem, error) {
	if adjustment.Delta == 0 {
		return nil, business.Invalid("ajuste deve ser diferente de zero")
	}

	item, err := s.inventoryRepo.AdjustQuantity(ctx, restaurantID, id, adjustment.Delta)
	if errors.Is(err, repository.ErrNotFound) {
		// sem linha afetada: item inexistente ou saldo insuficiente
		current, getErr := s.inventoryRepo.GetByID(ctx, restaurantID, id)
		if getErr != nil {
			return nil, business.Database(getErr, "erro ao consultar item de estoque")
		}
		if current == nil {
			return nil, business.NotFound("item de estoque " + id)
		}
		return nil, business.Rule("quantidade insuficiente em estoque")
	}
	if err != nil {
		return nil, business.Database(err, "erro ao ajustar estoque")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"item_id":       id,
		"delta":         adjustment.Delta,
		"reason":        adjustment.Reason,
		"quantity":      item.Quantity,
	}).Info("Estoque ajustado")

	s.publish(ctx, restaurantID, id, events.ActionUpdated)
	return item, nil
}

func (s *Service) LowStock(ctx context.Context, restaurantID string) ([]*domain.InventoryItem, error) {
	items, err := s.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return FilterLowStock(items), nil
}

func (s *Service) Valuation(ctx context.Context, restaurantID string) (*domain.InventoryValuation, error) {
	items, err := s.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	return Valuate(items), nil
}

func (s *Service) publish(ctx context.Context, restaurantID, entityID, action string) {
	s.publisher.Publish(ctx, events.NewChange(events.InventoryUpdated, restaurantID, eventSource, entityID, action))
}

func validate(item *domain.InventoryItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return business.Missing("nome é obrigatório")
	}
	if strings.TrimSpace(item.Unit) == "" {
		return business.Missing("unidade é obrigatória")
	}
	if item.Quantity < 0 || item.MinQuantity < 0 {
		return business.Invalid("quantidades não podem ser negativas")
	}
	if item.UnitCost < 0 {
		return business.Invalid("custo unitário não pode ser negativo")
	}
	return nil
}

// FilterLowStock retorna os itens no nível mínimo ou abaixo
func FilterLowStock(items []*domain.InventoryItem) []*domain.InventoryItem {
	low := make([]*domain.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low
}

// Valuate soma quantidade x custo unitário por categoria
func Valuate(items []*domain.InventoryItem) *domain.InventoryValuation {
	valuation := &domain.InventoryValuation{
		ItemsCount: len(items),
		ByCategory: make(map[string]float64),
	}

	for _, item := range items {
		value := item.TotalValue()
		valuation.TotalValue += value
		valuation.ByCategory[item.Category] += value
		if item.IsLowStock() {
			valuation.LowStockCount++
		}
	}

	valuation.TotalValue = utils.RoundWithTwoDecimalPlace(valuation.TotalValue)
	for category, value := range valuation.ByCategory {
		valuation.ByCategory[category] = utils.RoundWithTwoDecimalPlace(value)
	}

	return valuation
}
