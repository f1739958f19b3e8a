// Package cataloging gerencia os itens do cardápio
package cataloging

import (
	"context"
	"strings"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type MenuManager interface {
	Create(ctx context.Context, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, restaurantID string, id string, item *domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.MenuItem, error)
	List(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error)
}

type Service struct {
	menuItemRepo repository.MenuItemRepository
	sheetRepo    repository.TechnicalSheetRepository
}

func NewService(menuItemRepo repository.MenuItemRepository, sheetRepo repository.TechnicalSheetRepository) MenuManager {
	return &Service{
		menuItemRepo: menuItemRepo,
		sheetRepo:    sheetRepo,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, item *domain.MenuItem) (*domain.MenuItem, error) {
	item.RestaurantID = restaurantID
	if item.ID == "" {
		item.ID = utils.NewID()
	}

	if err := s.prepare(ctx, item); err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, business.Database(err, "erro ao criar item do cardápio")
	}

	Derive(item)
	return item, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, item *domain.MenuItem) (*domain.MenuItem, error) {
	current, err := s.menuItemRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar item do cardápio")
	}
	if current == nil {
		return nil, business.NotFound("item do cardápio " + id)
	}

	item.ID = id
	item.RestaurantID = restaurantID
	item.CreatedAt = current.CreatedAt

	if err := s.prepare(ctx, item); err != nil {
		return nil, err
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, business.Database(err, "erro ao atualizar item do cardápio")
	}

	Derive(item)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.menuItemRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "item do cardápio "+id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar item do cardápio")
	}
	if item == nil {
		return nil, business.NotFound("item do cardápio " + id)
	}

	Derive(item)
	return item, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*domain.MenuItem, error) {
	items, err := s.menuItemRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar cardápio")
	}

	for _, item := range items {
		Derive(item)
	}
	return items, nil
}

// prepare valida o item e, quando há ficha técnica vinculada, usa o custo por porção dela
func (s *Service) prepare(ctx context.Context, item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return business.Missing("nome é obrigatório")
	}
	if item.Price < 0 || item.Cost < 0 {
		return business.Invalid("preço e custo não podem ser negativos")
	}

	if item.TechnicalSheetID == nil || *item.TechnicalSheetID == "" {
		item.TechnicalSheetID = nil
		return nil
	}

	sheet, err := s.sheetRepo.GetByID(ctx, item.RestaurantID, *item.TechnicalSheetID)
	if err != nil {
		return business.Database(err, "erro ao consultar ficha técnica")
	}
	if sheet == nil {
		return business.NotFound("ficha técnica " + *item.TechnicalSheetID)
	}
	if err := costing.Compute(sheet, nil); err != nil {
		return err
	}

	item.Cost = sheet.CostPerPortion
	return nil
}

// Derive calcula margem e CMV percentual sobre o preço de venda
func Derive(item *domain.MenuItem) {
	item.Margin = utils.Percentage(item.Price-item.Cost, item.Price)
	item.CMVPercentage = utils.Percentage(item.Cost, item.Price)
}
