// Package costing gerencia as fichas técnicas e o custo das receitas
package costing

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type SheetManager interface {
	Create(ctx context.Context, restaurantID string, sheet *domain.TechnicalSheet) (*domain.TechnicalSheet, error)
	Update(ctx context.Context, restaurantID string, id string, sheet *domain.TechnicalSheet) (*domain.TechnicalSheet, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error)
	List(ctx context.Context, restaurantID string) ([]*domain.TechnicalSheet, error)
	Recalculate(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error)
}

type Service struct {
	sheetRepo     repository.TechnicalSheetRepository
	inventoryRepo repository.InventoryRepository
	menuItemRepo  repository.MenuItemRepository
}

func NewService(
	sheetRepo repository.TechnicalSheetRepository,
	inventoryRepo repository.InventoryRepository,
	menuItemRepo repository.MenuItemRepository,
) SheetManager {
	return &Service{
		sheetRepo:     sheetRepo,
		inventoryRepo: inventoryRepo,
		menuItemRepo:  menuItemRepo,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, sheet *domain.TechnicalSheet) (*domain.TechnicalSheet, error) {
	sheet.RestaurantID = restaurantID
	if sheet.ID == "" {
		sheet.ID = utils.NewID()
	}

	if err := s.prepare(ctx, sheet); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.Create(ctx, sheet); err != nil {
		return nil, business.Database(err, "erro ao criar ficha técnica")
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id":    restaurantID,
		"sheet_id":         sheet.ID,
		"cost_per_portion": sheet.CostPerPortion,
	}).Info("Ficha técnica criada")

	return sheet, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, sheet *domain.TechnicalSheet) (*domain.TechnicalSheet, error) {
	current, err := s.sheetRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar ficha técnica")
	}
	if current == nil {
		return nil, business.NotFound("ficha técnica " + id)
	}

	sheet.ID = id
	sheet.RestaurantID = restaurantID
	sheet.CreatedAt = current.CreatedAt

	if err := s.prepare(ctx, sheet); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		return nil, business.Database(err, "erro ao atualizar ficha técnica")
	}

	if err := s.propagateCost(ctx, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.sheetRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "ficha técnica "+id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error) {
	sheet, err := s.sheetRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar ficha técnica")
	}
	if sheet == nil {
		return nil, business.NotFound("ficha técnica " + id)
	}

	if err := Compute(sheet, nil); err != nil {
		logrus.WithError(err).WithField("sheet_id", id).Warn("Ficha técnica com rendimento inválido")
	}
	return sheet, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*domain.TechnicalSheet, error) {
	sheets, err := s.sheetRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar fichas técnicas")
	}

	for _, sheet := range sheets {
		if err := Compute(sheet, nil); err != nil {
			logrus.WithError(err).WithField("sheet_id", sheet.ID).Warn("Ficha técnica com rendimento inválido")
		}
	}
	return sheets, nil
}

// Recalculate atualiza os custos a partir do estoque atual e repassa o novo
// custo por porção aos itens do cardápio vinculados
func (s *Service) Recalculate(ctx context.Context, restaurantID string, id string) (*domain.TechnicalSheet, error) {
	sheet, err := s.sheetRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar ficha técnica")
	}
	if sheet == nil {
		return nil, business.NotFound("ficha técnica " + id)
	}

	inventory, err := s.inventoryIndex(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if err := Compute(sheet, inventory); err != nil {
		return nil, err
	}

	if err := s.sheetRepo.Update(ctx, sheet); err != nil {
		return nil, business.Database(err, "erro ao atualizar ficha técnica")
	}

	if err := s.propagateCost(ctx, sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *Service) prepare(ctx context.Context, sheet *domain.TechnicalSheet) error {
	if strings.TrimSpace(sheet.Name) == "" {
		return business.Missing("nome é obrigatório")
	}
	if sheet.MarkupFactor != nil && *sheet.MarkupFactor < 0 {
		return business.Invalid("fator de markup não pode ser negativo")
	}

	linked := false
	for i := range sheet.Ingredients {
		ingredient := &sheet.Ingredients[i]
		if strings.TrimSpace(ingredient.Name) == "" {
			return business.Missing("nome do ingrediente é obrigatório")
		}
		if ingredient.Quantity <= 0 {
			return business.Invalid("quantidade do ingrediente deve ser maior que zero")
		}
		if ingredient.UnitCost < 0 {
			return business.Invalid("custo unitário não pode ser negativo")
		}
		if ingredient.ID == "" {
			ingredient.ID = utils.NewID()
		}
		if ingredient.InventoryItemID != nil {
			linked = true
		}
	}

	var inventory map[string]*domain.InventoryItem
	if linked {
		var err error
		if inventory, err = s.inventoryIndex(ctx, sheet.RestaurantID); err != nil {
			return err
		}
	}

	return Compute(sheet, inventory)
}

func (s *Service) inventoryIndex(ctx context.Context, restaurantID string) (map[string]*domain.InventoryItem, error) {
	items, err := s.inventoryRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar estoque")
	}

	index := make(map[string]*domain.InventoryItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return index, nil
}

func (s *Service) propagateCost(ctx context.Context, sheet *domain.TechnicalSheet) error {
	updated, err := s.menuItemRepo.UpdateCostBySheet(ctx, sheet.RestaurantID, sheet.ID, sheet.CostPerPortion)
	if err != nil {
		return business.Database(err, "erro ao atualizar custo do cardápio")
	}

	if updated > 0 {
		logrus.WithFields(logrus.Fields{
			"sheet_id":   sheet.ID,
			"menu_items": updated,
			"cost":       sheet.CostPerPortion,
		}).Info("Custo repassado aos itens do cardápio")
	}
	return nil
}
