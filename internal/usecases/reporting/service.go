// Package reporting gera o DRE e a análise de CMV a partir do fluxo de caixa
package reporting

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Reporter interface {
	GenerateDRE(ctx context.Context, restaurantID string, period domain.Period) (*domain.DRE, error)
	GenerateCMV(ctx context.Context, restaurantID string, request domain.CMVRequest) (*domain.CMVReport, error)
	ExportDREPDF(ctx context.Context, restaurantID string, period domain.Period, w io.Writer) error
}

type Service struct {
	restaurantRepo repository.RestaurantRepository
	cashFlowRepo   repository.CashFlowRepository
	inventoryRepo  repository.InventoryRepository
	menuItemRepo   repository.MenuItemRepository
	sheetRepo      repository.TechnicalSheetRepository
}

func NewService(
	restaurantRepo repository.RestaurantRepository,
	cashFlowRepo repository.CashFlowRepository,
	inventoryRepo repository.InventoryRepository,
	menuItemRepo repository.MenuItemRepository,
	sheetRepo repository.TechnicalSheetRepository,
) Reporter {
	return &Service{
		restaurantRepo: restaurantRepo,
		cashFlowRepo:   cashFlowRepo,
		inventoryRepo:  inventoryRepo,
		menuItemRepo:   menuItemRepo,
		sheetRepo:      sheetRepo,
	}
}

func (s *Service) GenerateDRE(ctx context.Context, restaurantID string, period domain.Period) (*domain.DRE, error) {
	restaurant, entries, err := s.load(ctx, restaurantID, period)
	if err != nil {
		return nil, err
	}

	dre := BuildDRE(restaurant, period, entries)

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"start":         period.Start.Format(time.DateOnly),
		"end":           period.End.Format(time.DateOnly),
		"net_result":    dre.NetResult,
	}).Debug("DRE gerado")

	return dre, nil
}

// GenerateCMV calcula CMV = estoque inicial + compras - estoque final. Sem
// valores informados, o estoque final é a valorização atual e o inicial é igual ao final.
func (s *Service) GenerateCMV(ctx context.Context, restaurantID string, request domain.CMVRequest) (*domain.CMVReport, error) {
	restaurant, entries, err := s.load(ctx, restaurantID, request.Period)
	if err != nil {
		return nil, err
	}

	if request.InitialInventory != nil && *request.InitialInventory < 0 {
		return nil, business.Invalid("estoque inicial não pode ser negativo")
	}
	if request.FinalInventory != nil && *request.FinalInventory < 0 {
		return nil, business.Invalid("estoque final não pode ser negativo")
	}

	var revenue, purchases float64
	for _, entry := range entries {
		if entry.Status != domain.CashFlowCompleted {
			continue
		}
		if entry.Type == domain.CashFlowIncome {
			revenue += entry.Amount
		} else if IsCMVCategory(entry.Category) {
			purchases += entry.Amount
		}
	}

	var finalInventory float64
	if request.FinalInventory != nil {
		finalInventory = *request.FinalInventory
	} else {
		items, err := s.inventoryRepo.List(ctx, restaurantID)
		if err != nil {
			return nil, business.Database(err, "erro ao listar estoque")
		}
		finalInventory = stocking.Valuate(items).TotalValue
	}

	initialInventory := finalInventory
	if request.InitialInventory != nil {
		initialInventory = *request.InitialInventory
	}

	menuItems, err := s.menuItemsCMV(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	cmv := initialInventory + purchases - finalInventory
	percentage := utils.Percentage(cmv, revenue)

	return &domain.CMVReport{
		RestaurantID:     restaurantID,
		Period:           request.Period,
		InitialInventory: utils.RoundWithTwoDecimalPlace(initialInventory),
		Purchases:        utils.RoundWithTwoDecimalPlace(purchases),
		FinalInventory:   utils.RoundWithTwoDecimalPlace(finalInventory),
		CMV:              utils.RoundWithTwoDecimalPlace(cmv),
		Revenue:          utils.RoundWithTwoDecimalPlace(revenue),
		CMVPercentage:    percentage,
		TargetPercentage: restaurant.TargetCMVPercentage,
		Status:           ClassifyCMV(percentage, restaurant.TargetCMVPercentage),
		MenuItems:        menuItems,
		GeneratedAt:      time.Now(),
	}, nil
}

func (s *Service) ExportDREPDF(ctx context.Context, restaurantID string, period domain.Period, w io.Writer) error {
	restaurant, entries, err := s.load(ctx, restaurantID, period)
	if err != nil {
		return err
	}

	return RenderDREPDF(restaurant, BuildDRE(restaurant, period, entries), w)
}

func (s *Service) load(ctx context.Context, restaurantID string, period domain.Period) (*domain.Restaurant, []*domain.CashFlowEntry, error) {
	if !period.IsValid() {
		return nil, nil, business.Invalid("data final anterior à data inicial")
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, nil, business.Database(err, "erro ao consultar restaurante")
	}
	if restaurant == nil {
		return nil, nil, business.NotFound("restaurante " + restaurantID)
	}
	restaurant.ApplyDefaults()

	status := domain.CashFlowCompleted
	entries, err := s.cashFlowRepo.List(ctx, restaurantID, domain.CashFlowFilter{Period: &period, Status: &status})
	if err != nil {
		return nil, nil, business.Database(err, "erro ao listar lançamentos")
	}

	return restaurant, entries, nil
}

// menuItemsCMV calcula o CMV teórico de cada item do cardápio pela ficha técnica vinculada
func (s *Service) menuItemsCMV(ctx context.Context, restaurantID string) ([]domain.MenuItemCMV, error) {
	items, err := s.menuItemRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar cardápio")
	}

	sheets, err := s.sheetRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar fichas técnicas")
	}

	costBySheet := make(map[string]float64, len(sheets))
	for _, sheet := range sheets {
		if err := costing.Compute(sheet, nil); err != nil {
			continue
		}
		costBySheet[sheet.ID] = sheet.CostPerPortion
	}

	result := make([]domain.MenuItemCMV, 0, len(items))
	for _, item := range items {
		cost := item.Cost
		if item.TechnicalSheetID != nil {
			if sheetCost, ok := costBySheet[*item.TechnicalSheetID]; ok {
				cost = sheetCost
			}
		}

		result = append(result, domain.MenuItemCMV{
			MenuItemID:    item.ID,
			Name:          item.Name,
			Price:         item.Price,
			Cost:          cost,
			CMVPercentage: utils.Percentage(cost, item.Price),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CMVPercentage > result[j].CMVPercentage
	})
	return result, nil
}
