// Package promoting gerencia as promoções do restaurante
package promoting

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type PromotionManager interface {
	Create(ctx context.Context, restaurantID string, promotion *domain.Promotion) (*domain.Promotion, error)
	Update(ctx context.Context, restaurantID string, id string, promotion *domain.Promotion) (*domain.Promotion, error)
	Delete(ctx context.Context, restaurantID string, id string) error
	Get(ctx context.Context, restaurantID string, id string) (*domain.Promotion, error)
	List(ctx context.Context, restaurantID string) ([]*domain.Promotion, error)
	Active(ctx context.Context, restaurantID string, at time.Time) ([]*domain.Promotion, error)
}

type Service struct {
	promotionRepo repository.PromotionRepository
}

func NewService(promotionRepo repository.PromotionRepository) PromotionManager {
	return &Service{
		promotionRepo: promotionRepo,
	}
}

func (s *Service) Create(ctx context.Context, restaurantID string, promotion *domain.Promotion) (*domain.Promotion, error) {
	promotion.RestaurantID = restaurantID
	if promotion.ID == "" {
		promotion.ID = utils.NewID()
	}

	if err := Validate(promotion); err != nil {
		return nil, err
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, business.Database(err, "erro ao criar promoção")
	}

	promotion.FinalPrice = FinalPrice(promotion)
	return promotion, nil
}

func (s *Service) Update(ctx context.Context, restaurantID string, id string, promotion *domain.Promotion) (*domain.Promotion, error) {
	current, err := s.promotionRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar promoção")
	}
	if current == nil {
		return nil, business.NotFound("promoção " + id)
	}

	promotion.ID = id
	promotion.RestaurantID = restaurantID
	promotion.CreatedAt = current.CreatedAt

	if err := Validate(promotion); err != nil {
		return nil, err
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, business.Database(err, "erro ao atualizar promoção")
	}

	promotion.FinalPrice = FinalPrice(promotion)
	return promotion, nil
}

func (s *Service) Delete(ctx context.Context, restaurantID string, id string) error {
	if err := s.promotionRepo.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "promoção "+id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, restaurantID string, id string) (*domain.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar promoção")
	}
	if promotion == nil {
		return nil, business.NotFound("promoção " + id)
	}

	promotion.FinalPrice = FinalPrice(promotion)
	return promotion, nil
}

func (s *Service) List(ctx context.Context, restaurantID string) ([]*domain.Promotion, error) {
	promotions, err := s.promotionRepo.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar promoções")
	}

	for _, promotion := range promotions {
		promotion.FinalPrice = FinalPrice(promotion)
	}
	return promotions, nil
}

func (s *Service) Active(ctx context.Context, restaurantID string, at time.Time) ([]*domain.Promotion, error) {
	promotions, err := s.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Promotion, 0)
	for _, promotion := range promotions {
		if IsActive(promotion, at) {
			active = append(active, promotion)
		}
	}
	return active, nil
}

// Validate aplica as regras de cadastro de promoções
func Validate(promotion *domain.Promotion) error {
	if strings.TrimSpace(promotion.Name) == "" {
		return business.Missing("nome é obrigatório")
	}
	if !promotion.Type.IsValid() {
		return business.Invalid("tipo de promoção inválido")
	}
	if promotion.StartDate.IsZero() || promotion.EndDate.IsZero() {
		return business.Missing("datas de início e fim são obrigatórias")
	}

	period := domain.Period{Start: promotion.StartDate, End: promotion.EndDate}
	if !period.IsValid() {
		return business.Invalid("data final anterior à data inicial")
	}

	for _, day := range promotion.DaysOfWeek {
		if day < 0 || day > 6 {
			return business.Invalid("dias da semana devem estar entre 0 e 6")
		}
	}

	for _, value := range []*string{promotion.StartTime, promotion.EndTime} {
		if value != nil && *value != "" {
			if _, ok := parseClock(value); !ok {
				return business.Invalid("horário deve estar no formato HH:MM")
			}
		}
	}

	if promotion.OriginalPrice < 0 || promotion.PromotionalPrice < 0 {
		return business.Invalid("preços não podem ser negativos")
	}

	if promotion.Type == domain.PromotionPercentage {
		if promotion.DiscountPercentage <= 0 || promotion.DiscountPercentage > 100 {
			return business.Invalid("desconto deve ser maior que 0 e no máximo 100")
		}
		return nil
	}

	if promotion.PromotionalPrice >= promotion.OriginalPrice {
		return business.Invalid("preço promocional deve ser menor que o original")
	}
	return nil
}
