// Package ranking ordena os itens do cardápio pela margem de contribuição
package ranking

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type RankingService interface {
	GetMenuRanking(ctx context.Context, restaurantID string) (*domain.MenuRankingResponse, error)
}

type MenuRankingService struct {
	menu cataloging.MenuManager
}

func NewMenuRankingService(menu cataloging.MenuManager) RankingService {
	return &MenuRankingService{
		menu: menu,
	}
}

func (s *MenuRankingService) GetMenuRanking(ctx context.Context, restaurantID string) (*domain.MenuRankingResponse, error) {
	items, err := s.menu.List(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return Rank(items), nil
}

// Rank considera apenas itens disponíveis com preço. Empates na margem
// são desempatados pelo nome.
func Rank(items []*domain.MenuItem) *domain.MenuRankingResponse {
	ranking := make([]domain.MenuRankingItem, 0, len(items))
	var cmvSum float64

	for _, item := range items {
		if !item.Available || item.Price <= 0 {
			continue
		}

		ranking = append(ranking, domain.MenuRankingItem{
			MenuItemID:    item.ID,
			Name:          item.Name,
			Category:      item.Category,
			Price:         item.Price,
			Cost:          item.Cost,
			UnitMargin:    utils.RoundWithTwoDecimalPlace(item.Price - item.Cost),
			Margin:        utils.Percentage(item.Price-item.Cost, item.Price),
			CMVPercentage: utils.Percentage(item.Cost, item.Price),
		})
		cmvSum += utils.Percentage(item.Cost, item.Price)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].UnitMargin != ranking[j].UnitMargin {
			return ranking[i].UnitMargin > ranking[j].UnitMargin
		}
		return ranking[i].Name < ranking[j].Name
	})

	average := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(cmvSum, float64(len(ranking))))
	for i := range ranking {
		ranking[i].Position = i + 1
		ranking[i].AboveAverage = ranking[i].CMVPercentage > average
	}

	return &domain.MenuRankingResponse{
		Ranking:     ranking,
		AverageCMV:  average,
		GeneratedAt: time.Now(),
	}
}
