package ranking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/cataloging/mocks"
	"go.uber.org/mock/gomock"
)

func TestRank(t *testing.T) {
	items := []*domain.MenuItem{
		{ID: "1", Name: "Suco", Price: 10, Cost: 2, Available: true},
		{ID: "2", Name: "Prato feito", Price: 30, Cost: 12, Available: true},
		{ID: "3", Name: "Sobremesa", Price: 15, Cost: 7, Available: true},
		{ID: "4", Name: "Fora do cardápio", Price: 50, Cost: 10, Available: false},
		{ID: "5", Name: "Sem preço", Price: 0, Cost: 5, Available: true},
	}

	result := Rank(items)

	require.Len(t, result.Ranking, 3)
	assert.Equal(t, "2", result.Ranking[0].MenuItemID)
	assert.Equal(t, 1, result.Ranking[0].Position)
	assert.Equal(t, 18.0, result.Ranking[0].UnitMargin)
	assert.Equal(t, 60.0, result.Ranking[0].Margin)
	assert.Equal(t, "3", result.Ranking[1].MenuItemID)
	assert.Equal(t, "1", result.Ranking[2].MenuItemID)
	// CMVs: 20, 40 e 46.67 -> média 35.56
	assert.Equal(t, 35.56, result.AverageCMV)
	assert.True(t, result.Ranking[0].AboveAverage)
	assert.True(t, result.Ranking[1].AboveAverage)
	assert.False(t, result.Ranking[2].AboveAverage)
}

func TestRank_Empty(t *testing.T) {
	result := Rank(nil)

	assert.Empty(t, result.Ranking)
	assert.Zero(t, result.AverageCMV)
}

func TestMenuRankingService_GetMenuRanking(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	menu := mocks.NewMockMenuManager(ctrl)
	menu.EXPECT().List(ctx, "r1").Return([]*domain.MenuItem{{ID: "1", Name: "Suco", Price: 10, Cost: 2, Available: true}}, nil)

	result, err := NewMenuRankingService(menu).GetMenuRanking(ctx, "r1")

	require.NoError(t, err)
	assert.Len(t, result.Ranking, 1)
}
