package promoting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func basePromotion() *domain.Promotion {
	return &domain.Promotion{
		Name:             "Happy hour",
		Type:             domain.PromotionHappyHour,
		StartDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		OriginalPrice:    20,
		PromotionalPrice: 14,
		Active:           true,
	}
}

func TestIsActive(t *testing.T) {
	// 2024-06-14 é uma sexta-feira
	friday := func(hour, minute int) time.Time {
		return time.Date(2024, 6, 14, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		modify func(p *domain.Promotion)
		at     time.Time
		want   bool
	}{
		{name: "Sem restrições", modify: func(*domain.Promotion) {}, at: friday(12, 0), want: true},
		{name: "Inativa", modify: func(p *domain.Promotion) { p.Active = false }, at: friday(12, 0), want: false},
		{name: "Último dia inclusive", modify: func(*domain.Promotion) {}, at: time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC), want: true},
		{name: "Fora do período", modify: func(*domain.Promotion) {}, at: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "Dia da semana permitido", modify: func(p *domain.Promotion) { p.DaysOfWeek = []int{5, 6} }, at: friday(12, 0), want: true},
		{name: "Dia da semana não permitido", modify: func(p *domain.Promotion) { p.DaysOfWeek = []int{0, 1} }, at: friday(12, 0), want: false},
		{
			name: "Dentro da janela",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("17:00"), strPtr("19:30")
			},
			at:   friday(19, 30),
			want: true,
		},
		{
			name: "Fora da janela",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("17:00"), strPtr("19:30")
			},
			at:   friday(19, 31),
			want: false,
		},
		{
			name: "Janela atravessando meia-noite",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("22:00"), strPtr("02:00")
			},
			at:   friday(1, 15),
			want: true,
		},
		{
			name: "Sexta à noite em promoção só de sexta",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime, p.DaysOfWeek = strPtr("22:00"), strPtr("02:00"), []int{5}
			},
			at:   friday(23, 0),
			want: true,
		},
		{
			name: "Madrugada de sábado pertence à janela de sexta",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime, p.DaysOfWeek = strPtr("22:00"), strPtr("02:00"), []int{5}
			},
			at:   time.Date(2024, 6, 15, 1, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "Madrugada de sexta pertence à janela de quinta",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime, p.DaysOfWeek = strPtr("22:00"), strPtr("02:00"), []int{5}
			},
			at:   friday(1, 0),
			want: false,
		},
		{
			name: "Madrugada do primeiro dia pertence à véspera do período",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("22:00"), strPtr("02:00")
			},
			at:   time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "Madrugada após o último dia ainda vale",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("22:00"), strPtr("02:00")
			},
			at:   time.Date(2024, 7, 1, 1, 30, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "Janela atravessando meia-noite, fora",
			modify: func(p *domain.Promotion) {
				p.StartTime, p.EndTime = strPtr("22:00"), strPtr("02:00")
			},
			at:   friday(15, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotion := basePromotion()
			tt.modify(promotion)
			assert.Equal(t, tt.want, IsActive(promotion, tt.at))
		})
	}
}

func TestFinalPrice(t *testing.T) {
	percentage := basePromotion()
	percentage.Type = domain.PromotionPercentage
	percentage.DiscountPercentage = 15

	assert.Equal(t, 17.0, FinalPrice(percentage))
	assert.Equal(t, 14.0, FinalPrice(basePromotion()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *domain.Promotion)
		valid  bool
	}{
		{name: "Válida", modify: func(*domain.Promotion) {}, valid: true},
		{name: "Fim antes do início", modify: func(p *domain.Promotion) { p.EndDate = p.StartDate.AddDate(0, 0, -1) }},
		{name: "Preço promocional maior", modify: func(p *domain.Promotion) { p.PromotionalPrice = 25 }},
		{name: "Dia inválido", modify: func(p *domain.Promotion) { p.DaysOfWeek = []int{7} }},
		{name: "Horário inválido", modify: func(p *domain.Promotion) { p.StartTime = strPtr("25:00") }},
		{name: "Tipo inválido", modify: func(p *domain.Promotion) { p.Type = "bogo" }},
		{
			name: "Desconto acima de 100",
			modify: func(p *domain.Promotion) {
				p.Type = domain.PromotionPercentage
				p.DiscountPercentage = 120
			},
		},
		{
			name: "Desconto de 100",
			modify: func(p *domain.Promotion) {
				p.Type = domain.PromotionPercentage
				p.DiscountPercentage = 100
			},
			valid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promotion := basePromotion()
			tt.modify(promotion)
			err := Validate(promotion)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, business.ErrInvalidInput)
		})
	}
}

func TestService_Active(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPromotionRepository(ctrl)
	service := NewService(repo)

	inactive := basePromotion()
	inactive.Active = false
	repo.EXPECT().List(ctx, "r1").Return([]*domain.Promotion{basePromotion(), inactive}, nil)

	active, err := service.Active(ctx, "r1", time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 14.0, active[0].FinalPrice)
}
