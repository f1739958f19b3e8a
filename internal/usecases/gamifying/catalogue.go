package gamifying

import "github.com/vfg2006/restaurant-manager-api/internal/domain"

const (
	pointsPerLevel = 100

	categoryFinancial   = "financeiro"
	categoryGoals       = "metas"
	categoryOperational = "operacional"
	categoryMarketing   = "marketing"
)

// Metrics são os números do restaurante usados por metas e conquistas
type Metrics struct {
	MonthlyRevenue   float64
	MonthlyExpenses  float64
	MonthlyProfit    float64
	CMVPercentage    float64
	TargetCMV        float64
	CashFlowEntries  int
	InventoryItems   int
	TechnicalSheets  int
	Promotions       int
	CompletedGoals   int

	// mês anterior, já fechado
	ClosedMonthRevenue  float64
	ClosedMonthExpenses float64
	ClosedMonthCMV      float64
}

type achievementRule struct {
	Code        string
	Title       string
	Description string
	Category    string
	Points      int
	Met         func(m Metrics) bool
}

var catalogue = []achievementRule{
	{
		Code:        "first_cash_entry",
		Title:       "Primeiro lançamento",
		Description: "Registre o primeiro lançamento no fluxo de caixa",
		Category:    categoryFinancial,
		Points:      10,
		Met:         func(m Metrics) bool { return m.CashFlowEntries >= 1 },
	},
	{
		Code:        "revenue_10k",
		Title:       "Faturamento de R$ 10 mil",
		Description: "Alcance R$ 10.000 de receita em um mês",
		Category:    categoryFinancial,
		Points:      30,
		Met:         func(m Metrics) bool { return m.MonthlyRevenue >= 10000 },
	},
	{
		Code:        "revenue_50k",
		Title:       "Faturamento de R$ 50 mil",
		Description: "Alcance R$ 50.000 de receita em um mês",
		Category:    categoryFinancial,
		Points:      100,
		Met:         func(m Metrics) bool { return m.MonthlyRevenue >= 50000 },
	},
	{
		Code:        "cmv_under_target",
		Title:       "CMV sob controle",
		Description: "Feche o mês com CMV dentro da meta do restaurante",
		Category:    categoryFinancial,
		Points:      40,
		Met: func(m Metrics) bool {
			return m.ClosedMonthRevenue > 0 && m.ClosedMonthCMV <= m.TargetCMV
		},
	},
	{
		Code:        "first_goal_completed",
		Title:       "Primeira meta",
		Description: "Conclua a primeira meta",
		Category:    categoryGoals,
		Points:      20,
		Met:         func(m Metrics) bool { return m.CompletedGoals >= 1 },
	},
	{
		Code:        "five_goals_completed",
		Title:       "Cinco metas",
		Description: "Conclua cinco metas",
		Category:    categoryGoals,
		Points:      50,
		Met:         func(m Metrics) bool { return m.CompletedGoals >= 5 },
	},
	{
		Code:        "first_technical_sheet",
		Title:       "Primeira ficha técnica",
		Description: "Cadastre a primeira ficha técnica",
		Category:    categoryOperational,
		Points:      10,
		Met:         func(m Metrics) bool { return m.TechnicalSheets >= 1 },
	},
	{
		Code:        "ten_inventory_items",
		Title:       "Estoque organizado",
		Description: "Cadastre dez itens no estoque",
		Category:    categoryOperational,
		Points:      20,
		Met:         func(m Metrics) bool { return m.InventoryItems >= 10 },
	},
	{
		Code:        "first_promotion",
		Title:       "Primeira promoção",
		Description: "Crie a primeira promoção",
		Category:    categoryMarketing,
		Points:      10,
		Met:         func(m Metrics) bool { return m.Promotions >= 1 },
	},
}

// Catalogue retorna as conquistas do catálogo para o restaurante, todas bloqueadas
func Catalogue(restaurantID string, newID func() string) []*domain.Achievement {
	achievements := make([]*domain.Achievement, 0, len(catalogue))
	for _, rule := range catalogue {
		achievements = append(achievements, &domain.Achievement{
			ID:           newID(),
			RestaurantID: restaurantID,
			Code:         rule.Code,
			Title:        rule.Title,
			Description:  rule.Description,
			Category:     rule.Category,
			Points:       rule.Points,
		})
	}
	return achievements
}

// BuildProfile soma os pontos das conquistas desbloqueadas e conta as metas
func BuildProfile(achievements []*domain.Achievement, goals []*domain.Goal) *domain.GamificationProfile {
	profile := &domain.GamificationProfile{TotalAchievements: len(achievements)}

	for _, achievement := range achievements {
		if !achievement.Unlocked {
			continue
		}
		profile.Points += achievement.Points
		profile.UnlockedCount++
	}

	for _, goal := range goals {
		if goal.Completed {
			profile.CompletedGoals++
		} else {
			profile.ActiveGoals++
		}
	}

	profile.Level = profile.Points/pointsPerLevel + 1
	profile.PointsToNextLevel = profile.Level*pointsPerLevel - profile.Points
	return profile
}
