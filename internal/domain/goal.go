package domain

import "time"

type GoalMetric string

const (
	MetricMonthlyRevenue  GoalMetric = "monthly_revenue"
	MetricMonthlyProfit   GoalMetric = "monthly_profit"
	MetricMonthlyExpenses GoalMetric = "monthly_expenses"
	MetricCMVPercentage   GoalMetric = "cmv_percentage"
	MetricCashFlowEntries GoalMetric = "cash_flow_entries"
	MetricInventoryItems  GoalMetric = "inventory_items"
	MetricTechnicalSheets GoalMetric = "technical_sheets"
)

// LowerIsBetter indica métricas em que a meta é ficar abaixo do alvo
func (m GoalMetric) LowerIsBetter() bool {
	return m == MetricMonthlyExpenses || m == MetricCMVPercentage
}

func (m GoalMetric) IsValid() bool {
	switch m {
	case MetricMonthlyRevenue, MetricMonthlyProfit, MetricMonthlyExpenses, MetricCMVPercentage,
		MetricCashFlowEntries, MetricInventoryItems, MetricTechnicalSheets:
		return true
	}
	return false
}

type Goal struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	TargetValue  float64     `json:"target_value"`
	CurrentValue float64     `json:"current_value"`
	Unit         string      `json:"unit"`
	Deadline     *time.Time  `json:"deadline"`
	Reward       *string     `json:"reward"`
	Metric       *GoalMetric `json:"metric"`
	Completed    bool        `json:"completed"`
	CompletedAt  *time.Time  `json:"completed_at"`
	Progress     float64     `json:"progress"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type Achievement struct {
	ID           string     `json:"id"`
	RestaurantID string     `json:"restaurant_id"`
	Code         string     `json:"code"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Points       int        `json:"points"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedAt   *time.Time `json:"unlocked_at"`
}

type GamificationProfile struct {
	Points            int `json:"points"`
	Level             int `json:"level"`
	UnlockedCount     int `json:"unlocked_count"`
	TotalAchievements int `json:"total_achievements"`
	CompletedGoals    int `json:"completed_goals"`
	ActiveGoals       int `json:"active_goals"`
	PointsToNextLevel int `json:"points_to_next_level"`
}
