package domain

import "time"

type AlertType string

const (
	AlertLowStock            AlertType = "low_stock"
	AlertGoalCompleted       AlertType = "goal_completed"
	AlertAchievementUnlocked AlertType = "achievement_unlocked"
	AlertPaymentDue          AlertType = "payment_due"
	AlertSystem              AlertType = "system"
)

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

type SystemAlert struct {
	ID           string        `json:"id"`
	RestaurantID string        `json:"restaurant_id"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	ReferenceID  *string       `json:"reference_id"`
	Read         bool          `json:"read"`
	CreatedAt    time.Time     `json:"created_at"`
}
