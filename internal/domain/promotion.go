package domain

import "time"

type PromotionType string

const (
	PromotionPercentage PromotionType = "percentage"
	PromotionFixed      PromotionType = "fixed"
	PromotionCombo      PromotionType = "combo"
	PromotionHappyHour  PromotionType = "happy_hour"
)

type PromotionProduct struct {
	MenuItemID *string `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type Promotion struct {
	ID                 string             `json:"id"`
	RestaurantID       string             `json:"restaurant_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Type               PromotionType      `json:"type"`
	StartDate          time.Time          `json:"start_date"`
	EndDate            time.Time          `json:"end_date"`
	DaysOfWeek         []int              `json:"days_of_week"`
	StartTime          *string            `json:"start_time"` // HH:MM
	EndTime            *string            `json:"end_time"`   // HH:MM
	OriginalPrice      float64            `json:"original_price"`
	PromotionalPrice   float64            `json:"promotional_price"`
	DiscountPercentage float64            `json:"discount_percentage"`
	Products           []PromotionProduct `json:"products"`
	Active             bool               `json:"active"`
	FinalPrice         float64            `json:"final_price"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (t PromotionType) IsValid() bool {
	switch t {
	case PromotionPercentage, PromotionFixed, PromotionCombo, PromotionHappyHour:
		return true
	}
	return false
}
