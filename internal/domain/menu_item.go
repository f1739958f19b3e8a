package domain

import "time"

type MenuItem struct {
	ID               string    `json:"id"`
	RestaurantID     string    `json:"restaurant_id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Price            float64   `json:"price"`
	Cost             float64   `json:"cost"`
	TechnicalSheetID *string   `json:"technical_sheet_id"`
	Available        bool      `json:"available"`
	Margin           float64   `json:"margin"`
	CMVPercentage    float64   `json:"cmv_percentage"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
