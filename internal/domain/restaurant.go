package domain

import "time"

const (
	DefaultTaxRate             = 0.06
	DefaultCardFeeRate         = 0.03
	DefaultTargetCMVPercentage = 35.0
)

type Restaurant struct {
	ID                  string    `json:"id"`
	Code                string    `json:"code"`
	Name                string    `json:"name"`
	Document            *string   `json:"document"`
	Address             *string   `json:"address"`
	Phone               *string   `json:"phone"`
	Email               *string   `json:"email"`
	TaxRate             float64   `json:"tax_rate"`
	CardFeeRate         float64   `json:"card_fee_rate"`
	TargetCMVPercentage float64   `json:"target_cmv_percentage"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type UpdateRestaurantRequest struct {
	Name                *string  `json:"name"`
	Document            *string  `json:"document"`
	Address             *string  `json:"address"`
	Phone               *string  `json:"phone"`
	Email               *string  `json:"email"`
	TaxRate             *float64 `json:"tax_rate"`
	CardFeeRate         *float64 `json:"card_fee_rate"`
	TargetCMVPercentage *float64 `json:"target_cmv_percentage"`
}

type RestaurantMember struct {
	RestaurantID string `json:"restaurant_id"`
	UserID       int    `json:"user_id"`
	Role         int    `json:"role"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
}

// ApplyDefaults preenche as taxas ausentes com os valores padrão
func (r *Restaurant) ApplyDefaults() {
	if r.TaxRate <= 0 {
		r.TaxRate = DefaultTaxRate
	}
	if r.CardFeeRate <= 0 {
		r.CardFeeRate = DefaultCardFeeRate
	}
	if r.TargetCMVPercentage <= 0 {
		r.TargetCMVPercentage = DefaultTargetCMVPercentage
	}
}
