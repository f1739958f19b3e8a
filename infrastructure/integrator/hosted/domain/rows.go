// Package domain contém as linhas das tabelas expostas pelo backend hospedado
package domain

// Tabelas liberadas para leitura no backend hospedado
const (
	TableRestaurants       = "restaurants"
	TableRecipes           = "recipes"
	TableAchievements      = "achievements"
	TableCashFlow          = "cash_flow"
	TableGoals             = "goals"
	TableInventory         = "inventory"
	TableProfiles          = "profiles"
	TableRecipeIngredients = "recipe_ingredients"
	TableRestaurantMembers = "restaurant_members"
)

var AllowedTables = map[string]struct{}{
	TableRestaurants:       {},
	TableRecipes:           {},
	TableAchievements:      {},
	TableCashFlow:          {},
	TableGoals:             {},
	TableInventory:         {},
	TableProfiles:          {},
	TableRecipeIngredients: {},
	TableRestaurantMembers: {},
}

type RestaurantRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CNPJ      *string `json:"cnpj"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	CreatedAt string  `json:"created_at"`
}

type RecipeRow struct {
	ID              string   `json:"id"`
	RestaurantID    string   `json:"restaurant_id"`
	Name            string   `json:"name"`
	Category        *string  `json:"category"`
	Yield           float64  `json:"yield"`
	PreparationTime *int     `json:"preparation_time"`
	Instructions    *string  `json:"instructions"`
	SellingPrice    *float64 `json:"selling_price"`
	MarkupFactor    *float64 `json:"markup_factor"`
	CreatedAt       string   `json:"created_at"`
}

type RecipeIngredientRow struct {
	ID               string   `json:"id"`
	RecipeID         string   `json:"recipe_id"`
	InventoryItemID  *string  `json:"inventory_item_id"`
	Name             string   `json:"name"`
	Quantity         float64  `json:"quantity"`
	Unit             string   `json:"unit"`
	UnitCost         float64  `json:"unit_cost"`
	CorrectionFactor *float64 `json:"correction_factor"`
}

type AchievementRow struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Code         string  `json:"code"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Points       int     `json:"points"`
	Unlocked     bool    `json:"unlocked"`
	UnlockedAt   *string `json:"unlocked_at"`
}

type CashFlowRow struct {
	ID            string  `json:"id"`
	RestaurantID  string  `json:"restaurant_id"`
	Date          string  `json:"date"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Type          string  `json:"type"`
	Category      *string `json:"category"`
	PaymentMethod *string `json:"payment_method"`
	Status        *string `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

type GoalRow struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Unit         *string `json:"unit"`
	Deadline     *string `json:"deadline"`
	Reward       *string `json:"reward"`
	Metric       *string `json:"metric"`
	Completed    bool    `json:"completed"`
	CreatedAt    string  `json:"created_at"`
}

type InventoryRow struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Category     *string `json:"category"`
	Unit         *string `json:"unit"`
	Quantity     float64 `json:"quantity"`
	MinQuantity  float64 `json:"min_quantity"`
	UnitCost     float64 `json:"unit_cost"`
	Supplier     *string `json:"supplier"`
	ExpiryDate   *string `json:"expiry_date"`
}

type ProfileRow struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

type RestaurantMemberRow struct {
	RestaurantID string `json:"restaurant_id"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

// Snapshot reúne as linhas de todas as tabelas de um restaurante
type Snapshot struct {
	Restaurant        *RestaurantRow
	Recipes           []RecipeRow
	RecipeIngredients []RecipeIngredientRow
	Achievements      []AchievementRow
	CashFlow          []CashFlowRow
	Goals             []GoalRow
	Inventory         []InventoryRow
	Profiles          []ProfileRow
	Members           []RestaurantMemberRow
}
