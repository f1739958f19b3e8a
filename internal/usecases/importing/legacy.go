package importing

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

// Chaves do armazenamento local do navegador
const (
	KeyCashFlow        = "cashFlow"
	KeyPromotions      = "promotions"
	KeyGoals           = "goals"
	KeyAchievements    = "achievements"
	KeyInventoryItems  = "inventoryItems"
	KeyMenuItems       = "menuItems"
	KeySystemAlerts    = "systemAlerts"
	KeyFinancialData   = "financialData"
	KeyTechnicalSheets = "technicalSheets"
	KeyRestaurantData  = "restaurantData"
)

// flexFloat aceita número, texto numérico ("12,50") ou vazio
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}

	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		*f = 0
		return nil
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return fmt.Errorf("número inválido: %s", string(data))
	}
	*f = flexFloat(v)
	return nil
}

// flexString aceita texto ou número, já que ids antigos vinham de Date.now()
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*s = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	*s = flexString(data)
	return nil
}

func (s flexString) orNewID() string {
	if id := strings.TrimSpace(string(s)); id != "" {
		return id
	}
	return utils.NewID()
}

func parseLegacyDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data ausente")
	}
	return utils.ParseFlexibleDate(value)
}

func parseOptionalDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, err := parseLegacyDate(*value)
	if err != nil {
		return nil
	}
	return &t
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

type legacyCashFlow struct {
	ID            flexString `json:"id"`
	Date          string     `json:"date"`
	Description   string     `json:"description"`
	Amount        flexFloat  `json:"amount"`
	Type          string     `json:"type"`
	Category      string     `json:"category"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
}

var legacyCashFlowTypes = map[string]domain.CashFlowType{
	"income":  domain.CashFlowIncome,
	"receita": domain.CashFlowIncome,
	"entrada": domain.CashFlowIncome,
	"expense": domain.CashFlowExpense,
	"despesa": domain.CashFlowExpense,
	"saida":   domain.CashFlowExpense,
}

func (l legacyCashFlow) toDomain(restaurantID string) (*domain.CashFlowEntry, error) {
	date, err := parseLegacyDate(l.Date)
	if err != nil {
		return nil, err
	}

	kind, ok := legacyCashFlowTypes[utils.NormalizeText(l.Type)]
	if !ok {
		return nil, fmt.Errorf("tipo desconhecido: %q", l.Type)
	}

	status := domain.CashFlowStatus(strings.ToLower(strings.TrimSpace(l.Status)))
	if status == "" {
		status = domain.CashFlowCompleted
	}

	now := time.Now()
	return &domain.CashFlowEntry{
		ID:            l.ID.orNewID(),
		RestaurantID:  restaurantID,
		Date:          date,
		Description:   strings.TrimSpace(l.Description),
		Amount:        float64(l.Amount),
		Type:          kind,
		Category:      l.Category,
		PaymentMethod: l.PaymentMethod,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

type legacyInventoryItem struct {
	ID           flexString `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Unit         string     `json:"unit"`
	Quantity     *flexFloat `json:"quantity"`
	CurrentStock *flexFloat `json:"currentStock"`
	MinQuantity  *flexFloat `json:"minQuantity"`
	MinStock     *flexFloat `json:"minStock"`
	UnitCost     *flexFloat `json:"unitCost"`
	Cost         *flexFloat `json:"cost"`
	Supplier     string     `json:"supplier"`
	ExpiryDate   *string    `json:"expiryDate"`
}

// first retorna o primeiro valor presente entre os nomes alternativos do campo
func first(values ...*flexFloat) float64 {
	for _, v := range values {
		if v != nil {
			return float64(*v)
		}
	}
	return 0
}

func (l legacyInventoryItem) toDomain(restaurantID string) (*domain.InventoryItem, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("nome ausente")
	}

	now := time.Now()
	return &domain.InventoryItem{
		ID:           l.ID.orNewID(),
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(l.Name),
		Category:     l.Category,
		Unit:         l.Unit,
		Quantity:     first(l.Quantity, l.CurrentStock),
		MinQuantity:  first(l.MinQuantity, l.MinStock),
		UnitCost:     first(l.UnitCost, l.Cost),
		Supplier:     optionalString(l.Supplier),
		ExpiryDate:   parseOptionalDate(l.ExpiryDate),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

type legacyIngredient struct {
	ID               flexString `json:"id"`
	InventoryItemID  flexString `json:"inventoryItemId"`
	Name             string     `json:"name"`
	Quantity         flexFloat  `json:"quantity"`
	Unit             string     `json:"unit"`
	UnitCost         flexFloat  `json:"unitCost"`
	CorrectionFactor *flexFloat `json:"correctionFactor"`
}

type legacyTechnicalSheet struct {
	ID              flexString         `json:"id"`
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	Yield           *flexFloat         `json:"yield"`
	Servings        *flexFloat         `json:"servings"`
	PreparationTime flexFloat          `json:"preparationTime"`
	Instructions    string             `json:"instructions"`
	MarkupFactor    *flexFloat         `json:"markupFactor"`
	SellingPrice    *flexFloat         `json:"sellingPrice"`
	Ingredients     []legacyIngredient `json:"ingredients"`
}

func (l legacyTechnicalSheet) toDomain(restaurantID string) (*domain.TechnicalSheet, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("nome ausente")
	}

	now := time.Now()
	sheet := &domain.TechnicalSheet{
		ID:              l.ID.orNewID(),
		RestaurantID:    restaurantID,
		Name:            strings.TrimSpace(l.Name),
		Category:        l.Category,
		Yield:           first(l.Yield, l.Servings),
		PreparationTime: int(l.PreparationTime),
		Instructions:    l.Instructions,
		Ingredients:     make([]domain.TechnicalSheetIngredient, 0, len(l.Ingredients)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if l.MarkupFactor != nil {
		markup := float64(*l.MarkupFactor)
		sheet.MarkupFactor = &markup
	}
	if l.SellingPrice != nil {
		price := float64(*l.SellingPrice)
		sheet.SellingPrice = &price
	}

	for _, ingredient := range l.Ingredients {
		converted := domain.TechnicalSheetIngredient{
			ID:               ingredient.ID.orNewID(),
			Name:             ingredient.Name,
			Quantity:         float64(ingredient.Quantity),
			Unit:             ingredient.Unit,
			UnitCost:         float64(ingredient.UnitCost),
			CorrectionFactor: first(ingredient.CorrectionFactor),
		}
		if id := string(ingredient.InventoryItemID); id != "" {
			converted.InventoryItemID = &id
		}
		sheet.Ingredients = append(sheet.Ingredients, converted)
	}

	return sheet, nil
}

type legacyMenuItem struct {
	ID               flexString `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Category         string     `json:"category"`
	Price            flexFloat  `json:"price"`
	Cost             flexFloat  `json:"cost"`
	TechnicalSheetID flexString `json:"technicalSheetId"`
	Available        *bool      `json:"available"`
}

func (l legacyMenuItem) toDomain(restaurantID string) (*domain.MenuItem, error) {
	if strings.TrimSpace(l.Name) == "" {
		return nil, fmt.Errorf("nome ausente")
	}
	if l.Price < 0 {
		return nil, fmt.Errorf("preço negativo")
	}

	now := time.Now()
	item := &domain.MenuItem{
		ID:           l.ID.orNewID(),
		RestaurantID: restaurantID,
		Name:         strings.TrimSpace(l.Name),
		Description:  l.Description,
		Category:     l.Category,
		Price:        float64(l.Price),
		Cost:         float64(l.Cost),
		Available:    l.Available == nil || *l.Available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if id := string(l.TechnicalSheetID); id != "" {
		item.TechnicalSheetID = &id
	}
	return item, nil
}

type legacyPromotionProduct struct {
	MenuItemID flexString `json:"menuItemId"`
	Name       string     `json:"name"`
	Quantity   flexFloat  `json:"quantity"`
	Price      flexFloat  `json:"price"`
}

type legacyPromotion struct {
	ID                 flexString               `json:"id"`
	Name               string                   `json:"name"`
	Description        string                   `json:"description"`
	Type               string                   `json:"type"`
	StartDate          string                   `json:"startDate"`
	EndDate            string                   `json:"endDate"`
	DaysOfWeek         []int                    `json:"daysOfWeek"`
	StartTime          string                   `json:"startTime"`
	EndTime            string                   `json:"endTime"`
	OriginalPrice      flexFloat                `json:"originalPrice"`
	PromotionalPrice   flexFloat                `json:"promotionalPrice"`
	DiscountPercentage flexFloat                `json:"discountPercentage"`
	Products           []legacyPromotionProduct `json:"products"`
	Active             *bool                    `json:"active"`
	IsActive           *bool                    `json:"isActive"`
}

func (l legacyPromotion) toDomain(restaurantID string) (*domain.Promotion, error) {
	start, err := parseLegacyDate(l.StartDate)
	if err != nil {
		return nil, fmt.Errorf("data inicial: %w", err)
	}
	end, err := parseLegacyDate(l.EndDate)
	if err != nil {
		return nil, fmt.Errorf("data final: %w", err)
	}

	active := true
	if l.Active != nil {
		active = *l.Active
	} else if l.IsActive != nil {
		active = *l.IsActive
	}

	now := time.Now()
	promotion := &domain.Promotion{
		ID:                 l.ID.orNewID(),
		RestaurantID:       restaurantID,
		Name:               strings.TrimSpace(l.Name),
		Description:        l.Description,
		Type:               domain.PromotionType(strings.ToLower(strings.TrimSpace(l.Type))),
		StartDate:          start,
		EndDate:            end,
		DaysOfWeek:         l.DaysOfWeek,
		StartTime:          optionalString(l.StartTime),
		EndTime:            optionalString(l.EndTime),
		OriginalPrice:      float64(l.OriginalPrice),
		PromotionalPrice:   float64(l.PromotionalPrice),
		DiscountPercentage: float64(l.DiscountPercentage),
		Products:           make([]domain.PromotionProduct, 0, len(l.Products)),
		Active:             active,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if promotion.DaysOfWeek == nil {
		promotion.DaysOfWeek = []int{}
	}

	for _, product := range l.Products {
		converted := domain.PromotionProduct{
			Name:     product.Name,
			Quantity: int(product.Quantity),
			Price:    float64(product.Price),
		}
		if id := string(product.MenuItemID); id != "" {
			converted.MenuItemID = &id
		}
		promotion.Products = append(promotion.Products, converted)
	}

	return promotion, nil
}

type legacyGoal struct {
	ID           flexString `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	TargetValue  flexFloat  `json:"targetValue"`
	CurrentValue flexFloat  `json:"currentValue"`
	Unit         string     `json:"unit"`
	Deadline     *string    `json:"deadline"`
	Reward       string     `json:"reward"`
	Metric       string     `json:"metric"`
	Completed    bool       `json:"completed"`
	CompletedAt  *string    `json:"completedAt"`
}

func (l legacyGoal) toDomain(restaurantID string) (*domain.Goal, error) {
	if strings.TrimSpace(l.Title) == "" {
		return nil, fmt.Errorf("título ausente")
	}
	if l.TargetValue <= 0 {
		return nil, fmt.Errorf("valor alvo deve ser maior que zero")
	}

	now := time.Now()
	goal := &domain.Goal{
		ID:           l.ID.orNewID(),
		RestaurantID: restaurantID,
		Title:        strings.TrimSpace(l.Title),
		Description:  l.Description,
		Category:     l.Category,
		TargetValue:  float64(l.TargetValue),
		CurrentValue: float64(l.CurrentValue),
		Unit:         l.Unit,
		Deadline:     parseOptionalDate(l.Deadline),
		Reward:       optionalString(l.Reward),
		Completed:    l.Completed,
		CompletedAt:  parseOptionalDate(l.CompletedAt),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// métricas desconhecidas viram metas manuais
	if metric := domain.GoalMetric(strings.TrimSpace(l.Metric)); metric.IsValid() {
		goal.Metric = &metric
	}
	if goal.Completed && goal.CompletedAt == nil {
		goal.CompletedAt = &now
	}
	return goal, nil
}

type legacyAchievement struct {
	ID          flexString `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Points      flexFloat  `json:"points"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *string    `json:"unlockedAt"`
}

func (l legacyAchievement) toDomain(restaurantID string) (*domain.Achievement, error) {
	code := strings.TrimSpace(string(l.ID))
	if code == "" {
		return nil, fmt.Errorf("id ausente")
	}

	achievement := &domain.Achievement{
		ID:           utils.NewID(),
		RestaurantID: restaurantID,
		Code:         code,
		Title:        l.Title,
		Description:  l.Description,
		Category:     l.Category,
		Points:       int(l.Points),
		Unlocked:     l.Unlocked,
	}
	if l.Unlocked {
		achievement.UnlockedAt = parseOptionalDate(l.UnlockedAt)
	}
	return achievement, nil
}

type legacyAlert struct {
	ID        flexString `json:"id"`
	Type      string     `json:"type"`
	Severity  string     `json:"severity"`
	Priority  string     `json:"priority"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	Timestamp *string    `json:"timestamp"`
	CreatedAt *string    `json:"createdAt"`
}

var legacySeverities = map[string]domain.AlertSeverity{
	"info":     domain.SeverityInfo,
	"low":      domain.SeverityInfo,
	"warning":  domain.SeverityWarning,
	"medium":   domain.SeverityWarning,
	"critical": domain.SeverityCritical,
	"high":     domain.SeverityCritical,
	"error":    domain.SeverityCritical,
}

var legacyAlertTypes = map[string]domain.AlertType{
	string(domain.AlertLowStock):            domain.AlertLowStock,
	"lowstock":                              domain.AlertLowStock,
	"stock":                                 domain.AlertLowStock,
	string(domain.AlertGoalCompleted):       domain.AlertGoalCompleted,
	"goal":                                  domain.AlertGoalCompleted,
	string(domain.AlertAchievementUnlocked): domain.AlertAchievementUnlocked,
	"achievement":                           domain.AlertAchievementUnlocked,
	string(domain.AlertPaymentDue):          domain.AlertPaymentDue,
	"payment":                               domain.AlertPaymentDue,
}

func (l legacyAlert) toDomain(restaurantID string) (*domain.SystemAlert, error) {
	if strings.TrimSpace(l.Title) == "" && strings.TrimSpace(l.Message) == "" {
		return nil, fmt.Errorf("alerta sem título e mensagem")
	}

	severity, ok := legacySeverities[strings.ToLower(l.Severity)]
	if !ok {
		severity, ok = legacySeverities[strings.ToLower(l.Priority)]
	}
	if !ok {
		severity = domain.SeverityInfo
	}

	alertType, ok := legacyAlertTypes[strings.ToLower(l.Type)]
	if !ok {
		alertType = domain.AlertSystem
	}

	createdAt := time.Now()
	if t := parseOptionalDate(l.Timestamp); t != nil {
		createdAt = *t
	} else if t := parseOptionalDate(l.CreatedAt); t != nil {
		createdAt = *t
	}

	return &domain.SystemAlert{
		ID:           l.ID.orNewID(),
		RestaurantID: restaurantID,
		Type:         alertType,
		Severity:     severity,
		Title:        l.Title,
		Message:      l.Message,
		Read:         l.Read,
		CreatedAt:    createdAt,
	}, nil
}

type legacyRestaurant struct {
	Name                string     `json:"name"`
	CNPJ                string     `json:"cnpj"`
	Address             string     `json:"address"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email"`
	TaxRate             *flexFloat `json:"taxRate"`
	CardFeeRate         *flexFloat `json:"cardFeeRate"`
	TargetCMVPercentage *flexFloat `json:"targetCmv"`
}

// applyTo sobrescreve apenas os campos preenchidos no dado antigo
func (l legacyRestaurant) applyTo(restaurant *domain.Restaurant) {
	if name := strings.TrimSpace(l.Name); name != "" {
		restaurant.Name = name
	}
	if v := optionalString(l.CNPJ); v != nil {
		restaurant.Document = v
	}
	if v := optionalString(l.Address); v != nil {
		restaurant.Address = v
	}
	if v := optionalString(l.Phone); v != nil {
		restaurant.Phone = v
	}
	if v := optionalString(l.Email); v != nil {
		restaurant.Email = v
	}
	if l.TaxRate != nil {
		restaurant.TaxRate = float64(*l.TaxRate)
	}
	if l.CardFeeRate != nil {
		restaurant.CardFeeRate = float64(*l.CardFeeRate)
	}
	if l.TargetCMVPercentage != nil {
		restaurant.TargetCMVPercentage = float64(*l.TargetCMVPercentage)
	}
	restaurant.ApplyDefaults()
}
