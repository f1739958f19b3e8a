// Package gamifying cuida das metas, do catálogo de conquistas e do perfil de pontos
package gamifying

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

const eventSource = "goals"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Gamifier interface {
	CreateGoal(ctx context.Context, restaurantID string, goal *domain.Goal) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, restaurantID string, id string, goal *domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, restaurantID string, id string) error
	GetGoal(ctx context.Context, restaurantID string, id string) (*domain.Goal, error)
	ListGoals(ctx context.Context, restaurantID string) ([]*domain.Goal, error)
	UpdateProgress(ctx context.Context, restaurantID string, id string, value float64) (*domain.Goal, error)
	SyncGoals(ctx context.Context, restaurantID string) ([]*domain.Goal, error)
	SyncAchievements(ctx context.Context, restaurantID string) ([]*domain.Achievement, error)
	ListAchievements(ctx context.Context, restaurantID string) ([]*domain.Achievement, error)
	Profile(ctx context.Context, restaurantID string) (*domain.GamificationProfile, error)
}

type Repositories struct {
	Goals        repository.GoalRepository
	Achievements repository.AchievementRepository
	Alerts       repository.SystemAlertRepository
	Restaurants  repository.RestaurantRepository
	CashFlow     repository.CashFlowRepository
	Inventory    repository.InventoryRepository
	Sheets       repository.TechnicalSheetRepository
	Promotions   repository.PromotionRepository
}

type Service struct {
	repos     Repositories
	publisher events.Publisher
	now       func() time.Time
}

func NewService(repos Repositories, publisher events.Publisher) Gamifier {
	return &Service{
		repos:     repos,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) CreateGoal(ctx context.Context, restaurantID string, goal *domain.Goal) (*domain.Goal, error) {
	goal.RestaurantID = restaurantID
	if goal.ID == "" {
		goal.ID = utils.NewID()
	}
	goal.Completed = false
	goal.CompletedAt = nil

	if err := validate(goal); err != nil {
		return nil, err
	}
	completedNow := Evaluate(goal, s.now())

	if err := s.repos.Goals.Create(ctx, goal); err != nil {
		return nil, business.Database(err, "erro ao criar meta")
	}
	if completedNow {
		s.notifyCompleted(ctx, goal)
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"goal_id":       goal.ID,
		"target":        goal.TargetValue,
	}).Info("Meta criada")

	s.publish(ctx, restaurantID, goal.ID, events.ActionCreated)
	return goal, nil
}

func (s *Service) UpdateGoal(ctx context.Context, restaurantID string, id string, goal *domain.Goal) (*domain.Goal, error) {
	current, err := s.GetGoal(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	goal.ID = id
	goal.RestaurantID = restaurantID
	goal.CreatedAt = current.CreatedAt
	goal.Completed = current.Completed
	goal.CompletedAt = current.CompletedAt

	if err := validate(goal); err != nil {
		return nil, err
	}

	if err := s.save(ctx, goal, Evaluate(goal, s.now())); err != nil {
		return nil, err
	}

	s.publish(ctx, restaurantID, id, events.ActionUpdated)
	return goal, nil
}

func (s *Service) DeleteGoal(ctx context.Context, restaurantID string, id string) error {
	if err := s.repos.Goals.Delete(ctx, restaurantID, id); err != nil {
		return business.Database(err, "meta "+id)
	}

	s.publish(ctx, restaurantID, id, events.ActionDeleted)
	return nil
}

func (s *Service) GetGoal(ctx context.Context, restaurantID string, id string) (*domain.Goal, error) {
	goal, err := s.repos.Goals.GetByID(ctx, restaurantID, id)
	if err != nil {
		return nil, business.Database(err, "erro ao consultar meta")
	}
	if goal == nil {
		return nil, business.NotFound("meta " + id)
	}
	goal.Progress = Progress(goal)
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, restaurantID string) ([]*domain.Goal, error) {
	goals, err := s.repos.Goals.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar metas")
	}
	for _, goal := range goals {
		goal.Progress = Progress(goal)
	}
	return goals, nil
}

// UpdateProgress registra manualmente o valor atual de uma meta
func (s *Service) UpdateProgress(ctx context.Context, restaurantID string, id string, value float64) (*domain.Goal, error) {
	if value < 0 {
		return nil, business.Invalid("valor não pode ser negativo")
	}

	goal, err := s.GetGoal(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}

	goal.CurrentValue = value
	if err := s.save(ctx, goal, Evaluate(goal, s.now())); err != nil {
		return nil, err
	}

	s.publish(ctx, restaurantID, id, events.ActionUpdated)
	return goal, nil
}

// SyncGoals recalcula o valor atual das metas vinculadas a uma métrica
func (s *Service) SyncGoals(ctx context.Context, restaurantID string) ([]*domain.Goal, error) {
	goals, err := s.repos.Goals.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar metas")
	}

	linked := make([]*domain.Goal, 0, len(goals))
	for _, goal := range goals {
		if goal.Metric != nil && goal.Metric.IsValid() {
			linked = append(linked, goal)
		}
	}
	if len(linked) == 0 {
		return linked, nil
	}

	metrics, err := s.collectMetrics(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	changed := 0
	for _, goal := range linked {
		value := MetricValue(*goal.Metric, metrics)
		valueChanged := value != goal.CurrentValue

		goal.CurrentValue = value
		completedNow := Evaluate(goal, now) || EvaluateClosedMonth(goal, metrics, now)
		if !valueChanged && !completedNow {
			continue
		}

		if err := s.save(ctx, goal, completedNow); err != nil {
			return nil, err
		}
		changed++
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"goals":         len(linked),
		"updated":       changed,
	}).Debug("Metas sincronizadas")

	if changed > 0 {
		s.publish(ctx, restaurantID, "", events.ActionSynced)
	}

	return linked, nil
}

// SyncAchievements garante o catálogo do restaurante e desbloqueia as conquistas atingidas
func (s *Service) SyncAchievements(ctx context.Context, restaurantID string) ([]*domain.Achievement, error) {
	if err := s.repos.Achievements.Seed(ctx, Catalogue(restaurantID, utils.NewID)); err != nil {
		return nil, business.Database(err, "erro ao registrar conquistas")
	}

	metrics, err := s.collectMetrics(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	unlocked := make([]*domain.Achievement, 0)
	for _, rule := range catalogue {
		if !rule.Met(metrics) {
			continue
		}

		ok, err := s.repos.Achievements.Unlock(ctx, restaurantID, rule.Code, now)
		if err != nil {
			return unlocked, business.Database(err, "erro ao desbloquear conquista")
		}
		if !ok {
			continue
		}

		unlockedAt := now
		unlocked = append(unlocked, &domain.Achievement{
			RestaurantID: restaurantID,
			Code:         rule.Code,
			Title:        rule.Title,
			Description:  rule.Description,
			Category:     rule.Category,
			Points:       rule.Points,
			Unlocked:     true,
			UnlockedAt:   &unlockedAt,
		})

		code := rule.Code
		if _, err := alerting.Raise(ctx, s.repos.Alerts, &domain.SystemAlert{
			RestaurantID: restaurantID,
			Type:         domain.AlertAchievementUnlocked,
			Severity:     domain.SeverityInfo,
			Title:        "Conquista desbloqueada",
			Message:      fmt.Sprintf("%s (+%d pontos)", rule.Title, rule.Points),
			ReferenceID:  &code,
		}); err != nil {
			logrus.WithError(err).WithField("code", rule.Code).Warn("Erro ao criar alerta de conquista")
		}

		s.publisher.Publish(ctx, events.NewAchievementUnlocked(restaurantID, rule.Code, rule.Title, rule.Points))

		logrus.WithFields(logrus.Fields{
			"restaurant_id": restaurantID,
			"code":          rule.Code,
			"points":        rule.Points,
		}).Info("Conquista desbloqueada")
	}

	return unlocked, nil
}

func (s *Service) ListAchievements(ctx context.Context, restaurantID string) ([]*domain.Achievement, error) {
	achievements, err := s.repos.Achievements.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar conquistas")
	}
	return achievements, nil
}

func (s *Service) Profile(ctx context.Context, restaurantID string) (*domain.GamificationProfile, error) {
	achievements, err := s.ListAchievements(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	goals, err := s.repos.Goals.List(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao listar metas")
	}

	return BuildProfile(achievements, goals), nil
}

// save grava a meta. A conclusão é gravada à parte e só alerta quando esta
// chamada foi a que concluiu a meta.
func (s *Service) save(ctx context.Context, goal *domain.Goal, completedNow bool) error {
	if err := s.repos.Goals.Update(ctx, goal); err != nil {
		return business.Database(err, "meta "+goal.ID)
	}
	if !completedNow {
		return nil
	}

	ok, err := s.repos.Goals.Complete(ctx, goal.RestaurantID, goal.ID, *goal.CompletedAt)
	if err != nil {
		return business.Database(err, "meta "+goal.ID)
	}
	if !ok {
		logrus.WithField("goal_id", goal.ID).Debug("Meta já concluída")
		return nil
	}

	s.notifyCompleted(ctx, goal)
	return nil
}

func (s *Service) notifyCompleted(ctx context.Context, goal *domain.Goal) {
	logrus.WithFields(logrus.Fields{
		"restaurant_id": goal.RestaurantID,
		"goal_id":       goal.ID,
	}).Info("Meta concluída")

	goalID := goal.ID
	if _, err := alerting.Raise(ctx, s.repos.Alerts, &domain.SystemAlert{
		RestaurantID: goal.RestaurantID,
		Type:         domain.AlertGoalCompleted,
		Severity:     domain.SeverityInfo,
		Title:        "Meta concluída",
		Message:      fmt.Sprintf("A meta \"%s\" foi concluída", goal.Title),
		ReferenceID:  &goalID,
	}); err != nil {
		logrus.WithError(err).WithField("goal_id", goal.ID).Warn("Erro ao criar alerta de meta")
	}
}

func (s *Service) collectMetrics(ctx context.Context, restaurantID string) (Metrics, error) {
	var metrics Metrics

	restaurant, err := s.repos.Restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return metrics, business.Database(err, "erro ao consultar restaurante")
	}
	if restaurant == nil {
		return metrics, business.NotFound("restaurante " + restaurantID)
	}
	restaurant.ApplyDefaults()

	entries, err := s.repos.CashFlow.List(ctx, restaurantID, domain.CashFlowFilter{})
	if err != nil {
		return metrics, business.Database(err, "erro ao listar lançamentos")
	}

	inventory, err := s.repos.Inventory.List(ctx, restaurantID)
	if err != nil {
		return metrics, business.Database(err, "erro ao listar estoque")
	}

	sheets, err := s.repos.Sheets.List(ctx, restaurantID)
	if err != nil {
		return metrics, business.Database(err, "erro ao listar fichas técnicas")
	}

	promotions, err := s.repos.Promotions.List(ctx, restaurantID)
	if err != nil {
		return metrics, business.Database(err, "erro ao listar promoções")
	}

	goals, err := s.repos.Goals.List(ctx, restaurantID)
	if err != nil {
		return metrics, business.Database(err, "erro ao listar metas")
	}

	return ComputeMetrics(restaurant, domain.MonthPeriod(s.now()), entries, len(inventory), len(sheets), len(promotions), goals), nil
}

func (s *Service) publish(ctx context.Context, restaurantID, entityID, action string) {
	s.publisher.Publish(ctx, events.NewChange(events.GoalsUpdated, restaurantID, eventSource, entityID, action))
}

// ComputeMetrics consolida os indicadores do mês corrente e as contagens de cadastro
func ComputeMetrics(
	restaurant *domain.Restaurant,
	month domain.Period,
	entries []*domain.CashFlowEntry,
	inventoryItems, technicalSheets, promotions int,
	goals []*domain.Goal,
) Metrics {
	summary, cmv := monthFigures(restaurant, month, entries)
	closed, closedCMV := monthFigures(restaurant, domain.MonthPeriod(month.Start.AddDate(0, -1, 0)), entries)

	active := 0
	for _, entry := range entries {
		if entry.Status != domain.CashFlowCanceled {
			active++
		}
	}

	completed := 0
	for _, goal := range goals {
		if goal.Completed {
			completed++
		}
	}

	return Metrics{
		MonthlyRevenue:      summary.TotalIncome,
		MonthlyExpenses:     summary.TotalExpense,
		MonthlyProfit:       summary.Balance,
		CMVPercentage:       cmv,
		TargetCMV:           restaurant.TargetCMVPercentage,
		CashFlowEntries:     active,
		InventoryItems:      inventoryItems,
		TechnicalSheets:     technicalSheets,
		Promotions:          promotions,
		CompletedGoals:      completed,
		ClosedMonthRevenue:  closed.TotalIncome,
		ClosedMonthExpenses: closed.TotalExpense,
		ClosedMonthCMV:      closedCMV,
	}
}

func monthFigures(restaurant *domain.Restaurant, month domain.Period, entries []*domain.CashFlowEntry) (*domain.CashFlowSummary, float64) {
	monthEntries := make([]*domain.CashFlowEntry, 0, len(entries))
	for _, entry := range entries {
		if month.Contains(entry.Date) {
			monthEntries = append(monthEntries, entry)
		}
	}

	dre := reporting.BuildDRE(restaurant, month, entries)
	return bookkeeping.Summarize(month, monthEntries), dre.Margins.CMVPercentage
}

func MetricValue(metric domain.GoalMetric, m Metrics) float64 {
	switch metric {
	case domain.MetricMonthlyRevenue:
		return m.MonthlyRevenue
	case domain.MetricMonthlyProfit:
		return m.MonthlyProfit
	case domain.MetricMonthlyExpenses:
		return m.MonthlyExpenses
	case domain.MetricCMVPercentage:
		return m.CMVPercentage
	case domain.MetricCashFlowEntries:
		return float64(m.CashFlowEntries)
	case domain.MetricInventoryItems:
		return float64(m.InventoryItems)
	case domain.MetricTechnicalSheets:
		return float64(m.TechnicalSheets)
	}
	return 0
}

// Progress retorna o percentual atingido, limitado a 100.
// Para métricas em que menor é melhor, estar abaixo do alvo vale 100.
func Progress(goal *domain.Goal) float64 {
	if goal.Completed {
		return 100
	}
	if goal.TargetValue <= 0 {
		return 0
	}

	var progress float64
	if goal.Metric != nil && goal.Metric.LowerIsBetter() {
		if goal.CurrentValue <= 0 {
			return 0
		}
		progress = goal.TargetValue / goal.CurrentValue * 100
	} else {
		progress = goal.CurrentValue / goal.TargetValue * 100
	}

	if progress > 100 {
		progress = 100
	}
	return utils.RoundWithTwoDecimalPlace(progress)
}

// Evaluate atualiza progresso e conclusão. A conclusão é definitiva e retorna true
// apenas na primeira vez. Metas em que menor é melhor ficam de fora: o valor do mês
// corrente só cresce, então elas dependem do mês fechado (EvaluateClosedMonth).
func Evaluate(goal *domain.Goal, at time.Time) bool {
	if goal.Completed {
		goal.Progress = 100
		return false
	}

	goal.Progress = Progress(goal)
	if goal.Metric != nil && goal.Metric.LowerIsBetter() {
		return false
	}
	if goal.Progress < 100 {
		return false
	}

	complete(goal, at)
	return true
}

// EvaluateClosedMonth conclui uma meta em que menor é melhor quando o mês anterior
// fechou dentro do teto. A meta precisa existir antes do início do mês corrente.
func EvaluateClosedMonth(goal *domain.Goal, m Metrics, at time.Time) bool {
	if goal.Completed || goal.Metric == nil || !goal.Metric.LowerIsBetter() {
		return false
	}
	if !goal.CreatedAt.Before(domain.MonthPeriod(at).Start) {
		return false
	}

	value := ClosedMonthValue(*goal.Metric, m)
	if value <= 0 || value > goal.TargetValue {
		return false
	}

	complete(goal, at)
	return true
}

func ClosedMonthValue(metric domain.GoalMetric, m Metrics) float64 {
	switch metric {
	case domain.MetricMonthlyExpenses:
		return m.ClosedMonthExpenses
	case domain.MetricCMVPercentage:
		return m.ClosedMonthCMV
	}
	return 0
}

func complete(goal *domain.Goal, at time.Time) {
	goal.Completed = true
	goal.CompletedAt = &at
	goal.Progress = 100
}

func validate(goal *domain.Goal) error {
	if strings.TrimSpace(goal.Title) == "" {
		return business.Missing("título da meta")
	}
	if goal.TargetValue <= 0 {
		return business.Invalid("valor alvo deve ser maior que zero")
	}
	if goal.CurrentValue < 0 {
		return business.Invalid("valor atual não pode ser negativo")
	}
	if goal.Metric != nil && !goal.Metric.IsValid() {
		return business.Invalid("métrica inválida: " + string(*goal.Metric))
	}
	return nil
}
