// Package importing migra os dados que o produto guardava no navegador ou no
// backend hospedado para as tabelas do restaurante.
package importing

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sort"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/promoting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const eventSource = "import"

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Importer interface {
	ImportLocalStorage(ctx context.Context, restaurantID string, dump map[string]jsoniter.RawMessage) (*domain.ImportReport, error)
	ImportHosted(ctx context.Context, restaurantID string) (*domain.ImportReport, error)
}

type Repositories struct {
	Restaurants  repository.RestaurantRepository
	Users        repository.UserRepository
	CashFlow     repository.CashFlowRepository
	Inventory    repository.InventoryRepository
	Sheets       repository.TechnicalSheetRepository
	Menu         repository.MenuItemRepository
	Promotions   repository.PromotionRepository
	Goals        repository.GoalRepository
	Achievements repository.AchievementRepository
	Alerts       repository.SystemAlertRepository
}

type Service struct {
	repos     Repositories
	hosted    hosted.HostedIntegrator
	publisher events.Publisher
}

func NewService(repos Repositories, hostedIntegrator hosted.HostedIntegrator, publisher events.Publisher) Importer {
	return &Service{
		repos:     repos,
		hosted:    hostedIntegrator,
		publisher: publisher,
	}
}

// batch reúne os registros já convertidos, prontos para gravação
type batch struct {
	restaurant   *domain.Restaurant
	inventory    []*domain.InventoryItem
	sheets       []*domain.TechnicalSheet
	menu         []*domain.MenuItem
	cashFlow     []*domain.CashFlowEntry
	promotions   []*domain.Promotion
	goals        []*domain.Goal
	achievements []*domain.Achievement
	alerts       []*domain.SystemAlert
}

// ImportLocalStorage importa o conteúdo do armazenamento local do navegador.
// Chaves malformadas são puladas e registradas no relatório; as demais seguem.
func (s *Service) ImportLocalStorage(ctx context.Context, restaurantID string, dump map[string]jsoniter.RawMessage) (*domain.ImportReport, error) {
	if len(dump) == 0 {
		return nil, business.Missing("nenhum dado para importar")
	}

	restaurant, err := s.loadRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	report := domain.NewImportReport(restaurantID, domain.ImportSourceLocalStorage)
	b := &batch{}

	keys := make([]string, 0, len(dump))
	for key := range dump {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		payload, err := unwrap(dump[key])
		if err != nil {
			report.Skip(key, err.Error())
			continue
		}

		switch key {
		case KeyRestaurantData:
			var legacy legacyRestaurant
			if err := json.Unmarshal(payload, &legacy); err != nil {
				report.Skip(key, "objeto inválido: "+err.Error())
				continue
			}
			legacy.applyTo(restaurant)
			b.restaurant = restaurant
		case KeyInventoryItems:
			b.inventory = decodeRecords(report, key, payload, func(l legacyInventoryItem) (*domain.InventoryItem, error) {
				return l.toDomain(restaurantID)
			})
		case KeyTechnicalSheets:
			b.sheets = decodeRecords(report, key, payload, func(l legacyTechnicalSheet) (*domain.TechnicalSheet, error) {
				return l.toDomain(restaurantID)
			})
		case KeyMenuItems:
			b.menu = decodeRecords(report, key, payload, func(l legacyMenuItem) (*domain.MenuItem, error) {
				return l.toDomain(restaurantID)
			})
		case KeyCashFlow:
			b.cashFlow = decodeRecords(report, key, payload, func(l legacyCashFlow) (*domain.CashFlowEntry, error) {
				entry, err := l.toDomain(restaurantID)
				if err != nil {
					return nil, err
				}
				return entry, bookkeeping.Validate(entry)
			})
		case KeyPromotions:
			b.promotions = decodeRecords(report, key, payload, func(l legacyPromotion) (*domain.Promotion, error) {
				promotion, err := l.toDomain(restaurantID)
				if err != nil {
					return nil, err
				}
				return promotion, promoting.Validate(promotion)
			})
		case KeyGoals:
			b.goals = decodeRecords(report, key, payload, func(l legacyGoal) (*domain.Goal, error) {
				return l.toDomain(restaurantID)
			})
		case KeyAchievements:
			b.achievements = decodeRecords(report, key, payload, func(l legacyAchievement) (*domain.Achievement, error) {
				return l.toDomain(restaurantID)
			})
		case KeySystemAlerts:
			b.alerts = decodeRecords(report, key, payload, func(l legacyAlert) (*domain.SystemAlert, error) {
				return l.toDomain(restaurantID)
			})
		default:
			// financialData é derivado dos lançamentos e é recalculado
			report.Ignored = append(report.Ignored, key)
		}
	}

	if err := s.persist(ctx, b, report, keyNames); err != nil {
		return nil, err
	}

	return s.finish(ctx, report), nil
}

// ImportHosted copia as tabelas do restaurante no backend hospedado
func (s *Service) ImportHosted(ctx context.Context, restaurantID string) (*domain.ImportReport, error) {
	restaurant, err := s.loadRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.hosted.Snapshot(ctx, restaurantID)
	if err != nil {
		return nil, business.External(err, "erro ao ler o backend hospedado")
	}

	report := domain.NewImportReport(restaurantID, domain.ImportSourceHosted)

	if err := s.importMembers(ctx, restaurantID, snapshot.Profiles, snapshot.Members, report); err != nil {
		return nil, err
	}

	b := convertSnapshot(restaurant, snapshot, report)
	if err := s.persist(ctx, b, report, tableNames); err != nil {
		return nil, err
	}

	return s.finish(ctx, report), nil
}

func (s *Service) loadRestaurant(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	restaurant, err := s.repos.Restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, business.Database(err, "erro ao buscar restaurante")
	}
	if restaurant == nil {
		return nil, business.NotFound("restaurante não encontrado")
	}
	return restaurant, nil
}

// reportNames traduz cada grupo do lote para a chave usada no relatório
type reportNames struct {
	restaurant, inventory, sheets, menu, cashFlow, promotions, goals, achievements, alerts string
}

var keyNames = reportNames{
	restaurant:   KeyRestaurantData,
	inventory:    KeyInventoryItems,
	sheets:       KeyTechnicalSheets,
	menu:         KeyMenuItems,
	cashFlow:     KeyCashFlow,
	promotions:   KeyPromotions,
	goals:        KeyGoals,
	achievements: KeyAchievements,
	alerts:       KeySystemAlerts,
}

// persist grava o lote na ordem de dependência: estoque antes das fichas,
// fichas antes do cardápio.
func (s *Service) persist(ctx context.Context, b *batch, report *domain.ImportReport, names reportNames) error {
	if b.restaurant != nil {
		if err := s.repos.Restaurants.Upsert(ctx, b.restaurant); err != nil {
			return business.Database(errors.Wrap(err, names.restaurant), "erro ao importar dados do restaurante")
		}
		report.Imported[names.restaurant] = 1
	}

	if len(b.inventory) > 0 {
		result, err := s.repos.Inventory.Upsert(ctx, b.inventory)
		if err != nil {
			return business.Database(errors.Wrap(err, names.inventory), "erro ao importar estoque")
		}
		record(report, names.inventory, result)
	}

	if len(b.sheets) > 0 {
		stock := make(map[string]*domain.InventoryItem, len(b.inventory))
		for _, item := range b.inventory {
			stock[item.ID] = item
		}

		sheets := make([]*domain.TechnicalSheet, 0, len(b.sheets))
		for i, sheet := range b.sheets {
			if err := costing.Compute(sheet, stock); err != nil {
				report.SkipRecord(names.sheets, i, err.Error())
				continue
			}
			sheets = append(sheets, sheet)
		}
		b.sheets = sheets
	}

	if len(b.sheets) > 0 {
		result, err := s.repos.Sheets.Upsert(ctx, b.sheets)
		if err != nil {
			return business.Database(errors.Wrap(err, names.sheets), "erro ao importar fichas técnicas")
		}
		record(report, names.sheets, result)
		b.sheets = withoutConflicts(b.sheets, result.Conflicts)
	}

	if len(b.menu) > 0 {
		costs := make(map[string]float64, len(b.sheets))
		for _, sheet := range b.sheets {
			costs[sheet.ID] = sheet.CostPerPortion
		}
		for _, item := range b.menu {
			if item.TechnicalSheetID == nil {
				continue
			}
			if cost, ok := costs[*item.TechnicalSheetID]; ok {
				item.Cost = cost
			}
		}

		result, err := s.repos.Menu.Upsert(ctx, b.menu)
		if err != nil {
			return business.Database(errors.Wrap(err, names.menu), "erro ao importar cardápio")
		}
		record(report, names.menu, result)
	}

	if len(b.cashFlow) > 0 {
		result, err := s.repos.CashFlow.Upsert(ctx, b.cashFlow)
		if err != nil {
			return business.Database(errors.Wrap(err, names.cashFlow), "erro ao importar fluxo de caixa")
		}
		record(report, names.cashFlow, result)
	}

	if len(b.promotions) > 0 {
		result, err := s.repos.Promotions.Upsert(ctx, b.promotions)
		if err != nil {
			return business.Database(errors.Wrap(err, names.promotions), "erro ao importar promoções")
		}
		record(report, names.promotions, result)
	}

	if len(b.goals) > 0 {
		result, err := s.repos.Goals.Upsert(ctx, b.goals)
		if err != nil {
			return business.Database(errors.Wrap(err, names.goals), "erro ao importar metas")
		}
		record(report, names.goals, result)
	}

	if len(b.achievements) > 0 {
		result, err := s.repos.Achievements.Upsert(ctx, b.achievements)
		if err != nil {
			return business.Database(errors.Wrap(err, names.achievements), "erro ao importar conquistas")
		}
		record(report, names.achievements, result)
	}

	if len(b.alerts) > 0 {
		result, err := s.repos.Alerts.Upsert(ctx, b.alerts)
		if err != nil {
			return business.Database(errors.Wrap(err, names.alerts), "erro ao importar alertas")
		}
		record(report, names.alerts, result)
	}

	return nil
}

// record contabiliza o lote gravado. Ids que já pertencem a outro restaurante
// não são gravados e entram no relatório como descartados.
func record(report *domain.ImportReport, key string, result *repository.UpsertResult) {
	report.Imported[key] = result.Written
	for _, id := range result.Conflicts {
		report.Skip(key, fmt.Sprintf("registro %s pertence a outro restaurante", id))
	}
}

func withoutConflicts(sheets []*domain.TechnicalSheet, conflicts []string) []*domain.TechnicalSheet {
	if len(conflicts) == 0 {
		return sheets
	}
	kept := make([]*domain.TechnicalSheet, 0, len(sheets))
	for _, sheet := range sheets {
		if !slices.Contains(conflicts, sheet.ID) {
			kept = append(kept, sheet)
		}
	}
	return kept
}

// finish fecha o relatório e avisa os assinantes sobre os dados novos
func (s *Service) finish(ctx context.Context, report *domain.ImportReport) *domain.ImportReport {
	report.FinishedAt = time.Now()

	imported := func(keys ...string) bool {
		for _, key := range keys {
			if report.Imported[key] > 0 {
				return true
			}
		}
		return false
	}

	if imported(KeyCashFlow, tableNames.cashFlow) {
		s.publish(ctx, events.FinancialDataUpdated, report.RestaurantID)
	}
	if imported(KeyInventoryItems, tableNames.inventory) {
		s.publish(ctx, events.InventoryUpdated, report.RestaurantID)
	}
	if imported(KeyGoals, KeyAchievements, tableNames.goals, tableNames.achievements) {
		s.publish(ctx, events.GoalsUpdated, report.RestaurantID)
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": report.RestaurantID,
		"source":        report.Source,
		"imported":      report.Imported,
		"skipped":       len(report.Skipped),
		"ignored":       report.Ignored,
	}).Info("Importação concluída")

	return report
}

func (s *Service) publish(ctx context.Context, eventType events.Type, restaurantID string) {
	s.publisher.Publish(ctx, events.NewChange(eventType, restaurantID, eventSource, "", events.ActionImported))
}

// unwrap aceita tanto o JSON direto quanto uma string contendo JSON,
// formato em que o navegador guardava os valores.
func unwrap(raw jsoniter.RawMessage) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("valor vazio")
	}

	raw = bytes.TrimSpace(raw)
	if raw[0] != '"' {
		if !json.Valid(raw) {
			return nil, fmt.Errorf("JSON inválido")
		}
		return raw, nil
	}

	var inner string
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, fmt.Errorf("texto inválido: %w", err)
	}
	if !json.Valid([]byte(inner)) {
		return nil, fmt.Errorf("JSON inválido dentro do texto")
	}
	return []byte(inner), nil
}

// decodeRecords converte cada elemento da lista separadamente para que um
// registro ruim não descarte a chave inteira.
func decodeRecords[L any, D any](report *domain.ImportReport, key string, payload []byte, convert func(L) (D, error)) []D {
	var rawItems []jsoniter.RawMessage
	if err := json.Unmarshal(payload, &rawItems); err != nil {
		report.Skip(key, "lista esperada: "+err.Error())
		return nil
	}

	result := make([]D, 0, len(rawItems))
	for i, raw := range rawItems {
		var legacy L
		if err := json.Unmarshal(raw, &legacy); err != nil {
			report.SkipRecord(key, i, err.Error())
			continue
		}

		converted, err := convert(legacy)
		if err != nil {
			report.SkipRecord(key, i, err.Error())
			continue
		}
		result = append(result, converted)
	}

	return result
}
