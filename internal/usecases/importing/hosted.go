package importing

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	hosteddomain "github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

var tableNames = reportNames{
	restaurant:   hosteddomain.TableRestaurants,
	inventory:    hosteddomain.TableInventory,
	sheets:       hosteddomain.TableRecipes,
	menu:         "menu_items",
	cashFlow:     hosteddomain.TableCashFlow,
	promotions:   "promotions",
	goals:        hosteddomain.TableGoals,
	achievements: hosteddomain.TableAchievements,
	alerts:       "system_alerts",
}

var hostedRoles = map[string]int{
	"owner":   domain.RoleOwner,
	"admin":   domain.RoleOwner,
	"manager": domain.RoleManager,
	"staff":   domain.RoleStaff,
	"member":  domain.RoleStaff,
}

// importMembers grava os perfis pelo email e vincula os membros ao restaurante.
// Perfis novos entram sem senha; o acesso é liberado com a troca de senha.
func (s *Service) importMembers(ctx context.Context, restaurantID string, profiles []hosteddomain.ProfileRow, members []hosteddomain.RestaurantMemberRow, report *domain.ImportReport) error {
	localIDs := make(map[string]int, len(profiles))
	for i, profile := range profiles {
		email := strings.ToLower(strings.TrimSpace(profile.Email))
		if email == "" {
			report.SkipRecord(hosteddomain.TableProfiles, i, "email ausente")
			continue
		}

		name, lastname := splitFullName(profile.FullName)
		id, err := s.repos.Users.UpsertByEmail(ctx, &domain.User{
			Name:      name,
			Lastname:  lastname,
			Email:     email,
			Active:    true,
			RoleID:    domain.RoleStaff,
			AvatarURL: profile.AvatarURL,
		})
		if err != nil {
			return business.Database(err, "erro ao importar perfis")
		}
		localIDs[profile.ID] = id
	}
	if len(localIDs) > 0 {
		report.Imported[hosteddomain.TableProfiles] = len(localIDs)
	}

	added := 0
	for i, member := range members {
		userID, ok := localIDs[member.UserID]
		if !ok {
			report.SkipRecord(hosteddomain.TableRestaurantMembers, i, "perfil do membro não encontrado")
			continue
		}

		role, ok := hostedRoles[strings.ToLower(member.Role)]
		if !ok {
			role = domain.RoleStaff
		}

		err := s.repos.Restaurants.AddMember(ctx, &domain.RestaurantMember{
			RestaurantID: restaurantID,
			UserID:       userID,
			Role:         role,
		})
		if err != nil {
			return business.Database(err, "erro ao importar membros")
		}
		added++
	}
	if added > 0 {
		report.Imported[hosteddomain.TableRestaurantMembers] = added
	}

	return nil
}

func splitFullName(fullName *string) (string, string) {
	if fullName == nil {
		return "", ""
	}
	parts := strings.Fields(*fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// convertSnapshot transforma as linhas do backend hospedado no lote local
func convertSnapshot(restaurant *domain.Restaurant, snapshot *hosteddomain.Snapshot, report *domain.ImportReport) *batch {
	b := &batch{}
	restaurantID := restaurant.ID
	now := time.Now()

	if row := snapshot.Restaurant; row != nil {
		legacy := legacyRestaurant{
			Name:    row.Name,
			CNPJ:    deref(row.CNPJ),
			Address: deref(row.Address),
			Phone:   deref(row.Phone),
			Email:   deref(row.Email),
		}
		legacy.applyTo(restaurant)
		b.restaurant = restaurant
	}

	for i, row := range snapshot.Inventory {
		if strings.TrimSpace(row.Name) == "" {
			report.SkipRecord(hosteddomain.TableInventory, i, "nome ausente")
			continue
		}
		b.inventory = append(b.inventory, &domain.InventoryItem{
			ID:           row.ID,
			RestaurantID: restaurantID,
			Name:         row.Name,
			Category:     deref(row.Category),
			Unit:         deref(row.Unit),
			Quantity:     row.Quantity,
			MinQuantity:  row.MinQuantity,
			UnitCost:     row.UnitCost,
			Supplier:     row.Supplier,
			ExpiryDate:   parseOptionalDate(row.ExpiryDate),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	ingredients := make(map[string][]domain.TechnicalSheetIngredient, len(snapshot.Recipes))
	for _, row := range snapshot.RecipeIngredients {
		correction := 1.0
		if row.CorrectionFactor != nil {
			correction = *row.CorrectionFactor
		}
		ingredients[row.RecipeID] = append(ingredients[row.RecipeID], domain.TechnicalSheetIngredient{
			ID:               row.ID,
			InventoryItemID:  row.InventoryItemID,
			Name:             row.Name,
			Quantity:         row.Quantity,
			Unit:             row.Unit,
			UnitCost:         row.UnitCost,
			CorrectionFactor: correction,
		})
	}

	for _, row := range snapshot.Recipes {
		sheet := &domain.TechnicalSheet{
			ID:           row.ID,
			RestaurantID: restaurantID,
			Name:         row.Name,
			Category:     deref(row.Category),
			Yield:        row.Yield,
			Instructions: deref(row.Instructions),
			MarkupFactor: row.MarkupFactor,
			SellingPrice: row.SellingPrice,
			Ingredients:  ingredients[row.ID],
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if row.PreparationTime != nil {
			sheet.PreparationTime = *row.PreparationTime
		}
		if sheet.Ingredients == nil {
			sheet.Ingredients = []domain.TechnicalSheetIngredient{}
		}
		b.sheets = append(b.sheets, sheet)
	}

	for i, row := range snapshot.CashFlow {
		legacy := legacyCashFlow{
			ID:            flexString(row.ID),
			Date:          row.Date,
			Description:   row.Description,
			Amount:        flexFloat(row.Amount),
			Type:          row.Type,
			Category:      deref(row.Category),
			PaymentMethod: deref(row.PaymentMethod),
			Status:        deref(row.Status),
		}
		entry, err := legacy.toDomain(restaurantID)
		if err == nil {
			err = bookkeeping.Validate(entry)
		}
		if err != nil {
			report.SkipRecord(hosteddomain.TableCashFlow, i, err.Error())
			continue
		}
		b.cashFlow = append(b.cashFlow, entry)
	}

	for i, row := range snapshot.Goals {
		legacy := legacyGoal{
			ID:           flexString(row.ID),
			Title:        row.Title,
			Description:  deref(row.Description),
			Category:     deref(row.Category),
			TargetValue:  flexFloat(row.TargetValue),
			CurrentValue: flexFloat(row.CurrentValue),
			Unit:         deref(row.Unit),
			Deadline:     row.Deadline,
			Reward:       deref(row.Reward),
			Metric:       deref(row.Metric),
			Completed:    row.Completed,
		}
		goal, err := legacy.toDomain(restaurantID)
		if err != nil {
			report.SkipRecord(hosteddomain.TableGoals, i, err.Error())
			continue
		}
		b.goals = append(b.goals, goal)
	}

	for i, row := range snapshot.Achievements {
		if strings.TrimSpace(row.Code) == "" {
			report.SkipRecord(hosteddomain.TableAchievements, i, "código ausente")
			continue
		}
		achievement := &domain.Achievement{
			ID:           row.ID,
			RestaurantID: restaurantID,
			Code:         row.Code,
			Title:        row.Title,
			Description:  deref(row.Description),
			Category:     deref(row.Category),
			Points:       row.Points,
			Unlocked:     row.Unlocked,
		}
		if achievement.ID == "" {
			achievement.ID = utils.NewID()
		}
		if row.Unlocked {
			achievement.UnlockedAt = parseOptionalDate(row.UnlockedAt)
		}
		b.achievements = append(b.achievements, achievement)
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_id": restaurantID,
		"skipped":       len(report.Skipped),
	}).Debug("Snapshot convertido para importação")

	return b
}
