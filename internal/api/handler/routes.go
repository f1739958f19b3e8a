package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-manager-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/account"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/billing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/costing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/monitoring"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/promoting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/simulating"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking"
	"github.com/vfg2006/restaurant-manager-api/pkg/middleware"
)

const restaurantPath = "/v1/restaurants/:restaurant_id"

type middlewares = []func(http.Handler) http.Handler

// Os papéis abaixo são os do usuário no restaurante da rota, não o perfil global.

// membros de qualquer papel
func member() middlewares {
	return middlewares{middleware.RestaurantMember()}
}

func manager() middlewares {
	return middlewares{middleware.RestaurantRole(domain.RoleOwner, domain.RoleManager)}
}

func owner() middlewares {
	return middlewares{middleware.RestaurantRole(domain.RoleOwner)}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Status(service monitoring.Monitor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/status",
			Method:      http.MethodGet,
			Handler:     GetSystemStatus(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/token/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshToken(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Restaurants(service account.AccountService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/restaurants",
			Method:      http.MethodGet,
			Handler:     ListRestaurants(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/restaurants",
			Method:      http.MethodPost,
			Handler:     CreateRestaurant(service, auth),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        restaurantPath,
			Method:      http.MethodGet,
			Handler:     GetRestaurant(service),
			Middlewares: member(),
		},
		{
			Path:        restaurantPath,
			Method:      http.MethodPut,
			Handler:     UpdateRestaurant(service),
			Middlewares: owner(),
		},
		{
			Path:        restaurantPath + "/members",
			Method:      http.MethodGet,
			Handler:     ListMembers(service),
			Middlewares: manager(),
		},
		{
			Path:        restaurantPath + "/members",
			Method:      http.MethodPost,
			Handler:     AddMember(service),
			Middlewares: owner(),
		},
		{
			Path:        restaurantPath + "/members/:user_id",
			Method:      http.MethodDelete,
			Handler:     RemoveMember(service),
			Middlewares: owner(),
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        restaurantPath + "/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: member(),
		},
	}
}

func CashFlow(service bookkeeping.CashFlowManager) []router.Route {
	base := restaurantPath + "/cash-flow"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListCashFlow(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreateCashFlow(service),
			Middlewares: member(),
		},
		{
			Path:   base + "/:id",
			Method: http.MethodGet,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"summary": CashFlowSummary(service),
			}, GetCashFlow(service)),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCashFlow(service),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCashFlow(service),
			Middlewares: manager(),
		},
	}
}

func TechnicalSheets(service costing.SheetManager) []router.Route {
	base := restaurantPath + "/technical-sheets"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListTechnicalSheets(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreateTechnicalSheet(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodGet,
			Handler:     GetTechnicalSheet(service),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateTechnicalSheet(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteTechnicalSheet(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id/recalculate",
			Method:      http.MethodPost,
			Handler:     RecalculateTechnicalSheet(service),
			Middlewares: manager(),
		},
	}
}

func Inventory(service stocking.InventoryManager) []router.Route {
	base := restaurantPath + "/inventory"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListInventory(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreateInventoryItem(service),
			Middlewares: member(),
		},
		{
			Path:   base + "/:id",
			Method: http.MethodGet,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"low-stock": LowStock(service),
				"valuation": InventoryValuation(service),
			}, GetInventoryItem(service)),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateInventoryItem(service),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInventoryItem(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id/adjust",
			Method:      http.MethodPost,
			Handler:     AdjustInventoryItem(service),
			Middlewares: member(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	base := restaurantPath + "/reports"
	return []router.Route{
		{
			Path:        base + "/dre",
			Method:      http.MethodGet,
			Handler:     GetDRE(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/dre.pdf",
			Method:      http.MethodGet,
			Handler:     ExportDREPDF(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/cmv",
			Method:      http.MethodGet,
			Handler:     GetCMV(service),
			Middlewares: manager(),
		},
	}
}

func Payments(service billing.PaymentManager) []router.Route {
	base := restaurantPath + "/payments"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListPayments(service),
			Middlewares: manager(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreatePayment(service),
			Middlewares: manager(),
		},
		{
			Path:   base + "/:id",
			Method: http.MethodGet,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"summary": PaymentSummary(service),
			}, GetPayment(service)),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePayment(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePayment(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id/pay",
			Method:      http.MethodPost,
			Handler:     PayPayment(service),
			Middlewares: manager(),
		},
	}
}

func Goals(service gamifying.Gamifier) []router.Route {
	base := restaurantPath + "/goals"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListGoals(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreateGoal(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodGet,
			Handler:     GetGoal(service),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateGoal(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteGoal(service),
			Middlewares: manager(),
		},
		{
			// POST /goals/sync divide a posição com :id
			Path:   base + "/:id",
			Method: http.MethodPost,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"sync": SyncGoals(service),
			}, nil),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id/progress",
			Method:      http.MethodPost,
			Handler:     UpdateGoalProgress(service),
			Middlewares: member(),
		},
		{
			Path:        restaurantPath + "/achievements",
			Method:      http.MethodGet,
			Handler:     ListAchievements(service),
			Middlewares: member(),
		},
		{
			Path:        restaurantPath + "/achievements/profile",
			Method:      http.MethodGet,
			Handler:     GamificationProfile(service),
			Middlewares: member(),
		},
	}
}

func Promotions(service promoting.PromotionManager) []router.Route {
	base := restaurantPath + "/promotions"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListPromotions(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreatePromotion(service),
			Middlewares: manager(),
		},
		{
			Path:   base + "/:id",
			Method: http.MethodGet,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"active": ActivePromotions(service),
			}, GetPromotion(service)),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePromotion(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePromotion(service),
			Middlewares: manager(),
		},
	}
}

func MenuItems(service cataloging.MenuManager, rankingService ranking.RankingService) []router.Route {
	base := restaurantPath + "/menu-items"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListMenuItems(service),
			Middlewares: member(),
		},
		{
			Path:        base,
			Method:      http.MethodPost,
			Handler:     CreateMenuItem(service),
			Middlewares: manager(),
		},
		{
			Path:   base + "/:id",
			Method: http.MethodGet,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"ranking": GetMenuRanking(rankingService),
			}, GetMenuItem(service)),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMenuItem(service),
			Middlewares: manager(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMenuItem(service),
			Middlewares: manager(),
		},
	}
}

func Simulations(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:        restaurantPath + "/simulations/price",
			Method:      http.MethodPost,
			Handler:     SimulatePrice(service),
			Middlewares: member(),
		},
		{
			Path:        restaurantPath + "/simulations/financial",
			Method:      http.MethodPost,
			Handler:     SimulateFinancial(service),
			Middlewares: manager(),
		},
	}
}

func Alerts(service alerting.AlertManager) []router.Route {
	base := restaurantPath + "/alerts"
	return []router.Route{
		{
			Path:        base,
			Method:      http.MethodGet,
			Handler:     ListAlerts(service),
			Middlewares: member(),
		},
		{
			// POST /alerts/read-all divide a posição com :id
			Path:   base + "/:id",
			Method: http.MethodPost,
			Handler: router.Dispatch("id", map[string]http.Handler{
				"read-all": MarkAllAlertsRead(service),
			}, nil),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id/read",
			Method:      http.MethodPost,
			Handler:     MarkAlertRead(service),
			Middlewares: member(),
		},
		{
			Path:        base + "/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAlert(service),
			Middlewares: member(),
		},
	}
}

func Import(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        restaurantPath + "/import/local-storage",
			Method:      http.MethodPost,
			Handler:     ImportLocalStorage(service),
			Middlewares: owner(),
		},
		{
			Path:        restaurantPath + "/import/hosted",
			Method:      http.MethodPost,
			Handler:     ImportHosted(service),
			Middlewares: owner(),
		},
	}
}

func CronJobRoutes(jobs CronJobs) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(jobs),
			Middlewares: middlewares{middleware.AnyRestaurantOwner()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(jobs),
			Middlewares: middlewares{middleware.AnyRestaurantOwner()},
		},
	}
}
