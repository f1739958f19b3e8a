package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/hostedclient"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/messaging/rabbitmq"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/api"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/scheduler"
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
	"github.com/vfg2006/restaurant-manager-api/pkg/log"
)

func main() {
	startedAt := time.Now()

	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	restaurantRepo := repository.NewRestaurantRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	cashFlowRepo := repository.NewCashFlowRepository(pgConn)
	inventoryRepo := repository.NewInventoryRepository(pgConn)
	sheetRepo := repository.NewTechnicalSheetRepository(pgConn)
	menuItemRepo := repository.NewMenuItemRepository(pgConn)
	promotionRepo := repository.NewPromotionRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	achievementRepo := repository.NewAchievementRepository(pgConn)
	alertRepo := repository.NewSystemAlertRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)

	bus := events.NewBus(cfg.Events.BufferSize)

	authenticator := authenticating.NewService(userRepo, cfg)
	accountService := account.NewService(restaurantRepo, userRepo)
	cashFlowService := bookkeeping.NewService(cashFlowRepo, bus)
	inventoryService := stocking.NewService(inventoryRepo, bus)
	sheetService := costing.NewService(sheetRepo, inventoryRepo, menuItemRepo)
	menuService := cataloging.NewService(menuItemRepo, sheetRepo)
	promotionService := promoting.NewService(promotionRepo)
	paymentService := billing.NewService(paymentRepo, bus)
	alertService := alerting.NewService(alertRepo, inventoryRepo, paymentRepo, cfg.PaymentDue.DaysInAdvance)
	reportService := reporting.NewService(restaurantRepo, cashFlowRepo, inventoryRepo, menuItemRepo, sheetRepo)
	simulator := simulating.NewService(sheetService, reportService)
	rankingService := ranking.NewMenuRankingService(menuService)

	gamifier := gamifying.NewService(gamifying.Repositories{
		Goals:        goalRepo,
		Achievements: achievementRepo,
		Alerts:       alertRepo,
		Restaurants:  restaurantRepo,
		CashFlow:     cashFlowRepo,
		Inventory:    inventoryRepo,
		Sheets:       sheetRepo,
		Promotions:   promotionRepo,
	}, bus)

	dashboardService := insighting.NewService(cashFlowService, paymentService, inventoryService, promotionService, gamifier, alertRepo)

	hostedIntegrator := hosted.New(hostedclient.NewClient(cfg.HostedBackend))
	importer := importing.NewService(importing.Repositories{
		Restaurants:  restaurantRepo,
		Users:        userRepo,
		CashFlow:     cashFlowRepo,
		Inventory:    inventoryRepo,
		Sheets:       sheetRepo,
		Menu:         menuItemRepo,
		Promotions:   promotionRepo,
		Goals:        goalRepo,
		Achievements: achievementRepo,
		Alerts:       alertRepo,
	}, hostedIntegrator, bus)

	// Assinantes do barramento: notificação seguida de releitura nos repositórios
	bus.Subscribe(events.FinancialDataUpdated, gamifying.SyncOnDataChange(gamifier))
	bus.Subscribe(events.InventoryUpdated, gamifying.SyncOnDataChange(gamifier))
	bus.Subscribe(events.GoalsUpdated, gamifying.SyncOnGoalsChange(gamifier))
	bus.Subscribe(events.InventoryUpdated, alerting.CheckStockOnInventoryChange(alertService))

	var forwarder *rabbitmq.Forwarder
	if cfg.RabbitMQ.Enabled {
		forwarder, err = rabbitmq.NewForwarder(cfg.RabbitMQ)
		if err != nil {
			logrus.WithError(err).Error("Encaminhamento para o RabbitMQ desabilitado")
			forwarder = nil
		} else {
			bus.SubscribeAll(forwarder.Handle)
		}
	}

	jobs := scheduler.NewRegistry(
		scheduler.NewGoalsSyncService(restaurantRepo, gamifier, cfg),
		scheduler.NewStockAlertService(restaurantRepo, alertService, cfg),
		scheduler.NewPaymentDueService(restaurantRepo, alertService, cfg),
	)
	if err := jobs.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar os agendadores")
	} else {
		logrus.Info("Agendadores iniciados com sucesso")
	}

	monitor := monitoring.NewService(pgConn, bus, jobs, startedAt)

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Accounts:      accountService,
		Dashboard:     dashboardService,
		CashFlow:      cashFlowService,
		Sheets:        sheetService,
		Inventory:     inventoryService,
		Reports:       reportService,
		Payments:      paymentService,
		Goals:         gamifier,
		Promotions:    promotionService,
		Menu:          menuService,
		Ranking:       rankingService,
		Simulator:     simulator,
		Alerts:        alertService,
		Importer:      importer,
		Monitor:       monitor,
		CronJobs:      jobs,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	// agendadores param primeiro, depois o barramento drena a fila
	// enquanto o banco e o RabbitMQ ainda estão abertos
	cancel()
	bus.Close()
	if forwarder != nil {
		if err := forwarder.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com o RabbitMQ")
		}
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
