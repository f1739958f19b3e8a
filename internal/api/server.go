package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/api/handler"
	"github.com/vfg2006/restaurant-manager-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
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

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Authenticator authenticating.Authenticator
	Accounts      account.AccountService
	Dashboard     insighting.Insighter
	CashFlow      bookkeeping.CashFlowManager
	Sheets        costing.SheetManager
	Inventory     stocking.InventoryManager
	Reports       reporting.Reporter
	Payments      billing.PaymentManager
	Goals         gamifying.Gamifier
	Promotions    promoting.PromotionManager
	Menu          cataloging.MenuManager
	Ranking       ranking.RankingService
	Simulator     simulating.Simulator
	Alerts        alerting.AlertManager
	Importer      importing.Importer
	Monitor       monitoring.Monitor
	CronJobs      handler.CronJobs
}

type Server struct {
	httpServer    *http.Server
	shutdownGrace time.Duration
}

func NewHandler(cfg *config.Config, s Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Status(s.Monitor)...),
		router.WithRoutes(handler.Authentication(s.Authenticator)...),
		router.WithRoutes(handler.User(s.Authenticator)...),
		router.WithRoutes(handler.Restaurants(s.Accounts, s.Authenticator)...),
		router.WithRoutes(handler.Dashboard(s.Dashboard)...),
		router.WithRoutes(handler.CashFlow(s.CashFlow)...),
		router.WithRoutes(handler.TechnicalSheets(s.Sheets)...),
		router.WithRoutes(handler.Inventory(s.Inventory)...),
		router.WithRoutes(handler.Reports(s.Reports)...),
		router.WithRoutes(handler.Payments(s.Payments)...),
		router.WithRoutes(handler.Goals(s.Goals)...),
		router.WithRoutes(handler.Promotions(s.Promotions)...),
		router.WithRoutes(handler.MenuItems(s.Menu, s.Ranking)...),
		router.WithRoutes(handler.Simulations(s.Simulator)...),
		router.WithRoutes(handler.Alerts(s.Alerts)...),
		router.WithRoutes(handler.Import(s.Importer)...),
		router.WithRoutes(handler.CronJobRoutes(s.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(s.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	grace := cfg.Server.ShutdownGrace
	if grace <= 0 {
		grace = 15 * time.Second
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownGrace: grace,
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownGrace)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownGrace.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
