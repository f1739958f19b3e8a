package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/integrator/hosted/hostedclient"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/importing"
	"github.com/vfg2006/restaurant-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("Migração falhou")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Schema e carga de dados do restaurant-manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newUpCmd(), newImportLegacyCmd(), newPullHostedCmd())
	return root
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Cria as tabelas e índices (idempotente)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, conn, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := postgres.Migrate(cmd.Context(), conn); err != nil {
				return err
			}

			logrus.WithField("statements", postgres.Tables()).Info("Schema atualizado")
			return nil
		},
	}
}

func newImportLegacyCmd() *cobra.Command {
	var restaurantID, file string

	cmd := &cobra.Command{
		Use:   "import-legacy",
		Short: "Importa um dump do localStorage da versão web (use --file - para stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump, err := readDump(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			return withImporter(cmd.Context(), func(importer importing.Importer) (*domain.ImportReport, error) {
				return importer.ImportLocalStorage(cmd.Context(), restaurantID, dump)
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "ID do restaurante de destino")
	cmd.Flags().StringVar(&file, "file", "", "Arquivo JSON com as chaves do localStorage")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newPullHostedCmd() *cobra.Command {
	var restaurantID string

	cmd := &cobra.Command{
		Use:   "pull-hosted",
		Short: "Copia as tabelas do backend hospedado para o banco local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withImporter(cmd.Context(), func(importer importing.Importer) (*domain.ImportReport, error) {
				return importer.ImportHosted(cmd.Context(), restaurantID)
			}, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&restaurantID, "restaurant", "", "ID do restaurante de destino")
	_ = cmd.MarkFlagRequired("restaurant")
	return cmd
}

// readDump lê o objeto JSON com as chaves do localStorage. "-" lê da entrada padrão.
func readDump(stdin io.Reader, path string) (map[string]jsoniter.RawMessage, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao abrir dump")
		}
		defer f.Close()
		r = f
	}

	var dump map[string]jsoniter.RawMessage
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, errors.Wrap(err, "dump não é um objeto JSON")
	}
	if len(dump) == 0 {
		return nil, errors.New("dump vazio")
	}
	return dump, nil
}

func connect(ctx context.Context) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}
	return cfg, conn, nil
}

// withImporter monta o importador com um barramento local para que metas e
// conquistas sejam recalculadas antes do fim do comando
func withImporter(ctx context.Context, run func(importing.Importer) (*domain.ImportReport, error), out io.Writer) error {
	cfg, conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	repos := importing.Repositories{
		Restaurants:  repository.NewRestaurantRepository(conn),
		Users:        repository.NewUserRepository(conn),
		CashFlow:     repository.NewCashFlowRepository(conn),
		Inventory:    repository.NewInventoryRepository(conn),
		Sheets:       repository.NewTechnicalSheetRepository(conn),
		Menu:         repository.NewMenuItemRepository(conn),
		Promotions:   repository.NewPromotionRepository(conn),
		Goals:        repository.NewGoalRepository(conn),
		Achievements: repository.NewAchievementRepository(conn),
		Alerts:       repository.NewSystemAlertRepository(conn),
	}

	bus := events.NewBus(cfg.Events.BufferSize)
	gamifier := gamifying.NewService(gamifying.Repositories{
		Goals:        repos.Goals,
		Achievements: repos.Achievements,
		Alerts:       repos.Alerts,
		Restaurants:  repos.Restaurants,
		CashFlow:     repos.CashFlow,
		Inventory:    repos.Inventory,
		Sheets:       repos.Sheets,
		Promotions:   repos.Promotions,
	}, bus)
	bus.Subscribe(events.FinancialDataUpdated, gamifying.SyncOnDataChange(gamifier))
	bus.Subscribe(events.InventoryUpdated, gamifying.SyncOnDataChange(gamifier))
	bus.Subscribe(events.GoalsUpdated, gamifying.SyncOnGoalsChange(gamifier))

	importer := importing.NewService(repos, hosted.New(hostedclient.NewClient(cfg.HostedBackend)), bus)

	report, err := run(importer)
	// drena a fila antes de fechar a conexão
	bus.Close()
	if err != nil {
		return err
	}

	return printReport(out, report)
}

func printReport(out io.Writer, report *domain.ImportReport) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("erro ao escrever relatório: %w", err)
	}
	return nil
}
