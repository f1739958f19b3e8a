package handler

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/scheduler"
	alertmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting/mocks"
	billingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/billing/mocks"
	cashmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/bookkeeping/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	gamemocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying/mocks"
	importmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/importing/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/monitoring"
	monitormocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/monitoring/mocks"
	reportmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/reporting/mocks"
	stockmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/stocking/mocks"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const restaurantURL = "/v1/restaurants/" + testRestaurant

func TestCashFlowRoutes(t *testing.T) {
	t.Run("Resumo divide a rota com o ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := cashmocks.NewMockCashFlowManager(ctrl)
		service.EXPECT().Summary(gomock.Any(), testRestaurant, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p domain.Period) (*domain.CashFlowSummary, error) {
				assert.Equal(t, time.February, p.Start.Month())
				return &domain.CashFlowSummary{TotalIncome: 1000, TotalExpense: 400, Balance: 600}, nil
			})

		rec := serve(t, CashFlow(service), staffClaims(), http.MethodGet, restaurantURL+"/cash-flow/summary?month=2024-02", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var summary domain.CashFlowSummary
		decodeResponse(t, rec, &summary)
		assert.Equal(t, 600.0, summary.Balance)
	})

	t.Run("Busca por ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := cashmocks.NewMockCashFlowManager(ctrl)
		service.EXPECT().Get(gomock.Any(), testRestaurant, "abc").Return(nil, business.NotFound("Lançamento não encontrado"))

		rec := serve(t, CashFlow(service), staffClaims(), http.MethodGet, restaurantURL+"/cash-flow/abc", nil)

		assertAPIError(t, rec, apiErrors.ErrResourceNotFound)
	})

	t.Run("Filtros da listagem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := cashmocks.NewMockCashFlowManager(ctrl)
		service.EXPECT().List(gomock.Any(), testRestaurant, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f domain.CashFlowFilter) ([]*domain.CashFlowEntry, error) {
				require.NotNil(t, f.Type)
				assert.Equal(t, domain.CashFlowExpense, *f.Type)
				require.NotNil(t, f.Search)
				assert.Equal(t, "gás", *f.Search)
				assert.Nil(t, f.Period)
				assert.Equal(t, uint64(5), f.Limit)
				return []*domain.CashFlowEntry{}, nil
			})

		rec := serve(t, CashFlow(service), staffClaims(), http.MethodGet, restaurantURL+"/cash-flow?type=expense&search=g%C3%A1s&limit=5", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Funcionário não exclui lançamentos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := cashmocks.NewMockCashFlowManager(ctrl)

		rec := serve(t, CashFlow(service), staffClaims(), http.MethodDelete, restaurantURL+"/cash-flow/abc", nil)

		assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Valor inválido vira erro de validação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := cashmocks.NewMockCashFlowManager(ctrl)
		service.EXPECT().Create(gomock.Any(), testRestaurant, gomock.Any()).Return(nil, business.Invalid("Valor deve ser positivo"))

		rec := serve(t, CashFlow(service), staffClaims(), http.MethodPost, restaurantURL+"/cash-flow", []byte(`{"amount":-1}`))

		assertAPIError(t, rec, apiErrors.ErrInvalidFormat)
	})
}

func TestInventoryRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := stockmocks.NewMockInventoryManager(ctrl)
	service.EXPECT().LowStock(gomock.Any(), testRestaurant).Return([]*domain.InventoryItem{{ID: "i1"}}, nil)
	service.EXPECT().Valuation(gomock.Any(), testRestaurant).Return(&domain.InventoryValuation{}, nil)
	service.EXPECT().AdjustQuantity(gomock.Any(), testRestaurant, "i1", domain.StockAdjustment{Delta: -2, Reason: "perda"}).
		Return(&domain.InventoryItem{ID: "i1"}, nil)

	routes := Inventory(service)

	rec := serve(t, routes, staffClaims(), http.MethodGet, restaurantURL+"/inventory/low-stock", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, routes, staffClaims(), http.MethodGet, restaurantURL+"/inventory/valuation", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, routes, staffClaims(), http.MethodPost, restaurantURL+"/inventory/i1/adjust", []byte(`{"delta":-2,"reason":"perda"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := billingmocks.NewMockPaymentManager(ctrl)
	service.EXPECT().Pay(gomock.Any(), testRestaurant, "p1", domain.PayRequest{PaymentMethod: "pix"}).
		Return(nil, business.Conflict("Conta já quitada"))

	rec := serve(t, Payments(service), ownerClaims(), http.MethodPost, restaurantURL+"/payments/p1/pay", []byte(`{"payment_method":"pix"}`))

	assertAPIError(t, rec, apiErrors.ErrResourceConflict)
}

func TestReports(t *testing.T) {
	t.Run("PDF do DRE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)
		service.EXPECT().ExportDREPDF(gomock.Any(), testRestaurant, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ domain.Period, w io.Writer) error {
				_, err := w.Write([]byte("%PDF-1.3"))
				return err
			})

		rec := serve(t, Reports(service), ownerClaims(), http.MethodGet, restaurantURL+"/reports/dre.pdf?start=2024-01-01&end=2024-01-31", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "dre_20240101_20240131.pdf")
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("CMV com estoques informados", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)
		service.EXPECT().GenerateCMV(gomock.Any(), testRestaurant, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req domain.CMVRequest) (*domain.CMVReport, error) {
				require.NotNil(t, req.InitialInventory)
				assert.Equal(t, 1500.0, *req.InitialInventory)
				assert.Nil(t, req.FinalInventory)
				return &domain.CMVReport{CMV: 300}, nil
			})

		rec := serve(t, Reports(service), ownerClaims(), http.MethodGet, restaurantURL+"/reports/cmv?initial_inventory=1500", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Estoque não numérico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)

		rec := serve(t, Reports(service), ownerClaims(), http.MethodGet, restaurantURL+"/reports/cmv?final_inventory=abc", nil)

		assertAPIError(t, rec, apiErrors.ErrInvalidFormat)
	})

	t.Run("Funcionário não vê relatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reportmocks.NewMockReporter(ctrl)

		rec := serve(t, Reports(service), staffClaims(), http.MethodGet, restaurantURL+"/reports/dre", nil)

		assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
	})
}

func TestGoalRoutes(t *testing.T) {
	t.Run("Sincronização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := gamemocks.NewMockGamifier(ctrl)
		service.EXPECT().SyncGoals(gomock.Any(), testRestaurant).Return([]*domain.Goal{{ID: "g1"}}, nil)
		service.EXPECT().SyncAchievements(gomock.Any(), testRestaurant).Return([]*domain.Achievement{}, nil)

		rec := serve(t, Goals(service), staffClaims(), http.MethodPost, restaurantURL+"/goals/sync", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SyncGoalsResponse
		decodeResponse(t, rec, &resp)
		assert.Len(t, resp.Goals, 1)
	})

	t.Run("POST em ID sem ação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := gamemocks.NewMockGamifier(ctrl)

		rec := serve(t, Goals(service), staffClaims(), http.MethodPost, restaurantURL+"/goals/g1", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Progresso sem valor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := gamemocks.NewMockGamifier(ctrl)

		rec := serve(t, Goals(service), staffClaims(), http.MethodPost, restaurantURL+"/goals/g1/progress", []byte(`{}`))

		assertAPIError(t, rec, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Progresso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := gamemocks.NewMockGamifier(ctrl)
		service.EXPECT().UpdateProgress(gomock.Any(), testRestaurant, "g1", 0.0).Return(&domain.Goal{ID: "g1"}, nil)

		rec := serve(t, Goals(service), staffClaims(), http.MethodPost, restaurantURL+"/goals/g1/progress", []byte(`{"value":0}`))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAlertRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := alertmocks.NewMockAlertManager(ctrl)
	service.EXPECT().List(gomock.Any(), testRestaurant, true).Return([]*domain.SystemAlert{}, nil)
	service.EXPECT().MarkAllRead(gomock.Any(), testRestaurant).Return(int64(3), nil)
	service.EXPECT().MarkRead(gomock.Any(), testRestaurant, "a1").Return(nil)

	routes := Alerts(service)

	rec := serve(t, routes, staffClaims(), http.MethodGet, restaurantURL+"/alerts?unread=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, routes, staffClaims(), http.MethodPost, restaurantURL+"/alerts/read-all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp MarkAllReadResponse
	decodeResponse(t, rec, &resp)
	assert.Equal(t, int64(3), resp.Updated)

	rec = serve(t, routes, staffClaims(), http.MethodPost, restaurantURL+"/alerts/a1/read", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestImportLocalStorage(t *testing.T) {
	t.Run("Repassa as chaves do dump", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := importmocks.NewMockImporter(ctrl)
		service.EXPECT().ImportLocalStorage(gomock.Any(), testRestaurant, gomock.Any()).
			DoAndReturn(func(_ context.Context, rID string, dump map[string]jsoniter.RawMessage) (*domain.ImportReport, error) {
				assert.Contains(t, dump, "cashFlow")
				assert.Contains(t, dump, "goals")
				return domain.NewImportReport(rID, domain.ImportSourceLocalStorage), nil
			})

		body := `{"cashFlow":"[]","goals":[]}`
		rec := serve(t, Import(service), ownerClaims(), http.MethodPost, restaurantURL+"/import/local-storage", []byte(body))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Serviço hospedado indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := importmocks.NewMockImporter(ctrl)
		service.EXPECT().ImportHosted(gomock.Any(), testRestaurant).
			Return(nil, business.External(io.ErrUnexpectedEOF, "Falha ao consultar serviço hospedado"))

		rec := serve(t, Import(service), ownerClaims(), http.MethodPost, restaurantURL+"/import/hosted", nil)

		assertAPIError(t, rec, apiErrors.ErrExternalService)
	})
}

type fakeCronJobs struct {
	triggered []string
	running   bool
}

func (f *fakeCronJobs) Trigger(name string) (bool, error) {
	if name != scheduler.JobGoalsSync {
		return false, scheduler.ErrUnknownJob
	}
	f.triggered = append(f.triggered, name)
	return !f.running, nil
}

func (f *fakeCronJobs) Statuses() []scheduler.Status {
	return []scheduler.Status{{Name: scheduler.JobGoalsSync, Enabled: true}}
}

func TestCronRoutes(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		running     bool
		wantStatus  int
		wantStarted bool
	}{
		{"Dispara job", "/v1/cron/goals-sync/run", false, http.StatusAccepted, true},
		{"Job já em execução", "/v1/cron/goals-sync/run", true, http.StatusAccepted, false},
		{"Job desconhecido", "/v1/cron/meta/run", false, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs := &fakeCronJobs{running: tt.running}

			rec := serve(t, CronJobRoutes(jobs), ownerClaims(), http.MethodPost, tt.path, nil)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusAccepted {
				var resp RunCronJobResponse
				decodeResponse(t, rec, &resp)
				assert.Equal(t, tt.wantStarted, resp.Started)
			}
		})
	}

	t.Run("Funcionário não vê status", func(t *testing.T) {
		rec := serve(t, CronJobRoutes(&fakeCronJobs{}), staffClaims(), http.MethodGet, "/v1/cron/status", nil)
		assertAPIError(t, rec, apiErrors.ErrInsufficientPrivilege)
	})
}

func TestSystemStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus int
	}{
		{"Sistema saudável", monitoring.StatusHealthy, http.StatusOK},
		{"Sistema degradado", monitoring.StatusDegraded, http.StatusOK},
		{"Banco fora do ar", monitoring.StatusDown, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := monitormocks.NewMockMonitor(ctrl)
			service.EXPECT().Status(gomock.Any()).Return(&monitoring.SystemStatus{Status: tt.status})

			rec := serve(t, Status(service), staffClaims(), http.MethodGet, "/v1/status", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
