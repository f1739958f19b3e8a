package alerting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	alertRepo     *mocks.MockSystemAlertRepository
	inventoryRepo *mocks.MockInventoryRepository
	paymentRepo   *mocks.MockPaymentRepository
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		alertRepo:     mocks.NewMockSystemAlertRepository(ctrl),
		inventoryRepo: mocks.NewMockInventoryRepository(ctrl),
		paymentRepo:   mocks.NewMockPaymentRepository(ctrl),
	}
	service := NewService(deps.alertRepo, deps.inventoryRepo, deps.paymentRepo, 0).(*Service)
	return service, deps
}

func TestService_CheckStock(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)

	deps.inventoryRepo.EXPECT().List(ctx, "r1").Return([]*domain.InventoryItem{
		{ID: "ok", Name: "Arroz", Quantity: 10, MinQuantity: 2},
		{ID: "low", Name: "Feijão", Unit: "kg", Quantity: 1, MinQuantity: 2},
		{ID: "zero", Name: "Óleo", Quantity: 0, MinQuantity: 1},
		{ID: "dup", Name: "Sal", Quantity: 1, MinQuantity: 1},
	}, nil)
	deps.alertRepo.EXPECT().ExistsUnread(ctx, "r1", domain.AlertLowStock, "low").Return(false, nil)
	deps.alertRepo.EXPECT().ExistsUnread(ctx, "r1", domain.AlertLowStock, "zero").Return(false, nil)
	deps.alertRepo.EXPECT().ExistsUnread(ctx, "r1", domain.AlertLowStock, "dup").Return(true, nil)

	var alerts []*domain.SystemAlert
	deps.alertRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, alert *domain.SystemAlert) error {
		alerts = append(alerts, alert)
		return nil
	}).Times(2)

	created, err := service.CheckStock(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, domain.SeverityCritical, alerts[1].Severity)
	assert.Equal(t, "zero", *alerts[1].ReferenceID)
	assert.NotEmpty(t, alerts[0].ID)
}

func TestService_CheckPayments(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)
	now := time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	deps.paymentRepo.EXPECT().MarkOverdue(ctx, "r1", today).Return(int64(1), nil)
	deps.paymentRepo.EXPECT().List(ctx, "r1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, filter domain.PaymentFilter) ([]*domain.Payment, error) {
			assert.Equal(t, domain.PaymentPending, *filter.Status)
			assert.Equal(t, today.AddDate(0, 0, 3), *filter.DueTo)
			return []*domain.Payment{
				{ID: "p1", Description: "Aluguel", Kind: domain.PaymentPayable, Amount: 3000, DueDate: today},
				{ID: "p2", Description: "Evento", Kind: domain.PaymentReceivable, Amount: 800, DueDate: today.AddDate(0, 0, 2)},
			}, nil
		})
	deps.alertRepo.EXPECT().ExistsUnread(ctx, "r1", domain.AlertPaymentDue, gomock.Any()).Return(false, nil).Times(2)

	var alerts []*domain.SystemAlert
	deps.alertRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, alert *domain.SystemAlert) error {
		alerts = append(alerts, alert)
		return nil
	}).Times(2)

	created, err := service.CheckPayments(ctx, "r1", now)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "vence hoje")
	assert.Contains(t, alerts[1].Title, "Conta a receber")
	assert.Contains(t, alerts[1].Message, "vence em 2 dia(s)")
}

func TestService_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	service, deps := newTestService(t)
	deps.alertRepo.EXPECT().MarkAllRead(ctx, "r1").Return(int64(4), nil)

	count, err := service.MarkAllRead(ctx, "r1")

	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}
