package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	eventmocks "github.com/vfg2006/restaurant-manager-api/internal/events/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockPaymentRepository, *eventmocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPaymentRepository(ctrl)
	publisher := eventmocks.NewMockPublisher(ctrl)
	return &Service{paymentRepo: repo, publisher: publisher}, repo, publisher
}

func pendingPayment(kind domain.PaymentKind) *domain.Payment {
	return &domain.Payment{
		ID:           "p1",
		RestaurantID: "r1",
		Description:  "Fornecedor de carnes",
		Kind:         kind,
		Amount:       1250.5,
		Category:     "fornecedores",
		DueDate:      time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:       domain.PaymentPending,
	}
}

func TestService_Pay(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		kind      domain.PaymentKind
		wantType  domain.CashFlowType
		wantLabel string
	}{
		{name: "Conta a pagar gera despesa", kind: domain.PaymentPayable, wantType: domain.CashFlowExpense, wantLabel: "Pagamento: "},
		{name: "Conta a receber gera receita", kind: domain.PaymentReceivable, wantType: domain.CashFlowIncome, wantLabel: "Recebimento: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, publisher := newTestService(t)

			repo.EXPECT().GetByID(ctx, "r1", "p1").Return(pendingPayment(tt.kind), nil)
			repo.EXPECT().MarkPaid(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payment *domain.Payment, entry *domain.CashFlowEntry) error {
					assert.Equal(t, tt.wantType, entry.Type)
					assert.Equal(t, tt.wantLabel+"Fornecedor de carnes", entry.Description)
					assert.Equal(t, domain.CashFlowCompleted, entry.Status)
					assert.Equal(t, 1250.5, entry.Amount)
					assert.Equal(t, paidAt, entry.Date)
					assert.Equal(t, "pix", entry.PaymentMethod)
					assert.Equal(t, entry.ID, *payment.CashFlowEntryID)
					return nil
				})
			publisher.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, event events.Event) {
				assert.Equal(t, events.FinancialDataUpdated, event.Type)
			})

			payment, err := service.Pay(ctx, "r1", "p1", domain.PayRequest{Date: &paidAt, PaymentMethod: "pix"})

			require.NoError(t, err)
			assert.Equal(t, domain.PaymentPaid, payment.Status)
			assert.Equal(t, paidAt, *payment.PaidAt)
		})
	}
}

func TestService_Pay_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)
	paid := pendingPayment(domain.PaymentPayable)
	paid.Status = domain.PaymentPaid

	repo.EXPECT().GetByID(ctx, "r1", "p1").Return(paid, nil)

	_, err := service.Pay(ctx, "r1", "p1", domain.PayRequest{})

	assert.ErrorIs(t, err, business.ErrConflict)
}

func TestService_Pay_ConcurrentSettlement(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	repo.EXPECT().GetByID(ctx, "r1", "p1").Return(pendingPayment(domain.PaymentPayable), nil)
	repo.EXPECT().MarkPaid(ctx, gomock.Any(), gomock.Any()).Return(repository.ErrNotFound)

	_, err := service.Pay(ctx, "r1", "p1", domain.PayRequest{})

	assert.ErrorIs(t, err, business.ErrConflict)
}

func TestService_Pay_DatabaseError(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)

	repo.EXPECT().GetByID(ctx, "r1", "p1").Return(pendingPayment(domain.PaymentPayable), nil)
	repo.EXPECT().MarkPaid(ctx, gomock.Any(), gomock.Any()).Return(errors.New("tx aborted"))

	_, err := service.Pay(ctx, "r1", "p1", domain.PayRequest{})

	assert.ErrorIs(t, err, business.ErrDatabaseOperation)
}

func TestService_Create_ForcesPending(t *testing.T) {
	ctx := context.Background()
	service, repo, _ := newTestService(t)
	payment := pendingPayment(domain.PaymentPayable)
	payment.ID = ""
	payment.Status = domain.PaymentPaid

	repo.EXPECT().Create(ctx, payment).Return(nil)

	created, err := service.Create(ctx, "r1", payment)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, created.Status)
	assert.NotEmpty(t, created.ID)
}

func TestSummarize(t *testing.T) {
	payments := []*domain.Payment{
		{Kind: domain.PaymentPayable, Status: domain.PaymentPending, Amount: 100},
		{Kind: domain.PaymentReceivable, Status: domain.PaymentPending, Amount: 50},
		{Kind: domain.PaymentPayable, Status: domain.PaymentOverdue, Amount: 30},
		{Kind: domain.PaymentReceivable, Status: domain.PaymentOverdue, Amount: 20},
		{Kind: domain.PaymentPayable, Status: domain.PaymentPaid, Amount: 10},
		{Kind: domain.PaymentReceivable, Status: domain.PaymentCanceled, Amount: 999},
	}

	summary := Summarize(payments)

	assert.Equal(t, 100.0, summary.PendingPayable)
	assert.Equal(t, 50.0, summary.PendingReceivable)
	assert.Equal(t, 30.0, summary.OverduePayable)
	assert.Equal(t, 20.0, summary.OverdueReceivable)
	assert.Equal(t, 10.0, summary.PaidPayable)
	assert.Zero(t, summary.PaidReceivable)
	assert.Equal(t, 2, summary.OverdueCount)
}
