package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	alertingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/alerting/mocks"
	gamifyingmocks "github.com/vfg2006/restaurant-manager-api/internal/usecases/gamifying/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		GoalsSync:  config.GoalsSync{CronSchedule: "*/30 * * * *", MaxConcurrentJobs: 2, Enabled: true},
		StockAlert: config.StockAlert{CronSchedule: "0 7 * * *", Enabled: true},
		PaymentDue: config.PaymentDue{CronSchedule: "0 8 * * *", Enabled: false},
	}
}

func TestGoalsSyncService_syncAll(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		setup         func(restaurants *mocks.MockRestaurantRepository, gamifier *gamifyingmocks.MockGamifier)
		wantProcessed int
		wantErr       bool
	}{
		{
			name: "sincroniza todos os restaurantes",
			setup: func(restaurants *mocks.MockRestaurantRepository, gamifier *gamifyingmocks.MockGamifier) {
				restaurants.EXPECT().ListIDs(gomock.Any()).Return([]string{"r1", "r2"}, nil)
				gamifier.EXPECT().SyncGoals(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
				gamifier.EXPECT().SyncAchievements(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
			},
			wantProcessed: 2,
		},
		{
			name: "falha em um restaurante não interrompe os demais",
			setup: func(restaurants *mocks.MockRestaurantRepository, gamifier *gamifyingmocks.MockGamifier) {
				restaurants.EXPECT().ListIDs(gomock.Any()).Return([]string{"r1", "r2"}, nil)
				gamifier.EXPECT().SyncGoals(gomock.Any(), "r1").Return(nil, errors.New("banco indisponível"))
				gamifier.EXPECT().SyncGoals(gomock.Any(), "r2").Return(nil, nil)
				gamifier.EXPECT().SyncAchievements(gomock.Any(), "r2").Return(nil, nil)
			},
			wantProcessed: 1,
			wantErr:       true,
		},
		{
			name: "sem restaurantes",
			setup: func(restaurants *mocks.MockRestaurantRepository, gamifier *gamifyingmocks.MockGamifier) {
				restaurants.EXPECT().ListIDs(gomock.Any()).Return([]string{}, nil)
			},
			wantProcessed: 0,
		},
		{
			name: "erro ao listar restaurantes",
			setup: func(restaurants *mocks.MockRestaurantRepository, gamifier *gamifyingmocks.MockGamifier) {
				restaurants.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantProcessed: 0,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			restaurants := mocks.NewMockRestaurantRepository(ctrl)
			gamifier := gamifyingmocks.NewMockGamifier(ctrl)
			tt.setup(restaurants, gamifier)

			service := NewGoalsSyncService(restaurants, gamifier, testConfig())
			processed, err := service.syncAll(ctx)

			assert.Equal(t, tt.wantProcessed, processed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStockAlertService_checkAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mocks.NewMockRestaurantRepository(ctrl)
	alerts := alertingmocks.NewMockAlertManager(ctrl)

	restaurants.EXPECT().ListIDs(gomock.Any()).Return([]string{"r1", "r2"}, nil)
	alerts.EXPECT().CheckStock(gomock.Any(), "r1").Return(2, nil)
	alerts.EXPECT().CheckStock(gomock.Any(), "r2").Return(1, nil)

	service := NewStockAlertService(restaurants, alerts, testConfig())
	created, err := service.checkAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, created)
}

func TestPaymentDueService_checkAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	restaurants := mocks.NewMockRestaurantRepository(ctrl)
	alerts := alertingmocks.NewMockAlertManager(ctrl)
	now := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	restaurants.EXPECT().ListIDs(gomock.Any()).Return([]string{"r1"}, nil)
	alerts.EXPECT().CheckPayments(gomock.Any(), "r1", now).Return(4, nil)

	service := NewPaymentDueService(restaurants, alerts, testConfig())
	service.now = func() time.Time { return now }

	created, err := service.checkAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, created)
}

func TestCronJob_IgnoraExecucaoSobreposta(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	job := newCronJob("teste", "* * * * *", true, func(ctx context.Context) (int, error) {
		close(started)
		<-release
		return 5, nil
	})

	done := make(chan bool)
	go func() { done <- job.execute(context.Background()) }()
	<-started

	assert.True(t, job.GetStatus().Running)
	assert.False(t, job.execute(context.Background()))
	assert.False(t, job.TriggerManualSync())

	close(release)
	assert.True(t, <-done)

	status := job.GetStatus()
	assert.False(t, status.Running)
	assert.Equal(t, 5, status.LastProcessed)
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
	assert.Empty(t, status.LastError)
}

func TestCronJob_RegistraErro(t *testing.T) {
	job := newCronJob("teste", "* * * * *", true, func(ctx context.Context) (int, error) {
		return 1, errors.New("1 de 2 restaurantes falharam")
	})

	assert.True(t, job.execute(context.Background()))
	status := job.GetStatus()
	assert.Equal(t, "1 de 2 restaurantes falharam", status.LastError)
	assert.Equal(t, 1, status.LastProcessed)
}

func TestCronJob_TriggerManualSync(t *testing.T) {
	ran := make(chan struct{})
	job := newCronJob("teste", "* * * * *", false, func(ctx context.Context) (int, error) {
		close(ran)
		return 0, nil
	})

	assert.True(t, job.TriggerManualSync())

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("execução manual não aconteceu")
	}

	assert.Eventually(t, func() bool {
		return job.GetStatus().LastSyncCompletedAt != nil
	}, time.Second, 10*time.Millisecond)
}

func TestCronJob_StartDesabilitado(t *testing.T) {
	job := newCronJob("teste", "cron inválido", false, func(ctx context.Context) (int, error) {
		return 0, nil
	})

	assert.NoError(t, job.Start(context.Background()))
	assert.False(t, job.GetStatus().Enabled)
}

func TestCronJob_StartCronInvalido(t *testing.T) {
	job := newCronJob("teste", "cron inválido", true, func(ctx context.Context) (int, error) {
		return 0, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, job.Start(ctx))
}

func TestRegistry(t *testing.T) {
	ran := make(chan struct{}, 1)
	first := newCronJob("primeiro", "* * * * *", false, func(ctx context.Context) (int, error) {
		ran <- struct{}{}
		return 0, nil
	})
	second := newCronJob("segundo", "* * * * *", false, func(ctx context.Context) (int, error) {
		return 0, nil
	})

	registry := NewRegistry(first, second)

	statuses := registry.Statuses()
	require.Len(t, statuses, 2)
	assert.Equal(t, "primeiro", statuses[0].Name)
	assert.Equal(t, "segundo", statuses[1].Name)

	_, err := registry.Trigger("inexistente")
	assert.ErrorIs(t, err, ErrUnknownJob)

	started, err := registry.Trigger("primeiro")
	require.NoError(t, err)
	assert.True(t, started)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("execução manual não aconteceu")
	}
}
