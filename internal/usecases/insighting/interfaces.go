package insighting

import (
	"context"

	"github.com/vfg2006/restaurant-manager-api/internal/domain"
)

// Insighter monta o painel do restaurante
//
//go:generate mockgen -source=interfaces.go -destination=mocks/insighter_mock.go -package=mocks
type Insighter interface {
	// Overview reúne os indicadores do mês corrente do restaurante
	Overview(ctx context.Context, restaurantID string) (*domain.DashboardOverview, error)
}

// AlertCounter conta os alertas não lidos
type AlertCounter interface {
	CountUnread(ctx context.Context, restaurantID string) (int, error)
}
