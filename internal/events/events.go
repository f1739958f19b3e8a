// Package events implementa o barramento de eventos em memória que notifica
// os assinantes quando dados de um restaurante mudam. Os assinantes recebem
// apenas a notificação e relêem o estado nos repositórios.
package events

import (
	"context"
	"time"
)

type Type string

const (
	FinancialDataUpdated Type = "financial_data_updated"
	GoalsUpdated         Type = "goals_updated"
	InventoryUpdated     Type = "inventory_updated"
	AchievementUnlocked  Type = "achievement_unlocked"
)

type Event struct {
	Type         Type        `json:"type"`
	RestaurantID string      `json:"restaurant_id"`
	OccurredAt   time.Time   `json:"occurred_at"`
	Payload      interface{} `json:"payload,omitempty"`
}

// ChangePayload identifica a entidade alterada
type ChangePayload struct {
	Source   string `json:"source"`
	EntityID string `json:"entity_id,omitempty"`
	Action   string `json:"action"`
}

type AchievementPayload struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Points int    `json:"points"`
}

// Ações registradas em ChangePayload
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionImported = "imported"
	ActionSynced   = "synced"
)

// Handler processa um evento. Erros são apenas registrados em log.
type Handler func(ctx context.Context, event Event) error

//go:generate mockgen -source=events.go -destination=mocks/publisher_mock.go -package=mocks
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

func NewChange(eventType Type, restaurantID, source, entityID, action string) Event {
	return Event{
		Type:         eventType,
		RestaurantID: restaurantID,
		OccurredAt:   time.Now(),
		Payload: ChangePayload{
			Source:   source,
			EntityID: entityID,
			Action:   action,
		},
	}
}

func NewAchievementUnlocked(restaurantID, code, title string, points int) Event {
	return Event{
		Type:         AchievementUnlocked,
		RestaurantID: restaurantID,
		OccurredAt:   time.Now(),
		Payload: AchievementPayload{
			Code:   code,
			Title:  title,
			Points: points,
		},
	}
}
