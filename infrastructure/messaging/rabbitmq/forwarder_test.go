package rabbitmq

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.exchange = exchange
	c.key = key
	c.msg = msg
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRoutingKey(t *testing.T) {
	event := events.NewChange(events.InventoryUpdated, "rest-1", "inventory", "item-1", events.ActionUpdated)
	assert.Equal(t, "rest-1.inventory_updated", RoutingKey(event))
}

func TestForwarder_Handle(t *testing.T) {
	ch := &fakeChannel{}
	f := &Forwarder{ch: ch, exchange: "restaurant.events"}

	event := events.NewAchievementUnlocked("rest-1", "first_goal", "Primeira meta", 50)
	event.OccurredAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, f.Handle(context.Background(), event))

	assert.Equal(t, "restaurant.events", ch.exchange)
	assert.Equal(t, "rest-1.achievement_unlocked", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.NotEmpty(t, ch.msg.MessageId)
	assert.JSONEq(t, `{
		"type": "achievement_unlocked",
		"restaurant_id": "rest-1",
		"occurred_at": "2024-03-10T12:00:00Z",
		"payload": {"code": "first_goal", "title": "Primeira meta", "points": 50}
	}`, string(ch.msg.Body))
}

func TestForwarder_HandlePropagatesPublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("canal fechado")}
	f := &Forwarder{ch: ch, exchange: "restaurant.events"}

	err := f.Handle(context.Background(), events.NewChange(events.GoalsUpdated, "rest-1", "goals", "", events.ActionSynced))
	assert.EqualError(t, err, "canal fechado")
}

func TestForwarder_Close(t *testing.T) {
	ch := &fakeChannel{}
	f := &Forwarder{ch: ch, exchange: "restaurant.events"}

	require.NoError(t, f.Close())
	assert.True(t, ch.closed)
}
