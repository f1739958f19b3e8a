package rabbitmq

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/config"
	"github.com/vfg2006/restaurant-manager-api/internal/events"
	"github.com/vfg2006/restaurant-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const publishTimeout = 5 * time.Second

// channel é o subconjunto de *amqp.Channel usado pelo Forwarder
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Forwarder republica os eventos do barramento em um exchange topic
type Forwarder struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

func NewForwarder(cfg config.RabbitMQ) (*Forwarder, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal no RabbitMQ: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic", // type
		true,    // durable
		false,   // auto-deleted
		false,   // internal
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("erro ao declarar exchange %s: %w", cfg.Exchange, err)
	}

	logrus.WithField("exchange", cfg.Exchange).Info("Encaminhamento de eventos para o RabbitMQ habilitado")

	return &Forwarder{conn: conn, ch: ch, exchange: cfg.Exchange}, nil
}

// RoutingKey segue o formato <restaurant_id>.<event_type>
func RoutingKey(event events.Event) string {
	return event.RestaurantID + "." + string(event.Type)
}

// Handle tem a assinatura de events.Handler para ser registrado com SubscribeAll
func (f *Forwarder) Handle(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao serializar evento: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.ch.PublishWithContext(ctx,
		f.exchange,
		RoutingKey(event),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    utils.NewID(),
			Timestamp:    event.OccurredAt,
			Type:         string(event.Type),
			Body:         body,
		})
}

func (f *Forwarder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ch.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar canal do RabbitMQ")
	}

	if f.conn != nil {
		return f.conn.Close()
	}

	return nil
}
