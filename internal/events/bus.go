package events

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

const DefaultBufferSize = 256

type Stats struct {
	Published uint64 `json:"published"`
	Delivered uint64 `json:"delivered"`
	Dropped   uint64 `json:"dropped"`
	Failed    uint64 `json:"failed"`
	Queued    int    `json:"queued"`
	Capacity  int    `json:"capacity"`
}

type envelope struct {
	ctx   context.Context
	event Event
}

// Bus entrega eventos em ordem de publicação a partir de uma única goroutine.
// Publish nunca bloqueia: com a fila cheia o evento é descartado e contabilizado.
type Bus struct {
	queue    chan envelope
	done     chan struct{}
	mu       sync.RWMutex
	closed   bool
	handlers map[Type][]Handler
	all      []Handler

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	failed    atomic.Uint64
}

func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	b := &Bus{
		queue:    make(chan envelope, bufferSize),
		done:     make(chan struct{}),
		handlers: make(map[Type][]Handler),
	}

	go b.dispatch()

	return b
}

// Subscribe registra um handler para um tipo de evento
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registra um handler que recebe todos os eventos
func (b *Bus) SubscribeAll(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = append(b.all, handler)
}

func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.dropped.Add(1)
		logrus.WithField("event_type", event.Type).Warn("Evento publicado após o fechamento do barramento")
		return
	}

	// Os handlers rodam depois da resposta HTTP, então o cancelamento da requisição não deve propagar
	env := envelope{ctx: context.WithoutCancel(ctx), event: event}

	select {
	case b.queue <- env:
		b.published.Add(1)
	default:
		b.dropped.Add(1)
		logrus.WithFields(logrus.Fields{
			"event_type":    event.Type,
			"restaurant_id": event.RestaurantID,
		}).Warn("Fila de eventos cheia, evento descartado")
	}
}

// Close impede novas publicações, entrega o que está na fila e encerra o dispatcher
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
}

func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Dropped:   b.dropped.Load(),
		Failed:    b.failed.Load(),
		Queued:    len(b.queue),
		Capacity:  cap(b.queue),
	}
}

func (b *Bus) dispatch() {
	defer close(b.done)

	for env := range b.queue {
		b.mu.RLock()
		handlers := make([]Handler, 0, len(b.handlers[env.event.Type])+len(b.all))
		handlers = append(handlers, b.handlers[env.event.Type]...)
		handlers = append(handlers, b.all...)
		b.mu.RUnlock()

		for _, handler := range handlers {
			if err := b.invoke(env.ctx, handler, env.event); err != nil {
				b.failed.Add(1)
				logrus.WithFields(logrus.Fields{
					"event_type":    env.event.Type,
					"restaurant_id": env.event.RestaurantID,
					"error":         err.Error(),
				}).Error("Erro ao processar evento")
				continue
			}
			b.delivered.Add(1)
		}
	}
}

func (b *Bus) invoke(ctx context.Context, handler Handler, event Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stack", string(debug.Stack())).Error("Panic em handler de evento")
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return handler(ctx, event)
}
