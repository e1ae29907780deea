// Package kafka publica eventos de producto con segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/ceramicas-api/internal/application/ports"
	"github.com/jhoicas/ceramicas-api/pkg/logger"
)

var _ ports.ProductEventPublisher = (*Publisher)(nil)

// messageWriter es la parte de *kafkago.Writer que usa el publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implementa ports.ProductEventPublisher. Las fallas se registran y no se propagan.
type Publisher struct {
	w       messageWriter
	log     *logger.Logger
	timeout time.Duration
}

// NewPublisher crea un writer asíncrono hacia topic. La clave del mensaje es el id del producto,
// así los eventos de un mismo producto caen en la misma partición.
// WriteMessages solo encola; el resultado de cada lote llega a Completion.
func NewPublisher(brokers []string, topic string, log *logger.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
		Async:                  true,
		ErrorLogger:            kafkago.LoggerFunc(log.Errorf),
	}
	p := newPublisher(w, log)
	w.Completion = p.completed
	return p
}

func newPublisher(w messageWriter, log *logger.Logger) *Publisher {
	return &Publisher{w: w, log: log, timeout: 5 * time.Second}
}

// Publish serializa y encola el evento sin esperar al broker.
// Usa un contexto independiente de la request: el evento se emite aunque el cliente se desconecte.
func (p *Publisher) Publish(_ context.Context, event ports.ProductEvent) {
	if err := p.publish(event); err != nil {
		p.log.Error().Err(err).
			Str("event", event.Type).
			Str("product_id", event.ProductID).
			Msg("no se pudo publicar evento de producto")
	}
}

func (p *Publisher) publish(event ports.ProductEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka: marshal: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	msg := kafkago.Message{
		Key:   []byte(event.ProductID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}
	if err := p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write: %w", err)
	}
	return nil
}

// completed registra los lotes que el broker no aceptó.
func (p *Publisher) completed(msgs []kafkago.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range msgs {
		typ := ""
		for _, h := range m.Headers {
			if h.Key == "type" {
				typ = string(h.Value)
			}
		}
		p.log.Error().Err(err).
			Str("event", typ).
			Str("product_id", string(m.Key)).
			Msg("no se pudo publicar evento de producto")
	}
}

// Close vacía y cierra el writer.
func (p *Publisher) Close() error {
	return p.w.Close()
}
