package ports

import (
	"context"
	"time"
)

// Tipos de evento del ciclo de vida de un producto.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// ProductEvent se emite después de que la escritura al store fue exitosa.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  string    `json:"product_id"`
	CeramistID string    `json:"ceramist_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ProductEventPublisher puerto de salida para eventos de producto.
// Es best effort: el adaptador registra sus fallas y nunca altera el resultado del caso de uso.
type ProductEventPublisher interface {
	Publish(ctx context.Context, event ProductEvent)
}

// NopPublisher descarta los eventos (sin brokers configurados).
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, ProductEvent) {}
