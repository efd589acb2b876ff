package messaging

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	FinancialDataSaved = "financial-data.saved"
	BatchSaved         = "batch.saved"
	BatchDeleted       = "batch.deleted"
	SaleCreated        = "sale.created"
	SaleDeleted        = "sale.deleted"
)

// Event é a mensagem publicada após uma gravação bem sucedida
type Event struct {
	Type       string    `json:"type"`
	UserID     string    `json:"userId"`
	EntityID   string    `json:"entityId,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEvent(eventType, userID, entityID string, payload any) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		EntityID:   entityID,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NoopPublisher descarta os eventos quando a mensageria está desligada
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }
