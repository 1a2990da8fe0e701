package interfaces

import (
	"context"
	"time"

	"chatorder/internal/domain/entities"
)

// OrderLogEntry is the audit record persisted for each successfully
// submitted order.

type OrderLogEntry struct {
	ID               string
	GuestPhone       string
	GuestName        string
	PlaceReference   string
	OrderReference   string
	PaymentReference string
	TotalMinor       int64
	Lines            []entities.ResolvedOrderLine
	CreatedAt        time.Time
}

// IOrderLogRepository abstracts persistence of submitted-order audit records.
// Logging is best-effort; callers must not fail a turn on repository errors.
// ListByGuestPhone backs the support lookup of a guest's order history.

type IOrderLogRepository interface {
	Create(ctx context.Context, e OrderLogEntry) (OrderLogEntry, error)
	ListByGuestPhone(ctx context.Context, phone string) ([]OrderLogEntry, error)
}
