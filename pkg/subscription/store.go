package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for subscription persistence. Tombstoned
// records are invisible to Get; physical removal goes through Delete.
type Store interface {
	// Get retrieves a live subscription by ID.
	// Returns ErrNotFound if no subscription exists or it is tombstoned.
	Get(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// Save creates or updates a subscription.
	Save(ctx context.Context, sub *Subscription) error

	// Delete physically removes a subscription. The destroy guards in the
	// service must have passed before this is called.
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceChecker reports whether any invoice is attached to the subscription.
// Invoicing lives outside this package; the lifecycle only needs the
// presence check to gate destruction.
type InvoiceChecker func(ctx context.Context, id uuid.UUID) (bool, error)
