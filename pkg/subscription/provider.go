package subscription

import (
	"context"
)

// Billing provider subscription statuses the lifecycle cares about. Anything
// else is treated as chargeable.
const (
	ProviderStatusIncomplete = "incomplete"
	ProviderStatusCanceled   = "canceled"
)

// ProviderSubscription is the billing provider's view of a recurring charge
// schedule.
type ProviderSubscription struct {
	ID     string
	Status string
}

// BillingProvider is the provider-agnostic billing gateway contract. The
// lifecycle only ever creates, inspects and cancels recurring subscriptions
// and raises one-time charges; checkout, dunning and portal flows stay with
// the provider.
//
// Implementations should use official provider SDKs and handle
// provider-specific quirks internally.
type BillingProvider interface {
	// CreateSubscription starts a recurring charge schedule for the customer
	// on the given plan. A returned status of "incomplete" is surfaced by the
	// caller as a fatal error.
	CreateSubscription(ctx context.Context, customerRef, planID string, metadata map[string]string) (*ProviderSubscription, error)

	// RetrieveSubscription fetches the provider's current view of a
	// subscription.
	RetrieveSubscription(ctx context.Context, providerID string) (*ProviderSubscription, error)

	// CancelSubscription stops the charge schedule. Implementations need not
	// be idempotent; the caller checks the provider state first.
	CancelSubscription(ctx context.Context, providerID string) error

	// CreateOneTimeCharge raises a single charge against the customer.
	CreateOneTimeCharge(ctx context.Context, customerRef string, amountMinorUnits int64, currency, description string) error
}
