package subscription

import (
	"context"
)

// Line is the product-line strategy injected into the shared lifecycle: it
// binds the order creation/cancellation hooks and the knobs a line may
// override (tier changes, trial policy, payment description). Lines never
// define their own transition table; they refine the shared one.
type Line interface {
	Name() ProductLine

	// CreateOrder creates the line's primary downstream order. Implementations
	// must guard against duplicates: a retried transition may call this again.
	CreateOrder(ctx context.Context, sub *Subscription) error

	// CreateBundledOrders creates any secondary orders the selected tier
	// includes.
	CreateBundledOrders(ctx context.Context, sub *Subscription) error

	// CancelOrder cancels the primary order if it is currently active.
	CancelOrder(ctx context.Context, sub *Subscription) error

	SupportsTierChange() bool
	SupportsTrial() bool
	TrialDays() int

	// CustomPlanID is the provider plan used for custom-priced tiers that
	// carry no plan id of their own. Empty when the line has none.
	CustomPlanID(cycle CycleType) string

	// NeedsOrder reports whether the subscription is waiting on its order.
	NeedsOrder(sub *Subscription) bool

	// PaymentDescription is the human-readable charge description.
	PaymentDescription() string
}

// GenericLine is the default behavior for product lines without downstream
// orders: every hook is a no-op and no overrides apply.
type GenericLine struct{}

func NewGenericLine() *GenericLine {
	return &GenericLine{}
}

func (l *GenericLine) Name() ProductLine {
	return LineGeneric
}

func (l *GenericLine) CreateOrder(ctx context.Context, sub *Subscription) error {
	return nil
}

func (l *GenericLine) CreateBundledOrders(ctx context.Context, sub *Subscription) error {
	return nil
}

func (l *GenericLine) CancelOrder(ctx context.Context, sub *Subscription) error {
	return nil
}

func (l *GenericLine) SupportsTierChange() bool {
	return false
}

func (l *GenericLine) SupportsTrial() bool {
	return false
}

func (l *GenericLine) TrialDays() int {
	return DefaultTrialDays
}

func (l *GenericLine) CustomPlanID(cycle CycleType) string {
	return ""
}

func (l *GenericLine) NeedsOrder(sub *Subscription) bool {
	return false
}

func (l *GenericLine) PaymentDescription() string {
	return "Reputation management and business profile distribution services."
}
