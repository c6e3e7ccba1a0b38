package subscription

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/resellkit/pkg/statemachine"
)

// DefaultTrialDays is the trial length applied when a product line supports
// trials but does not override the duration.
const DefaultTrialDays = 10

// RenewalThreshold is how close to the renewal date a subscription counts as
// about to expire.
const RenewalThreshold = 14 * 24 * time.Hour

// Subscription is a purchased recurring or one-time service. Its State column
// is mutated exclusively through Service event dispatches; all other fields
// are set by transition hooks or at creation time.
type Subscription struct {
	ID   uuid.UUID
	Line ProductLine

	State     statemachine.StringState
	CycleType CycleType

	Price *int64 // minor units, nil until provider subscription is created

	ActivationDate *time.Time
	RenewalDate    *time.Time
	CanceledAt     *time.Time
	TrialEndsAt    *time.Time

	// ProviderSubscriptionID is set at most once per subscription lifetime;
	// re-activation after cancellation reuses it.
	ProviderSubscriptionID string

	Product       *Product
	Tier          *ProductTier
	PaymentSource *PaymentSource
	Markup        *Markup
	Subscriber    Subscriber
	Campaign      *Campaign // brand line only

	SoftDeleted bool
	DeletedAt   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a subscription in the draft state for the given product/tier
// selection.
func New(line ProductLine, product *Product, tier *ProductTier, cycle CycleType, subscriber Subscriber) *Subscription {
	now := time.Now().UTC()
	return &Subscription{
		ID:         uuid.New(),
		Line:       line,
		State:      StateDraft,
		CycleType:  cycle,
		Product:    product,
		Tier:       tier,
		Subscriber: subscriber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *Subscription) IsActive() bool {
	return s.State == StateActive
}

func (s *Subscription) IsCancelled() bool {
	return s.State == StateCancelled
}

// RemainingTrialDaysAt returns the whole days left in the trial window at a
// given time, rounding partial days up and never going negative.
// This variant exists for testing with fixed time values.
func (s *Subscription) RemainingTrialDaysAt(now time.Time) int {
	if s.TrialEndsAt == nil {
		return 0
	}

	remaining := s.TrialEndsAt.Sub(now)
	if remaining <= 0 {
		return 0
	}

	return int(math.Ceil(remaining.Hours() / 24))
}

// RemainingTrialDays returns the whole days left in the trial window.
func (s *Subscription) RemainingTrialDays() int {
	return s.RemainingTrialDaysAt(time.Now().UTC())
}

// TrialActive reports whether the trial window is still open.
func (s *Subscription) TrialActive() bool {
	return s.RemainingTrialDays() > 0
}

// AboutToExpireAt reports whether the renewal date is in the future but
// within the renewal threshold at the given time.
func (s *Subscription) AboutToExpireAt(now time.Time) bool {
	if s.RenewalDate == nil || !s.RenewalDate.After(now) {
		return false
	}
	return s.RenewalDate.Sub(now) < RenewalThreshold
}

// AboutToExpire reports whether the renewal date is within the threshold.
func (s *Subscription) AboutToExpire() bool {
	return s.AboutToExpireAt(time.Now().UTC())
}

// Comped reports whether the subscription is a complimentary bundled product:
// owned by another subscription with a renewal date exactly one year after
// the parent's creation.
func (s *Subscription) Comped() bool {
	if s.Subscriber.Kind != SubscriberSubscription || s.Subscriber.Parent == nil {
		return false
	}
	if s.RenewalDate == nil {
		return false
	}
	expected := s.Subscriber.Parent.CreatedAt.AddDate(1, 0, 0)
	return s.RenewalDate.Truncate(24 * time.Hour).Equal(expected.Truncate(24 * time.Hour))
}

// NotificationEmail is the address lifecycle notifications go to.
func (s *Subscription) NotificationEmail() string {
	if s.PaymentSource == nil {
		return ""
	}
	return s.PaymentSource.Email
}

// clone returns a copy safe to mutate without affecting the receiver.
// Pointer fields that transition hooks mutate are deep-copied; catalog
// references (product, tier, payment source, campaign) stay shared since the
// lifecycle never mutates them.
func (s *Subscription) clone() *Subscription {
	c := *s
	if s.Price != nil {
		price := *s.Price
		c.Price = &price
	}
	if s.Markup != nil {
		markup := *s.Markup
		c.Markup = &markup
	}
	c.ActivationDate = cloneTime(s.ActivationDate)
	c.RenewalDate = cloneTime(s.RenewalDate)
	c.CanceledAt = cloneTime(s.CanceledAt)
	c.TrialEndsAt = cloneTime(s.TrialEndsAt)
	c.DeletedAt = cloneTime(s.DeletedAt)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
