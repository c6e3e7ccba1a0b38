package subscription

import (
	"github.com/dmitrymomot/resellkit/pkg/statemachine"
)

// Lifecycle states persisted on the subscription record.
const (
	StateDraft            = statemachine.StringState("draft")
	StateNeedsMarkup      = statemachine.StringState("needs_markup")
	StateNeedsOrder       = statemachine.StringState("needs_order")
	StatePaymentNeeded    = statemachine.StringState("payment_needed")
	StateNeedsSubmission  = statemachine.StringState("needs_submission")
	StateActive           = statemachine.StringState("active")
	StateSubmissionFailed = statemachine.StringState("submission_failed")
	StateCancelled        = statemachine.StringState("cancelled")
)

// Lifecycle events. Note that EventSetOrder is deliberately overloaded: fired
// from needs_order it advances to payment collection, fired from
// needs_submission or submission_failed it activates the subscription.
const (
	EventActivate             = statemachine.StringEvent("activate")
	EventSetMarkup            = statemachine.StringEvent("set_markup")
	EventSetOrder             = statemachine.StringEvent("set_order")
	EventSetPayment           = statemachine.StringEvent("set_payment")
	EventSetSubmissionFailure = statemachine.StringEvent("set_submission_failure")
	EventResetSubmission      = statemachine.StringEvent("reset_submission")
	EventCancel               = statemachine.StringEvent("cancel")
	EventReactivate           = statemachine.StringEvent("reactivate")
)

// CycleType represents the billing frequency of a subscription.
// Persisted as a 0-based integer: yearly=0, monthly=1, monthly_commitment=2.
type CycleType int

const (
	CycleYearly CycleType = iota
	CycleMonthly
	CycleMonthlyCommitment
)

func (c CycleType) Yearly() bool {
	return c == CycleYearly
}

// Monthly reports whether the subscription bills every month. A monthly
// commitment bills monthly against the provider's monthly plan; only the
// contractual term differs.
func (c CycleType) Monthly() bool {
	return c == CycleMonthly || c == CycleMonthlyCommitment
}

func (c CycleType) String() string {
	switch c {
	case CycleYearly:
		return "yearly"
	case CycleMonthly:
		return "monthly"
	case CycleMonthlyCommitment:
		return "monthly_commitment"
	default:
		return "unknown"
	}
}

// ProductLine tags a subscription with the product line whose behavior it
// follows. The generic line carries the shared lifecycle; other lines refine
// order creation, tier-change support and trial policy.
type ProductLine string

const (
	LineGeneric  ProductLine = "generic"
	LineBrand    ProductLine = "brand"
	LineListings ProductLine = "listings"
	LineLocalSEO ProductLine = "local_seo"
)

// SubscriberKind tags the subscriber union variant.
type SubscriberKind string

const (
	SubscriberUser         SubscriberKind = "user"
	SubscriberContact      SubscriberKind = "contact"
	SubscriberSubscription SubscriberKind = "subscription"
)

// Subscriber is a tagged union over the three parties that can own a
// subscription: a platform user, an end-customer contact, or another
// subscription (bundled products). The Kind tag decides which field is set;
// callers must switch on it rather than inspect the pointers.
type Subscriber struct {
	Kind    SubscriberKind
	User    *User
	Contact *Contact
	Parent  *Subscription
}

// IsContact reports whether the subscriber is an end-customer contact.
func (s Subscriber) IsContact() bool {
	return s.Kind == SubscriberContact
}

// Owner resolves the platform user behind the subscriber: the user itself,
// or the user owning the contact. Returns nil for subscription-as-subscriber.
func (s Subscriber) Owner() *User {
	switch s.Kind {
	case SubscriberUser:
		return s.User
	case SubscriberContact:
		if s.Contact != nil {
			return s.Contact.User
		}
	}
	return nil
}
