package subscription

import (
	"errors"

	"github.com/dmitrymomot/resellkit/pkg/statemachine"
)

var (
	ErrNotFound      = errors.New("subscription not found")
	ErrAlreadyExists = errors.New("subscription already exists")

	// ErrIncompleteSubscription is fatal to the enclosing transition: the
	// billing provider accepted the request but the subscription is not
	// chargeable. No state is committed.
	ErrIncompleteSubscription = errors.New("billing provider returned an incomplete subscription")

	// ErrGatewayUnavailable wraps network or provider failures during a
	// transition hook. The transition aborts and the caller may retry the
	// same event.
	ErrGatewayUnavailable = errors.New("billing gateway unavailable")

	ErrActiveSubscriptionDeletion = errors.New("cannot delete an active subscription")
	ErrOutstandingInvoiceDeletion = errors.New("cannot delete a subscription with an invoice")

	ErrSubmissionFailed = errors.New("campaign submission failed")

	ErrMissingTier          = errors.New("subscription has no product tier")
	ErrMissingPaymentSource = errors.New("subscription has no payment source")
	ErrMissingCampaign      = errors.New("subscription has no campaign")

	ErrInvalidDispatchData = errors.New("dispatch data must be a *Subscription")
)

// IsInvalidTransition reports whether the error came from firing an event
// outside its allowed source states. Non-fatal: the caller should reject the
// request and leave the record untouched.
func IsInvalidTransition(err error) bool {
	return statemachine.IsInvalidTransitionError(err)
}
