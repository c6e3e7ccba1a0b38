package subscription

import (
	"context"
	"time"

	"github.com/dmitrymomot/resellkit/pkg/statemachine"
)

// newLifecycleMachine builds the shared transition table. Hooks run in
// declared order inside Fire; any hook error aborts the transition and the
// service discards the loaded record without persisting.
func (s *Service) newLifecycleMachine() *statemachine.Machine {
	return statemachine.MustNew(
		statemachine.WithTransition(StateDraft, StateNeedsMarkup, EventActivate),
		statemachine.WithTransition(StateNeedsMarkup, StateNeedsOrder, EventSetMarkup),

		// set_order is overloaded on purpose: from needs_order it only
		// advances to payment collection, from the submission states it
		// activates the subscription.
		statemachine.WithTransition(StateNeedsOrder, StatePaymentNeeded, EventSetOrder),
		statemachine.WithTransition(StateNeedsSubmission, StateActive, EventSetOrder),
		statemachine.WithTransition(StateSubmissionFailed, StateActive, EventSetOrder),

		statemachine.WithTransition(StatePaymentNeeded, StateNeedsSubmission, EventSetPayment,
			statemachine.WithActions(
				subscriptionAction(s.createProviderSubscription),
				subscriptionAction(s.setSubscriptionDates),
				subscriptionAction(s.createOrder),
				subscriptionAction(s.createBundledOrders),
			),
		),

		statemachine.WithTransition(StateNeedsSubmission, StateSubmissionFailed, EventSetSubmissionFailure),
		statemachine.WithTransition(StateSubmissionFailed, StateNeedsSubmission, EventResetSubmission,
			statemachine.WithActions(
				subscriptionAction(s.createOrder),
			),
		),

		statemachine.WithTransition(StateActive, StateCancelled, EventCancel,
			statemachine.WithActions(
				subscriptionAction(s.cancelProviderSubscription),
				subscriptionAction(s.sendCancellationNotice),
				subscriptionAction(s.cancelOrder),
				subscriptionAction(s.stampCanceledAt),
			),
		),
		statemachine.WithTransition(StateCancelled, StateActive, EventReactivate),
	)
}

// subscriptionAction adapts a service hook to the statemachine action
// signature, asserting the dispatch payload.
func subscriptionAction(fn func(context.Context, *Subscription) error) statemachine.Action {
	return func(ctx context.Context, _, _ statemachine.State, _ statemachine.Event, data any) error {
		sub, ok := data.(*Subscription)
		if !ok {
			return ErrInvalidDispatchData
		}
		return fn(ctx, sub)
	}
}

func (s *Service) createOrder(ctx context.Context, sub *Subscription) error {
	return s.lineFor(sub).CreateOrder(ctx, sub)
}

func (s *Service) createBundledOrders(ctx context.Context, sub *Subscription) error {
	return s.lineFor(sub).CreateBundledOrders(ctx, sub)
}

func (s *Service) cancelOrder(ctx context.Context, sub *Subscription) error {
	return s.lineFor(sub).CancelOrder(ctx, sub)
}

func (s *Service) sendCancellationNotice(ctx context.Context, sub *Subscription) error {
	return s.notifier.SendCancellationNotice(ctx, sub)
}

// stampCanceledAt records when the cancellation happened. Reactivation keeps
// the stamp as a historical record.
func (s *Service) stampCanceledAt(ctx context.Context, sub *Subscription) error {
	now := time.Now().UTC()
	sub.CanceledAt = &now
	return nil
}
