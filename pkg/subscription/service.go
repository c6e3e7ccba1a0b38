package subscription

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/resellkit/pkg/statemachine"
)

// Service is the subscription lifecycle controller. Every state change goes
// through an event dispatch: the transition table validates the event against
// the current state, runs the ordered hooks, and only then persists the new
// state together with any fields the hooks mutated.
//
// Dispatches on the same subscription are serialized through a per-record
// lock; different subscriptions proceed fully in parallel.
type Service struct {
	store     Store
	provider  BillingProvider
	lines     map[ProductLine]Line
	notifier  CancellationNotifier
	submitter SubmissionClient
	invoices  InvoiceChecker
	onCreate  CreateHook
	machine   *statemachine.Machine
	log       *slog.Logger

	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewService creates the lifecycle controller. Panics if store or provider
// are nil to fail fast during initialization. The generic line is always
// registered; additional lines are added with WithLine.
func NewService(store Store, provider BillingProvider, opts ...ServiceOption) *Service {
	if store == nil {
		panic("subscription: Store is required")
	}
	if provider == nil {
		panic("subscription: BillingProvider is required")
	}

	s := &Service{
		store:    store,
		provider: provider,
		lines:    map[ProductLine]Line{LineGeneric: NewGenericLine()},
		notifier: NopNotifier{},
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.machine = s.newLifecycleMachine()
	return s
}

// Create persists a new draft subscription. For contact-owned subscriptions
// the create hook fires after the record is stored; a failed hook rolls the
// creation back so the contact's status and the subscription stay in step.
func (s *Service) Create(ctx context.Context, sub *Subscription) error {
	if _, err := s.store.Get(ctx, sub.ID); err == nil {
		return ErrAlreadyExists
	}
	if err := s.store.Save(ctx, sub); err != nil {
		return err
	}

	if s.onCreate != nil && sub.Subscriber.IsContact() {
		if err := s.onCreate(ctx, sub); err != nil {
			if delErr := s.store.Delete(ctx, sub.ID); delErr != nil {
				s.log.ErrorContext(ctx, "failed to roll back subscription after create hook failure",
					slog.String("subscription_id", sub.ID.String()),
					slog.Any("error", delErr),
				)
			}
			return err
		}
	}
	return nil
}

// Get retrieves a live subscription.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.store.Get(ctx, id)
}

// Activate moves a draft subscription into markup collection.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventActivate, nil)
}

// SetMarkup records the operator's markup and recomputes its total from the
// wholesale price, then advances to order collection.
func (s *Service) SetMarkup(ctx context.Context, id uuid.UUID, markup Markup) (*Subscription, error) {
	return s.fire(ctx, id, EventSetMarkup, func(sub *Subscription) error {
		sub.Markup = &markup
		sub.ApplyMarkupTotal()
		return nil
	})
}

// SetOrder dispatches the overloaded set_order event: from needs_order the
// subscription advances to payment collection; from needs_submission or
// submission_failed it activates.
func (s *Service) SetOrder(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventSetOrder, nil)
}

// SetPayment records the payment source and runs the activation hook chain:
// provider subscription creation, date stamping and order creation.
func (s *Service) SetPayment(ctx context.Context, id uuid.UUID, source PaymentSource) (*Subscription, error) {
	return s.fire(ctx, id, EventSetPayment, func(sub *Subscription) error {
		sub.PaymentSource = &source
		return nil
	})
}

// SetSubmissionFailure marks the pending submission as failed.
func (s *Service) SetSubmissionFailure(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventSetSubmissionFailure, nil)
}

// ResetSubmission re-creates the primary order and returns the subscription
// to needs_submission, allowing a failed submission to be retried without
// collecting payment again.
func (s *Service) ResetSubmission(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventResetSubmission, nil)
}

// Cancel runs the compensating hook chain: provider cancellation,
// notification, order cancellation and the canceled-at stamp.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventCancel, nil)
}

// Reactivate returns a cancelled subscription to active. The canceled-at
// stamp is retained and the existing provider subscription id is reused.
func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return s.fire(ctx, id, EventReactivate, nil)
}

// SubmitForApproval posts the subscription's campaign to the external
// approval workflow and, on acceptance, acknowledges the submission by
// dispatching set_order. A rejected or failed submission is returned as an
// error; the caller decides whether to dispatch SetSubmissionFailure.
func (s *Service) SubmitForApproval(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	if s.submitter == nil {
		return nil, ErrSubmissionFailed
	}

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Campaign == nil {
		return nil, ErrMissingCampaign
	}

	if err := s.submitter.Submit(ctx, sub.Campaign); err != nil {
		s.log.ErrorContext(ctx, "campaign submission failed",
			slog.String("subscription_id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return s.SetOrder(ctx, id)
}

// ChangeTier swaps the product tier and recomputes the markup total. Lines
// that do not support tier changes treat the call as a successful no-op.
func (s *Service) ChangeTier(ctx context.Context, id uuid.UUID, tier *ProductTier) (*Subscription, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.lineFor(sub).SupportsTierChange() {
		return sub, nil
	}

	sub.Tier = tier
	if sub.Markup != nil {
		sub.ApplyMarkupTotal()
	}
	sub.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Destroy physically removes a subscription. Blocked while any invoice is
// attached or the subscription is active; the guard and the delete run under
// the per-record lock so no invoice can slip in between check and delete.
func (s *Service) Destroy(ctx context.Context, id uuid.UUID) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkDestroyable(ctx, sub); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}

// SoftDelete tombstones a subscription under the same guards as Destroy.
// The record survives but disappears from normal queries.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkDestroyable(ctx, sub); err != nil {
		return err
	}

	now := time.Now().UTC()
	sub.SoftDeleted = true
	sub.DeletedAt = &now
	sub.UpdatedAt = now
	return s.store.Save(ctx, sub)
}

func (s *Service) checkDestroyable(ctx context.Context, sub *Subscription) error {
	if s.invoices != nil {
		hasInvoice, err := s.invoices(ctx, sub.ID)
		if err != nil {
			return err
		}
		if hasInvoice {
			return ErrOutstandingInvoiceDeletion
		}
	}
	if sub.IsActive() {
		return ErrActiveSubscriptionDeletion
	}
	return nil
}

// CanFire reports whether the event is currently allowed for the
// subscription without running any hooks.
func (s *Service) CanFire(ctx context.Context, id uuid.UUID, event statemachine.StringEvent) bool {
	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return false
	}
	return s.machine.CanFire(ctx, sub.State, event, sub)
}

// fire is the single dispatch path: it serializes on the record, loads a
// fresh copy, applies the optional field mutation, runs the transition with
// its hooks, and persists the new state together with the mutated fields.
// Any error leaves the stored record untouched.
func (s *Service) fire(ctx context.Context, id uuid.UUID, event statemachine.StringEvent, mutate func(*Subscription) error) (*Subscription, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	sub, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := sub.State

	if mutate != nil {
		if err := mutate(sub); err != nil {
			return nil, err
		}
	}

	next, err := s.machine.Fire(ctx, sub.State, event, sub)
	if err != nil {
		s.log.WarnContext(ctx, "subscription transition rejected",
			slog.String("subscription_id", id.String()),
			slog.String("event", event.Name()),
			slog.String("state", from.Name()),
			slog.Any("error", err),
		)
		return nil, err
	}

	sub.State = statemachine.StringState(next.Name())
	sub.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(ctx, sub); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subscription transition",
		slog.String("subscription_id", id.String()),
		slog.String("event", event.Name()),
		slog.String("from", from.Name()),
		slog.String("to", next.Name()),
	)
	return sub, nil
}

func (s *Service) lineFor(sub *Subscription) Line {
	if line, ok := s.lines[sub.Line]; ok {
		return line
	}
	return s.lines[LineGeneric]
}

func (s *Service) lock(id uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
