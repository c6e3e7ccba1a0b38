// Package subscription manages the full lifecycle of reseller subscriptions,
// from draft through markup and order collection, payment, external approval,
// and finally activation, cancellation and reactivation.
//
// The package implements the lifecycle as an explicit state machine: every
// change of state is an event dispatched through Service, validated against
// the transition table, with side effects (billing provider calls, downstream
// orders, notifications) bound as ordered transition hooks. A failed hook
// aborts the whole transition and the stored record stays untouched.
//
// # Architecture
//
//   - Service: lifecycle controller dispatching events with per-record
//     serialization
//   - Line: product-line strategy refining order creation, trials and tier
//     change policy
//   - BillingProvider: abstracts the payment provider (Stripe implementation
//     included)
//   - SubmissionClient: posts campaigns to the external approval workflow
//   - Store: persists subscription records (in-memory implementation
//     included)
//   - CancellationNotifier: informs the operator team about cancellations
//
// Pricing helpers on Subscription translate between the catalog's wholesale
// costs (minor units) and the operator's marked-up display prices (major
// units), including promotional overrides and member payouts.
//
// # Quick Start
//
//	store := subscription.NewMemoryStore()
//	provider, err := subscription.NewStripeProvider(stripeCfg)
//	if err != nil {
//		return err
//	}
//	svc := subscription.NewService(store, provider,
//		subscription.WithLine(subscription.NewBrandLine(orders)),
//		subscription.WithLogger(logger),
//	)
//
//	sub := subscription.New(subscription.LineBrand, product, tier, subscription.CycleMonthly, subscriber)
//	if err := svc.Create(ctx, sub); err != nil {
//		return err
//	}
//	if _, err := svc.Activate(ctx, sub.ID); err != nil {
//		return err
//	}
package subscription
