package subscription

import (
	"context"
	"fmt"
	"time"
)

// Billing gateway adapter: bridges the subscription record and the
// provider-agnostic BillingProvider during transition hooks.

// createProviderSubscription creates the recurring charge schedule for the
// subscription. The monthly plan covers both monthly and monthly-commitment
// cycles; zero-cost tiers skip provider creation entirely.
//
// The provider id and price are persisted immediately after a successful
// create, before the state change commits. A later hook failure then leaves
// the record at its pre-transition state but with the id recorded, so
// retrying the event cannot create a second provider subscription.
func (s *Service) createProviderSubscription(ctx context.Context, sub *Subscription) error {
	if sub.ProviderSubscriptionID != "" {
		return nil
	}
	if sub.Tier == nil {
		return ErrMissingTier
	}
	if sub.PaymentSource == nil {
		return ErrMissingPaymentSource
	}

	var planID string
	var price int64
	if sub.CycleType.Yearly() {
		if sub.Tier.YearlyCost <= 0 {
			return nil
		}
		planID = sub.Tier.YearlyPlanID
		price = sub.Tier.YearlyCost
	} else {
		if sub.Tier.Cost <= 0 {
			return nil
		}
		planID = sub.Tier.MonthlyPlanID
		price = sub.Tier.Cost
	}
	if planID == "" {
		planID = s.lineFor(sub).CustomPlanID(sub.CycleType)
	}

	created, err := s.provider.CreateSubscription(ctx, sub.PaymentSource.CustomerRef, planID, s.providerMetadata(sub))
	if err != nil {
		return err
	}
	if created.Status == ProviderStatusIncomplete {
		return ErrIncompleteSubscription
	}

	sub.ProviderSubscriptionID = created.ID
	sub.Price = &price

	if err := s.store.Save(ctx, sub); err != nil {
		return fmt.Errorf("failed to record provider subscription: %w", err)
	}
	return nil
}

// cancelProviderSubscription stops the provider charge schedule. Safe to
// repeat: it is a no-op without a stored provider id or when the provider
// already shows the subscription as canceled.
func (s *Service) cancelProviderSubscription(ctx context.Context, sub *Subscription) error {
	if sub.ProviderSubscriptionID == "" {
		return nil
	}

	remote, err := s.provider.RetrieveSubscription(ctx, sub.ProviderSubscriptionID)
	if err != nil {
		return err
	}
	if remote == nil || remote.Status == ProviderStatusCanceled {
		return nil
	}

	return s.provider.CancelSubscription(ctx, sub.ProviderSubscriptionID)
}

// ChargeOneTimeFee raises the one-time setup charge when the product calls
// for one. The markup's setup fee (major units) takes precedence over the
// product's flat fee (minor units); a zero fee skips the charge.
func (s *Service) ChargeOneTimeFee(ctx context.Context, sub *Subscription) error {
	if sub.Product == nil || !sub.Product.ChargesOneTimeFee {
		return nil
	}

	var fee int64
	if sub.Markup != nil {
		fee = sub.Markup.SetupFee * minorUnitsPerMajor
	} else {
		fee = sub.Product.OneTimeFee
	}
	if fee == 0 {
		return nil
	}
	if sub.PaymentSource == nil {
		return ErrMissingPaymentSource
	}

	return s.provider.CreateOneTimeCharge(ctx, sub.PaymentSource.CustomerRef, fee, "usd", sub.Product.OneTimeFeeDescription)
}

// setSubscriptionDates stamps the activation date and the renewal date one
// billing cycle out. Lines supporting trials get the trial window opened on
// first activation.
func (s *Service) setSubscriptionDates(ctx context.Context, sub *Subscription) error {
	now := time.Now().UTC()
	sub.ActivationDate = &now

	var renewal time.Time
	if sub.CycleType.Yearly() {
		renewal = now.AddDate(1, 0, 0)
	} else {
		renewal = now.AddDate(0, 1, 0)
	}
	sub.RenewalDate = &renewal

	line := s.lineFor(sub)
	if line.SupportsTrial() && sub.TrialEndsAt == nil {
		trialEnd := now.AddDate(0, 0, line.TrialDays())
		sub.TrialEndsAt = &trialEnd
	}
	return nil
}

func (s *Service) providerMetadata(sub *Subscription) map[string]string {
	return map[string]string{
		"subscription_id": sub.ID.String(),
		"product_line":    string(sub.Line),
		"cycle_type":      sub.CycleType.String(),
		"description":     s.lineFor(sub).PaymentDescription(),
	}
}
