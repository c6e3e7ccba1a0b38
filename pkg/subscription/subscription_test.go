package subscription_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/resellkit/pkg/subscription"
)

func TestRemainingTrialDays(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("partial days round up", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		end := now.Add(36 * time.Hour)
		sub.TrialEndsAt = &end

		assert.Equal(t, 2, sub.RemainingTrialDaysAt(now))
	})

	t.Run("expired trial is zero, not negative", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		end := now.Add(-48 * time.Hour)
		sub.TrialEndsAt = &end

		assert.Equal(t, 0, sub.RemainingTrialDaysAt(now))
	})

	t.Run("no trial window is zero", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		assert.Equal(t, 0, sub.RemainingTrialDaysAt(now))
		assert.False(t, sub.TrialActive())
	})

	t.Run("exact whole days", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		end := now.Add(10 * 24 * time.Hour)
		sub.TrialEndsAt = &end

		assert.Equal(t, 10, sub.RemainingTrialDaysAt(now))
	})
}

func TestAboutToExpire(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("within threshold", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		renewal := now.Add(7 * 24 * time.Hour)
		sub.RenewalDate = &renewal

		assert.True(t, sub.AboutToExpireAt(now))
	})

	t.Run("outside threshold", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		renewal := now.Add(30 * 24 * time.Hour)
		sub.RenewalDate = &renewal

		assert.False(t, sub.AboutToExpireAt(now))
	})

	t.Run("past renewal date", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		renewal := now.Add(-time.Hour)
		sub.RenewalDate = &renewal

		assert.False(t, sub.AboutToExpireAt(now))
	})

	t.Run("no renewal date", func(t *testing.T) {
		t.Parallel()
		sub := pricingSubscription(subscription.CycleMonthly)
		assert.False(t, sub.AboutToExpireAt(now))
	})
}

func TestComped(t *testing.T) {
	t.Parallel()

	product, tier := testCatalog()

	t.Run("bundled child renewing a year after parent creation", func(t *testing.T) {
		t.Parallel()
		parent := subscription.New(subscription.LineGeneric, product, tier, subscription.CycleYearly, testSubscriber())
		child := subscription.New(subscription.LineGeneric, product, tier, subscription.CycleYearly,
			subscription.Subscriber{Kind: subscription.SubscriberSubscription, Parent: parent})
		renewal := parent.CreatedAt.AddDate(1, 0, 0)
		child.RenewalDate = &renewal

		assert.True(t, child.Comped())
	})

	t.Run("bundled child with its own renewal schedule", func(t *testing.T) {
		t.Parallel()
		parent := subscription.New(subscription.LineGeneric, product, tier, subscription.CycleYearly, testSubscriber())
		child := subscription.New(subscription.LineGeneric, product, tier, subscription.CycleYearly,
			subscription.Subscriber{Kind: subscription.SubscriberSubscription, Parent: parent})
		renewal := parent.CreatedAt.AddDate(1, 2, 0)
		child.RenewalDate = &renewal

		assert.False(t, child.Comped())
	})

	t.Run("directly owned subscriptions are never comped", func(t *testing.T) {
		t.Parallel()
		sub := subscription.New(subscription.LineGeneric, product, tier, subscription.CycleYearly, testSubscriber())
		renewal := sub.CreatedAt.AddDate(1, 0, 0)
		sub.RenewalDate = &renewal

		assert.False(t, sub.Comped())
	})
}

func TestSubscriberOwner(t *testing.T) {
	t.Parallel()

	owner := &subscription.User{ID: uuid.New(), Email: "owner@example.com"}

	t.Run("user subscriber owns itself", func(t *testing.T) {
		t.Parallel()
		s := subscription.Subscriber{Kind: subscription.SubscriberUser, User: owner}
		assert.Equal(t, owner, s.Owner())
		assert.False(t, s.IsContact())
	})

	t.Run("contact resolves to its user", func(t *testing.T) {
		t.Parallel()
		s := subscription.Subscriber{
			Kind:    subscription.SubscriberContact,
			Contact: &subscription.Contact{ID: uuid.New(), User: owner},
		}
		assert.Equal(t, owner, s.Owner())
		assert.True(t, s.IsContact())
	})

	t.Run("subscription subscriber has no owner", func(t *testing.T) {
		t.Parallel()
		s := subscription.Subscriber{Kind: subscription.SubscriberSubscription}
		assert.Nil(t, s.Owner())
	})
}

func TestNotificationEmail(t *testing.T) {
	t.Parallel()

	sub := pricingSubscription(subscription.CycleMonthly)
	assert.Empty(t, sub.NotificationEmail())

	ps := testPaymentSource()
	sub.PaymentSource = &ps
	assert.Equal(t, "billing@example.com", sub.NotificationEmail())
}
