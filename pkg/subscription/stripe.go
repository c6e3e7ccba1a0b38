package subscription

import (
	"context"
	"errors"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/invoiceitem"
	stripesub "github.com/stripe/stripe-go/v82/subscription"
)

// StripeConfig holds configuration for the Stripe billing provider.
type StripeConfig struct {
	APIKey string `env:"STRIPE_API_KEY,required"`
}

// StripeProvider implements BillingProvider using the Stripe API.
type StripeProvider struct {
	config StripeConfig
}

// NewStripeProvider creates a Stripe-backed billing provider.
func NewStripeProvider(config StripeConfig) (*StripeProvider, error) {
	if config.APIKey == "" {
		return nil, errors.New("stripe API key is required")
	}
	stripe.Key = config.APIKey
	return &StripeProvider{config: config}, nil
}

// CreateSubscription starts a Stripe subscription for the customer on the
// given price. Stripe reports non-chargeable subscriptions with the
// "incomplete" status, which the caller maps to a fatal transition error.
func (p *StripeProvider) CreateSubscription(_ context.Context, customerRef, planID string, metadata map[string]string) (*ProviderSubscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerRef),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(planID)},
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	sub, err := stripesub.New(params)
	if err != nil {
		return nil, errors.Join(ErrGatewayUnavailable, err)
	}

	return &ProviderSubscription{ID: sub.ID, Status: string(sub.Status)}, nil
}

// RetrieveSubscription fetches the current Stripe state of a subscription.
func (p *StripeProvider) RetrieveSubscription(_ context.Context, providerID string) (*ProviderSubscription, error) {
	sub, err := stripesub.Get(providerID, nil)
	if err != nil {
		return nil, errors.Join(ErrGatewayUnavailable, err)
	}

	return &ProviderSubscription{ID: sub.ID, Status: string(sub.Status)}, nil
}

// CancelSubscription cancels a Stripe subscription immediately.
func (p *StripeProvider) CancelSubscription(_ context.Context, providerID string) error {
	if _, err := stripesub.Cancel(providerID, nil); err != nil {
		return errors.Join(ErrGatewayUnavailable, err)
	}
	return nil
}

// CreateOneTimeCharge raises a pending invoice item against the customer,
// billed with their next invoice.
func (p *StripeProvider) CreateOneTimeCharge(_ context.Context, customerRef string, amountMinorUnits int64, currency, description string) error {
	_, err := invoiceitem.New(&stripe.InvoiceItemParams{
		Customer:    stripe.String(customerRef),
		Amount:      stripe.Int64(amountMinorUnits),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	})
	if err != nil {
		return errors.Join(ErrGatewayUnavailable, err)
	}
	return nil
}
