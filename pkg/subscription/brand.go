package subscription

import (
	"context"
)

// Billing provider plan identifiers for custom-priced brand subscriptions,
// used when the selected tier carries no plan id of its own.
const (
	BrandCustomAnnualPlan  = "brand_custom_annual"
	BrandCustomMonthlyPlan = "brand_custom_monthly"
)

// TierTitleWithWebsiteOptimization marks the tier that bundles both
// optimization orders.
// TODO: replace the tier-title match with an explicit feature flag on
// ProductTier once the catalog carries one.
const TierTitleWithWebsiteOptimization = "Includes google post and website optimization"

// OrderService creates and cancels the brand line's downstream orders.
// Implementations talk to the fulfillment systems; this package only decides
// which orders a subscription gets.
type OrderService interface {
	CreateCampaignOrder(ctx context.Context, campaign *Campaign) error
	CreateOptimizationOrder(ctx context.Context, campaign *Campaign) error
	CreateWebsiteOptimizationOrder(ctx context.Context, campaign *Campaign) error
	CancelCampaignOrder(ctx context.Context, campaign *Campaign) error
}

// BrandLine refines the shared lifecycle for brand subscriptions: the primary
// order is a campaign, tiers may bundle optimization orders, and tier changes
// are unsupported.
type BrandLine struct {
	orders OrderService
}

func NewBrandLine(orders OrderService) *BrandLine {
	if orders == nil {
		panic("subscription: OrderService is required for the brand line")
	}
	return &BrandLine{orders: orders}
}

func (l *BrandLine) Name() ProductLine {
	return LineBrand
}

// CreateOrder creates the campaign order. An already-active campaign means a
// previous attempt succeeded, so the call is a no-op to keep transition
// retries from creating duplicate orders.
func (l *BrandLine) CreateOrder(ctx context.Context, sub *Subscription) error {
	if sub.Campaign == nil {
		return ErrMissingCampaign
	}
	if sub.Campaign.Active() {
		return nil
	}
	return l.orders.CreateCampaignOrder(ctx, sub.Campaign)
}

// CreateBundledOrders always creates the optimization order and additionally
// the website optimization order when the selected tier includes both.
func (l *BrandLine) CreateBundledOrders(ctx context.Context, sub *Subscription) error {
	if sub.Campaign == nil {
		return ErrMissingCampaign
	}
	if err := l.orders.CreateOptimizationOrder(ctx, sub.Campaign); err != nil {
		return err
	}
	if !l.includesWebsiteOptimization(sub) {
		return nil
	}
	return l.orders.CreateWebsiteOptimizationOrder(ctx, sub.Campaign)
}

// CancelOrder cancels the campaign order only while it is active, making
// repeated cancellations safe.
func (l *BrandLine) CancelOrder(ctx context.Context, sub *Subscription) error {
	if sub.Campaign == nil || !sub.Campaign.Active() {
		return nil
	}
	return l.orders.CancelCampaignOrder(ctx, sub.Campaign)
}

// Tier changes are unsupported for the brand line; attempting one is a no-op.
func (l *BrandLine) SupportsTierChange() bool {
	return false
}

func (l *BrandLine) SupportsTrial() bool {
	return false
}

func (l *BrandLine) TrialDays() int {
	return DefaultTrialDays
}

// CustomPlanID routes custom-priced brand tiers to the shared custom plans.
func (l *BrandLine) CustomPlanID(cycle CycleType) string {
	if cycle.Yearly() {
		return BrandCustomAnnualPlan
	}
	return BrandCustomMonthlyPlan
}

func (l *BrandLine) NeedsOrder(sub *Subscription) bool {
	return sub.State == StateNeedsOrder
}

func (l *BrandLine) PaymentDescription() string {
	return "Google post"
}

func (l *BrandLine) includesWebsiteOptimization(sub *Subscription) bool {
	return sub.Tier != nil && sub.Tier.Title == TierTitleWithWebsiteOptimization
}
