package subscription

import (
	"github.com/google/uuid"
)

// Product is an upstream vendor product resold with markup.
type Product struct {
	ID                    uuid.UUID
	Name                  string
	Line                  ProductLine
	OneTimeFee            int64 // minor units
	OneTimeFeeDescription string
	ChargesOneTimeFee     bool
	Tiers                 []*ProductTier // ordered by wholesale price, cheapest first
}

// TierRank returns the zero-based rank of the tier among the product's
// wholesale-ordered tiers, or -1 when the tier does not belong to the product.
func (p *Product) TierRank(tier *ProductTier) int {
	if tier == nil {
		return -1
	}
	for i, t := range p.Tiers {
		if t.ID == tier.ID {
			return i
		}
	}
	return -1
}

// ProductTier is a purchasable tier of a product with its wholesale costs and
// the billing provider plan identifiers used to charge for it.
type ProductTier struct {
	ID            uuid.UUID
	Title         string
	Cost          int64 // monthly, minor units
	YearlyCost    int64 // minor units
	SetupFee      int64 // minor units
	MonthlyPlanID string
	YearlyPlanID  string
}

// Markup is the operator's margin structure layered over the wholesale price.
// Total and SetupFee are stored in major units, unlike tier costs.
type Markup struct {
	Percentage int64
	SetupFee   int64 // major units
	SuccessFee int64 // major units
	Total      int64 // major units
}

// PaymentSource references the billing provider customer a subscription
// charges against.
type PaymentSource struct {
	ID          uuid.UUID
	CustomerRef string // billing provider customer identifier
	Email       string
}

// CampaignStatus tracks the primary order state of a brand campaign.
type CampaignStatus string

const (
	CampaignPending   CampaignStatus = "pending"
	CampaignActive    CampaignStatus = "active"
	CampaignCancelled CampaignStatus = "cancelled"
)

// Campaign is the brand line's unit of work submitted for external approval.
type Campaign struct {
	ID             uuid.UUID
	Code           string
	CustomerID     string
	Status         CampaignStatus
	SubscriptionID uuid.UUID
}

func (c *Campaign) Active() bool {
	return c != nil && c.Status == CampaignActive
}

// User is a platform user reselling products to their contacts.
// Free-allotment counters gate promotional zero pricing.
type User struct {
	ID                                 uuid.UUID
	Email                              string
	RemainingFreeListingsSubscriptions int
	RemainingFreeLocalSEOSubscriptions int
}

// Contact is an end customer belonging to a user. Promotion eligibility is
// resolved against the promotions granted to the contact.
type Contact struct {
	ID         uuid.UUID
	User       *User
	Promotions []PromotionKind
}

// EligibleForPromotion reports whether the contact was granted the promotion.
func (c *Contact) EligibleForPromotion(kind PromotionKind) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Promotions {
		if p == kind {
			return true
		}
	}
	return false
}
