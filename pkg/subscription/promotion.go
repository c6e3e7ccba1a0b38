package subscription

// PromotionKind names a promotion a contact can be granted.
type PromotionKind string

const (
	// PromotionListingsHoliday prices listings subscriptions from a fixed
	// table by tier rank, with the cheapest tier free while the owning user
	// has free allotments left.
	PromotionListingsHoliday PromotionKind = "listings_holiday"
	// PromotionLocalSEOBundle makes local SEO subscriptions free while the
	// owning user has free allotments left.
	PromotionLocalSEOBundle PromotionKind = "local_seo_bundle"
)

// Cycle columns of the promotional pricing table.
const (
	promoMonthly = 0
	promoYearly  = 1
)

// ListingsHolidayPricing is the promotional price per tier rank, in major
// units, indexed [rank][cycle] with monthly=0 and yearly=1.
var ListingsHolidayPricing = [][2]int64{
	{49, 499},
	{99, 999},
	{199, 1999},
}

// promotionalWholesalePrice evaluates the promotional override paths. Both
// are gated on the product line, the subscriber being a contact, and an
// explicit eligibility grant; the boolean result reports whether an override
// applies at all.
func promotionalWholesalePrice(s *Subscription) (int64, bool) {
	if !s.Subscriber.IsContact() || s.Product == nil || s.Tier == nil {
		return 0, false
	}

	contact := s.Subscriber.Contact
	owner := s.Subscriber.Owner()

	switch s.Line {
	case LineListings:
		if !contact.EligibleForPromotion(PromotionListingsHoliday) {
			return 0, false
		}
		rank := s.Product.TierRank(s.Tier)
		if rank < 0 || rank >= len(ListingsHolidayPricing) {
			return 0, false
		}
		if rank == 0 && owner != nil && owner.RemainingFreeListingsSubscriptions > 0 {
			return 0, true
		}
		if s.CycleType.Yearly() {
			return ListingsHolidayPricing[rank][promoYearly], true
		}
		return ListingsHolidayPricing[rank][promoMonthly], true

	case LineLocalSEO:
		if contact.EligibleForPromotion(PromotionLocalSEOBundle) &&
			owner != nil && owner.RemainingFreeLocalSEOSubscriptions > 0 {
			return 0, true
		}
	}

	return 0, false
}
