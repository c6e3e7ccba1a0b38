package subscription

// Pricing works in two unit systems. Tier costs, one-time fees and the stored
// subscription price are minor units (cents); markup totals and setup fees
// are stored in major units already. Minor-to-major conversions truncate;
// markup values are never divided again.

const minorUnitsPerMajor = 100

// WholesalePrice returns the cost the upstream vendor charges the operator
// for one billing cycle, in major units. Promotional overrides are evaluated
// before the tier's base cost.
func (s *Subscription) WholesalePrice() int64 {
	if s.Tier == nil {
		return 0
	}

	if price, ok := promotionalWholesalePrice(s); ok {
		return price
	}

	if s.CycleType.Yearly() {
		return s.Tier.YearlyCost / minorUnitsPerMajor
	}
	return s.Tier.Cost / minorUnitsPerMajor
}

// DisplayPrice returns the price shown to the subscriber, in major units.
// A positive markup total wins over everything else; lines that always apply
// markup use the total even when it is zero.
func (s *Subscription) DisplayPrice() int64 {
	if s.Markup != nil && (s.Markup.Total > 0 || alwaysAppliesMarkup(s.Line)) {
		return s.Markup.Total * markupMultiplier(s.Line)
	}

	if s.Price == nil {
		if s.Tier == nil {
			return 0
		}
		if s.CycleType.Yearly() {
			return s.Tier.YearlyCost / minorUnitsPerMajor
		}
		return s.Tier.Cost / minorUnitsPerMajor
	}

	return *s.Price / minorUnitsPerMajor
}

// MemberPayout is the operator's margin on the recurring price: markup total
// minus wholesale, or 0 when no positive markup is set.
func (s *Subscription) MemberPayout() int64 {
	if s.Markup != nil && s.Markup.Total > 0 {
		return s.Markup.Total - s.WholesalePrice()
	}
	return 0
}

// SetupFeeMemberPayout is the operator's margin on the setup fee.
func (s *Subscription) SetupFeeMemberPayout() int64 {
	if s.Markup != nil && s.Markup.SetupFee > 0 {
		return s.Markup.SetupFee - s.SetupFeeWholesalePrice()
	}
	return 0
}

// SetupFeeWholesalePrice is the upstream setup cost in major units: the
// tier's setup fee when positive, otherwise the product's one-time fee.
func (s *Subscription) SetupFeeWholesalePrice() int64 {
	if s.Tier != nil && s.Tier.SetupFee > 0 {
		return s.Tier.SetupFee / minorUnitsPerMajor
	}
	if s.Product != nil && s.Product.OneTimeFee > 0 {
		return s.Product.OneTimeFee / minorUnitsPerMajor
	}
	return 0
}

// MarkupSuccessFee returns the markup's success fee when positive.
func (s *Subscription) MarkupSuccessFee() int64 {
	if s.Markup != nil && s.Markup.SuccessFee > 0 {
		return s.Markup.SuccessFee
	}
	return 0
}

// ApplyMarkupTotal recomputes the markup total from the current wholesale
// price and markup percentage. Must be called whenever the tier or the
// markup percentage changes.
func (s *Subscription) ApplyMarkupTotal() {
	if s.Markup == nil {
		return
	}
	s.Markup.Total = s.WholesalePrice() * (100 + s.Markup.Percentage) / 100
}

// alwaysAppliesMarkup reports whether the line displays the markup total even
// when it is zero. The listings line prices exclusively through markup.
func alwaysAppliesMarkup(line ProductLine) bool {
	return line == LineListings
}

// markupMultiplier scales the displayed markup total. All current lines use
// the total as-is.
func markupMultiplier(line ProductLine) int64 {
	return 1
}
