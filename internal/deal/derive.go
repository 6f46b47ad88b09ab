package deal

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// clampPercent bounds a discount percentage to the displayable 0 to 100
// range. Marketplace copy occasionally carries junk like "150% off".
func clampPercent(n int) int {
	if n > 100 {
		return 100
	}
	if n < 0 {
		return 0
	}
	return n
}

// DeriveNumbers computes the canonical price and percent-off on a copy
// of d. Best effort: malformed or missing price text leaves the derived
// fields nil, never an error.
//
// The base price is the first dollar amount in display_price, falling
// back to price_info. A percent coupon applies first, then a flat
// dollar-off coupon, clamped at zero. Percent-off for display prefers
// the coupon percentage, then any percentage in price_info, then a
// "was" price recovered from price_info.
func DeriveNumbers(d Deal) Deal {
	d.Price = nil
	d.PercentOff = nil

	price, havePrice := firstMoney(d.DisplayPrice)
	if !havePrice {
		price, havePrice = firstMoney(d.PriceInfo)
	}

	couponPct, haveCouponPct := firstPercent(d.Coupon)
	couponPct = clampPercent(couponPct)

	if havePrice {
		if haveCouponPct {
			factor := hundred.Sub(decimal.NewFromInt(int64(couponPct))).Div(hundred)
			price = price.Mul(factor).Round(2)
		}
		if dollarOff, ok := firstMoney(d.Coupon); ok {
			price = price.Sub(dollarOff).Round(2)
		}
		if price.IsNegative() {
			price = decimal.Zero
		}
		v, _ := price.Float64()
		d.Price = &v
	}

	switch {
	case haveCouponPct:
		d.PercentOff = &couponPct
	default:
		if pct, ok := firstPercent(d.PriceInfo); ok {
			pct = clampPercent(pct)
			d.PercentOff = &pct
		} else if havePrice {
			if was, ok := wasPrice(d.PriceInfo); ok && was.IsPositive() && price.LessThanOrEqual(was) {
				pct := int(hundred.Mul(decimal.NewFromInt(1).Sub(price.Div(was))).Round(0).IntPart())
				d.PercentOff = &pct
			}
		}
	}

	return d
}
