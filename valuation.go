package bondplan

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MarketValue resolves the value of an asset: the current price when one is
// known and positive, the purchase price otherwise. Every aggregate in the
// package goes through this resolution so that unrealized gains show up
// wherever a live price exists.
func MarketValue(a FixedIncomeAsset) Money {
	if a.CurrentPrice.IsPositive() {
		return a.CurrentPrice
	}
	return a.PurchasePrice
}

// TotalMarketValue sums MarketValue over a collection. Empty input yields a
// zero Money with no currency.
func TotalMarketValue(assets []FixedIncomeAsset) Money {
	var total Money
	for _, a := range assets {
		total = total.Add(MarketValue(a))
	}
	return total
}

// WeightedAverage computes the market-value-weighted mean of selector over
// the assets. It returns 0 when the total market value is zero, so degenerate
// portfolios never poison downstream ratios.
func WeightedAverage(assets []FixedIncomeAsset, selector func(FixedIncomeAsset) float64) float64 {
	values := make([]float64, 0, len(assets))
	weights := make([]float64, 0, len(assets))
	var total float64
	for _, a := range assets {
		w := MarketValue(a).AsFloat()
		values = append(values, selector(a))
		weights = append(weights, w)
		total += w
	}
	if total == 0 {
		return 0
	}
	return stat.Mean(values, weights)
}

// ApproximateYTM estimates the yield to maturity of an asset, in percent.
//
// Perpetuals and assets without a usable maturity date yield their nominal
// rate. Zero-coupon assets use the compound-growth formula. Coupon-bearing
// assets use the standard quick approximation
//
//	(coupon + (face-price)/years) / ((face+price)/2)
//
// rather than an exact IRR solve. Years to maturity are floored at 0.01 to
// keep same-day maturities finite.
func ApproximateYTM(on Date, a FixedIncomeAsset) Percent {
	if a.IsPerpetual() || a.Maturity.IsZero() {
		return a.InterestRate
	}

	years := math.Max(0.01, on.YearsUntil(a.Maturity))
	face := a.FaceValue.AsFloat()
	price := a.PurchasePrice.AsFloat()
	if price <= 0 {
		// guard against a division blow-up on malformed records
		return a.InterestRate
	}

	if a.InterestRate == 0 {
		// zero-coupon: annualized compound growth from price to face
		return Percent((math.Pow(face/price, 1/years) - 1) * 100)
	}

	coupon := face * float64(a.InterestRate) / 100
	ytm := (coupon + (face-price)/years) / ((face + price) / 2)
	return Percent(ytm * 100)
}

// WeightedYTM is the market-value-weighted average yield across the assets.
func WeightedYTM(on Date, assets []FixedIncomeAsset) Percent {
	return Percent(WeightedAverage(assets, func(a FixedIncomeAsset) float64 {
		return float64(ApproximateYTM(on, a))
	}))
}

// WeightedYearsToMaturity is the market-value-weighted average remaining term
// across the non-perpetual assets, in years.
func WeightedYearsToMaturity(on Date, assets []FixedIncomeAsset) float64 {
	dated := make([]FixedIncomeAsset, 0, len(assets))
	for _, a := range assets {
		if !a.IsPerpetual() && !a.Maturity.IsZero() {
			dated = append(dated, a)
		}
	}
	return WeightedAverage(dated, func(a FixedIncomeAsset) float64 {
		return math.Max(0, on.YearsUntil(a.Maturity))
	})
}
