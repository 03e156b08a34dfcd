package bondplan

import "fmt"

// rolloverWindowDays is how far ahead the rollover analysis looks for
// maturing assets.
const rolloverWindowDays = 90

// liquidityLookaheadMonths is how far ahead maturing cash is matched against
// planned outflows.
const liquidityLookaheadMonths = 6

// RolloverAnalysis emits one recommendation per asset maturing within the
// next 90 days. When the maturing amount covers upcoming same-currency
// outflows, it advises keeping the needed cash liquid and reinvesting the
// remainder; otherwise it proposes a replacement instrument at an
// approximate rate matched to the user's risk tolerance.
func RolloverAnalysis(on Date, user User, assets []FixedIncomeAsset, events []LiquidityEvent, rates RateTable) []Recommendation {
	var recs []Recommendation
	term := TermFor(user.Risk)
	horizon := on.AddMonth(liquidityLookaheadMonths)

	for _, a := range assets {
		if a.IsPerpetual() || a.Maturity.IsZero() {
			continue
		}
		days := on.DaysUntil(a.Maturity)
		if days <= 0 || days > rolloverWindowDays {
			continue
		}

		// outflows in the next 6 months payable in the asset's currency
		needs := M(0, a.Currency())
		for _, e := range events {
			if e.Amount.Currency() != a.Currency() {
				continue
			}
			if e.Date.After(on) && !e.Date.After(horizon) {
				needs = needs.Add(e.Amount)
			}
		}

		value := MarketValue(a)
		var actions []string
		if needs.IsPositive() && value.GreaterThanOrEqual(needs) {
			actions = append(actions,
				fmt.Sprintf("Keep %s liquid to cover outflows planned in the next %d months", needs, liquidityLookaheadMonths))
			if remainder := value.Sub(needs); remainder.IsPositive() {
				actions = append(actions,
					fmt.Sprintf("Reinvest the remaining %s once cash needs are set aside", remainder))
			}
		} else {
			rate := rates.Rate(a.Region, a.Type, a.Issuer, term)
			bucket := rateBucket(a.Type, a.Issuer)
			actions = append(actions,
				fmt.Sprintf("Roll the proceeds into a %s-term %s at approximately %s", term, bucket, rate))
			if needs.IsPositive() {
				shortfall := needs.Sub(value)
				actions = append(actions,
					fmt.Sprintf("Note: maturing value does not cover the %s of planned outflows (missing %s)", needs, shortfall))
			}
		}

		if user.Region != a.Region && user.Risk != Conservative {
			alt := crossRegionAlternatives[a.Region]
			if alt == "" {
				alt = Global
			}
			altRate := rates.Rate(alt, a.Type, a.Issuer, term)
			actions = append(actions,
				fmt.Sprintf("For diversification, a comparable %s instrument in %s currently yields around %s",
					rateBucket(a.Type, a.Issuer), alt, altRate))
		}

		recs = append(recs, Recommendation{
			Category: CategoryRollover,
			Title:    fmt.Sprintf("Maturing soon: %s", a.Name),
			Description: fmt.Sprintf("%s (%s) worth %s matures in %d days.",
				a.Name, a.Type, value, days),
			Actions: actions,
			Region:  a.Region,
		})
	}
	return recs
}
