package bondplan

import (
	"fmt"
	"sort"
)

// liquidityHorizonMonths is the projection window of the liquidity analysis.
const liquidityHorizonMonths = 24

// criticalShortfallRatio marks a monthly shortfall critical when it exceeds
// this share of the month's need while the cumulative position is negative.
const criticalShortfallRatio = 0.20

// surplusRatio marks a month as a reinvestment opportunity when maturities
// exceed this multiple of the month's need.
const surplusRatio = 1.5

// monthFlow is one bucket of the projection: planned outflows against
// maturing face value, both in the user's preferred currency.
type monthFlow struct {
	month      Date // first day of the month
	needs      Money
	maturities Money
	cumulative Money // running sum of (maturities - needs) up to this month
}

func (f monthFlow) label() string { return f.month.Format("January 2006") }

// projectFlows builds a monthly projection starting at the month of 'on'.
func projectFlows(on Date, currency string, assets []FixedIncomeAsset, events []LiquidityEvent, months int) []monthFlow {
	start := on.StartOf(Monthly)
	flows := make([]monthFlow, months)
	for i := range flows {
		flows[i] = monthFlow{month: start.AddMonth(i), needs: M(0, currency), maturities: M(0, currency)}
	}
	index := func(d Date) int {
		m := d.StartOf(Monthly)
		i := (m.Year()-start.Year())*12 + int(m.Month()) - int(start.Month())
		if i < 0 || i >= months {
			return -1
		}
		return i
	}

	for _, e := range events {
		if e.Amount.Currency() != currency {
			continue
		}
		if i := index(e.Date); i >= 0 {
			flows[i].needs = flows[i].needs.Add(e.Amount)
		}
	}
	for _, a := range assets {
		if a.IsPerpetual() || a.Maturity.IsZero() || a.Currency() != currency {
			continue
		}
		if i := index(a.Maturity); i >= 0 {
			flows[i].maturities = flows[i].maturities.Add(a.FaceValue)
		}
	}

	cumulative := M(0, currency)
	for i := range flows {
		cumulative = cumulative.Add(flows[i].maturities).Sub(flows[i].needs)
		flows[i].cumulative = cumulative
	}
	return flows
}

// saleCandidate is an asset that could be sold early to plug a funding gap.
type saleCandidate struct {
	asset   FixedIncomeAsset
	value   Money
	premium float64 // (market value - face value) / face value
}

// saleCandidates gathers assets sellable before the earliest critical month:
// perpetuals (sellable anytime) and dated assets in the user's currency
// maturing after that month. Sorted by ascending premium, so the asset
// trading at the deepest discount to face comes first.
func saleCandidates(firstCritical Date, currency string, assets []FixedIncomeAsset) []saleCandidate {
	var candidates []saleCandidate
	for _, a := range assets {
		sellable := a.IsPerpetual() ||
			(a.Currency() == currency && !a.Maturity.IsZero() && a.Maturity.After(firstCritical))
		if !sellable {
			continue
		}
		value := MarketValue(a)
		face := a.FaceValue.AsFloat()
		if face <= 0 {
			continue
		}
		candidates = append(candidates, saleCandidate{
			asset:   a,
			value:   value,
			premium: (value.AsFloat() - face) / face,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].premium != candidates[j].premium {
			return candidates[i].premium < candidates[j].premium
		}
		return candidates[i].asset.Name < candidates[j].asset.Name
	})
	return candidates
}

// LiquidityAnalysis projects planned outflows against maturing face value
// over the next 24 months and recommends how to fund the gaps, or what to do
// with the surpluses. It runs only when at least one event exists.
func LiquidityAnalysis(on Date, user User, assets []FixedIncomeAsset, events []LiquidityEvent) []Recommendation {
	if len(events) == 0 {
		return nil
	}
	flows := projectFlows(on, user.Currency, assets, events, liquidityHorizonMonths)

	var shortfalls, criticals, surpluses []monthFlow
	for _, f := range flows {
		if !f.needs.IsPositive() {
			continue
		}
		if f.maturities.LessThan(f.needs) {
			shortfalls = append(shortfalls, f)
			gap := f.needs.Sub(f.maturities)
			if gap.AsFloat() > criticalShortfallRatio*f.needs.AsFloat() && f.cumulative.IsNegative() {
				criticals = append(criticals, f)
			}
		} else if f.maturities.AsFloat() > surplusRatio*f.needs.AsFloat() {
			surpluses = append(surpluses, f)
		}
	}

	if len(shortfalls) == 0 {
		if len(surpluses) == 0 {
			return nil
		}
		actions := []string{
			fmt.Sprintf("%d months in the horizon free up more cash than planned outflows require", len(surpluses)),
		}
		for i, f := range surpluses {
			if i == 3 {
				break
			}
			actions = append(actions, fmt.Sprintf("In %s, %s matures against %s of outflows: plan the reinvestment now",
				f.label(), f.maturities, f.needs))
		}
		return []Recommendation{{
			Category:    CategoryLiquidity,
			Title:       "Reinvestment windows ahead",
			Description: "Several months release clearly more maturing cash than you plan to spend.",
			Actions:     actions,
		}}
	}

	var actions []string
	for _, f := range criticals {
		gap := f.needs.Sub(f.maturities)
		actions = append(actions, fmt.Sprintf("Critical: %s is short %s (needs %s, maturing %s) with no accumulated buffer",
			f.label(), gap, f.needs, f.maturities))
	}
	sample := shortfalls
	if len(sample) > 3 {
		sample = sample[:3]
	}
	for _, f := range sample {
		actions = append(actions, fmt.Sprintf("%s: planned outflows of %s against %s maturing (gap %s)",
			f.label(), f.needs, f.maturities, f.needs.Sub(f.maturities)))
	}
	if rest := len(shortfalls) - len(sample); rest > 0 {
		actions = append(actions, fmt.Sprintf("…and %d more shortfall months within the %d-month horizon",
			rest, liquidityHorizonMonths))
	}

	if len(criticals) > 0 {
		candidates := saleCandidates(criticals[0].month, user.Currency, assets)
		if len(candidates) > 0 {
			total := M(0, user.Currency)
			for _, c := range candidates {
				total = total.Add(M(c.value.AsFloat(), user.Currency))
			}
			top := candidates[0]
			actions = append(actions, fmt.Sprintf("Assets sellable before the gap total %s", total))
			actions = append(actions, fmt.Sprintf("Best early-sale candidate: %s at %s (%s to face value)",
				top.asset.Name, top.value, Percent(top.premium*100).SignedString()))
		} else {
			actions = append(actions,
				"No asset can be sold early to cover the gap: arrange a credit line or build a cash-equivalent buffer")
		}
	}
	if len(surpluses) > 0 {
		actions = append(actions,
			"Surplus months exist later in the horizon: shifting some maturities earlier would rebalance the ladder against the gaps")
	}

	return []Recommendation{{
		Category: CategoryLiquidity,
		Title:    "Funding gaps in the cash-flow plan",
		Description: fmt.Sprintf("Planned outflows exceed maturing cash in %d of the next %d months.",
			len(shortfalls), liquidityHorizonMonths),
		Actions: actions,
	}}
}
