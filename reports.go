package bondplan

import "sort"

// CurrencyTotal is the aggregate market value held in one currency.
type CurrencyTotal struct {
	Currency string
	Value    Money
	Count    int
}

// GroupAllocation is the current share of one asset group next to its ideal
// range for the user's risk profile.
type GroupAllocation struct {
	Group   AssetGroup
	Current Percent
	Ideal   AllocationRange
}

// Summary provides an at-a-glance overview of the fixed-income portfolio on
// a given date: totals, weighted yield and term, and allocation shares.
type Summary struct {
	Date          Date
	User          User
	AssetCount    int
	EventCount    int
	Totals        []CurrencyTotal
	WeightedYield Percent
	WeightedYears float64
	Groups        []GroupAllocation
	Regions       []Share
	Currencies    []Share
}

// NewSummary computes the summary snapshot. It never fails: an empty
// portfolio yields an empty summary.
func NewSummary(on Date, user User, assets []FixedIncomeAsset, events []LiquidityEvent) *Summary {
	s := &Summary{
		Date:          on,
		User:          user,
		AssetCount:    len(assets),
		EventCount:    len(events),
		WeightedYield: WeightedYTM(on, assets),
		WeightedYears: WeightedYearsToMaturity(on, assets),
		Regions:       sharesBy(assets, func(a FixedIncomeAsset) string { return string(a.Region) }),
		Currencies:    sharesBy(assets, func(a FixedIncomeAsset) string { return a.Currency() }),
	}

	byCurrency := make(map[string]*CurrencyTotal)
	for _, a := range assets {
		c := a.Currency()
		t, ok := byCurrency[c]
		if !ok {
			t = &CurrencyTotal{Currency: c, Value: M(0, c)}
			byCurrency[c] = t
		}
		t.Value = t.Value.Add(MarketValue(a))
		t.Count++
	}
	for _, t := range byCurrency {
		s.Totals = append(s.Totals, *t)
	}
	sort.Slice(s.Totals, func(i, j int) bool { return s.Totals[i].Currency < s.Totals[j].Currency })

	groupPct := make(map[AssetGroup]Percent)
	for _, sh := range sharesBy(assets, func(a FixedIncomeAsset) string { return string(a.Group()) }) {
		groupPct[AssetGroup(sh.Label)] = sh.Pct
	}
	for _, g := range AssetGroups {
		s.Groups = append(s.Groups, GroupAllocation{
			Group:   g,
			Current: groupPct[g],
			Ideal:   idealAllocations[user.Risk][g],
		})
	}
	return s
}

// TimelineMonth is one month of the cash-flow timeline.
type TimelineMonth struct {
	Month      Date
	Maturities Money
	Needs      Money
	Net        Money
	Cumulative Money
}

// Label returns the human month name, like "January 2026".
func (t TimelineMonth) Label() string { return t.Month.Format("January 2006") }

// NewTimeline projects maturing face value against planned outflows in the
// user's currency for the given number of months starting at 'on'.
func NewTimeline(on Date, user User, assets []FixedIncomeAsset, events []LiquidityEvent, months int) []TimelineMonth {
	flows := projectFlows(on, user.Currency, assets, events, months)
	timeline := make([]TimelineMonth, len(flows))
	for i, f := range flows {
		timeline[i] = TimelineMonth{
			Month:      f.month,
			Maturities: f.maturities,
			Needs:      f.needs,
			Net:        f.maturities.Sub(f.needs),
			Cumulative: f.cumulative,
		}
	}
	return timeline
}
