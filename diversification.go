package bondplan

import (
	"fmt"
	"sort"
)

// Share is a labeled percentage of the total market value.
type Share struct {
	Label string
	Pct   Percent
}

// sharesBy accumulates market value per key and converts to percentages of
// the total. Returns nil when the total is zero.
func sharesBy(assets []FixedIncomeAsset, key func(FixedIncomeAsset) string) []Share {
	totals := make(map[string]float64)
	var total float64
	for _, a := range assets {
		v := MarketValue(a).AsFloat()
		totals[key(a)] += v
		total += v
	}
	if total == 0 {
		return nil
	}
	shares := make([]Share, 0, len(totals))
	for label, v := range totals {
		shares = append(shares, Share{Label: label, Pct: Percent(100 * v / total)})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Pct != shares[j].Pct {
			return shares[i].Pct > shares[j].Pct
		}
		return shares[i].Label < shares[j].Label
	})
	return shares
}

// DiversificationAnalysis checks the portfolio against the ideal allocation
// ranges of the user's risk profile, and separately flags regional and
// currency concentration. It needs at least two assets to say anything.
func DiversificationAnalysis(on Date, user User, assets []FixedIncomeAsset) []Recommendation {
	if len(assets) < 2 {
		return nil
	}
	var recs []Recommendation

	// allocation vs. ideal ranges
	groupPct := make(map[AssetGroup]Percent)
	for _, s := range sharesBy(assets, func(a FixedIncomeAsset) string { return string(a.Group()) }) {
		groupPct[AssetGroup(s.Label)] = s.Pct
	}
	ranges := idealAllocations[user.Risk]
	var imbalances []string
	for _, g := range AssetGroups {
		r, ok := ranges[g]
		if !ok {
			continue
		}
		current := groupPct[g]
		if r.Contains(current) {
			continue
		}
		if current < r.Min {
			imbalances = append(imbalances,
				fmt.Sprintf("Increase %s holdings: currently %s, target %.0f%%-%.0f%%", g, current, r.Min, r.Max))
		} else {
			imbalances = append(imbalances,
				fmt.Sprintf("Decrease %s holdings: currently %s, target %.0f%%-%.0f%%", g, current, r.Min, r.Max))
		}
	}
	if len(imbalances) > 0 {
		recs = append(recs, Recommendation{
			Category: CategoryDiversification,
			Title:    "Rebalance your allocation",
			Description: fmt.Sprintf("Your allocation across asset groups deviates from the %s profile targets.",
				user.Risk),
			Actions: imbalances,
		})
	}

	// regional concentration
	if regions := sharesBy(assets, func(a FixedIncomeAsset) string { return string(a.Region) }); len(regions) > 0 {
		if top := regions[0]; top.Pct > regionConcentrationLimit && top.Label != "" {
			dominant := Region(top.Label)
			recs = append(recs, Recommendation{
				Category: CategoryRegional,
				Title:    "Regional concentration",
				Description: fmt.Sprintf("%s of your portfolio sits in %s issuers.",
					top.Pct, dominant),
				Actions: regionalAlternatives(dominant),
				Region:  dominant,
			})
		}
	}

	// currency concentration
	if currencies := sharesBy(assets, func(a FixedIncomeAsset) string { return a.Currency() }); len(currencies) > 0 {
		if top := currencies[0]; top.Pct > currencyConcentrationLimit && top.Label != "" {
			recs = append(recs, Recommendation{
				Category: CategoryCurrency,
				Title:    "Currency concentration",
				Description: fmt.Sprintf("%s of your portfolio is denominated in %s.",
					top.Pct, top.Label),
				Actions: currencyAlternatives(top.Label),
			})
		}
	}

	return recs
}

// regionalAlternatives suggests where to look when one region dominates.
func regionalAlternatives(dominant Region) []string {
	switch dominant {
	case Eurozone:
		return []string{
			"Add US Treasuries or UK gilts to reduce eurozone rate exposure",
			"Supranational issuers (EIB, World Bank) spread sovereign risk without leaving high-grade paper",
		}
	case US:
		return []string{
			"European government and covered bonds balance a US-heavy book",
			"Developed-Asia sovereigns add a differently-shaped rate cycle",
		}
	case UK:
		return []string{
			"Eurozone sovereigns or US Treasuries reduce dependence on the gilt market",
			"Global investment-grade funds spread single-market risk",
		}
	default:
		return []string{
			"Spread holdings across at least one more region to reduce single-market risk",
			"Global aggregate bond exposure is a simple one-line diversifier",
		}
	}
}

// currencyAlternatives suggests complements when one currency dominates.
func currencyAlternatives(dominant string) []string {
	switch dominant {
	case "EUR":
		return []string{
			"USD-denominated paper adds the largest and most liquid alternative market",
			"A small CHF or GBP sleeve cushions euro-specific moves",
		}
	case "USD":
		return []string{
			"EUR-denominated bonds are the natural second leg for a dollar-heavy book",
			"Consider a hedged global bond position to cap translation risk",
		}
	case "GBP":
		return []string{
			"EUR and USD paper reduce dependence on sterling rates",
		}
	default:
		return []string{
			"Holding a second reserve currency (USD or EUR) reduces translation risk on planned outflows",
		}
	}
}
