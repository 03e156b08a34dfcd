package bondplan

import (
	"fmt"
	"sort"
	"strings"
)

// ladderHorizonYears is how many years ahead the ladder is expected to have
// at least one rung.
const ladderHorizonYears = 5

// clusterThreshold is the number of maturities in one calendar year beyond
// which the ladder counts as clustered.
const clusterThreshold = 3

// LadderingAnalysis inspects the maturity calendar of the dated assets. It
// flags years crowding more than two maturities and years within the ladder
// horizon left without any rung. It needs at least three dated assets.
func LadderingAnalysis(on Date, user User, assets []FixedIncomeAsset) []Recommendation {
	byYear := make(map[int]int)
	var dated int
	for _, a := range assets {
		if a.IsPerpetual() || a.Maturity.IsZero() {
			continue
		}
		dated++
		byYear[a.Maturity.Year()]++
	}
	if dated < 3 {
		return nil
	}

	// the year carrying the most maturities
	var clusteredYear, clusterSize int
	for year, n := range byYear {
		if n > clusterSize || (n == clusterSize && year < clusteredYear) {
			clusteredYear, clusterSize = year, n
		}
	}

	var missing []int
	for year := on.Year(); year <= on.Year()+ladderHorizonYears; year++ {
		if byYear[year] == 0 {
			missing = append(missing, year)
		}
	}
	sort.Ints(missing)

	var actions []string
	if clusterSize >= clusterThreshold {
		actions = append(actions,
			fmt.Sprintf("%d assets mature in %d: spread part of them into neighbouring years to smooth reinvestment risk",
				clusterSize, clusteredYear))
	}
	if len(missing) > 0 {
		fill := missing
		if len(fill) > 3 {
			fill = fill[:3]
		}
		years := make([]string, len(fill))
		for i, y := range fill {
			years[i] = fmt.Sprint(y)
		}
		actions = append(actions,
			fmt.Sprintf("No maturities fall in %s: adding rungs there keeps cash coming due every year",
				strings.Join(years, ", ")))
	}
	if len(actions) == 0 {
		return nil
	}

	return []Recommendation{{
		Category:    CategoryLaddering,
		Title:       "Smooth your bond ladder",
		Description: "A ladder with evenly spaced maturities turns over cash regularly and averages reinvestment rates.",
		Actions:     actions,
	}}
}
