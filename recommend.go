package bondplan

// GenerateRecommendations runs the five analyses against a consistent
// snapshot of a user's records and concatenates their findings. It is a pure
// function: same inputs and same 'on' date always yield the same output, and
// degenerate inputs yield an empty list rather than an error.
//
// The caller is responsible for passing only assets and events belonging to
// the user.
func GenerateRecommendations(on Date, user *User, assets []FixedIncomeAsset, events []LiquidityEvent) []Recommendation {
	return GenerateRecommendationsWith(on, user, assets, events, approximateRates)
}

// GenerateRecommendationsWith is GenerateRecommendations with an explicit
// rate table, letting callers overlay fresher benchmark rates (see
// FetchBenchmarkRates) on the built-in snapshot.
func GenerateRecommendationsWith(on Date, user *User, assets []FixedIncomeAsset, events []LiquidityEvent, rates RateTable) []Recommendation {
	if user == nil || len(assets) == 0 {
		return []Recommendation{}
	}

	recs := make([]Recommendation, 0, 8)
	recs = append(recs, RolloverAnalysis(on, *user, assets, events, rates)...)
	recs = append(recs, DiversificationAnalysis(on, *user, assets)...)
	recs = append(recs, LadderingAnalysis(on, *user, assets)...)
	recs = append(recs, LiquidityAnalysis(on, *user, assets, events)...)
	recs = append(recs, YieldAnalysis(on, *user, assets)...)
	return recs
}
