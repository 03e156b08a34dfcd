package bondplan

import "fmt"

// YieldAnalysis compares the market-value-weighted average yield of the
// portfolio against the static threshold of the user's region and suggests
// higher-yielding alternatives when the portfolio sits below it. It needs at
// least three assets to be meaningful.
func YieldAnalysis(on Date, user User, assets []FixedIncomeAsset) []Recommendation {
	if len(assets) < 3 {
		return nil
	}
	region := user.Region
	if region == "" {
		region = Global
	}
	threshold, ok := yieldThresholds[region]
	if !ok {
		region = Global
		threshold = yieldThresholds[Global]
	}

	avg := WeightedYTM(on, assets)
	if avg >= threshold {
		return nil
	}

	return []Recommendation{{
		Category: CategoryYield,
		Title:    "Portfolio yield below market",
		Description: fmt.Sprintf("Your weighted average yield of %s sits below the %s reference of %s.",
			avg, region, threshold),
		Actions: yieldAlternatives[region],
		Region:  region,
	}}
}
