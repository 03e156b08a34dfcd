package bondplan

import (
	"strings"
	"testing"
)

func TestRolloverAnalysis(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("Maturing Bund", GovernmentBond, asOf.Add(30), 10000, 9800, 2),
		bond("Far Bund", GovernmentBond, asOf.Add(400), 10000, 9800, 2),
	}

	recs := RolloverAnalysis(asOf, user, assets, nil, approximateRates)
	if len(recs) != 1 {
		t.Fatalf("RolloverAnalysis() yielded %d recommendations, want 1", len(recs))
	}
	r := recs[0]
	if r.Category != CategoryRollover {
		t.Errorf("category = %q, want %q", r.Category, CategoryRollover)
	}
	if !strings.Contains(r.Title, "Maturing Bund") {
		t.Errorf("title %q does not name the maturing asset", r.Title)
	}
	if !strings.Contains(r.Description, "30 days") {
		t.Errorf("description %q does not state the days to maturity", r.Description)
	}
	if len(r.Actions) == 0 || !strings.Contains(r.Actions[0], "Roll the proceeds") {
		t.Errorf("actions = %v, want a replacement-rate proposal", r.Actions)
	}
}

func TestRolloverCoversPlannedOutflow(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("BTP 45d", GovernmentBond, asOf.Add(45), 10000, 9800, 2),
	}
	events := []LiquidityEvent{
		outflow(5000, asOf.Add(60), "tuition"),
	}

	recs := RolloverAnalysis(asOf, user, assets, events, approximateRates)
	if len(recs) != 1 {
		t.Fatalf("RolloverAnalysis() yielded %d recommendations, want 1", len(recs))
	}
	actions := recs[0].Actions
	if len(actions) != 2 {
		t.Fatalf("actions = %v, want keep-liquid plus reinvest", actions)
	}
	if !strings.Contains(actions[0], "Keep") || !strings.Contains(actions[0], "5.000") {
		t.Errorf("first action %q should keep the 5000 outflow liquid", actions[0])
	}
	if !strings.Contains(actions[1], "Reinvest") || !strings.Contains(actions[1], "4.800") {
		t.Errorf("second action %q should reinvest the 4800 remainder", actions[1])
	}
}

func TestRolloverShortfallNote(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("Small bill", TreasuryBill, asOf.Add(20), 2000, 1950, 0),
	}
	events := []LiquidityEvent{
		outflow(5000, asOf.Add(90), "roof repair"),
	}

	recs := RolloverAnalysis(asOf, user, assets, events, approximateRates)
	if len(recs) != 1 {
		t.Fatalf("RolloverAnalysis() yielded %d recommendations, want 1", len(recs))
	}
	actions := recs[0].Actions
	if len(actions) != 2 {
		t.Fatalf("actions = %v, want rollover proposal plus shortfall note", actions)
	}
	if !strings.Contains(actions[1], "does not cover") {
		t.Errorf("second action %q should flag the shortfall", actions[1])
	}
}

func TestRolloverIgnoresOtherCurrencyNeeds(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("BTP 45d", GovernmentBond, asOf.Add(45), 10000, 9800, 2),
	}
	events := []LiquidityEvent{
		{ID: "ev-usd", Amount: USD(5000), Date: asOf.Add(60), Description: "us trip"},
	}

	recs := RolloverAnalysis(asOf, user, assets, events, approximateRates)
	if len(recs) != 1 {
		t.Fatalf("RolloverAnalysis() yielded %d recommendations, want 1", len(recs))
	}
	if got := recs[0].Actions[0]; !strings.Contains(got, "Roll the proceeds") {
		t.Errorf("action %q should ignore the dollar outflow and propose a rollover", got)
	}
}

func TestRolloverCrossRegionHint(t *testing.T) {
	user := eurUser(Moderate)
	user.Region = Switzerland

	assets := []FixedIncomeAsset{
		bond("BTP 45d", GovernmentBond, asOf.Add(45), 10000, 9800, 2),
	}
	recs := RolloverAnalysis(asOf, user, assets, nil, approximateRates)
	if len(recs) != 1 {
		t.Fatalf("RolloverAnalysis() yielded %d recommendations, want 1", len(recs))
	}
	var hinted bool
	for _, a := range recs[0].Actions {
		if strings.Contains(a, "For diversification") {
			hinted = true
		}
	}
	if !hinted {
		t.Errorf("actions %v miss the cross-region hint for a non-conservative user", recs[0].Actions)
	}

	// conservative profiles never get the hint
	recs = RolloverAnalysis(asOf, eurUserIn(Switzerland, Conservative), assets, nil, approximateRates)
	for _, a := range recs[0].Actions {
		if strings.Contains(a, "For diversification") {
			t.Errorf("conservative profile received a cross-region hint: %q", a)
		}
	}
}

func eurUserIn(region Region, risk RiskTolerance) User {
	u := eurUser(risk)
	u.Region = region
	return u
}

func TestRolloverSkipsPerpetuals(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("CoCo", PerpetualBond, Date{}, 10000, 9500, 5),
	}
	if recs := RolloverAnalysis(asOf, eurUser(Moderate), assets, nil, approximateRates); len(recs) != 0 {
		t.Errorf("RolloverAnalysis() yielded %d recommendations for a perpetual, want 0", len(recs))
	}
}
