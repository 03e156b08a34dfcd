package bondplan

import (
	"strings"
	"testing"
)

func TestProjectFlows(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("Bill", TreasuryBill, asOf.AddMonth(2), 3000, 2950, 0),
	}
	events := []LiquidityEvent{
		outflow(1000, asOf.AddMonth(1), "rent deposit"),
		outflow(500, asOf.AddMonth(2), "insurance"),
	}

	flows := projectFlows(asOf, "EUR", assets, events, 6)
	if len(flows) != 6 {
		t.Fatalf("projectFlows() = %d buckets, want 6", len(flows))
	}
	if !flows[1].needs.Equal(EUR(1000)) {
		t.Errorf("month+1 needs = %v, want 1000", flows[1].needs)
	}
	if !flows[2].maturities.Equal(EUR(3000)) || !flows[2].needs.Equal(EUR(500)) {
		t.Errorf("month+2 = %v maturing / %v needed, want 3000 / 500", flows[2].maturities, flows[2].needs)
	}
	if !flows[2].cumulative.Equal(EUR(1500)) {
		t.Errorf("month+2 cumulative = %v, want 1500", flows[2].cumulative)
	}
	if got := flows[0].label(); got != "March 2026" {
		t.Errorf("label() = %q, want %q", got, "March 2026")
	}
}

func TestLiquidityShortfall(t *testing.T) {
	// one planned outflow of 1000 with nothing maturing: the whole month is a
	// critical shortfall of exactly 1000
	events := []LiquidityEvent{outflow(1000, asOf.AddMonth(1), "car repair")}

	recs := LiquidityAnalysis(asOf, eurUser(Moderate), nil, events)
	if len(recs) != 1 {
		t.Fatalf("LiquidityAnalysis() = %v, want one recommendation", recs)
	}
	r := recs[0]
	if r.Category != CategoryLiquidity {
		t.Errorf("category = %q, want %q", r.Category, CategoryLiquidity)
	}
	var critical, creditLine bool
	for _, a := range r.Actions {
		if strings.Contains(a, "Critical") && strings.Contains(a, "1.000") {
			critical = true
		}
		if strings.Contains(a, "credit line") {
			creditLine = true
		}
	}
	if !critical {
		t.Errorf("actions %v miss the critical 1000 gap", r.Actions)
	}
	if !creditLine {
		t.Errorf("actions %v miss the credit-line advice with nothing to sell", r.Actions)
	}
}

func TestLiquidityCoveredByMaturity(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("Bill", TreasuryBill, asOf.AddMonth(3), 1200, 1180, 0),
	}
	events := []LiquidityEvent{outflow(1000, asOf.AddMonth(3), "tax bill")}

	// maturities cover the need but stay under the 1.5x surplus line
	if recs := LiquidityAnalysis(asOf, eurUser(Moderate), assets, events); len(recs) != 0 {
		t.Errorf("a covered month still produced %v", recs)
	}
}

func TestLiquiditySurplus(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("Big Bund", GovernmentBond, asOf.AddMonth(4), 10000, 9800, 2),
	}
	events := []LiquidityEvent{outflow(1000, asOf.AddMonth(4), "holiday")}

	recs := LiquidityAnalysis(asOf, eurUser(Moderate), assets, events)
	if len(recs) != 1 {
		t.Fatalf("LiquidityAnalysis() = %v, want one recommendation", recs)
	}
	if got := recs[0].Title; got != "Reinvestment windows ahead" {
		t.Errorf("title = %q, want the reinvestment recommendation", got)
	}
}

func TestLiquiditySaleCandidates(t *testing.T) {
	discount := bond("Discount", GovernmentBond, asOf.AddMonth(30), 1000, 900, 2)
	premium := bond("Premium", CorporateBond, asOf.AddMonth(36), 1000, 1050, 4)
	perpetual := bond("CoCo", PerpetualBond, Date{}, 1000, 980, 5)

	candidates := saleCandidates(asOf.AddMonth(2), "EUR", []FixedIncomeAsset{premium, discount, perpetual})
	if len(candidates) != 3 {
		t.Fatalf("saleCandidates() = %d, want 3", len(candidates))
	}
	if candidates[0].asset.Name != "Discount" {
		t.Errorf("first candidate = %q, want the deepest discount to face", candidates[0].asset.Name)
	}
	if candidates[2].asset.Name != "Premium" {
		t.Errorf("last candidate = %q, want the premium asset", candidates[2].asset.Name)
	}
}

func TestLiquidityNoEvents(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("Bund", GovernmentBond, asOf.AddMonth(6), 1000, 1000, 2),
	}
	if recs := LiquidityAnalysis(asOf, eurUser(Moderate), assets, nil); recs != nil {
		t.Errorf("LiquidityAnalysis(no events) = %v, want nil", recs)
	}
}
