package bondplan

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	user := eurUser(Moderate)
	us := bond("Treasury", GovernmentBond, NewDate(2029, time.June, 1), 5000, 5000, 4)
	us.Region = US
	us.FaceValue, us.PurchasePrice = USD(5000), USD(5000)
	assets := []FixedIncomeAsset{
		bond("Bund", GovernmentBond, NewDate(2028, time.June, 1), 10000, 9800, 2),
		us,
	}
	events := []LiquidityEvent{outflow(1000, asOf.AddMonth(2), "rent")}

	s := NewSummary(asOf, user, assets, events)
	if s.AssetCount != 2 || s.EventCount != 1 {
		t.Errorf("counts = %d assets / %d events, want 2 / 1", s.AssetCount, s.EventCount)
	}
	if len(s.Totals) != 2 {
		t.Fatalf("totals = %v, want one per currency", s.Totals)
	}
	// sorted by currency code
	if s.Totals[0].Currency != "EUR" || !s.Totals[0].Value.Equal(EUR(9800)) {
		t.Errorf("EUR total = %+v, want 9800", s.Totals[0])
	}
	if s.Totals[1].Currency != "USD" || !s.Totals[1].Value.Equal(USD(5000)) {
		t.Errorf("USD total = %+v, want 5000", s.Totals[1])
	}
	if len(s.Groups) != len(AssetGroups) {
		t.Errorf("groups = %d rows, want one per asset group", len(s.Groups))
	}
	if s.Groups[0].Group != GroupGovernment || !s.Groups[0].Current.Equal(100) {
		t.Errorf("government allocation = %+v, want 100%%", s.Groups[0])
	}
	if s.WeightedYield <= 0 {
		t.Errorf("weighted yield = %v, want positive", s.WeightedYield)
	}
}

func TestNewSummaryEmpty(t *testing.T) {
	s := NewSummary(asOf, eurUser(Conservative), nil, nil)
	if s.AssetCount != 0 || len(s.Totals) != 0 {
		t.Errorf("empty summary carries data: %+v", s)
	}
	if s.WeightedYield != 0 || s.WeightedYears != 0 {
		t.Errorf("empty summary has non-zero aggregates: %+v", s)
	}
}

func TestNewTimeline(t *testing.T) {
	assets := []FixedIncomeAsset{
		bond("Bill", TreasuryBill, asOf.AddMonth(2), 3000, 2950, 0),
	}
	events := []LiquidityEvent{outflow(1000, asOf.AddMonth(1), "rent deposit")}

	timeline := NewTimeline(asOf, eurUser(Moderate), assets, events, 4)
	if len(timeline) != 4 {
		t.Fatalf("timeline = %d months, want 4", len(timeline))
	}
	if got := timeline[0].Label(); got != "March 2026" {
		t.Errorf("first label = %q, want %q", got, "March 2026")
	}
	if !timeline[1].Net.Equal(EUR(-1000)) {
		t.Errorf("month+1 net = %v, want -1000", timeline[1].Net)
	}
	if !timeline[2].Net.Equal(EUR(3000)) || !timeline[2].Cumulative.Equal(EUR(2000)) {
		t.Errorf("month+2 = net %v cumulative %v, want 3000 / 2000", timeline[2].Net, timeline[2].Cumulative)
	}
}
