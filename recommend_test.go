package bondplan

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateRecommendationsDegenerate(t *testing.T) {
	user := eurUser(Moderate)
	assets := []FixedIncomeAsset{
		bond("Bund", GovernmentBond, NewDate(2030, time.June, 1), 1000, 1000, 2),
	}

	if got := GenerateRecommendations(asOf, nil, assets, nil); got == nil || len(got) != 0 {
		t.Errorf("nil user = %v, want an empty (non-nil) list", got)
	}
	if got := GenerateRecommendations(asOf, &user, nil, nil); got == nil || len(got) != 0 {
		t.Errorf("no assets = %v, want an empty (non-nil) list", got)
	}
}

func TestGenerateRecommendationsDeterministic(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("BTP 45d", GovernmentBond, asOf.Add(45), 10000, 9800, 2),
		bond("Bund 2028", GovernmentBond, NewDate(2028, time.June, 1), 5000, 5000, 2.5),
		bond("OAT 2028", GovernmentBond, NewDate(2028, time.September, 1), 5000, 5000, 2.2),
		bond("Corp 2028", CorporateBond, NewDate(2028, time.November, 1), 3000, 3000, 4),
	}
	events := []LiquidityEvent{outflow(5000, asOf.Add(60), "kitchen")}

	first := GenerateRecommendations(asOf, &user, assets, events)
	if len(first) == 0 {
		t.Fatal("expected recommendations for a concentrated, clustered book")
	}
	for i := 0; i < 10; i++ {
		again := GenerateRecommendations(asOf, &user, assets, events)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from the first:\n%v\nvs\n%v", i, again, first)
		}
	}
}

func TestGenerateRecommendationsEndToEnd(t *testing.T) {
	user := eurUser(Conservative)
	assets := []FixedIncomeAsset{
		bond("BTP Italia", GovernmentBond, asOf.Add(45), 10000, 9800, 2),
	}
	events := []LiquidityEvent{outflow(5000, asOf.Add(60), "tuition")}

	recs := GenerateRecommendations(asOf, &user, assets, events)

	var rollovers []Recommendation
	for _, r := range recs {
		if r.Category == CategoryRollover {
			rollovers = append(rollovers, r)
		}
	}
	if len(rollovers) != 1 {
		t.Fatalf("got %d rollover recommendations, want 1 (all: %v)", len(rollovers), recs)
	}
	if len(rollovers[0].Actions) != 2 {
		t.Errorf("rollover actions = %v, want keep-liquid and reinvest", rollovers[0].Actions)
	}
}
