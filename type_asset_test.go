package bondplan

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAssetGroupMapping(t *testing.T) {
	tests := []struct {
		typ  AssetType
		want AssetGroup
	}{
		{GovernmentBond, GroupGovernment},
		{TreasuryBill, GroupGovernment},
		{InflationLinkedBond, GroupGovernment},
		{CorporateBond, GroupCorporate},
		{CoveredBond, GroupCorporate},
		{MunicipalBond, GroupMunicipal},
		{SavingsAccount, GroupSavings},
		{CertificateOfDeposit, GroupSavings},
		{PerpetualBond, GroupOther},
		{AssetType("madeUp"), GroupOther},
	}
	for _, tt := range tests {
		if got := tt.typ.Group(); got != tt.want {
			t.Errorf("%s.Group() = %s, want %s", tt.typ, got, tt.want)
		}
	}
}

func TestParseAssetType(t *testing.T) {
	if got, err := ParseAssetType(" governmentBond "); err != nil || got != GovernmentBond {
		t.Errorf("ParseAssetType = %v, %v", got, err)
	}
	if _, err := ParseAssetType("equity"); err == nil {
		t.Error("ParseAssetType accepted an unknown type")
	}
}

func TestAssetValidate(t *testing.T) {
	valid := bond("Bund", GovernmentBond, NewDate(2030, time.June, 1), 1000, 980, 2)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid asset rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*FixedIncomeAsset)
		want   string
	}{
		{"no name", func(a *FixedIncomeAsset) { a.Name = "" }, "needs a name"},
		{"bad type", func(a *FixedIncomeAsset) { a.Type = "equity" }, "unknown asset type"},
		{"zero face", func(a *FixedIncomeAsset) { a.FaceValue = EUR(0) }, "face value must be positive"},
		{"zero price", func(a *FixedIncomeAsset) { a.PurchasePrice = EUR(0) }, "purchase price must be positive"},
		{"mixed currencies", func(a *FixedIncomeAsset) { a.PurchasePrice = USD(980) }, "currencies differ"},
		{"negative rate", func(a *FixedIncomeAsset) { a.InterestRate = -1 }, "interest rate"},
		{"absurd rate", func(a *FixedIncomeAsset) { a.InterestRate = 150 }, "interest rate"},
		{"no maturity", func(a *FixedIncomeAsset) { a.Maturity = Date{} }, "maturity date is required"},
		{"callable without date", func(a *FixedIncomeAsset) { a.Callable = true }, "call date is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := a.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want an error containing %q", err, tt.want)
			}
		})
	}

	// a perpetual needs no maturity date
	perpetual := bond("CoCo", PerpetualBond, Date{}, 1000, 950, 5)
	if err := perpetual.Validate(); err != nil {
		t.Errorf("perpetual without maturity rejected: %v", err)
	}
}

func TestAssetJSONRoundtrip(t *testing.T) {
	a := bond("Bund 2030", GovernmentBond, NewDate(2030, time.June, 1), 10000, 9800, 2.5)
	a.Rating, a.RatingAgency = "AAA", "S&P"

	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"currency":"EUR"`) {
		t.Errorf("serialized asset %s misses the shared currency field", s)
	}
	if strings.Contains(s, "currentPrice") {
		t.Errorf("serialized asset %s carries an unknown current price", s)
	}

	var back FixedIncomeAsset
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !back.FaceValue.Equal(a.FaceValue) || !back.PurchasePrice.Equal(a.PurchasePrice) {
		t.Errorf("monetary fields did not survive: %+v", back)
	}
	if back.Maturity != a.Maturity || back.Rating != "AAA" {
		t.Errorf("fields did not survive: %+v", back)
	}
}

func TestPerpetualJSONOmitsMaturity(t *testing.T) {
	a := bond("CoCo", PerpetualBond, Date{}, 1000, 950, 5)
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if strings.Contains(string(b), "maturityDate") {
		t.Errorf("perpetual serialization %s carries a maturity date", b)
	}
}
