package bondplan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseRiskTolerance(t *testing.T) {
	tests := []struct {
		in      string
		want    RiskTolerance
		wantErr bool
	}{
		{"conservative", Conservative, false},
		{" Moderate ", Moderate, false},
		{"AGGRESSIVE", Aggressive, false},
		{"yolo", Conservative, true},
		{"", Conservative, true},
	}
	for _, tt := range tests {
		got, err := ParseRiskTolerance(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRiskTolerance(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseRiskTolerance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUserJSONRoundtrip(t *testing.T) {
	u := eurUser(Aggressive)
	u.Email = "test@example.org"

	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(b), `"riskTolerance":"aggressive"`) {
		t.Errorf("serialized user %s misses the risk tolerance", b)
	}

	var back User
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != u {
		t.Errorf("roundtrip changed the user:\n%+v\nvs\n%+v", back, u)
	}
}

func TestUserJSONRejectsBadRisk(t *testing.T) {
	err := json.Unmarshal([]byte(`{"id":"u1","name":"N","riskTolerance":"reckless"}`), new(User))
	if err == nil {
		t.Error("an invalid risk tolerance was accepted")
	}
}
