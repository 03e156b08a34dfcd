package bondplan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RiskTolerance is the user's self-declared appetite for risk. It drives the
// target allocation ranges and the preferred term of replacement instruments.
type RiskTolerance int

const (
	Conservative RiskTolerance = iota
	Moderate
	Aggressive
)

func (r RiskTolerance) String() string {
	switch r {
	case Conservative:
		return "conservative"
	case Moderate:
		return "moderate"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseRiskTolerance parses a risk tolerance from its lowercase name.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "conservative":
		return Conservative, nil
	case "moderate":
		return Moderate, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return Conservative, fmt.Errorf("invalid risk tolerance %q: want conservative, moderate or aggressive", s)
	}
}

// User is the profile the engine computes recommendations for. It is an
// immutable snapshot supplied wholesale by the caller.
type User struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email,omitempty"`
	Risk     RiskTolerance `json:"-"`
	Currency string        `json:"currency"`
	Region   Region        `json:"region"`
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	var w jsonObjectWriter
	w.EmbedFrom(alias(u))
	w.Append("riskTolerance", u.Risk.String())
	return w.MarshalJSON()
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	var aux struct {
		alias
		RiskTolerance string `json:"riskTolerance"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*u = User(aux.alias)
	if aux.RiskTolerance != "" {
		risk, err := ParseRiskTolerance(aux.RiskTolerance)
		if err != nil {
			return err
		}
		u.Risk = risk
	}
	return nil
}
