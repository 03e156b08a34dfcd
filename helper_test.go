package bondplan

import "time"

// asOf is the fixed reference date used across tests to keep results
// independent of the wall clock.
var asOf = NewDate(2026, time.March, 15)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// GBP is a helper for test to create sterling money from const
func GBP(v float64) Money { return M(v, "GBP") }

// bond builds a valid euro-denominated asset with sensible defaults that
// individual tests override.
func bond(name string, t AssetType, maturity Date, face, price float64, rate Percent) FixedIncomeAsset {
	return FixedIncomeAsset{
		ID:            "test-" + name,
		Name:          name,
		Type:          t,
		Issuer:        IssuerGovernment,
		Purchase:      asOf.AddMonth(-12),
		Maturity:      maturity,
		FaceValue:     EUR(face),
		PurchasePrice: EUR(price),
		InterestRate:  rate,
		Frequency:     PayAnnual,
		Region:        Eurozone,
	}
}

// eurUser builds the default test profile.
func eurUser(risk RiskTolerance) User {
	return User{
		ID:       "u1",
		Name:     "Test User",
		Risk:     risk,
		Currency: "EUR",
		Region:   Eurozone,
	}
}

// outflow builds a euro liquidity event.
func outflow(amount float64, on Date, desc string) LiquidityEvent {
	return LiquidityEvent{ID: "ev-" + desc, Amount: EUR(amount), Date: on, Description: desc}
}
