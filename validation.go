package bondplan

import "fmt"

// ValidateRecord validates any store record before it is persisted.
func ValidateRecord(rec any) error {
	switch v := rec.(type) {
	case FixedIncomeAsset:
		return v.Validate()
	case *FixedIncomeAsset:
		return v.Validate()
	case LiquidityEvent:
		return v.Validate()
	case *LiquidityEvent:
		return v.Validate()
	case User, *User:
		return nil
	default:
		return fmt.Errorf("unknown record type %T", rec)
	}
}
