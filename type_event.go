package bondplan

import (
	"encoding/json"
	"fmt"
)

// LiquidityEvent is a planned cash outflow: a tax bill, a tuition payment, a
// renovation. The engine matches events against maturing assets to detect
// funding gaps.
type LiquidityEvent struct {
	ID          string
	UserID      string
	Amount      Money
	Date        Date
	Description string
}

// Validate checks the record invariants.
func (e LiquidityEvent) Validate() error {
	if !e.Amount.IsPositive() {
		return fmt.Errorf("liquidity event %q: amount must be positive, got %s", e.Description, e.Amount)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("liquidity event %q: date is required", e.Description)
	}
	return nil
}

type eventJSON struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Date        Date    `json:"date"`
	Description string  `json:"description,omitempty"`
}

func (e LiquidityEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount.AsFloat(),
		Currency:    e.Amount.Currency(),
		Date:        e.Date,
		Description: e.Description,
	})
}

func (e *LiquidityEvent) UnmarshalJSON(b []byte) error {
	var aux eventJSON
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*e = LiquidityEvent{
		ID:          aux.ID,
		UserID:      aux.UserID,
		Amount:      M(aux.Amount, aux.Currency),
		Date:        aux.Date,
		Description: aux.Description,
	}
	return nil
}
