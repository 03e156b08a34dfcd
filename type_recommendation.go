package bondplan

// Category classifies a recommendation for grouping and display.
type Category string

const (
	CategoryRollover        Category = "rollover"
	CategoryDiversification Category = "diversification"
	CategoryLaddering       Category = "laddering"
	CategoryLiquidity       Category = "liquidity"
	CategoryCurrency        Category = "currency"
	CategoryRegional        Category = "regional"
	CategoryYield           Category = "yield"
)

// Recommendation is the engine's output unit: a titled finding with concrete
// action items. Recommendations are rebuilt from scratch on every run and
// never persisted.
type Recommendation struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
	Link        string   `json:"link,omitempty"`
	Region      Region   `json:"region,omitempty"`
}
