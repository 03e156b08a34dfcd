package bondplan

// AllocationRange is an ideal [Min,Max] share of total market value, in percent.
type AllocationRange struct {
	Min, Max Percent
}

// Contains reports whether the share sits inside the range, boundaries included.
func (r AllocationRange) Contains(p Percent) bool { return p >= r.Min && p <= r.Max }

// idealAllocations defines, per risk tolerance, the target share of each
// asset group. No range spans 0-100, so a portfolio fully concentrated in one
// group always trips at least one imbalance.
var idealAllocations = map[RiskTolerance]map[AssetGroup]AllocationRange{
	Conservative: {
		GroupGovernment: {40, 70},
		GroupCorporate:  {10, 30},
		GroupMunicipal:  {0, 20},
		GroupSavings:    {10, 40},
		GroupOther:      {0, 10},
	},
	Moderate: {
		GroupGovernment: {25, 50},
		GroupCorporate:  {20, 45},
		GroupMunicipal:  {5, 25},
		GroupSavings:    {5, 25},
		GroupOther:      {0, 15},
	},
	Aggressive: {
		GroupGovernment: {10, 35},
		GroupCorporate:  {30, 60},
		GroupMunicipal:  {5, 20},
		GroupSavings:    {0, 15},
		GroupOther:      {5, 25},
	},
}

// concentration thresholds for the regional and currency checks.
const (
	regionConcentrationLimit   = Percent(70)
	currencyConcentrationLimit = Percent(80)
)
