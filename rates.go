package bondplan

// Term buckets the remaining life of a replacement instrument. The user's
// risk tolerance picks the bucket: conservative investors roll into short
// paper, aggressive ones into long.
type Term string

const (
	ShortTerm  Term = "short"
	MediumTerm Term = "medium"
	LongTerm   Term = "long"
)

// TermFor maps a risk tolerance to its preferred replacement term.
func TermFor(r RiskTolerance) Term {
	switch r {
	case Conservative:
		return ShortTerm
	case Aggressive:
		return LongTerm
	default:
		return MediumTerm
	}
}

// RateTable holds approximate market rates in percent, keyed by region, then
// asset type, then term. The built-in snapshot is an illustrative heuristic,
// not a live market feed; FetchBenchmarkRates can overlay fresher numbers.
type RateTable map[Region]map[AssetType]map[Term]Percent

// defaultRates per term, used when every table lookup fails.
var defaultRates = map[Term]Percent{ShortTerm: 3.0, MediumTerm: 3.5, LongTerm: 4.0}

// approximateRates is the static rate snapshot shipped with the planner.
var approximateRates = RateTable{
	Eurozone: {
		GovernmentBond: {ShortTerm: 2.8, MediumTerm: 3.0, LongTerm: 3.3},
		CorporateBond:  {ShortTerm: 3.4, MediumTerm: 3.7, LongTerm: 4.1},
		CoveredBond:    {ShortTerm: 3.0, MediumTerm: 3.2, LongTerm: 3.5},
	},
	US: {
		GovernmentBond: {ShortTerm: 4.3, MediumTerm: 4.2, LongTerm: 4.4},
		CorporateBond:  {ShortTerm: 4.9, MediumTerm: 5.1, LongTerm: 5.4},
		MunicipalBond:  {ShortTerm: 3.2, MediumTerm: 3.5, LongTerm: 3.9},
	},
	UK: {
		GovernmentBond: {ShortTerm: 4.1, MediumTerm: 4.2, LongTerm: 4.4},
		CorporateBond:  {ShortTerm: 5.0, MediumTerm: 5.3, LongTerm: 5.6},
	},
	Switzerland: {
		GovernmentBond: {ShortTerm: 0.9, MediumTerm: 1.0, LongTerm: 1.2},
		CorporateBond:  {ShortTerm: 1.4, MediumTerm: 1.6, LongTerm: 1.9},
	},
	Japan: {
		GovernmentBond: {ShortTerm: 0.3, MediumTerm: 0.7, LongTerm: 1.4},
		CorporateBond:  {ShortTerm: 0.8, MediumTerm: 1.2, LongTerm: 1.8},
	},
	Global: {
		GovernmentBond: {ShortTerm: 3.5, MediumTerm: 3.7, LongTerm: 4.0},
		CorporateBond:  {ShortTerm: 4.2, MediumTerm: 4.5, LongTerm: 4.9},
	},
}

// ApproximateRates returns the built-in rate snapshot, typically as the base
// of a Merge with fetched benchmark rates.
func ApproximateRates() RateTable { return approximateRates }

// rateBucket reduces an asset type to the bucket carried by the rate table:
// the type itself when present, else a government/corporate bucket derived
// from the issuer type.
func rateBucket(t AssetType, issuer IssuerType) AssetType {
	switch t.Group() {
	case GroupGovernment:
		return GovernmentBond
	case GroupMunicipal:
		return MunicipalBond
	case GroupCorporate, GroupSavings:
		return CorporateBond
	}
	// "other" assets fall back on the issuer
	switch issuer {
	case IssuerGovernment, IssuerMunicipal:
		return GovernmentBond
	default:
		return CorporateBond
	}
}

// Rate resolves an approximate rate through an explicit fallback chain:
// exact region and type, then the type bucket, then the Global region, and
// finally the per-term default. It never fails.
func (rt RateTable) Rate(region Region, t AssetType, issuer IssuerType, term Term) Percent {
	if region == "" {
		region = Global
	}
	for _, reg := range []Region{region, Global} {
		byType, ok := rt[reg]
		if !ok {
			continue
		}
		for _, bucket := range []AssetType{t, rateBucket(t, issuer)} {
			if byTerm, ok := byType[bucket]; ok {
				if rate, ok := byTerm[term]; ok {
					return rate
				}
			}
		}
	}
	return defaultRates[term]
}

// Merge returns a copy of rt with every entry of o overlaid on top. Neither
// receiver nor argument is modified.
func (rt RateTable) Merge(o RateTable) RateTable {
	merged := make(RateTable, len(rt))
	for region, byType := range rt {
		merged[region] = make(map[AssetType]map[Term]Percent, len(byType))
		for t, byTerm := range byType {
			merged[region][t] = make(map[Term]Percent, len(byTerm))
			for term, rate := range byTerm {
				merged[region][t][term] = rate
			}
		}
	}
	for region, byType := range o {
		if merged[region] == nil {
			merged[region] = make(map[AssetType]map[Term]Percent, len(byType))
		}
		for t, byTerm := range byType {
			if merged[region][t] == nil {
				merged[region][t] = make(map[Term]Percent, len(byTerm))
			}
			for term, rate := range byTerm {
				merged[region][t][term] = rate
			}
		}
	}
	return merged
}

// yieldThresholds lists, per region, the weighted portfolio yield below which
// the yield commentary suggests alternatives.
var yieldThresholds = map[Region]Percent{
	Eurozone:    3.0,
	UK:          4.0,
	US:          4.5,
	Switzerland: 1.5,
	Japan:       1.0,
	Global:      3.5,
}

// yieldAlternatives names, per region, higher-yielding instruments worth a
// look when the portfolio yield sits below the region threshold.
var yieldAlternatives = map[Region][]string{
	Eurozone: {
		"Consider peripheral eurozone sovereign debt (Italy, Spain) for a yield pickup over core issuers",
		"Investment-grade EUR corporate bonds currently offer a premium over Bunds",
	},
	UK: {
		"Longer-dated gilts lock in current yields for more years",
		"Sterling investment-grade corporates trade above the gilt curve",
	},
	US: {
		"Agency and investment-grade corporate paper yields above Treasuries of the same maturity",
		"A modest duration extension on the Treasury curve raises the running yield",
	},
	Switzerland: {
		"CHF corporate bonds and covered bonds offer a pickup over Swiss Confederation bonds",
	},
	Japan: {
		"JPY corporate paper and longer-dated JGBs carry more yield than short government paper",
	},
	Global: {
		"Investment-grade corporate bonds typically yield above government paper of the same term",
	},
}

// crossRegionAlternatives proposes, for a home region, one foreign comparable
// worth naming in a rollover suggestion.
var crossRegionAlternatives = map[Region]Region{
	Eurozone:    US,
	US:          Eurozone,
	UK:          Eurozone,
	Switzerland: Eurozone,
	Japan:       US,
	Emerging:    US,
	Global:      US,
}
