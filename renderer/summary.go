package renderer

import (
	"github.com/quantrail/bondplan"
)

// SummaryMarkdown renders the portfolio summary as a markdown report.
func SummaryMarkdown(s *bondplan.Summary) string {
	r := newRenderer()
	r.Printf("# Portfolio Summary on %s\n\n", s.Date)
	r.Printf("%d assets, %d planned outflows.\n\n", s.AssetCount, s.EventCount)

	if len(s.Totals) > 0 {
		r.Printf("## Holdings\n\n")
		r.Printf("| Currency | Assets | Market Value |\n")
		r.Printf("|:---|---:|---:|\n")
		for _, t := range s.Totals {
			r.Printf("| %s | %d | %s |\n", t.Currency, t.Count, t.Value)
		}
		r.Printf("\n")
		r.Printf("Weighted average yield: %s\n\n", s.WeightedYield)
		r.Printf("Weighted years to maturity: %.1f\n\n", s.WeightedYears)
	}

	if s.AssetCount > 0 {
		r.Printf("## Allocation (%s profile)\n\n", s.User.Risk)
		r.Printf("| Group | Current | Target |\n")
		r.Printf("|:---|---:|:---|\n")
		for _, g := range s.Groups {
			r.Printf("| %s | %s | %.0f%%-%.0f%% |\n", g.Group, g.Current, g.Ideal.Min, g.Ideal.Max)
		}
		r.Printf("\n")
	}

	if len(s.Regions) > 0 {
		r.Printf("## Regions\n\n")
		for _, sh := range s.Regions {
			r.Printf("- %s: %s\n", sh.Label, sh.Pct)
		}
		r.Printf("\n")
	}
	if len(s.Currencies) > 0 {
		r.Printf("## Currencies\n\n")
		for _, sh := range s.Currencies {
			r.Printf("- %s: %s\n", sh.Label, sh.Pct)
		}
		r.Printf("\n")
	}
	return r.String()
}
