package renderer

import (
	"fmt"
	"io"

	"github.com/quantrail/bondplan"
)

// categoryHeadings maps a recommendation category to its section heading.
// Categories are rendered in this fixed order.
var categoryHeadings = []struct {
	category bondplan.Category
	heading  string
}{
	{bondplan.CategoryRollover, "Maturing Assets"},
	{bondplan.CategoryDiversification, "Allocation"},
	{bondplan.CategoryRegional, "Regional Exposure"},
	{bondplan.CategoryCurrency, "Currency Exposure"},
	{bondplan.CategoryLaddering, "Maturity Ladder"},
	{bondplan.CategoryLiquidity, "Cash Flow"},
	{bondplan.CategoryYield, "Yield"},
}

// RecommendationsMarkdown renders the recommendation list grouped by
// category, in a fixed category order.
func RecommendationsMarkdown(on bondplan.Date, recs []bondplan.Recommendation) string {
	r := newRenderer()
	r.Printf("# Recommendations on %s\n\n", on)

	if len(recs) == 0 {
		r.Printf("Nothing needs your attention right now.\n")
		return r.String()
	}

	for _, ch := range categoryHeadings {
		ConditionalBlock(r, func(w io.Writer) bool {
			fmt.Fprintf(w, "## %s\n\n", ch.heading)
			var any bool
			for _, rec := range recs {
				if rec.Category != ch.category {
					continue
				}
				any = true
				fmt.Fprintf(w, "### %s\n\n", rec.Title)
				fmt.Fprintf(w, "%s\n\n", rec.Description)
				for _, action := range rec.Actions {
					fmt.Fprintf(w, "- %s\n", action)
				}
				fmt.Fprintf(w, "\n")
			}
			return any
		})
	}
	return r.String()
}
