package renderer

import (
	"github.com/quantrail/bondplan"
)

// TimelineMarkdown renders the monthly cash-flow projection as a markdown
// table. Months with neither maturities nor outflows are skipped to keep the
// report short.
func TimelineMarkdown(currency string, months []bondplan.TimelineMonth) string {
	r := newRenderer()
	r.Printf("# Cash-Flow Timeline (%s)\n\n", currency)

	if len(months) == 0 {
		r.Printf("Nothing to project.\n")
		return r.String()
	}

	r.Printf("| Month | Maturing | Outflows | Net | Cumulative |\n")
	r.Printf("|:---|---:|---:|---:|---:|\n")
	var printed int
	for _, m := range months {
		if m.Maturities.IsZero() && m.Needs.IsZero() {
			continue
		}
		printed++
		r.Printf("| %s | %s | %s | %s | %s |\n",
			m.Label(), m.Maturities, m.Needs, m.Net.SignedString(), m.Cumulative.SignedString())
	}
	if printed == 0 {
		return "# Cash-Flow Timeline (" + currency + ")\n\nNo maturities or planned outflows in the horizon.\n"
	}
	r.Printf("\n")
	return r.String()
}
