package bondplan

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// EnvRatesURL names the environment variable holding the address of an
// optional benchmark-yield feed. When unset, the built-in rate snapshot is
// used as-is.
const EnvRatesURL = "BONDPLAN_RATES_URL"

/*
	Expected feed shape:

	{
	    "benchmarks": [
	        {"region": "eurozone", "type": "governmentBond", "term": "medium", "yield": 3.1},
	        {"region": "us", "type": "corporateBond", "term": "long", "yield": 5.2}
	    ]
	}
*/

// FetchBenchmarkRates retrieves benchmark yields from a JSON feed and
// returns them as a partial RateTable suitable for overlaying on the
// built-in snapshot with Merge.
func FetchBenchmarkRates(client *http.Client, addr string) (RateTable, error) {
	var jobj any
	if err := getJSON(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching rate feed: %w", err)
	}

	jval, err := jsonpath.Get("$.benchmarks[*]", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rate feed: %w", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing rate feed: benchmarks is not a list, got %T", jval)
	}

	table := make(RateTable)
	for _, item := range jlist {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		region, _ := entry["region"].(string)
		typ, _ := entry["type"].(string)
		term, _ := entry["term"].(string)
		yield, ok := entry["yield"].(float64)
		if !ok || region == "" || typ == "" || term == "" {
			// malformed entry, keep the rest of the feed
			continue
		}
		r, t, tm := Region(region), AssetType(typ), Term(term)
		if table[r] == nil {
			table[r] = make(map[AssetType]map[Term]Percent)
		}
		if table[r][t] == nil {
			table[r][t] = make(map[Term]Percent)
		}
		table[r][t][tm] = Percent(yield)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("rate feed %q contained no usable benchmarks", addr)
	}
	return table, nil
}

// FeedRates consults the feed named by EnvRatesURL, if any. It degrades
// silently to nil on any failure so callers fall back to the built-in
// snapshot.
func FeedRates() RateTable {
	addr := os.Getenv(EnvRatesURL)
	if addr == "" {
		return nil
	}
	table, err := FetchBenchmarkRates(cachedClient(), addr)
	if err != nil {
		log.Printf("rate feed unavailable, using built-in snapshot: %v", err)
		return nil
	}
	return table
}
