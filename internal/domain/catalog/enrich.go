package catalog

import (
	"strings"

	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
)

// Enrich joins merged line items against the catalog by product name,
// trimmed on both sides, first catalog match winning. Matched items get
// the entry's unit cost and reference URL; unmatched items keep a zero
// cost and empty URL. An unmatched product is a data-quality signal,
// not an error; the count is returned for the operator.
func Enrich(merged []order.MergedItem, entries []Product) ([]order.MergedItem, int) {
	byName := make(map[string]Product, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if _, ok := byName[name]; !ok {
			byName[name] = e
		}
	}

	unmatched := 0
	for i := range merged {
		entry, ok := byName[strings.TrimSpace(merged[i].Product)]
		if !ok {
			unmatched++
			continue
		}
		merged[i].UnitCost = entry.UnitCost
		merged[i].URL = entry.URL
	}

	return merged, unmatched
}
