package order

import "strings"

// Aggregator groups line items by (product, attribute). Keys compare by
// exact string equality after the decomposer's trimming; FoldCase makes
// the comparison case-insensitive for catalogs that are sloppy about
// product-name casing.
type Aggregator struct {
	FoldCase bool
}

type groupKey struct {
	product   string
	attribute string
}

// Aggregate merges line items into one MergedItem per key, summing
// quantities and collecting contributing order codes in first-seen
// order (duplicates preserved: the same order contributing two lines
// for one key appears twice). Output order is the insertion order of
// each key's first occurrence.
func (a Aggregator) Aggregate(items []LineItem) []MergedItem {
	merged := make([]MergedItem, 0, len(items))
	index := make(map[groupKey]int, len(items))

	for _, item := range items {
		key := groupKey{product: item.Product, attribute: item.Attribute}
		if a.FoldCase {
			key.product = strings.ToLower(key.product)
			key.attribute = strings.ToLower(key.attribute)
		}

		i, ok := index[key]
		if !ok {
			index[key] = len(merged)
			merged = append(merged, MergedItem{
				Product:    item.Product,
				Attribute:  item.Attribute,
				Quantity:   item.Quantity,
				OrderCodes: []string{item.OrderCode},
			})
			continue
		}

		merged[i].Quantity += item.Quantity
		merged[i].OrderCodes = append(merged[i].OrderCodes, item.OrderCode)
	}

	return merged
}
