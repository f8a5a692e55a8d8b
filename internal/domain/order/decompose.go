package order

import (
	"errors"
	"strconv"
	"strings"
)

// attributeSeparator is a full-width separator the listing embeds in
// attribute fields; it is stripped before trimming.
const attributeSeparator = "；"

// Decompose parses the multi-item ProductInfo blob of every record into
// line items. Decomposition is best-effort per line: a line with fewer
// than three pipe-separated fields or a non-integer quantity is dropped
// and reported as a diagnostic, never as an error.
func Decompose(records []RawRecord) ([]LineItem, []Diagnostic) {
	var (
		items []LineItem
		diags []Diagnostic
	)

	for _, rec := range records {
		for _, line := range strings.Split(strings.TrimSpace(rec.ProductInfo), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}

			parts := strings.Split(line, "|")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			if len(parts) < 3 {
				diags = append(diags, Diagnostic{
					Kind:      DiagMalformedLine,
					OrderCode: rec.Code,
					Line:      line,
				})
				continue
			}

			product := parts[0]
			attribute := strings.TrimSpace(strings.ReplaceAll(parts[1], attributeSeparator, ""))

			quantity, err := strconv.Atoi(parts[2])
			if err != nil {
				diags = append(diags, Diagnostic{
					Kind:      DiagBadQuantity,
					OrderCode: rec.Code,
					Line:      line,
				})
				continue
			}

			item, err := NewLineItem(rec.Code, product, attribute, quantity)
			if err != nil {
				kind := DiagMalformedLine
				if errors.Is(err, ErrInvalidQuantity) {
					kind = DiagBadQuantity
				}
				diags = append(diags, Diagnostic{
					Kind:      kind,
					OrderCode: rec.Code,
					Line:      line,
				})
				continue
			}
			items = append(items, item)
		}
	}

	return items, diags
}
