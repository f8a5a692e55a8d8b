package order

import "fmt"

// DiagnosticKind classifies a recoverable row-level data-quality issue.
type DiagnosticKind string

const (
	DiagMalformedLine DiagnosticKind = "malformed_line"
	DiagBadQuantity   DiagnosticKind = "bad_quantity"
)

// Diagnostic records a product-info line that was skipped during
// decomposition. Diagnostics are surfaced to the operator but never
// abort a run.
type Diagnostic struct {
	Kind      DiagnosticKind
	OrderCode string
	Line      string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: order %s: %q", d.Kind, d.OrderCode, d.Line)
}
