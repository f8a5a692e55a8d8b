package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// First-run log names, one per delivery-status class.
const (
	LogPending = "sales_pending.xlsx"
	LogRest    = "sales_rest.xlsx"
)

// RunRevenue is the stored final-price total of one persisted run
// snapshot.
type RunRevenue struct {
	File    string
	Revenue decimal.Decimal
}

// HistoryStore is the append-only sales history behind the service.
// RunRevenues re-reads every persisted run snapshot; cumulative totals
// are always re-derived from it rather than kept as a running counter,
// which keeps the summary idempotent and recomputable from persisted
// history alone.
type HistoryStore interface {
	RunRevenues() ([]RunRevenue, error)
	WriteSummary(rows []RunRevenue, total decimal.Decimal) error
	AppendClassTotals(logName string, t ClassTotals) error
}

// Summary is the latest cumulative view over all persisted runs.
type Summary struct {
	Runs  []RunRevenue
	Total decimal.Decimal
}

type Service struct {
	history HistoryStore
	log     logger.Logger
}

func NewService(history HistoryStore, log logger.Logger) *Service {
	return &Service{history: history, log: log}
}

// CumulativeSummary re-scans the persisted run snapshots and sums their
// stored final-price totals, rounded to 2 decimal places.
func (s *Service) CumulativeSummary() (Summary, error) {
	rows, err := s.history.RunRevenues()
	if err != nil {
		return Summary{}, fmt.Errorf("scan run history: %w", err)
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Revenue)
	}
	total = total.Round(2)

	return Summary{Runs: rows, Total: total}, nil
}

// RefreshSummary recomputes the cumulative summary and persists it as
// the "latest totals" view.
func (s *Service) RefreshSummary() (Summary, error) {
	summary, err := s.CumulativeSummary()
	if err != nil {
		return Summary{}, err
	}
	if err := s.history.WriteSummary(summary.Runs, summary.Total); err != nil {
		return Summary{}, fmt.Errorf("write sales summary: %w", err)
	}

	s.log.Info("sales summary refreshed",
		logger.Int("runs", len(summary.Runs)),
		logger.String("total_revenue", summary.Total.String()),
	)
	return summary, nil
}

// RecordFirstRun appends the per-class totals of a seeding run to the
// separate pending/rest sales logs.
func (s *Service) RecordFirstRun(pending, rest ClassTotals) error {
	if err := s.history.AppendClassTotals(LogPending, pending); err != nil {
		return fmt.Errorf("append pending totals: %w", err)
	}
	if err := s.history.AppendClassTotals(LogRest, rest); err != nil {
		return fmt.Errorf("append rest totals: %w", err)
	}

	s.log.Info("first-run sales totals recorded",
		logger.String("pending_final_price", pending.FinalPrice.String()),
		logger.String("rest_final_price", rest.FinalPrice.String()),
	)
	return nil
}
