package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Samuel-ncu/goshopsync/internal/application/sales"
	"github.com/Samuel-ncu/goshopsync/internal/domain/catalog"
	"github.com/Samuel-ncu/goshopsync/internal/domain/order"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

// ListingPager is the remote seller listing, one page at a time. Rows
// arrive in the source's native newest-first order; the pipeline never
// reorders or parallelizes page fetches because the stop-checkpoint
// semantics depend on encountering rows in that order.
type ListingPager interface {
	CurrentPageRows(ctx context.Context) ([][]string, error)
	HasNextPage(ctx context.Context) (bool, error)
	AdvancePage(ctx context.Context) error
}

// CatalogSource loads the product catalog wholesale at run start.
type CatalogSource interface {
	Load(ctx context.Context) ([]catalog.Product, error)
}

// CheckpointStore holds the high-water-mark order code. Read returns
// an empty code when no checkpoint exists yet (first run).
type CheckpointStore interface {
	Read() (string, error)
	Write(code string) error
}

// SnapshotStore persists run snapshots all-or-nothing.
type SnapshotStore interface {
	WriteRun(name string, snap order.RunSnapshot) (string, error)
	WriteRest(name string, records []order.RawRecord) (string, error)
}

// Publisher mirrors ingested raw records to downstream consumers.
// Optional: a nil publisher skips the mirror step.
type Publisher interface {
	PublishRecord(ctx context.Context, rec order.RawRecord) error
}

// Deps are the collaborators of one ingestion run, passed in explicitly
// rather than held as ambient session state.
type Deps struct {
	Pager       ListingPager
	Catalog     CatalogSource
	Checkpoints CheckpointStore
	Snapshots   SnapshotStore
	Sales       *sales.Service
	Publisher   Publisher
	Logger      logger.Logger
}

// Options tune one run.
type Options struct {
	// Operator names the user context; it is part of the snapshot name.
	Operator string
	// FoldCase makes aggregation keys case-insensitive.
	FoldCase bool
}

type Service struct {
	deps Deps
	opts Options
	agg  order.Aggregator
	now  func() time.Time
}

func NewService(deps Deps, opts Options) *Service {
	return &Service{
		deps: deps,
		opts: opts,
		agg:  order.Aggregator{FoldCase: opts.FoldCase},
		now:  time.Now,
	}
}

// Result summarizes one completed run.
type Result struct {
	RunID        string
	FirstRun     bool
	Pending      int
	Rest         int
	LineItems    int
	MergedItems  int
	Unmatched    int
	Diagnostics  []order.Diagnostic
	Totals       sales.RunTotals
	SnapshotPath string
	Checkpoint   string
}

// Ingest drives page-by-page retrieval, normalizing every row and
// splitting records into pending and rest streams. When stopCode is set
// and a row's order code equals it, ingestion halts immediately: the
// remaining rows on the page and all subsequent pages are not fetched.
// That boundary is the resumption point, not a filter. Any collaborator
// error aborts the whole run with the page and last order code seen.
func (s *Service) Ingest(ctx context.Context, stopCode string) (pending, rest []order.RawRecord, err error) {
	page := 1
	lastCode := ""

	for {
		rows, err := s.deps.Pager.CurrentPageRows(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("fetch page %d (last order %q): %w", page, lastCode, err)
		}
		s.deps.Logger.Debug("page fetched",
			logger.Int("page", page),
			logger.Int("rows", len(rows)),
		)

		for _, cells := range rows {
			rec := order.NormalizeRow(cells)
			if stopCode != "" && rec.Code == stopCode {
				s.deps.Logger.Info("checkpoint order reached, stopping",
					logger.String("order_code", rec.Code),
					logger.Int("page", page),
				)
				return pending, rest, nil
			}
			lastCode = rec.Code
			if rec.IsPending() {
				pending = append(pending, rec)
			} else {
				rest = append(rest, rec)
			}
		}

		more, err := s.deps.Pager.HasNextPage(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("check next page after page %d (last order %q): %w", page, lastCode, err)
		}
		if !more {
			return pending, rest, nil
		}
		if err := s.deps.Pager.AdvancePage(ctx); err != nil {
			return nil, nil, fmt.Errorf("advance past page %d (last order %q): %w", page, lastCode, err)
		}
		page++
	}
}

// Run executes one full ingestion run: catalog load, checkpointed
// pagination, decomposition, aggregation, enrichment, rollup, snapshot
// and history persistence, and finally the checkpoint commit. The
// checkpoint is written only after everything else succeeded, so an
// aborted run resumes from the previous high-water mark.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	log := s.deps.Logger.WithFields(logger.String("run_id", runID))

	// Catalog and checkpoint problems fail fast, before any fetching.
	entries, err := s.deps.Catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	stopCode, err := s.deps.Checkpoints.Read()
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}
	firstRun := stopCode == ""

	log.Info("ingestion started",
		logger.String("operator", s.opts.Operator),
		logger.Bool("first_run", firstRun),
		logger.String("stop_code", stopCode),
	)

	pending, rest, err := s.Ingest(ctx, stopCode)
	if err != nil {
		return nil, err
	}

	items, diags := order.Decompose(pending)
	for _, d := range diags {
		log.Warn("product info line skipped",
			logger.String("kind", string(d.Kind)),
			logger.String("order_code", d.OrderCode),
			logger.String("line", d.Line),
		)
	}

	merged := s.agg.Aggregate(items)
	merged, unmatched := catalog.Enrich(merged, entries)
	if unmatched > 0 {
		log.Warn("products without catalog entry", logger.Int("count", unmatched))
	}

	totals := sales.Rollup(merged, pending)

	runDate := s.now().Format("20060102")
	snapName := fmt.Sprintf("orders_%s_%s.xlsx", runDate, s.opts.Operator)
	snapPath, err := s.deps.Snapshots.WriteRun(snapName, order.RunSnapshot{
		Raw:    pending,
		Items:  items,
		Merged: merged,
	})
	if err != nil {
		return nil, fmt.Errorf("write run snapshot: %w", err)
	}

	if firstRun {
		restName := fmt.Sprintf("orders_rest_%s.xlsx", s.opts.Operator)
		if _, err := s.deps.Snapshots.WriteRest(restName, rest); err != nil {
			return nil, fmt.Errorf("write rest snapshot: %w", err)
		}

		date := s.now().Format("2006-01-02")
		if err := s.deps.Sales.RecordFirstRun(
			sales.TotalsFor(date, pending),
			sales.TotalsFor(date, rest),
		); err != nil {
			return nil, err
		}
	} else {
		if _, err := s.deps.Sales.RefreshSummary(); err != nil {
			return nil, err
		}
	}

	if s.deps.Publisher != nil {
		if err := s.publish(ctx, pending, rest); err != nil {
			return nil, err
		}
	}

	// Seed or advance the high-water mark with the first pending
	// record of this run; the listing is newest-first, so that code
	// bounds the next run.
	checkpoint := ""
	if len(pending) > 0 {
		checkpoint = pending[0].Code
		if err := s.deps.Checkpoints.Write(checkpoint); err != nil {
			return nil, fmt.Errorf("commit checkpoint: %w", err)
		}
	}

	res := &Result{
		RunID:        runID,
		FirstRun:     firstRun,
		Pending:      len(pending),
		Rest:         len(rest),
		LineItems:    len(items),
		MergedItems:  len(merged),
		Unmatched:    unmatched,
		Diagnostics:  diags,
		Totals:       totals,
		SnapshotPath: snapPath,
		Checkpoint:   checkpoint,
	}

	log.Info("ingestion finished",
		logger.Int("pending", res.Pending),
		logger.Int("rest", res.Rest),
		logger.Int("merged_items", res.MergedItems),
		logger.String("revenue", totals.Revenue.String()),
		logger.String("profit", totals.Profit.String()),
		logger.String("checkpoint", checkpoint),
	)
	return res, nil
}

func (s *Service) publish(ctx context.Context, pending, rest []order.RawRecord) error {
	published := 0
	for _, rec := range append(append([]order.RawRecord{}, pending...), rest...) {
		if err := s.deps.Publisher.PublishRecord(ctx, rec); err != nil {
			return fmt.Errorf("publish order %s: %w", rec.Code, err)
		}
		published++
	}
	s.deps.Logger.Debug("raw records published", logger.Int("count", published))
	return nil
}
