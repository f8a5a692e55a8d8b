package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Samuel-ncu/goshopsync/internal/config"
	"github.com/Samuel-ncu/goshopsync/pkg/logger"
)

const (
	rowSelector      = "table tbody tr"
	nextPageSelector = `a[aria-label="Next »"]`
)

// extractRowsJS reads the inner text of every cell of every listing
// row, in table order.
const extractRowsJS = `
	Array.from(document.querySelectorAll("table tbody tr")).map(tr =>
		Array.from(tr.querySelectorAll("td")).map(td => td.innerText)
	)
`

// hasNextPageJS checks that the next-page link exists and is actually
// rendered; the listing hides it on the last page.
const hasNextPageJS = `
	(() => {
		const a = document.querySelector('a[aria-label="Next »"]');
		return a !== null && a.offsetParent !== null;
	})()
`

// BrowserPager drives the remote seller listing through a Chrome
// instance. The operator logs in manually in the opened window; the
// pager then walks the paginated orders table one page at a time.
// Every wait is bounded by the configured page timeout; a timeout is
// fatal for the run, not retried.
type BrowserPager struct {
	cfg config.ListingConfig
	log logger.Logger

	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
}

func NewBrowserPager(cfg config.ListingConfig, log logger.Logger) *BrowserPager {
	return &BrowserPager{cfg: cfg, log: log}
}

// Start launches the browser and opens the listing's login page.
func (p *BrowserPager) Start(ctx context.Context) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	p.allocCancel = allocCancel

	p.tabCtx, p.tabCancel = chromedp.NewContext(allocCtx)

	if err := chromedp.Run(p.tabCtx, chromedp.Navigate(p.cfg.BaseURL)); err != nil {
		p.Close()
		return fmt.Errorf("open %s: %w", p.cfg.BaseURL, err)
	}
	p.log.Info("browser started", logger.String("url", p.cfg.BaseURL))
	return nil
}

// OpenOrders navigates to the seller-orders listing and waits for the
// first page of the table.
func (p *BrowserPager) OpenOrders(ctx context.Context) error {
	url := p.cfg.OrdersURL()
	run := func(c context.Context) error {
		return chromedp.Run(c,
			chromedp.Navigate(url),
			chromedp.WaitVisible(rowSelector, chromedp.ByQuery),
		)
	}
	if err := p.runBounded(ctx, run); err != nil {
		return fmt.Errorf("open orders listing %s: %w", url, err)
	}
	p.log.Info("orders listing opened", logger.String("url", url))
	return nil
}

// CurrentPageRows waits for the table and returns the ordered text
// cells of every row on the current page.
func (p *BrowserPager) CurrentPageRows(ctx context.Context) ([][]string, error) {
	var rows [][]string
	run := func(c context.Context) error {
		return chromedp.Run(c,
			chromedp.WaitVisible(rowSelector, chromedp.ByQuery),
			chromedp.Evaluate(extractRowsJS, &rows),
		)
	}
	if err := p.runBounded(ctx, run); err != nil {
		return nil, fmt.Errorf("read listing rows: %w", err)
	}
	return rows, nil
}

// HasNextPage reports whether the listing signals a further page.
func (p *BrowserPager) HasNextPage(ctx context.Context) (bool, error) {
	var visible bool
	run := func(c context.Context) error {
		return chromedp.Run(c, chromedp.Evaluate(hasNextPageJS, &visible))
	}
	if err := p.runBounded(ctx, run); err != nil {
		return false, fmt.Errorf("check next page: %w", err)
	}
	return visible, nil
}

// AdvancePage clicks through to the next page and waits for its table.
func (p *BrowserPager) AdvancePage(ctx context.Context) error {
	run := func(c context.Context) error {
		return chromedp.Run(c,
			chromedp.Click(nextPageSelector, chromedp.ByQuery),
			// Give the listing a beat to replace the table before
			// waiting on it, otherwise the old table satisfies the
			// selector.
			chromedp.Sleep(500*time.Millisecond),
			chromedp.WaitVisible(rowSelector, chromedp.ByQuery),
		)
	}
	if err := p.runBounded(ctx, run); err != nil {
		return fmt.Errorf("advance page: %w", err)
	}
	return nil
}

// Close tears down the tab and the browser process.
func (p *BrowserPager) Close() {
	if p.tabCancel != nil {
		p.tabCancel()
	}
	if p.allocCancel != nil {
		p.allocCancel()
	}
}

// runBounded runs a browser action under both the caller's context and
// the configured page timeout.
func (p *BrowserPager) runBounded(ctx context.Context, run func(context.Context) error) error {
	if p.tabCtx == nil {
		return fmt.Errorf("browser not started")
	}

	done := make(chan error, 1)
	bounded, cancel := context.WithTimeout(p.tabCtx, p.cfg.PageTimeout)
	defer cancel()

	go func() { done <- run(bounded) }()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
