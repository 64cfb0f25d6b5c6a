package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager owns the headless Chrome process and recycles it after a
// number of pages. Chrome's memory baseline grows with every page even when
// pages are closed, so long training or crawl runs restart it periodically.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount atomic.Int64
	maxPages  int64
	mu        sync.Mutex
	closed    atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is recycled.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}

	return bm, nil
}

// Browser returns the current browser, recycling it first when the page
// count has reached the limit. Returns an error after Close.
func (bm *BrowserManager) Browser() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed.Load() || bm.browser == nil {
		return nil, fmt.Errorf("browser manager is closed")
	}

	if bm.maxPages > 0 && bm.pageCount.Load() >= bm.maxPages {
		bm.recycleBrowser()
	}

	return bm.browser, nil
}

// IncrementPageCount records one processed page toward the recycling threshold.
func (bm *BrowserManager) IncrementPageCount() {
	bm.pageCount.Add(1)
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

func (bm *BrowserManager) launchBrowser() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	return nil
}

// closeBrowser must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser swaps in a fresh browser, keeping the old one if the
// launch fails. Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher

	if err := bm.launchBrowser(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		return
	}

	_ = oldBrowser.Close()
	oldLauncher.Kill()
	bm.pageCount.Store(0)
}
