package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-advisor/internal/logger"
)

// MinContentLength is the shortest extracted text accepted from a plain
// HTTP fetch before headless rendering is tried.
const MinContentLength = 500

// RenderFunc returns the rendered HTML of a page.
type RenderFunc func(ctx context.Context, url string) (string, error)

// NeedsBrowser reports whether extracted text is short enough that the page
// is probably rendered client-side.
func NeedsBrowser(text string) bool {
	return len(strings.TrimSpace(text)) < MinContentLength
}

// RenderWithBrowser loads a page in headless Chrome and returns its HTML.
// Chrome or Chromium must be installed.
func RenderWithBrowser(ctx context.Context, url string) (string, error) {
	return renderWithTimeout(ctx, url, DefaultTimeout)
}

func renderWithTimeout(ctx context.Context, url string, timeout time.Duration) (string, error) {
	logger.Debug().Str("url", url).Msg("starting headless browser")

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	logger.Debug().Str("url", url).Int("bytes", len(html)).Msg("browser rendered page")
	return html, nil
}
