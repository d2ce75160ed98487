package fetch

import (
	"context"

	"github.com/jonathan/resume-advisor/internal/logger"
)

// Posting is a job posting reduced to text.
type Posting struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Text     string   `json:"text"`
	Rendered bool     `json:"rendered"`
}

// JobPosting fetches a job posting and extracts its description text using
// platform-specific selectors. With UseBrowser set, a page whose text is
// shorter than MinContentLength is rendered headlessly and extracted again;
// a rendering failure keeps the HTTP text.
func JobPosting(ctx context.Context, rawURL string, opts *Options) (*Posting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	platform := DetectPlatform(rawURL)
	log := logger.Logger.With().Str("url", rawURL).Str("platform", string(platform)).Logger()

	page, err := Get(ctx, rawURL, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("bytes", len(page.HTML)).Msg("fetched job posting")

	content, noise := Selectors(rawURL)
	text, err := ExtractText(page.HTML, content, noise...)
	if err != nil {
		return nil, &Error{URL: rawURL, Message: "content extraction failed", Cause: err}
	}

	posting := &Posting{URL: rawURL, Platform: platform, Text: text}
	if !opts.UseBrowser || !NeedsBrowser(text) {
		return posting, nil
	}

	render := opts.Render
	if render == nil {
		render = RenderWithBrowser
	}
	log.Info().Int("chars", len(text)).Msg("posting text too short, rendering with browser")

	html, err := render(ctx, rawURL)
	if err != nil {
		log.Warn().Err(err).Msg("browser rendering failed, keeping HTTP text")
		return posting, nil
	}
	rendered, err := ExtractText(html, content, noise...)
	if err != nil {
		log.Warn().Err(err).Msg("rendered page extraction failed, keeping HTTP text")
		return posting, nil
	}

	posting.Text = rendered
	posting.Rendered = true
	return posting, nil
}
