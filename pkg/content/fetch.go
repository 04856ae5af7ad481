package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrFetchFailed covers every transport-level failure so callers never see
// http client internals.
var ErrFetchFailed = errors.New("failed to fetch article content")

var ErrInvalidURL = errors.New("invalid article url")

const (
	fetchTimeout = 10 * time.Second
	maxTextLen   = 5000

	// Some publishers reject requests without a browser-like identity.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch downloads the article page and reduces it to plain text, capped at
// 5000 characters to keep prompts within token limits.
func (f *Fetcher) Fetch(ctx context.Context, articleURL string) (string, error) {
	u, err := url.Parse(articleURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, articleURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, articleURL, nil)
	if err != nil {
		return "", ErrFetchFailed
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", ErrFetchFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", ErrFetchFailed
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrFetchFailed
	}

	return ExtractText(string(body)), nil
}

// ExtractText strips script and style blocks including their content, removes
// the remaining markup and collapses whitespace.
func ExtractText(raw string) string {
	text := scriptRe.ReplaceAllString(raw, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	if len(text) > maxTextLen {
		cut := maxTextLen
		// Back up so the cut never splits a multibyte rune.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}
