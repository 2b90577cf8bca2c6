// Package http provides an HTTP-based implementation of palabras.Fetcher
// that downloads rendered Wiktionary pages.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/palabras"
)

const (
	// DefaultFetchTimeout is the default timeout for HTTP requests.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultBaseURL is the Wiktionary edition pages are fetched from.
	DefaultBaseURL = "https://en.wiktionary.org"

	// DefaultUserAgent identifies the client to Wikimedia servers.
	DefaultUserAgent = "palabras/1.0 (https://github.com/fwojciec/palabras)"
)

// missingPageMarker is printed on pages Wiktionary has no entry for.
const missingPageMarker = "Wiktionary does not yet have an entry for"

// Ensure Fetcher implements palabras.Fetcher at compile time.
var _ palabras.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves Wiktionary page HTML using plain HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	baseURL   string
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the scheme and host pages are fetched from.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// PageURL returns the address of the page for word. A positive revision
// selects that historical revision instead of the current page.
func (f *Fetcher) PageURL(word string, revision int) string {
	if revision > 0 {
		q := url.Values{}
		q.Set("title", word)
		q.Set("oldid", strconv.Itoa(revision))
		return f.baseURL + "/w/index.php?" + q.Encode()
	}
	return f.baseURL + "/wiki/" + url.PathEscape(word)
}

// Fetch retrieves the HTML of the Wiktionary page for word.
//
// Returns ENOTFOUND if Wiktionary has no page for the word, ETIMEOUT if the
// request timed out, and ENETWORK for other transport or status failures.
func (f *Fetcher) Fetch(ctx context.Context, word string, revision int) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", palabras.Errorf(palabras.EINVALID, "word required")
	}
	if revision < 0 {
		return "", palabras.Errorf(palabras.EINVALID, "invalid revision %d", revision)
	}

	pageURL := f.PageURL(word, revision)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", palabras.Errorf(palabras.EINVALID, "invalid page URL %s", pageURL)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", transportError(err, pageURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportError(err, pageURL)
	}
	content := string(body)

	if resp.StatusCode == http.StatusNotFound || strings.Contains(content, missingPageMarker) {
		return "", palabras.Errorf(palabras.ENOTFOUND, "No Wiktionary page found")
	}
	if resp.StatusCode != http.StatusOK {
		return "", palabras.Errorf(palabras.ENETWORK, "HTTP %d for %s", resp.StatusCode, pageURL)
	}

	return content, nil
}

// transportError classifies a failed request. Cancellation by the caller
// is returned as is.
func transportError(err error, pageURL string) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return palabras.Errorf(palabras.ETIMEOUT, "timed out fetching %s", pageURL)
	}
	return palabras.Errorf(palabras.ENETWORK, "fetch %s: %v", pageURL, err)
}
