package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tfkdiscgolf/metrix-announcer/internal/event"
)

const (
	BaseURL = "https://discgolfmetrix.com"
	Timeout = 30 * time.Second

	// Metrix serves English-formatted timestamps in the selector,
	// e.g. "4/23/25 17:30".
	listingTimeLayout = "1/2/06 15:04"

	// Metrix responds differently to unknown clients, so the scraper
	// identifies as a regular browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// Scraper handles fetching and parsing DiscGolfMetrix pages.
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
	loc       *time.Location
}

// Options configure a Scraper. Zero values fall back to package defaults;
// Location defaults to the system timezone.
type Options struct {
	BaseURL   string
	UserAgent string
	Location  *time.Location
}

// New creates a new Scraper instance.
func New(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
		loc:       opts.Location,
	}
}

// FetchEvents fetches the series info page and parses all listed rounds.
func (s *Scraper) FetchEvents(seriesURL string) ([]*event.Event, error) {
	body, err := s.get(seriesURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return s.parseEvents(body)
}

// get issues a GET with the browser user-agent and fails on any
// non-200 status.
func (s *Scraper) get(rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, rawURL)
	}

	return resp.Body, nil
}

// parseEvents extracts rounds from the competition selector navigation.
// Each round link carries a bolded title followed by its start time;
// entries whose remaining text is not a timestamp (navigation controls,
// season overview links) are skipped.
func (s *Scraper) parseEvents(r io.Reader) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	events := make([]*event.Event, 0)

	doc.Find(`nav.competition-selector-large ul li a[href^="/"]`).Each(func(i int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}

		b := a.Find("b").First()
		if b.Length() == 0 {
			return
		}
		title := strings.TrimSpace(b.Text())

		remaining := strings.TrimSpace(strings.ReplaceAll(a.Text(), title, ""))

		start, err := time.ParseInLocation(listingTimeLayout, remaining, s.loc)
		if err != nil {
			// Not a round entry.
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		events = append(events, &event.Event{
			Title:     title,
			StartTime: start,
			URL:       base.ResolveReference(ref).String(),
		})
	})

	return events, nil
}
