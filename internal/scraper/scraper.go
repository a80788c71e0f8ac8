package scraper

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const (
	// BaseURL is the WikiCFP site root. Tests override it with a local server.
	BaseURL   = "http://www.wikicfp.com"
	UserAgent = "cfp-radar/1.0 (github.com/pmorel/cfp-radar)"
	Timeout   = 30 * time.Second

	searchPath = "/cfp/call"
)

// Scraper handles fetching and parsing WikiCFP listing and detail pages
type Scraper struct {
	client  *http.Client
	baseURL string
	log     *zap.Logger
}

// New creates a Scraper pointed at WikiCFP
func New(log *zap.Logger) *Scraper {
	return NewWithBaseURL(log, BaseURL)
}

// NewWithBaseURL creates a Scraper pointed at an arbitrary site root
func NewWithBaseURL(log *zap.Logger, baseURL string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: baseURL,
		log:     log,
	}
}

// searchURL builds the listing search URL for a keyword. A page of 0 omits
// the page parameter (the site's default first page).
func (s *Scraper) searchURL(keyword string, page int) string {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return s.baseURL
	}
	u.Path = searchPath
	q := u.Query()
	q.Set("conference", keyword)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// fetch issues one GET and parses the response body as HTML
func (s *Scraper) fetch(pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
