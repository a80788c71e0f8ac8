package scraper

import (
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// detailLinkMarker identifies anchors pointing at a conference detail page
const detailLinkMarker = "event.showcfp"

// SearchPage fetches one listing page (1-based) for keyword and returns the
// absolute URLs of every detail page linked from it. Duplicates within the
// page collapse and the result is sorted, so equal inputs yield the same
// processing order.
func (s *Scraper) SearchPage(keyword string, page int) ([]string, error) {
	s.log.Info("scraping listing page",
		zap.String("keyword", keyword), zap.Int("page", page))

	doc, err := s.fetch(s.searchURL(keyword, page))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, err
	}

	urls := parseDetailLinks(doc, base)

	s.log.Info("CFPs found on listing page",
		zap.Int("page", page), zap.Int("count", len(urls)))
	return urls, nil
}

// parseDetailLinks extracts unique, absolute detail-page URLs from a listing
// document
func parseDetailLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if !strings.Contains(href, detailLinkMarker) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		seen[base.ResolveReference(ref).String()] = true
	})

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
