package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Pattern to match the result summary cell: "Total of 23 CFPs in 2 pages"
var totalPagesPattern = regexp.MustCompile(`Total of\s+\d+\s+CFPs in\s+(\d+)\s+pages`)

// TotalPages fetches the first listing page for keyword and returns the
// total number of result pages. If the summary phrase is missing (zero
// results, layout change), it logs a warning and returns 1 rather than
// failing the run.
func (s *Scraper) TotalPages(keyword string) (int, error) {
	s.log.Info("resolving result page count", zap.String("keyword", keyword))

	doc, err := s.fetch(s.searchURL(keyword, 0))
	if err != nil {
		return 0, err
	}

	pages := parseTotalPages(doc)
	if pages == 0 {
		s.log.Warn("page count not found, assuming a single result page",
			zap.String("keyword", keyword))
		return 1, nil
	}

	s.log.Info("result page count resolved", zap.Int("pages", pages))
	return pages, nil
}

// parseTotalPages scans center-aligned table cells for the summary phrase.
// Returns 0 when no cell matches.
func parseTotalPages(doc *goquery.Document) int {
	pages := 0
	doc.Find(`td[align="center"]`).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if !strings.Contains(text, "Total of") {
			return true
		}
		matches := totalPagesPattern.FindStringSubmatch(text)
		if matches == nil {
			return true
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return true
		}
		pages = n
		return false
	})
	return pages
}
