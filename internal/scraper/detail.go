package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/pmorel/cfp-radar/internal/cfp"
)

// FetchDetail fetches one conference detail page and extracts its metadata.
// Missing page elements yield the "N/A" sentinel; only transport or HTML
// parse failures return an error.
func (s *Scraper) FetchDetail(detailURL string) (cfp.ConferenceCFP, error) {
	s.log.Debug("opening CFP detail page", zap.String("url", detailURL))

	doc, err := s.fetch(detailURL)
	if err != nil {
		return cfp.ConferenceCFP{}, err
	}

	conf := parseDetail(doc, detailURL)
	s.log.Debug("CFP extracted",
		zap.String("title", conf.Title),
		zap.String("acronym", conf.Acronym),
		zap.String("when", conf.When),
		zap.String("where", conf.Where),
		zap.String("deadline", conf.Deadline))
	return conf, nil
}

// parseDetail extracts conference fields from a detail document
func parseDetail(doc *goquery.Document, sourceURL string) cfp.ConferenceCFP {
	title := strings.TrimSpace(doc.Find(`span[property="v:description"]`).First().Text())

	acronym := ""
	if v, ok := doc.Find(`span[property="v:summary"]`).First().Attr("content"); ok {
		acronym = strings.TrimSpace(v)
	}

	// When/Where/Submission Deadline live in gglu key-value tables. Header
	// text is matched case-insensitively as a substring; a later row matching
	// the same field overwrites an earlier one.
	var when, where, deadline string
	doc.Find("table.gglu tr").Each(func(i int, row *goquery.Selection) {
		header := row.Find("th").First()
		cell := row.Find("td").First()
		if header.Length() == 0 || cell.Length() == 0 {
			return
		}
		headerText := strings.ToLower(strings.TrimSpace(header.Text()))
		cellText := strings.TrimSpace(cell.Text())
		switch {
		case strings.Contains(headerText, "when"):
			when = cellText
		case strings.Contains(headerText, "where"):
			where = cellText
		case strings.Contains(headerText, "submission deadline"):
			deadline = cellText
		}
	})

	description := ""
	if sel := doc.Find("div.cfp").First(); sel.Length() > 0 {
		description = textWithNewlines(sel)
	}

	return cfp.NewConferenceCFP(title, acronym, when, where, deadline, description, sourceURL)
}

// textWithNewlines renders a selection's text content with <br> and block
// element boundaries preserved as newlines
func textWithNewlines(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func writeNodeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.Data == "br" {
		b.WriteString("\n")
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(b, c)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "ul", "ol":
			b.WriteString("\n")
		}
	}
}
