// Package scraper provides HTTP fetching and HTML parsing for WikiCFP.
//
// The scraper package resolves the number of result pages for a search
// keyword, extracts detail-page links from listing pages, and extracts
// structured conference metadata (title, acronym, dates, venue, deadline,
// description) from detail pages. Extraction is tied to WikiCFP's markup:
// the "Total of N CFPs in P pages" summary cell, event.showcfp detail links,
// v:description/v:summary microdata spans, the gglu key-value table, and the
// cfp description container.
package scraper
