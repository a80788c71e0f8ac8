// Package runner drives the scrape-score-persist pipeline.
//
// The runner resolves the result page count once, then walks pages in
// ascending order: scrape the listing, and for each detail URL extract,
// score, and accumulate conferences whose score clears the acceptance
// threshold. The sink is flushed after every page so the output file is
// always a current snapshot. Failures on a single conference are logged and
// skipped; failures resolving the page count or scraping a listing page
// abort the run.
package runner
