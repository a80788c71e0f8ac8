package runner

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/progress"
	"go.uber.org/zap"

	"github.com/pmorel/cfp-radar/internal/cfp"
	"github.com/pmorel/cfp-radar/internal/scorer"
	"github.com/pmorel/cfp-radar/internal/sink"
)

// AcceptThreshold is the strict lower bound a score must exceed for a
// conference to be recorded
const AcceptThreshold = 5

// Scraper is the WikiCFP access the runner needs
type Scraper interface {
	TotalPages(keyword string) (int, error)
	SearchPage(keyword string, page int) ([]string, error)
	FetchDetail(detailURL string) (cfp.ConferenceCFP, error)
}

// Runner wires the pipeline stages together
type Runner struct {
	Scraper Scraper
	Scorer  scorer.Scorer
	Sink    sink.Sink
	Log     *zap.Logger

	// Progress renders pages/CFPs trackers when non-nil
	Progress progress.Writer
}

// Run processes every result page for keyword, scoring each conference
// against abstract and flushing accumulated matches after each page
func (r *Runner) Run(ctx context.Context, abstract, keyword string) error {
	totalPages, err := r.Scraper.TotalPages(keyword)
	if err != nil {
		return fmt.Errorf("resolving page count: %w", err)
	}

	if r.Progress != nil {
		go r.Progress.Render()
		defer r.Progress.Stop()
	}
	pagesTracker := r.track("Pages", int64(totalPages))

	var records []cfp.MatchRecord
	for page := 1; page <= totalPages; page++ {
		urls, err := r.Scraper.SearchPage(keyword, page)
		if err != nil {
			return fmt.Errorf("scraping listing page %d: %w", page, err)
		}

		cfpTracker := r.track(fmt.Sprintf("Page %d CFPs", page), int64(len(urls)))
		for _, u := range urls {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, accepted, err := r.process(ctx, abstract, u)
			if err != nil {
				r.Log.Error("skipping CFP", zap.String("url", u), zap.Error(err))
			} else if accepted {
				records = append(records, rec)
			}
			if cfpTracker != nil {
				cfpTracker.Increment(1)
			}
		}
		if cfpTracker != nil {
			cfpTracker.MarkAsDone()
		}

		if len(records) > 0 {
			if err := r.Sink.Flush(records); err != nil {
				return fmt.Errorf("saving results after page %d: %w", page, err)
			}
			r.Log.Info("results saved", zap.String("path", r.Sink.Path()),
				zap.Int("records", len(records)))
		}

		if pagesTracker != nil {
			pagesTracker.Increment(1)
		}
	}
	if pagesTracker != nil {
		pagesTracker.MarkAsDone()
	}

	if len(records) == 0 {
		r.Log.Warn("no relevant CFP found, nothing written")
		return nil
	}

	// Defensive final flush: the last page may have added nothing
	if err := r.Sink.Flush(records); err != nil {
		return fmt.Errorf("saving final results: %w", err)
	}
	r.Log.Info("final results saved", zap.String("path", r.Sink.Path()),
		zap.Int("records", len(records)))
	return nil
}

// process extracts and scores one conference. The bool reports whether the
// conference cleared the acceptance threshold.
func (r *Runner) process(ctx context.Context, abstract, detailURL string) (cfp.MatchRecord, bool, error) {
	conf, err := r.Scraper.FetchDetail(detailURL)
	if err != nil {
		return cfp.MatchRecord{}, false, err
	}

	r.Log.Info("evaluating CFP", zap.String("title", conf.Title))
	verdict, err := r.Scorer.Score(ctx, abstract, conf)
	if err != nil {
		return cfp.MatchRecord{}, false, err
	}

	if verdict.Score <= AcceptThreshold {
		r.Log.Info("CFP not relevant",
			zap.String("title", conf.Title), zap.Int("score", verdict.Score))
		return cfp.MatchRecord{}, false, nil
	}

	r.Log.Info("relevant CFP found",
		zap.String("title", conf.Title), zap.Int("score", verdict.Score))
	return cfp.MatchRecord{
		Title:         conf.Title,
		Acronym:       conf.Acronym,
		When:          conf.When,
		Where:         conf.Where,
		Deadline:      conf.Deadline,
		Score:         verdict.Score,
		Justification: verdict.Justification,
	}, true, nil
}

// track appends a tracker to the progress writer, if any
func (r *Runner) track(message string, total int64) *progress.Tracker {
	if r.Progress == nil {
		return nil
	}
	t := &progress.Tracker{Message: message, Total: total}
	r.Progress.AppendTracker(t)
	return t
}
