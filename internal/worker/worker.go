package worker

import (
	"context"
	"log/slog"

	"award-voting/internal/metrics"
)

// SubmissionEvent describes one finished ballot submission attempt.
type SubmissionEvent struct {
	IP         string
	Categories int
	Degraded   bool
	Accepted   bool
}

// Invalidator lets the worker drop cached tallies after accepted ballots.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// SubmissionWorker drains submission events off the hot request path,
// recording metrics and invalidating the tally cache. Producers use a
// non-blocking send; a full channel drops the event rather than stalling
// a voter.
type SubmissionWorker struct {
	Ch     <-chan SubmissionEvent
	cache  Invalidator
	logger *slog.Logger
}

func NewSubmissionWorker(ch <-chan SubmissionEvent, cache Invalidator, logger *slog.Logger) *SubmissionWorker {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionWorker{Ch: ch, cache: cache, logger: logger}
}

func (w *SubmissionWorker) Run(ctx context.Context) {
	w.logger.Info("submission worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("submission worker stopped")
			return
		case ev := <-w.Ch:
			if ev.Degraded {
				metrics.IncLookupDegraded()
			}
			if ev.Accepted {
				metrics.IncBallotSubmitted()
				if w.cache != nil {
					w.cache.Invalidate(ctx)
				}
			} else {
				metrics.IncWebhookFailure()
			}
			w.logger.Info("ballot processed",
				"ip", ev.IP,
				"categories", ev.Categories,
				"accepted", ev.Accepted,
			)
		}
	}
}
