package ballot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"award-voting/internal/domain/category"
)

var (
	ErrIncompleteBallot = errors.New("ballot is missing a selection for at least one category")
	ErrWebhookDelivery  = errors.New("webhook delivery failed")
	ErrVotingClosed     = errors.New("voting is closed")
)

// IPResolver resolves the submitter's public address. Implementations must
// degrade, not fail: when the lookup is unreachable they return "unknown".
type IPResolver interface {
	Resolve(ctx context.Context) string
}

// WebhookSender delivers the submission payload. A non-nil error means the
// receiver did not acknowledge with a success status.
type WebhookSender interface {
	Send(ctx context.Context, p Payload) error
}

type Service struct {
	repo    Repository
	ips     IPResolver
	webhook WebhookSender
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo Repository, ips IPResolver, webhook WebhookSender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:    repo,
		ips:     ips,
		webhook: webhook,
		logger:  logger,
		now:     time.Now,
	}
}

// Receipt summarizes a submission attempt that made it past the
// completeness gate, whether or not the webhook acknowledged it.
type Receipt struct {
	IP         string
	Categories int
}

// Submit runs the full submission pipeline for one ballot:
//
//  1. completeness gate, no network traffic on failure;
//  2. address lookup, degrading to "unknown";
//  3. bulk insert of one row per category, best-effort — a store failure is
//     logged and submission continues;
//  4. webhook delivery, the authoritative success signal.
//
// The store write and the webhook are not coordinated: a row can exist for
// a submission reported as failed and vice versa. Nothing here retries.
func (s *Service) Submit(ctx context.Context, categories []category.Category, b Ballot) (Receipt, error) {
	if !IsComplete(categories, b) {
		return Receipt{}, ErrIncompleteBallot
	}

	ip := s.ips.Resolve(ctx)
	rcpt := Receipt{IP: ip, Categories: len(categories)}

	rows := NewSelections(categories, b, ip, s.now().UTC())
	if err := s.repo.BulkInsert(ctx, rows); err != nil {
		s.logger.Error("ballot persistence failed, continuing to webhook",
			"rows", len(rows), "err", err)
	}

	if err := s.webhook.Send(ctx, BuildPayload(categories, b, ip)); err != nil {
		return rcpt, errors.Join(ErrWebhookDelivery, err)
	}

	return rcpt, nil
}
