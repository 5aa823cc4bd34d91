package ballot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"award-voting/internal/domain/category"
)

type memorySelectionRepo struct {
	mu        sync.Mutex
	rows      []Selection
	insertErr error
}

func (r *memorySelectionRepo) BulkInsert(ctx context.Context, rows []Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *memorySelectionRepo) ListPage(ctx context.Context, f Filter, offset, limit int) ([]Selection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []Selection
	for _, s := range r.rows {
		if f.CategoryID != uuid.Nil && s.CategoryID != f.CategoryID {
			continue
		}
		if !f.Since.IsZero() && s.CreatedAt.Before(f.Since) {
			continue
		}
		matched = append(matched, s)
	}
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

type fixedResolver struct {
	ip string
}

func (r fixedResolver) Resolve(ctx context.Context) string { return r.ip }

type captureWebhook struct {
	payloads []Payload
	err      error
}

func (w *captureWebhook) Send(ctx context.Context, p Payload) error {
	if w.err != nil {
		return w.err
	}
	w.payloads = append(w.payloads, p)
	return nil
}

func twoCategories() []category.Category {
	return []category.Category{
		{ID: uuid.New(), Title: "Best Artist", Alternatives: []string{"A", "B"}, DisplayOrder: 1},
		{ID: uuid.New(), Title: "Best Song", Alternatives: []string{"X", "Y"}, DisplayOrder: 2},
	}
}

func completeBallot(cats []category.Category) Ballot {
	b := make(Ballot, len(cats))
	for _, cat := range cats {
		b[cat.ID] = cat.Alternatives[0]
	}
	return b
}

func TestSubmitHappyPath(t *testing.T) {
	cats := twoCategories()
	repo := &memorySelectionRepo{}
	hook := &captureWebhook{}
	svc := NewService(repo, fixedResolver{ip: "203.0.113.7"}, hook, nil)

	rcpt, err := svc.Submit(context.Background(), cats, completeBallot(cats))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rcpt.IP != "203.0.113.7" || rcpt.Categories != 2 {
		t.Fatalf("unexpected receipt %+v", rcpt)
	}

	if len(repo.rows) != 2 {
		t.Fatalf("expected 2 persisted rows, got %d", len(repo.rows))
	}
	for _, row := range repo.rows {
		if row.IPAddress != "203.0.113.7" {
			t.Fatalf("row missing shared address: %+v", row)
		}
		if row.CreatedAt != repo.rows[0].CreatedAt {
			t.Fatalf("rows should share one submission timestamp")
		}
	}

	if len(hook.payloads) != 1 {
		t.Fatalf("expected one webhook delivery, got %d", len(hook.payloads))
	}
	p := hook.payloads[0]
	if p[0].Key != "ip" || p[0].Value != "203.0.113.7" {
		t.Fatalf("payload ip field wrong: %+v", p[0])
	}
	if p[1].Key != "1" || p[1].Value != "Best Artist|A" {
		t.Fatalf("first ordinal field wrong: %+v", p[1])
	}
	if p[2].Key != "2" || p[2].Value != "Best Song|X" {
		t.Fatalf("second ordinal field wrong: %+v", p[2])
	}
}

func TestSubmitIncompleteBallotMakesNoCalls(t *testing.T) {
	cats := twoCategories()
	b := completeBallot(cats)
	delete(b, cats[1].ID)

	repo := &memorySelectionRepo{}
	hook := &captureWebhook{}
	svc := NewService(repo, fixedResolver{ip: "203.0.113.7"}, hook, nil)

	if _, err := svc.Submit(context.Background(), cats, b); !errors.Is(err, ErrIncompleteBallot) {
		t.Fatalf("expected ErrIncompleteBallot, got %v", err)
	}
	if len(repo.rows) != 0 || len(hook.payloads) != 0 {
		t.Fatalf("incomplete ballot must not reach store or webhook")
	}
}

func TestSubmitDegradedLookupStillDelivers(t *testing.T) {
	cats := twoCategories()
	repo := &memorySelectionRepo{}
	hook := &captureWebhook{}
	svc := NewService(repo, fixedResolver{ip: "unknown"}, hook, nil)

	rcpt, err := svc.Submit(context.Background(), cats, completeBallot(cats))
	if err != nil {
		t.Fatalf("submit with degraded lookup: %v", err)
	}
	if rcpt.IP != "unknown" {
		t.Fatalf("expected sentinel address in receipt, got %q", rcpt.IP)
	}
	if hook.payloads[0][0].Value != "unknown" {
		t.Fatalf("webhook payload ip should carry the sentinel")
	}
	if repo.rows[0].IPAddress != "unknown" {
		t.Fatalf("persisted rows should carry the sentinel")
	}
}

func TestSubmitStoreFailureIsNotFatal(t *testing.T) {
	cats := twoCategories()
	repo := &memorySelectionRepo{insertErr: errors.New("store down")}
	hook := &captureWebhook{}
	svc := NewService(repo, fixedResolver{ip: "203.0.113.7"}, hook, nil)

	if _, err := svc.Submit(context.Background(), cats, completeBallot(cats)); err != nil {
		t.Fatalf("store failure must not fail submission, got %v", err)
	}
	if len(hook.payloads) != 1 {
		t.Fatalf("webhook should still have been called")
	}
}

func TestSubmitWebhookFailureIsAuthoritative(t *testing.T) {
	cats := twoCategories()
	repo := &memorySelectionRepo{}
	hook := &captureWebhook{err: errors.New("status 500")}
	svc := NewService(repo, fixedResolver{ip: "203.0.113.7"}, hook, nil)

	_, err := svc.Submit(context.Background(), cats, completeBallot(cats))
	if !errors.Is(err, ErrWebhookDelivery) {
		t.Fatalf("expected ErrWebhookDelivery, got %v", err)
	}
	// The store row exists even though the submission failed; the two
	// writes are not coordinated.
	if len(repo.rows) != 2 {
		t.Fatalf("store rows should remain after webhook failure")
	}
}

func TestIsComplete(t *testing.T) {
	cats := twoCategories()
	b := completeBallot(cats)

	if !IsComplete(cats, b) {
		t.Fatalf("complete ballot reported incomplete")
	}

	for _, cat := range cats {
		partial := completeBallot(cats)
		delete(partial, cat.ID)
		if IsComplete(cats, partial) {
			t.Fatalf("ballot missing %s reported complete", cat.Title)
		}
	}

	empty := completeBallot(cats)
	empty[cats[0].ID] = ""
	if IsComplete(cats, empty) {
		t.Fatalf("empty selection should not count as voted")
	}

	if !IsComplete(nil, Ballot{}) {
		t.Fatalf("no categories means trivially complete")
	}
}
