package tally

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"award-voting/internal/domain/ballot"
	"award-voting/internal/domain/category"
)

func TestAggregateDropsUndeclaredAlternatives(t *testing.T) {
	cat := category.Category{
		ID:           uuid.New(),
		Title:        "Best Artist",
		Alternatives: []string{"A", "B"},
	}
	selections := []ballot.Selection{
		{CategoryID: cat.ID, SelectedAlternative: "A"},
		{CategoryID: cat.ID, SelectedAlternative: "A"},
		{CategoryID: cat.ID, SelectedAlternative: "B"},
		{CategoryID: cat.ID, SelectedAlternative: "C"}, // stale, not declared
	}

	res := Aggregate(cat, selections)
	if res.Total != 3 {
		t.Fatalf("expected total 3 after dropping stale value, got %d", res.Total)
	}
	if len(res.Counts) != 2 {
		t.Fatalf("expected one bucket per declared alternative, got %d", len(res.Counts))
	}
	if res.Counts[0].Alternative != "A" || res.Counts[0].Votes != 2 {
		t.Fatalf("unexpected A bucket: %+v", res.Counts[0])
	}
	if res.Counts[1].Alternative != "B" || res.Counts[1].Votes != 1 {
		t.Fatalf("unexpected B bucket: %+v", res.Counts[1])
	}
}

func TestAggregateSeedsAllAlternativesToZero(t *testing.T) {
	cat := category.Category{
		ID:           uuid.New(),
		Title:        "Best Song",
		Alternatives: []string{"X", "Y", "Z"},
	}

	res := Aggregate(cat, nil)
	if res.Total != 0 {
		t.Fatalf("expected total 0, got %d", res.Total)
	}
	if len(res.Counts) != 3 {
		t.Fatalf("expected 3 zero buckets, got %d", len(res.Counts))
	}
	for _, c := range res.Counts {
		if c.Votes != 0 {
			t.Fatalf("bucket %q should start at zero", c.Alternative)
		}
	}
}

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"", "all", "today", "7d", "30d"} {
		if _, err := ParseWindow(valid); err != nil {
			t.Fatalf("window %q should parse: %v", valid, err)
		}
	}
	if _, err := ParseWindow("yesterday"); err == nil {
		t.Fatalf("unknown window should be rejected")
	}
}

func TestWindowSince(t *testing.T) {
	now := time.Date(2025, 12, 6, 15, 30, 0, 0, time.UTC)

	if !WindowAll.Since(now).IsZero() {
		t.Fatalf("all window should have no cut")
	}

	today := WindowToday.Since(now)
	if today != time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("today window should cut at midnight, got %v", today)
	}

	if got := Window7Days.Since(now); now.Sub(got) != 7*24*time.Hour {
		t.Fatalf("7d window cut wrong: %v", got)
	}
	if got := Window30Days.Since(now); now.Sub(got) != 30*24*time.Hour {
		t.Fatalf("30d window cut wrong: %v", got)
	}
}
