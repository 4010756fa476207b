package sqlite

import (
	"context"
	"errors"
	"testing"

	"recall/internal/store"
)

func TestLogRunHistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	if _, err := client.LogRun(ctx, store.RunInput{
		Directive: "scrape",
		Status:    store.StatusSuccess,
		Notes:     "50 items",
	}); err != nil {
		t.Fatalf("log success run: %v", err)
	}
	if _, err := client.LogRun(ctx, store.RunInput{
		Directive:    "scrape",
		Status:       store.StatusFailed,
		ErrorMessage: "timeout",
	}); err != nil {
		t.Fatalf("log failed run: %v", err)
	}

	runs, err := client.GetRuns(ctx, "scrape", "", 5)
	if err != nil {
		t.Fatalf("get runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Status != store.StatusFailed || runs[0].ErrorMessage != "timeout" {
		t.Fatalf("expected the failed run first, got %+v", runs[0])
	}
	if runs[1].Status != store.StatusSuccess || runs[1].Notes != "50 items" {
		t.Fatalf("expected the success run second, got %+v", runs[1])
	}
}

func TestLogRunRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	_, err := client.LogRun(ctx, store.RunInput{Directive: "scrape", Status: "exploded"})
	if !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	runs, err := client.GetRuns(ctx, "scrape", "", 5)
	if err != nil {
		t.Fatalf("get runs: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("rejected run was recorded: %+v", runs)
	}
}

func TestLogRunEndedAt(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	if _, err := client.LogRun(ctx, store.RunInput{Directive: "ingest", Status: store.StatusStarted}); err != nil {
		t.Fatalf("log started run: %v", err)
	}
	if _, err := client.LogRun(ctx, store.RunInput{Directive: "ingest", Status: store.StatusPartial}); err != nil {
		t.Fatalf("log partial run: %v", err)
	}

	runs, err := client.GetRuns(ctx, "ingest", "", 10)
	if err != nil {
		t.Fatalf("get runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Most recent first: the partial run is terminal and stamped.
	if runs[0].EndedAt == nil {
		t.Fatal("terminal run missing ended_at")
	}
	if runs[1].EndedAt != nil {
		t.Fatalf("started run should have no ended_at, got %v", runs[1].EndedAt)
	}
}

func TestGetRunsLimitAndStatusFilter(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	statuses := []store.RunStatus{
		store.StatusSuccess, store.StatusFailed, store.StatusSuccess,
		store.StatusPartial, store.StatusSuccess,
	}
	for _, s := range statuses {
		if _, err := client.LogRun(ctx, store.RunInput{Directive: "sync", Status: s}); err != nil {
			t.Fatalf("log run: %v", err)
		}
	}

	limited, err := client.GetRuns(ctx, "sync", "", 3)
	if err != nil {
		t.Fatalf("get runs limited: %v", err)
	}
	if len(limited) != 3 {
		t.Fatalf("limit not honored: got %d runs", len(limited))
	}

	filtered, err := client.GetRuns(ctx, "sync", store.StatusSuccess, 10)
	if err != nil {
		t.Fatalf("get runs filtered: %v", err)
	}
	if len(filtered) != 3 {
		t.Fatalf("expected 3 success runs, got %d", len(filtered))
	}
	for _, run := range filtered {
		if run.Status != store.StatusSuccess {
			t.Fatalf("status filter leaked %q", run.Status)
		}
	}

	if _, err := client.GetRuns(ctx, "sync", "bogus", 10); !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad filter, got %v", err)
	}
	if _, err := client.GetRuns(ctx, "sync", "", 0); !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation for non-positive limit, got %v", err)
	}
}

func TestGetRunsAcrossDirectives(t *testing.T) {
	ctx := context.Background()
	client := newTestStore(t)

	for _, d := range []string{"scrape", "ingest", "scrape"} {
		if _, err := client.LogRun(ctx, store.RunInput{Directive: d, Status: store.StatusSuccess}); err != nil {
			t.Fatalf("log run: %v", err)
		}
	}

	all, err := client.GetRuns(ctx, "", "", 10)
	if err != nil {
		t.Fatalf("get all runs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs across directives, got %d", len(all))
	}

	none, err := client.GetRuns(ctx, "unknown", "", 10)
	if err != nil {
		t.Fatalf("get runs for unknown directive: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty slice, got %+v", none)
	}
}
