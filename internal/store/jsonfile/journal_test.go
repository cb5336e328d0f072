package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/popwire/internal/core/journal"
	"github.com/hay-kot/popwire/pkg/popup"
)

func TestJournalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 0)

		res := popup.Dismissed(popup.DismissEsc)
		entry := journal.Entry{
			ID:        "p-1",
			Preset:    "confirm",
			Surface:   "main",
			Action:    "dismiss",
			Result:    &res,
			Timestamp: time.Now(),
		}

		if err := store.Save(ctx, entry); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, err := store.Get(ctx, "p-1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}

		if got.Preset != "confirm" || got.Result == nil || got.Result.Dismiss != popup.DismissEsc {
			t.Errorf("got %+v, want %+v", got, entry)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 0)

		_, err := store.Get(ctx, "nonexistent")
		if !errors.Is(err, journal.ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 0)

		for _, id := range []string{"first", "second"} {
			if err := store.Save(ctx, journal.Entry{ID: id}); err != nil {
				t.Fatalf("Save %s: %v", id, err)
			}
		}

		entries, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 2 || entries[0].ID != "second" {
			t.Errorf("got %+v, want second then first", entries)
		}
	})

	t.Run("prunes past max entries", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 2)

		for _, id := range []string{"a", "b", "c"} {
			if err := store.Save(ctx, journal.Entry{ID: id}); err != nil {
				t.Fatalf("Save %s: %v", id, err)
			}
		}

		entries, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 2 || entries[0].ID != "c" || entries[1].ID != "b" {
			t.Errorf("got %+v, want c, b", entries)
		}
	})

	t.Run("last failed", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 0)

		if _, err := store.LastFailed(ctx); !errors.Is(err, journal.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}

		ok := popup.Confirmed(true)
		for _, e := range []journal.Entry{
			{ID: "old-fail", Vetoed: true},
			{ID: "new-fail", Rejected: "Invalid URL"},
			{ID: "ok", Result: &ok},
		} {
			if err := store.Save(ctx, e); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}

		got, err := store.LastFailed(ctx)
		if err != nil {
			t.Fatalf("LastFailed: %v", err)
		}
		if got.ID != "new-fail" {
			t.Errorf("got %s, want new-fail", got.ID)
		}
	})

	t.Run("clear", func(t *testing.T) {
		store := NewJournalStore(filepath.Join(t.TempDir(), "journal.json"), 0)

		if err := store.Save(ctx, journal.Entry{ID: "x"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := store.Clear(ctx); err != nil {
			t.Fatalf("Clear: %v", err)
		}

		entries, err := store.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("got %d entries, want 0", len(entries))
		}
	})

	t.Run("corrupted file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatal(err)
		}

		store := NewJournalStore(path, 0)
		if _, err := store.List(ctx); err == nil {
			t.Error("expected error for corrupted journal")
		}
	})
}
