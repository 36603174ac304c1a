package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// Both backends must satisfy the same contract, so every test runs against
// each of them.
func stores(t *testing.T, capacity int) map[string]ports.HistoryRepository {
	t.Helper()
	sqlite, err := NewSQLiteStore(capacity)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })
	return map[string]ports.HistoryRepository{
		"memory": NewMemoryStore(capacity),
		"sqlite": sqlite,
	}
}

func entry(i int) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:            fmt.Sprintf("id-%d", i),
		Timestamp:     time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		Query:         fmt.Sprintf("What's %d + %d?", i, i),
		Result:        fmt.Sprintf("%d", i*2),
		OperationType: "add",
	}
}

func TestRecordEnforcesCapacity(t *testing.T) {
	for name, store := range stores(t, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				if err := store.Record(entry(i)); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}
			if got := store.Count(); got != 3 {
				t.Fatalf("Count() = %d, want 3", got)
			}
			recent, err := store.Recent(0)
			if err != nil {
				t.Fatalf("Recent() error = %v", err)
			}
			// Newest first, and only the last three insertions survive.
			wantQueries := []string{"What's 5 + 5?", "What's 4 + 4?", "What's 3 + 3?"}
			if len(recent) != len(wantQueries) {
				t.Fatalf("Recent() returned %d entries, want %d", len(recent), len(wantQueries))
			}
			for i, want := range wantQueries {
				if recent[i].Query != want {
					t.Errorf("recent[%d].Query = %q, want %q", i, recent[i].Query, want)
				}
			}
		})
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				if err := store.Record(entry(i)); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}
			recent, err := store.Recent(2)
			if err != nil {
				t.Fatalf("Recent() error = %v", err)
			}
			if len(recent) != 2 {
				t.Fatalf("Recent(2) returned %d entries", len(recent))
			}
			if recent[0].Query != "What's 5 + 5?" || recent[1].Query != "What's 4 + 4?" {
				t.Errorf("Recent(2) = [%q, %q], want newest two", recent[0].Query, recent[1].Query)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			if _, ok := store.Latest(); ok {
				t.Fatal("Latest() on empty store reported an entry")
			}
			if err := store.Record(entry(1)); err != nil {
				t.Fatalf("Record() error = %v", err)
			}
			if err := store.Record(entry(2)); err != nil {
				t.Fatalf("Record() error = %v", err)
			}
			latest, ok := store.Latest()
			if !ok {
				t.Fatal("Latest() found nothing")
			}
			if latest.Query != "What's 2 + 2?" {
				t.Errorf("Latest().Query = %q, want the newest entry", latest.Query)
			}
		})
	}
}

func TestClearEmptiesStore(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 3; i++ {
				if err := store.Record(entry(i)); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}
			if err := store.Clear(); err != nil {
				t.Fatalf("Clear() error = %v", err)
			}
			if got := store.Count(); got != 0 {
				t.Errorf("Count() after Clear() = %d, want 0", got)
			}
			recent, err := store.Recent(0)
			if err != nil {
				t.Fatalf("Recent() error = %v", err)
			}
			if len(recent) != 0 {
				t.Errorf("Recent() after Clear() returned %d entries", len(recent))
			}
		})
	}
}

func TestSearchMatchesQueryOrResult(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			records := []domain.HistoryEntry{
				{ID: "a", Timestamp: time.Now(), Query: "Square root of 144", Result: "12", OperationType: "sqrt"},
				{ID: "b", Timestamp: time.Now(), Query: "What's 6 times 2?", Result: "12", OperationType: "multiply"},
				{ID: "c", Timestamp: time.Now(), Query: "5 factorial", Result: "120", OperationType: "factorial"},
			}
			for _, rec := range records {
				if err := store.Record(rec); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}

			// Case-insensitive match against query text.
			hits, err := store.Search("SQUARE ROOT")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(hits) != 1 || hits[0].ID != "a" {
				t.Errorf("Search(query text) = %v, want entry a", hits)
			}

			// Match against result text, insertion order preserved.
			hits, err = store.Search("12")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(hits) != 3 {
				t.Fatalf("Search(\"12\") returned %d hits, want 3", len(hits))
			}
			if hits[0].ID != "a" || hits[1].ID != "b" || hits[2].ID != "c" {
				t.Errorf("Search() order = [%s %s %s], want insertion order", hits[0].ID, hits[1].ID, hits[2].ID)
			}

			hits, err = store.Search("nothing here")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(hits) != 0 {
				t.Errorf("Search(miss) returned %d hits", len(hits))
			}
		})
	}
}

func TestExportJSONWritesAllEntries(t *testing.T) {
	for name, store := range stores(t, 10) {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 3; i++ {
				if err := store.Record(entry(i)); err != nil {
					t.Fatalf("Record() error = %v", err)
				}
			}
			dest := filepath.Join(t.TempDir(), "history.jsonl")
			if err := store.ExportJSON(dest); err != nil {
				t.Fatalf("ExportJSON() error = %v", err)
			}
			file, err := os.Open(dest)
			if err != nil {
				t.Fatalf("open export: %v", err)
			}
			defer file.Close()
			lines := 0
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				lines++
			}
			if lines != 3 {
				t.Errorf("export contains %d lines, want 3", lines)
			}
		})
	}
}

func TestDefaultCapacityApplied(t *testing.T) {
	store := NewMemoryStore(0)
	for i := 0; i < DefaultCapacity+5; i++ {
		if err := store.Record(entry(i)); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}
	if got := store.Count(); got != DefaultCapacity {
		t.Errorf("Count() = %d, want %d", got, DefaultCapacity)
	}
}

// "120" contains "12", so the factorial entry is a substring hit too; the
// search test above depends on that. This guards the substring semantics.
func TestSearchUsesSubstringMatch(t *testing.T) {
	store := NewMemoryStore(10)
	if err := store.Record(domain.HistoryEntry{ID: "x", Query: "5 factorial", Result: "120"}); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	hits, err := store.Search("2")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("substring search returned %d hits, want 1", len(hits))
	}
}
