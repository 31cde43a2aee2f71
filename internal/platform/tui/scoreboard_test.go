package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "flappy.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLoadScores(t *testing.T) {
	tests := []struct {
		name   string
		stored string // empty means no kv entry
		runs   []int
		want   int
	}{
		{"kv best wins", "15", []int{4, 9}, 15},
		{"no kv falls back to history", "", []int{4, 9, 2}, 9},
		{"corrupt kv falls back to history", "abc", []int{6}, 6},
		{"nothing recorded", "", nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			if tc.stored != "" {
				if err := store.Set("flappyScore", tc.stored); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
			}
			for _, score := range tc.runs {
				if _, err := store.SaveScore(GameID, score); err != nil {
					t.Fatalf("SaveScore() error = %v", err)
				}
			}

			scores, err := LoadScores(store, "flappyScore")
			if err != nil {
				t.Fatalf("LoadScores() error = %v", err)
			}
			if scores.Best != tc.want {
				t.Errorf("Best = %d, want %d", scores.Best, tc.want)
			}
			if len(scores.Entries) != len(tc.runs) {
				t.Errorf("Entries = %d, want %d", len(scores.Entries), len(tc.runs))
			}
		})
	}
}
