package game

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ScoreTracker counts passed obstacle pairs for one run, keeps the tier
// derived from that count and persists the best score across runs.
type ScoreTracker struct {
	table  config.DifficultyTable
	store  Store
	key    string
	lock   sync.Locker // Guards the best-score read-modify-write; may be nil
	logger *log.Logger

	current int
	best    int // Last best score seen in or written to the store
	tier    config.Tier
}

// NewScoreTracker creates a tracker at score 0 and the easiest tier.
// lock may be nil when the store has a single writer.
func NewScoreTracker(table config.DifficultyTable, store Store, key string, lock sync.Locker, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ScoreTracker{
		table:  table,
		store:  store,
		key:    key,
		lock:   lock,
		logger: logger,
		tier:   config.TierEasy,
	}
}

// Current returns the score of the run in progress.
func (t *ScoreTracker) Current() int {
	return t.current
}

// Tier returns the tier derived after the latest pass.
func (t *ScoreTracker) Tier() config.Tier {
	return t.tier
}

// Increment adds one passed pair.
func (t *ScoreTracker) Increment() {
	t.current++
}

// Pass credits one passed pair: the score goes up, the best score is
// persisted and the tier is re-derived, in that order.
func (t *ScoreTracker) Pass() {
	t.Increment()
	t.PersistBest()

	prev := t.tier
	t.tier = t.table.TierFor(t.current)
	if t.tier != prev {
		t.logger.Info("difficulty raised", "score", t.current, "tier", t.tier)
	}
}

// PersistBest stores the current score if there is no usable best score
// yet or the current score beats it, and returns the best score after the
// write. A missing, corrupt or negative stored value counts as no best yet.
// A read error does not: the cached best is kept and nothing is written,
// so the stored value never goes down.
func (t *ScoreTracker) PersistBest() int {
	if t.lock != nil {
		t.lock.Lock()
		defer t.lock.Unlock()
	}

	best, found, err := t.readBest()
	if err != nil {
		t.logger.Warn("cannot read best score", "key", t.key, "err", err)
		return t.best
	}
	t.best = best
	if found && t.current <= best {
		return best
	}

	if err := t.store.Set(t.key, strconv.Itoa(t.current)); err != nil {
		t.logger.Warn("cannot save best score", "key", t.key, "err", err)
		return t.best
	}
	t.best = t.current
	return t.best
}

// LoadBest refreshes the best score from the store and returns it.
// It returns 0 when no usable value is stored.
func (t *ScoreTracker) LoadBest() int {
	best, _, err := t.readBest()
	if err != nil {
		t.logger.Warn("cannot read best score", "key", t.key, "err", err)
		return t.best
	}
	t.best = best
	return best
}

// Best returns the best score as of the last load or write, without
// touching the store.
func (t *ScoreTracker) Best() int {
	return t.best
}

// Reset starts a new run.
func (t *ScoreTracker) Reset() {
	t.current = 0
	t.tier = config.TierEasy
}

// readBest treats a missing or unparseable value as no best score.
// Only store failures are returned as errors.
func (t *ScoreTracker) readBest() (int, bool, error) {
	raw, found, err := t.store.Get(t.key)
	if err != nil {
		return 0, false, err
	}
	if !found {
		return 0, false, nil
	}

	best, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || best < 0 {
		t.logger.Warn("ignoring corrupt best score", "key", t.key, "value", raw)
		return 0, false, nil
	}
	return best, true, nil
}

func scoreText(score int) string {
	return "Score: " + strconv.Itoa(score)
}

func bestText(best int) string {
	return "Best Score: " + strconv.Itoa(best)
}

func countdownText(n int) string {
	return "Fly in: " + strconv.Itoa(n)
}
