package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/random"
)

// Pair is an upper and lower obstacle sharing one horizontal position.
// The opening between them spans [GapTop, GapBottom].
type Pair struct {
	Upper, Lower core.Entity
	X            float64
	GapTop       float64
	GapBottom    float64
}

// VerticalGap returns the height of the opening.
func (p Pair) VerticalGap() float64 {
	return p.GapBottom - p.GapTop
}

// Placer computes new geometry for a pair. Its sampler is the only source
// of randomness, so a seeded sampler makes every layout reproducible.
type Placer struct {
	Sampler     random.Sampler
	FieldHeight int
	Margin      int // Minimum distance between the opening and the field edges
}

// Place returns pair moved to a new position after rightmostX, with an
// opening drawn from the tier ranges. Entities are kept.
//
// The caller guarantees VerticalGap.Max < FieldHeight - 2*Margin, which
// config validation enforces, so the gap-top range is never empty.
func (pl Placer) Place(pair Pair, rightmostX float64, r config.TierRanges) Pair {
	verticalGap := pl.Sampler.Between(r.VerticalGap.Min, r.VerticalGap.Max)
	gapTop := pl.Sampler.Between(pl.Margin, pl.FieldHeight-pl.Margin-verticalGap)
	horizontalGap := pl.Sampler.Between(r.HorizontalGap.Min, r.HorizontalGap.Max)

	pair.X = rightmostX + float64(horizontalGap)
	pair.GapTop = float64(gapTop)
	pair.GapBottom = pair.GapTop + float64(verticalGap)
	return pair
}
