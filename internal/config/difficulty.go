package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tier is a named difficulty level.
type Tier int

const (
	TierEasy Tier = iota
	TierNormal
	TierHard
)

// Tiers lists every tier from easiest to hardest.
var Tiers = []Tier{TierEasy, TierNormal, TierHard}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier converts a tier name to a Tier.
func ParseTier(name string) (Tier, error) {
	switch name {
	case "easy":
		return TierEasy, nil
	case "normal":
		return TierNormal, nil
	case "hard":
		return TierHard, nil
	default:
		return TierEasy, fmt.Errorf("config: unknown tier %q", name)
	}
}

// Range is an inclusive integer range written as [min, max] in YAML.
type Range struct {
	Min int
	Max int
}

// UnmarshalYAML decodes a two-element sequence.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("range: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("range: expected [min, max], got %d values", len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes the range as [min, max].
func (r Range) MarshalYAML() (any, error) {
	return []int{r.Min, r.Max}, nil
}

// TierRanges are the two ranges governing obstacle geometry for one tier.
type TierRanges struct {
	HorizontalGap Range `yaml:"horizontal_gap"` // Distance between consecutive pairs
	VerticalGap   Range `yaml:"vertical_gap"`   // Opening between upper and lower obstacle
}

// DifficultyTable maps tiers to obstacle ranges and scores to tiers.
type DifficultyTable struct {
	NormalAt int        `yaml:"normal_at"` // Score at which normal starts
	HardAt   int        `yaml:"hard_at"`   // Score at which hard starts
	Easy     TierRanges `yaml:"easy"`
	Normal   TierRanges `yaml:"normal"`
	Hard     TierRanges `yaml:"hard"`
}

// Ranges returns the obstacle ranges for a tier.
func (d DifficultyTable) Ranges(t Tier) TierRanges {
	switch t {
	case TierNormal:
		return d.Normal
	case TierHard:
		return d.Hard
	default:
		return d.Easy
	}
}

// TierFor derives the tier from a cumulative score.
// The result never goes down as the score grows.
func (d DifficultyTable) TierFor(score int) Tier {
	switch {
	case score >= d.HardAt:
		return TierHard
	case score >= d.NormalAt:
		return TierNormal
	default:
		return TierEasy
	}
}
