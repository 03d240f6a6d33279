package fuzzy

import "github.com/pkg/errors"

// Algorithm selects which alignment engine a MatchConfig dispatches to.
type Algorithm int

const (
	// AlgorithmEditDistance is the default: bounded prefix edit distance
	// with Damerau transposition.
	AlgorithmEditDistance Algorithm = iota
	// AlgorithmSmithWaterman is the local-alignment, bonus-driven engine.
	AlgorithmSmithWaterman
)

// EditDistanceConfig tunes the EditDistanceEngine.
type EditDistanceConfig struct {
	// MaxEditDistance bounds the prefix edit distance considered (k in §4.2).
	MaxEditDistance int
	// PrefixWeight scales the fast-prefix score formula (§4.1 step 4, §4.4).
	PrefixWeight float64
	// SubstringWeight scales the fast-substring score formula (§4.4).
	SubstringWeight float64
}

// DefaultEditDistanceConfig returns the spec's default EditDistanceConfig:
// MaxEditDistance=2, PrefixWeight=1.0, SubstringWeight=1.0.
func DefaultEditDistanceConfig() EditDistanceConfig {
	return EditDistanceConfig{MaxEditDistance: 2, PrefixWeight: 1.0, SubstringWeight: 1.0}
}

// validate panics on a programmer error, per spec §7: preconditions are
// enforced by construction, not at call time.
func (c EditDistanceConfig) validate() {
	if c.MaxEditDistance < 0 {
		panic(errors.Errorf("fuzzy: EditDistanceConfig.MaxEditDistance must be >= 0, got %d", c.MaxEditDistance))
	}
	if c.PrefixWeight <= 0 {
		panic(errors.Errorf("fuzzy: EditDistanceConfig.PrefixWeight must be > 0, got %v", c.PrefixWeight))
	}
	if c.SubstringWeight <= 0 {
		panic(errors.Errorf("fuzzy: EditDistanceConfig.SubstringWeight must be > 0, got %v", c.SubstringWeight))
	}
}

// SmithWatermanConfig tunes the SmithWatermanEngine. Field names and
// defaults follow spec §3 directly; the constants mirror the shape of
// algo.go's scoreMatch/scoreGapStart/scoreGapExtention/bonus* constants,
// generalized from compile-time constants into runtime-tunable fields.
type SmithWatermanConfig struct {
	MatchScore        int
	MismatchPenalty   int
	GapStartPenalty   int
	GapExtendPenalty  int
	SplitSpaces       bool
	BonusConsecutive  int
	BonusWordStart    int
	BonusCaseMatch    int
}

// DefaultSmithWatermanConfig returns the spec's defaults.
func DefaultSmithWatermanConfig() SmithWatermanConfig {
	return SmithWatermanConfig{
		MatchScore:       16,
		MismatchPenalty:  4,
		GapStartPenalty:  3,
		GapExtendPenalty: 1,
		SplitSpaces:      true,
		BonusConsecutive: 4,
		BonusWordStart:   8,
		BonusCaseMatch:   2,
	}
}

func (c SmithWatermanConfig) validate() {
	if c.MatchScore < 0 {
		panic(errors.Errorf("fuzzy: SmithWatermanConfig.MatchScore must be >= 0, got %d", c.MatchScore))
	}
	if c.MismatchPenalty < 0 {
		panic(errors.Errorf("fuzzy: SmithWatermanConfig.MismatchPenalty must be >= 0, got %d", c.MismatchPenalty))
	}
	if c.GapStartPenalty < 0 {
		panic(errors.Errorf("fuzzy: SmithWatermanConfig.GapStartPenalty must be >= 0, got %d", c.GapStartPenalty))
	}
	if c.GapExtendPenalty < 0 {
		panic(errors.Errorf("fuzzy: SmithWatermanConfig.GapExtendPenalty must be >= 0, got %d", c.GapExtendPenalty))
	}
	if c.BonusConsecutive < 0 || c.BonusWordStart < 0 || c.BonusCaseMatch < 0 {
		panic(errors.New("fuzzy: SmithWatermanConfig bonus fields must be >= 0"))
	}
}

// maxBonus returns the theoretical maximum per-character score: MatchScore
// plus every bonus. It equals the per-character term of the Scorer's
// alignment normalization (§4.4), which runSmithWaterman supplies to
// scoreAlignment as MatchScore and the bonus sum separately.
func (c SmithWatermanConfig) maxBonus() int {
	return c.MatchScore + c.BonusConsecutive + c.BonusWordStart + c.BonusCaseMatch
}

// MatchConfig selects the algorithm and the minimum-score gate.
type MatchConfig struct {
	// MinScore gates emitted matches: a call returns nothing if the
	// classified score falls below MinScore.
	MinScore float64
	// Algorithm selects which engine EditDistance or SmithWaterman fields
	// below apply.
	Algorithm Algorithm

	EditDistance  EditDistanceConfig
	SmithWaterman SmithWatermanConfig
}

// DefaultMatchConfig returns MinScore=0, AlgorithmEditDistance with
// DefaultEditDistanceConfig.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		MinScore:      0.0,
		Algorithm:     AlgorithmEditDistance,
		EditDistance:  DefaultEditDistanceConfig(),
		SmithWaterman: DefaultSmithWatermanConfig(),
	}
}

// NewMatchConfig validates cfg and panics on a programmer error (spec §7).
// The Prefilter's fast-prefix and fast-substring checks (§4.1) run
// regardless of the selected Algorithm, so PrefixWeight/SubstringWeight
// always default to 1.0 when left unset, even under AlgorithmSmithWaterman.
func NewMatchConfig(cfg MatchConfig) MatchConfig {
	if cfg.MinScore < 0 || cfg.MinScore > 1 {
		panic(errors.Errorf("fuzzy: MatchConfig.MinScore must be in [0,1], got %v", cfg.MinScore))
	}
	if cfg.EditDistance.PrefixWeight == 0 {
		cfg.EditDistance.PrefixWeight = 1.0
	}
	if cfg.EditDistance.SubstringWeight == 0 {
		cfg.EditDistance.SubstringWeight = 1.0
	}
	switch cfg.Algorithm {
	case AlgorithmEditDistance:
		cfg.EditDistance.validate()
	case AlgorithmSmithWaterman:
		cfg.SmithWaterman.validate()
	default:
		panic(errors.Errorf("fuzzy: MatchConfig.Algorithm %d is not a known algorithm", cfg.Algorithm))
	}
	return cfg
}
