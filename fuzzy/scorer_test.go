package fuzzy

import "testing"

func TestScoreExactIsOne(t *testing.T) {
	if m := scoreExact(); m.Score != 1.0 || m.Kind != KindExact {
		t.Fatalf("got %+v, want exact 1.0", m)
	}
}

func TestScorePrefixRange(t *testing.T) {
	m := scorePrefix(3, 10, 1.0)
	if m.Kind != KindPrefix {
		t.Fatalf("Kind = %v, want prefix", m.Kind)
	}
	if m.Score < 0.9 || m.Score > 1.0 {
		t.Fatalf("Score = %v, want within [0.9, 1.0]", m.Score)
	}
}

func TestScorePrefixLongerQueryScoresHigher(t *testing.T) {
	short := scorePrefix(3, 20, 1.0)
	long := scorePrefix(15, 20, 1.0)
	if long.Score <= short.Score {
		t.Fatalf("longer matched prefix (%v) should score higher than shorter (%v)", long.Score, short.Score)
	}
}

func TestScoreSubstringBelowPrefixFloor(t *testing.T) {
	m := scoreSubstring(3, 20, 5, false, 1.0)
	if m.Kind != KindSubstring {
		t.Fatalf("Kind = %v, want substring", m.Kind)
	}
	if m.Score >= 0.9 {
		t.Fatalf("Score = %v, substring must stay below the prefix floor of 0.9", m.Score)
	}
}

func TestScoreSubstringWordStartBonus(t *testing.T) {
	plain := scoreSubstring(3, 20, 5, false, 1.0)
	bonus := scoreSubstring(3, 20, 5, true, 1.0)
	if bonus.Score <= plain.Score {
		t.Fatalf("word-start bonus (%v) should exceed plain score (%v)", bonus.Score, plain.Score)
	}
}

func TestScoreSubstringPositionalPenalty(t *testing.T) {
	early := scoreSubstring(3, 20, 0, false, 1.0)
	late := scoreSubstring(3, 20, 15, false, 1.0)
	if early.Score <= late.Score {
		t.Fatalf("earlier match (%v) should score higher than later match (%v)", early.Score, late.Score)
	}
}

func TestScoreAcronymFullFixed(t *testing.T) {
	m := scoreAcronymFull()
	if m.Score != 0.85 || m.Kind != KindAcronym {
		t.Fatalf("got %+v, want acronym 0.85", m)
	}
}

func TestScoreAcronymPartialBelowFull(t *testing.T) {
	fuzzy := ScoredMatch{Score: 0.5, Kind: KindFuzzy}
	m := scoreAcronymPartial(fuzzy, 1, 3)
	if m.Kind != KindAcronym {
		t.Fatalf("Kind = %v, want acronym", m.Kind)
	}
	if m.Score >= 0.85 {
		t.Fatalf("partial acronym score %v should stay below the full-acronym score 0.85", m.Score)
	}
}

func TestScoreAlignmentNormalization(t *testing.T) {
	cfg := DefaultSmithWatermanConfig()
	maxBonus := cfg.BonusConsecutive + cfg.BonusWordStart + cfg.BonusCaseMatch
	perfect := cfg.MatchScore + maxBonus
	m := scoreAlignment(3*perfect, 3, maxBonus, cfg.MatchScore)
	if m.Kind != KindAlignment {
		t.Fatalf("Kind = %v, want alignment", m.Kind)
	}
	if m.Score > 0.95 {
		t.Fatalf("Score = %v, alignment score must be clamped to 0.95", m.Score)
	}
}

func TestScoreFuzzyDecreasesWithDistance(t *testing.T) {
	close := scoreFuzzy(1, 7, 7, 1, 0)
	far := scoreFuzzy(3, 7, 7, 1, 0)
	if close.Score <= far.Score {
		t.Fatalf("closer match (%v) should score higher than farther match (%v)", close.Score, far.Score)
	}
	if close.Kind != KindFuzzy || far.Kind != KindFuzzy {
		t.Fatalf("expected both results classified fuzzy")
	}
}

func TestScoreFuzzyClampedBelow085(t *testing.T) {
	m := scoreFuzzy(0, 1, 1, 0, 100)
	if m.Score > 0.85 {
		t.Fatalf("Score = %v, fuzzy must be clamped to <= 0.85", m.Score)
	}
}
