package fuzzy

// runSmithWaterman implements the SmithWatermanEngine of spec §4.3: local
// alignment with affine gap penalties and position-dependent bonuses,
// directly grounded on FuzzyMatchV2 in the teacher's algo.go (same bonus
// categories, same two-row rolling DP, generalized from compile-time
// constants to a runtime SmithWatermanConfig). Unlike the EditDistanceEngine,
// bonuses are folded directly into H as each cell is computed, so the raw
// score already reflects every position bonus; no backtrace is needed to
// recover it.
func runSmithWaterman(query *PreparedQuery, buf *ScoringBuffer, originalCandidate []byte, cfg SmithWatermanConfig) (ScoredMatch, bool) {
	if cfg.SplitSpaces && containsSpace(query.Folded()) {
		return swSplitSpaces(query, buf, originalCandidate, cfg)
	}
	raw, ok := swAlign(query.Folded(), query.Original(), buf, originalCandidate, cfg)
	if !ok {
		return ScoredMatch{}, false
	}
	return scoreAlignment(raw, query.Len(), cfg.BonusConsecutive+cfg.BonusWordStart+cfg.BonusCaseMatch, cfg.MatchScore), true
}

func containsSpace(b []byte) bool {
	for _, c := range b {
		if c == ' ' {
			return true
		}
	}
	return false
}

// swSplitSpaces implements §4.3's space-splitting mode: the query is split
// on runs of space bytes into independent sub-queries, each aligned against
// the full candidate; the combined raw score is the sum of sub-query raw
// scores, and a zero-scoring sub-query disqualifies the whole candidate.
func swSplitSpaces(query *PreparedQuery, buf *ScoringBuffer, originalCandidate []byte, cfg SmithWatermanConfig) (ScoredMatch, bool) {
	folded := query.Folded()
	original := query.Original()

	total := 0
	subCount := 0
	start := 0
	for i := 0; i <= len(folded); i++ {
		if i == len(folded) || folded[i] == ' ' {
			if i > start {
				raw, ok := swAlign(folded[start:i], original[start:i], buf, originalCandidate, cfg)
				if !ok || raw == 0 {
					return ScoredMatch{}, false
				}
				total += raw
				subCount++
			}
			start = i + 1
		}
	}
	if subCount == 0 {
		return ScoredMatch{}, false
	}
	return scoreAlignment(total, query.Len(), cfg.BonusConsecutive+cfg.BonusWordStart+cfg.BonusCaseMatch, cfg.MatchScore), true
}

// swAlign runs the local-alignment DP for a single (sub-)query against the
// full candidate and returns its raw Smith-Waterman score.
func swAlign(queryFolded, queryOriginal []byte, buf *ScoringBuffer, originalCandidate []byte, cfg SmithWatermanConfig) (int, bool) {
	q := len(queryFolded)
	candidate := buf.candidateFolded
	c := len(candidate)
	if q == 0 {
		return 0, true
	}
	if c == 0 {
		return 0, false
	}

	Hprev := buf.swRowPrevH[:c+1]
	Hcurr := buf.swRowCurrH[:c+1]
	Fprev := buf.swRowPrevF[:c+1]
	Fcurr := buf.swRowCurrF[:c+1]
	Cprev := buf.swRowPrevC[:c+1]
	Ccurr := buf.swRowCurrC[:c+1]

	for j := 0; j <= c; j++ {
		Hprev[j] = 0
		Fprev[j] = 0
		Cprev[j] = 0
	}

	maxScore := 0
	gapStart, gapExtend := int32(cfg.GapStartPenalty), int32(cfg.GapExtendPenalty)
	matchScore, mismatch := int32(cfg.MatchScore), int32(cfg.MismatchPenalty)

	for i := 1; i <= q; i++ {
		Hcurr[0] = 0
		Fcurr[0] = 0
		Ccurr[0] = 0
		var e int32 // best gap-in-query score ending at current column, rolling left to right
		for j := 1; j <= c; j++ {
			var f int32
			if Hprev[j]-gapStart > Fprev[j]-gapExtend {
				f = Hprev[j] - gapStart
			} else {
				f = Fprev[j] - gapExtend
			}
			if f < 0 {
				f = 0
			}
			Fcurr[j] = f

			var eCand int32
			if Hcurr[j-1]-gapStart > e-gapExtend {
				eCand = Hcurr[j-1] - gapStart
			} else {
				eCand = e - gapExtend
			}
			if eCand < 0 {
				eCand = 0
			}
			e = eCand

			var diag int32 = -1 << 30
			var consec int16
			if queryFolded[i-1] == candidate[j-1] {
				bonus := swBonus(queryOriginal, originalCandidate, candidate, i-1, j-1, cfg)
				if Cprev[j-1] > 0 {
					consec = Cprev[j-1] + 1
					bonus += int16(cfg.BonusConsecutive)
				} else {
					consec = 1
				}
				diag = Hprev[j-1] + matchScore + int32(bonus)
			} else {
				diag = Hprev[j-1] - mismatch
				consec = 0
			}

			h := diag
			if e > h {
				h = e
			}
			if f > h {
				h = f
			}
			if h < 0 {
				h = 0
			}
			Hcurr[j] = h
			Ccurr[j] = consec

			if h > int32(maxScore) {
				maxScore = int(h)
			}
		}
		Hprev, Hcurr = Hcurr, Hprev
		Fprev, Fcurr = Fcurr, Fprev
		Cprev, Ccurr = Ccurr, Cprev
	}

	if maxScore == 0 {
		return 0, false
	}
	return maxScore, true
}

// swBonus computes B(i,j) from §4.3: consecutive-run, word-start and
// case-match bonuses, applied only on a diagonal match step.
func swBonus(queryOriginal, originalCandidate, candidateFolded []byte, i, j int, cfg SmithWatermanConfig) int16 {
	var bonus int16
	if isWordStart(originalCandidate, candidateFolded, j) {
		bonus += int16(cfg.BonusWordStart)
	}
	if originalCandidate[j] == queryOriginal[i] {
		bonus += int16(cfg.BonusCaseMatch)
	}
	return bonus
}
