package fuzzy

import "bytes"

// edInf is a sentinel "unreachable" DP cost, large enough that adding a
// handful of unit costs to it never overflows int32 and never competes with
// a real cost.
const edInf int32 = 1 << 20

// runEditDistance implements the EditDistanceEngine of spec §4.2: bounded
// prefix edit distance with Damerau transposition, the one-character fast
// path, and the acronym path. originalCandidate is the un-folded candidate
// bytes (needed for camelCase word-start detection); buf.candidateFolded
// must already hold the folded candidate bytes of the same length.
func runEditDistance(query *PreparedQuery, buf *ScoringBuffer, originalCandidate []byte, cfg EditDistanceConfig) (ScoredMatch, bool) {
	q := query.Len()
	candidate := buf.candidateFolded
	queryFolded := query.Folded()

	if q == 1 {
		return edOneChar(queryFolded[0], candidate, originalCandidate)
	}

	buf.wordInitials = appendWordStarts(buf.wordInitials, originalCandidate, candidate)
	wordCount := len(buf.wordInitials)

	acronymMatched, acronymPartial := 0, false
	if q <= wordCount {
		matched := 0
		full := true
		for i := 0; i < q; i++ {
			if candidate[buf.wordInitials[i]] == queryFolded[i] {
				matched++
			} else {
				full = false
			}
		}
		if full {
			return scoreAcronymFull(), true
		}
		if matched*2 >= q {
			acronymMatched = matched
			acronymPartial = true
		}
	}

	fuzzy, ok := edRunDP(query, buf, originalCandidate, cfg)
	if !ok {
		return ScoredMatch{}, false
	}
	if acronymPartial {
		return scoreAcronymPartial(fuzzy, acronymMatched, q), true
	}
	return fuzzy, true
}

// edOneChar is the one-character fast path (§4.2, §9: "Implementers should
// replicate it literally"): the DP is near-useless for q=1, since any
// candidate containing the character matches with d=0.
func edOneChar(ch byte, candidate, originalCandidate []byte) (ScoredMatch, bool) {
	pos := bytes.IndexByte(candidate, ch)
	if pos < 0 {
		return ScoredMatch{}, false
	}
	c := len(candidate)
	score := 1 - 0.15*float64(pos)/float64(c)
	if isWordStart(originalCandidate, candidate, pos) {
		score += 0.1
	}
	return ScoredMatch{Score: clamp(score, 0, 0.85), Kind: KindFuzzy}, true
}

// edRunDP computes the bounded prefix edit distance via three rolling rows
// over candidate positions j, plus a retained backtrace matrix (DESIGN.md:
// "the same reason FuzzyMatchV2 retains a full H/C matrix").
func edRunDP(query *PreparedQuery, buf *ScoringBuffer, originalCandidate []byte, cfg EditDistanceConfig) (ScoredMatch, bool) {
	q := query.Len()
	candidate := buf.candidateFolded
	c := len(candidate)
	k := cfg.MaxEditDistance
	queryFolded := query.Folded()

	row0 := buf.edRowPrev2[:q+1] // dp[*][j-2]
	row1 := buf.edRowPrev[:q+1]  // dp[*][j-1]
	row2 := buf.edRowCurr[:q+1]  // dp[*][j]
	W := buf.edTraceW
	trace := buf.edTrace

	for i := range row0 {
		row0[i] = edInf
	}
	lo0, hi0 := band(0, q, k)
	for i := range row1 {
		row1[i] = edInf
	}
	for i := lo0; i <= hi0; i++ {
		row1[i] = int32(i)
		if i == 0 {
			trace[0*W+0] = edOpNone
		} else {
			trace[0*W+i] = edOpDelete
		}
	}

	bestCost, bestJ, found := edInf, -1, false
	if q >= lo0 && q <= hi0 {
		bestCost, bestJ, found = row1[q], 0, true
	}

	for j := 1; j <= c; j++ {
		lo, hi := band(j, q, k)
		for i := range row2 {
			row2[i] = edInf
		}
		for i := lo; i <= hi; i++ {
			if i == 0 {
				row2[0] = row1[0] + 1
				trace[j*W+0] = edOpInsert
				continue
			}
			match := queryFolded[i-1] == candidate[j-1]

			var best int32 = edInf
			var op edOp

			if match && row1[i-1] < edInf {
				cand := row1[i-1]
				if cand < best {
					best, op = cand, edOpMatch
				}
			}
			if !match && row1[i-1] < edInf {
				cand := row1[i-1] + 1
				if cand < best {
					best, op = cand, edOpSubstitute
				}
			}
			if i >= 2 && j >= 2 && row0[i-2] < edInf &&
				queryFolded[i-1] == candidate[j-2] && queryFolded[i-2] == candidate[j-1] {
				cand := row0[i-2] + 1
				if cand < best {
					best, op = cand, edOpTranspose
				}
			}
			if row2[i-1] < edInf {
				cand := row2[i-1] + 1
				if cand < best {
					best, op = cand, edOpDelete
				}
			}
			if row1[i] < edInf {
				cand := row1[i] + 1
				if cand < best {
					best, op = cand, edOpInsert
				}
			}
			row2[i] = best
			trace[j*W+i] = op
		}

		if q >= lo && q <= hi && row2[q] < edInf {
			if !found || row2[q] < bestCost {
				bestCost, bestJ, found = row2[q], j, true
			}
		}

		if rowMin(row2, lo, hi) > int32(k) {
			// Per §4.2: once the cheapest achievable cost within the band
			// exceeds the budget, no later column can recover it, so the scan
			// stops; a dp[q][j] already recorded within budget still stands.
			break
		}

		row0, row1, row2 = row1, row2, row0
	}

	if !found || bestCost > int32(k) {
		return ScoredMatch{}, false
	}

	_, gapRuns, bonusSum := edBacktrace(buf, query, originalCandidate, bestJ)
	return scoreFuzzy(int(bestCost), q, c, gapRuns, bonusSum), true
}

// band returns the valid query-index window for candidate position j, per
// §4.2: i in [max(0, j-k), min(q, j+k)].
func band(j, q, k int) (int, int) {
	lo := j - k
	if lo < 0 {
		lo = 0
	}
	hi := j + k
	if hi > q {
		hi = q
	}
	return lo, hi
}

func rowMin(row []int32, lo, hi int) int32 {
	m := edInf
	for i := lo; i <= hi; i++ {
		if row[i] < m {
			m = row[i]
		}
	}
	return m
}

// edBacktrace walks the retained trace matrix from (q, bestJ) back to the
// start, recovering matched candidate positions, gap-run count, and bonus
// sum, per §4.2's "walk back... choosing... the predecessor with minimum
// cost".
func edBacktrace(buf *ScoringBuffer, query *PreparedQuery, originalCandidate []byte, bestJ int) ([]int, int, int) {
	q := query.Len()
	W := buf.edTraceW
	trace := buf.edTrace
	candidate := buf.candidateFolded

	positions := buf.matchPositions[:0]
	i, j := q, bestJ
	gapRuns := 0
	inGap := false
	for i > 0 {
		op := trace[j*W+i]
		switch op {
		case edOpMatch:
			positions = append(positions, j-1)
			i--
			j--
			inGap = false
		case edOpTranspose:
			positions = append(positions, j-1, j-2)
			i -= 2
			j -= 2
			inGap = false
		case edOpSubstitute:
			i--
			j--
			if !inGap {
				gapRuns++
				inGap = true
			}
		case edOpDelete:
			i--
			if !inGap {
				gapRuns++
				inGap = true
			}
		case edOpInsert:
			j--
			if !inGap {
				gapRuns++
				inGap = true
			}
		default:
			i = 0
		}
		if j < 0 {
			break
		}
	}

	// positions were collected walking backward; reverse into ascending
	// candidate order so the consecutive-bonus check below can compare
	// neighbors directly.
	for a, b := 0, len(positions)-1; a < b; a, b = a+1, b-1 {
		positions[a], positions[b] = positions[b], positions[a]
	}

	bonusSum := 0
	for idx, pos := range positions {
		if isWordStart(originalCandidate, candidate, pos) {
			bonusSum += edBonusWordStart
		}
		if idx > 0 && positions[idx-1] == pos-1 {
			bonusSum += edBonusConsecutive
		}
	}

	buf.matchPositions = positions
	return positions, gapRuns, bonusSum
}
