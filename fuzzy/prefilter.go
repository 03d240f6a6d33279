package fuzzy

import "bytes"

// prefilterOutcome is the result of running the cheap cascade in §4.1: most
// candidates are rejected or fast-matched here without ever touching an
// alignment engine's DP.
type prefilterOutcome int

const (
	// pfContinue means the candidate survived every cheap check and must be
	// handed to the configured engine.
	pfContinue prefilterOutcome = iota
	pfReject
	pfExact
	pfPrefix
	pfSubstring
)

type prefilterResult struct {
	outcome prefilterOutcome
	// substringPos is the match start byte offset, valid only when outcome
	// is pfSubstring.
	substringPos int
}

// runPrefilter implements the fixed, cumulative cascade of §4.1. candidate
// is the already-folded candidate buffer.
func runPrefilter(query *PreparedQuery, candidate []byte, algorithm Algorithm, edCfg EditDistanceConfig) prefilterResult {
	q := query.Len()
	c := len(candidate)

	// 1. Empty query short-circuit.
	if q == 0 {
		return prefilterResult{outcome: pfExact}
	}

	// 2. Length gate.
	switch algorithm {
	case AlgorithmEditDistance:
		if q > c+edCfg.MaxEditDistance {
			return prefilterResult{outcome: pfReject}
		}
	case AlgorithmSmithWaterman:
		if c == 0 && q > 0 {
			return prefilterResult{outcome: pfReject}
		}
	}

	folded := query.Folded()

	// 3. Fast exact.
	if q == c && bytes.Equal(folded, candidate) {
		return prefilterResult{outcome: pfExact}
	}

	// 4. Fast prefix.
	if q <= c && bytes.Equal(candidate[:q], folded) {
		return prefilterResult{outcome: pfPrefix}
	}

	// 5. Fast substring.
	if p := bytes.Index(candidate, folded); p >= 0 {
		return prefilterResult{outcome: pfSubstring, substringPos: p}
	}

	// 6. Character-set gate (edit-distance only).
	if algorithm == AlgorithmEditDistance {
		candidateBitmap := buildCharBitmap(candidate)
		if missingCount(query.bitmap, candidateBitmap) > edCfg.MaxEditDistance {
			return prefilterResult{outcome: pfReject}
		}
	}

	return prefilterResult{outcome: pfContinue}
}
