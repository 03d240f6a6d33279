package fuzzy

// Score wires PreparedQuery + ScoringBuffer + candidate through the
// Prefilter, the configured engine, and the Scorer (spec §4.5's
// Start -> FoldCandidate -> Prefilter -> (FastExit | Engine -> Scorer) ->
// Return state machine). It performs no heap allocation once buf has grown
// to sufficient capacity, never mutates candidate or query, and returns the
// same result for the same (candidate, query, config) tuple regardless of
// buf's prior contents.
//
// buf must not be shared with any other concurrent caller (spec §5).
func Score(candidate string, query *PreparedQuery, buf *ScoringBuffer) (ScoredMatch, bool) {
	candidateBytes := []byte(candidate)
	buf.reset(query, candidateBytes)

	cfg := query.config
	pf := runPrefilter(query, buf.candidateFolded, cfg.Algorithm, cfg.EditDistance)

	var match ScoredMatch
	switch pf.outcome {
	case pfReject:
		return ScoredMatch{}, false
	case pfExact:
		match = scoreExact()
	case pfPrefix:
		match = scorePrefix(query.Len(), len(candidateBytes), cfg.EditDistance.PrefixWeight)
	case pfSubstring:
		wordStart := isWordStart(candidateBytes, buf.candidateFolded, pf.substringPos)
		match = scoreSubstring(query.Len(), len(candidateBytes), pf.substringPos, wordStart, cfg.EditDistance.SubstringWeight)
	case pfContinue:
		var ok bool
		switch cfg.Algorithm {
		case AlgorithmEditDistance:
			match, ok = runEditDistance(query, buf, candidateBytes, cfg.EditDistance)
		case AlgorithmSmithWaterman:
			match, ok = runSmithWaterman(query, buf, candidateBytes, cfg.SmithWaterman)
		}
		if !ok {
			return ScoredMatch{}, false
		}
	default:
		return ScoredMatch{}, false
	}

	if match.Score < cfg.MinScore {
		return ScoredMatch{}, false
	}
	return match, true
}
