package fuzzy

// edOp records which DP predecessor produced a cell's minimum cost, so the
// EditDistanceEngine can recover match positions without retracing the
// recurrence (§4.2).
type edOp int8

const (
	edOpNone edOp = iota
	edOpMatch
	edOpSubstitute
	edOpDelete
	edOpInsert
	edOpTranspose
)

// ScoringBuffer is per-worker reusable scratch for Score. It is never
// shared across concurrent callers (spec §5): each goroutine must own its
// own buffer. Capacity grows monotonically and is never released except by
// dropping the buffer entirely (spec §3, §5).
type ScoringBuffer struct {
	candidateFolded []byte

	// Edit-distance rolling DP rows, width maxQuery+1, indexed by query
	// position i. curr is column j, prev is j-1, prev2 is j-2 (needed for
	// Damerau transposition).
	edRowPrev2 []int32
	edRowPrev  []int32
	edRowCurr  []int32

	// edTrace is the retained backtrace matrix, flattened row-major with
	// stride edTraceW = maxQuery+1, one row per candidate position j (0..c)
	// each holding maxQuery+1 edOp values. Kept despite the rolling rows
	// above because match-position recovery needs predecessor choices the
	// rolling pass discards — the same reason FuzzyMatchV2 in algo.go
	// retains a full H/C matrix for its own backtrace phase.
	edTrace  []edOp
	edTraceW int

	matchPositions []int
	wordInitials   []int

	// Smith-Waterman rolling DP rows, width maxCandidate+1. Bonuses are
	// folded into H inline (see runSmithWaterman), so this engine needs no
	// retained backtrace matrix the way the edit-distance engine does.
	swRowPrevH []int32
	swRowCurrH []int32
	swRowPrevF []int32
	swRowCurrF []int32
	swRowPrevC []int16
	swRowCurrC []int16

	maxQuery     int
	maxCandidate int
}

// NewScoringBuffer allocates an empty ScoringBuffer. Capacity grows lazily
// on first use.
func NewScoringBuffer() *ScoringBuffer {
	return &ScoringBuffer{}
}

// ensureQuery grows every query-width scratch array to at least q+1, if
// needed. It never shrinks existing capacity (spec §3, §5).
func (b *ScoringBuffer) ensureQuery(q int) {
	if q <= b.maxQuery {
		return
	}
	b.maxQuery = q
	width := q + 1
	b.edRowPrev2 = growInt32(b.edRowPrev2, width)
	b.edRowPrev = growInt32(b.edRowPrev, width)
	b.edRowCurr = growInt32(b.edRowCurr, width)
	b.matchPositions = growInt(b.matchPositions, width)
	b.edTraceW = width
	b.growEdTrace()
}

// ensureCandidate grows the candidate-width scratch arrays, if needed: the
// folded candidate and word initials to at least c, the Smith-Waterman rows
// to at least c+1.
func (b *ScoringBuffer) ensureCandidate(c int) {
	if c <= b.maxCandidate {
		return
	}
	b.maxCandidate = c
	b.candidateFolded = growByte(b.candidateFolded, c)
	b.wordInitials = growInt(b.wordInitials, c)
	width := c + 1
	b.swRowPrevH = growInt32(b.swRowPrevH, width)
	b.swRowCurrH = growInt32(b.swRowCurrH, width)
	b.swRowPrevF = growInt32(b.swRowPrevF, width)
	b.swRowCurrF = growInt32(b.swRowCurrF, width)
	b.swRowPrevC = growInt16(b.swRowPrevC, width)
	b.swRowCurrC = growInt16(b.swRowCurrC, width)
	b.growEdTrace()
}

func (b *ScoringBuffer) growEdTrace() {
	if b.edTraceW == 0 {
		return
	}
	need := (b.maxCandidate + 1) * b.edTraceW
	if cap(b.edTrace) < need {
		b.edTrace = make([]edOp, need)
	} else {
		b.edTrace = b.edTrace[:need]
	}
}

// reset folds candidate into the buffer's scratch and grows capacity as
// needed. It does not zero DP rows: every engine overwrites the cells it
// reads before reading them, the same reuse contract as fzf's Slab-backed
// rows in algo.go.
func (b *ScoringBuffer) reset(query *PreparedQuery, candidate []byte) {
	b.ensureQuery(query.Len())
	b.ensureCandidate(len(candidate))
	b.candidateFolded = b.candidateFolded[:len(candidate)]
	fold(b.candidateFolded, candidate)
}

func growByte(s []byte, n int) []byte {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]byte, n)
}

func growInt(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int, n)
}

func growInt32(s []int32, n int) []int32 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int32, n)
}

func growInt16(s []int16, n int) []int16 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]int16, n)
}
