package fuzzy

import (
	"container/heap"
	"sort"
)

// Scored pairs a candidate string with the ScoredMatch it produced. It is
// the element type returned by the bulk convenience wrappers (spec §4.6).
type Scored struct {
	Candidate string
	ScoredMatch
}

// heapItems is a min-heap over Scored by ascending Score, so the root is
// always the worst-scoring kept match — the one to evict when a better
// candidate arrives.
type heapItems []Scored

func (h heapItems) Len() int            { return len(h) }
func (h heapItems) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h heapItems) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapItems) Push(x interface{}) { *h = append(*h, x.(Scored)) }
func (h *heapItems) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopMatches scores every candidate in seq against query (sharing a single
// ScoringBuffer, since these wrappers are not concurrent — spec §4.6) and
// returns at most limit matches sorted by descending score. It is a thin,
// non-core bulk wrapper: callers wanting parallelism shard seq themselves
// and run TopMatches per shard.
func TopMatches(seq []string, query *PreparedQuery, limit int) []Scored {
	if limit <= 0 {
		return nil
	}
	buf := NewScoringBuffer()
	h := make(heapItems, 0, limit)
	for _, candidate := range seq {
		m, ok := Score(candidate, query, buf)
		if !ok {
			continue
		}
		item := Scored{Candidate: candidate, ScoredMatch: m}
		if len(h) < limit {
			heap.Push(&h, item)
		} else if h[0].Score < m.Score {
			h[0] = item
			heap.Fix(&h, 0)
		}
	}
	sort.Slice(h, func(i, j int) bool { return h[i].Score > h[j].Score })
	return h
}

// Matches scores every candidate in seq against query and returns every
// match, sorted by descending score (spec §4.6).
func Matches(seq []string, query *PreparedQuery) []Scored {
	buf := NewScoringBuffer()
	out := make([]Scored, 0, len(seq))
	for _, candidate := range seq {
		m, ok := Score(candidate, query, buf)
		if !ok {
			continue
		}
		out = append(out, Scored{Candidate: candidate, ScoredMatch: m})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
