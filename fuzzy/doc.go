// Package fuzzy implements a high-throughput fuzzy string matcher for
// interactive search over large catalogs of short strings.
//
// Callers prepare a query once with Prepare, allocate one ScoringBuffer per
// worker with NewScoringBuffer, and call Score once per candidate. The
// matcher classifies each candidate as exact, prefix, substring, acronym,
// alignment or fuzzy and returns a normalized score in [0,1].
package fuzzy
