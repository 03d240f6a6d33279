package fuzzy

import "testing"

func TestMatchesSortedDescending(t *testing.T) {
	q := PrepareDefault("getUser")
	candidates := []string{"unrelated", "getUserById", "getUser", "setUser"}
	results := Matches(candidates, q)
	if len(results) == 0 {
		t.Fatal("expected at least one match")
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Fatalf("results not sorted descending: %+v", results)
		}
	}
	if results[0].Candidate != "getUser" {
		t.Fatalf("expected exact self-match to rank first, got %q", results[0].Candidate)
	}
}

func TestMatchesExcludesNonMatches(t *testing.T) {
	q := PrepareDefault("getUser")
	results := Matches([]string{"zzz qqq xxx"}, q)
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %+v", results)
	}
}

func TestTopMatchesLimitsCount(t *testing.T) {
	q := PrepareDefault("getUser")
	candidates := []string{
		"getUser", "getUserById", "getUserName", "getUserEmail",
		"getUserAddress", "getUserPhone", "getUserCount",
	}
	results := TopMatches(candidates, q, 3)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Score < results[i].Score {
			t.Fatalf("results not sorted descending: %+v", results)
		}
	}
}

func TestTopMatchesKeepsBestOnly(t *testing.T) {
	q := PrepareDefault("getUser")
	// "getUser" itself is a strictly better match than any of the decoys, so
	// with limit=1 it must be the sole survivor regardless of input order.
	candidates := []string{"getUserById", "getUserName", "getUser", "getUserEmail"}
	results := TopMatches(candidates, q, 1)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Candidate != "getUser" {
		t.Fatalf("Candidate = %q, want getUser", results[0].Candidate)
	}
}

func TestTopMatchesZeroLimit(t *testing.T) {
	q := PrepareDefault("getUser")
	if got := TopMatches([]string{"getUser"}, q, 0); got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}
