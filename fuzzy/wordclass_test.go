package fuzzy

import (
	"reflect"
	"testing"
)

func TestWordStarts(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", nil},
		{"single word", "hello", []int{0}},
		{"space separated", "foo bar", []int{0, 4}},
		{"camel case", "getUserById", []int{0, 3, 7, 9}},
		{"snake case", "get_user_id", []int{0, 4, 9}},
		{"letter digit transition", "ab0123 456", []int{0, 2, 7}},
		{"path separators", "/man1/zshcompctl.1", []int{0, 1, 4, 6, 17}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			original := []byte(c.in)
			folded := make([]byte, len(original))
			fold(folded, original)
			got := wordStarts(original, folded)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wordStarts(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestCharBitmap(t *testing.T) {
	m := buildCharBitmap([]byte("abc"))
	if !m.has('a') || !m.has('b') || !m.has('c') {
		t.Fatal("expected a, b, c present")
	}
	if m.has('d') {
		t.Fatal("expected d absent")
	}
}

func TestMissingCount(t *testing.T) {
	q := buildCharBitmap([]byte("abcd"))
	c := buildCharBitmap([]byte("ab"))
	if got := missingCount(q, c); got != 2 {
		t.Fatalf("missingCount = %d, want 2", got)
	}
	if got := missingCount(q, q); got != 0 {
		t.Fatalf("missingCount(q,q) = %d, want 0", got)
	}
}
