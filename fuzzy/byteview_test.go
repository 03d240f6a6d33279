package fuzzy

import "testing"

func TestByteViewBasics(t *testing.T) {
	v := NewByteView([]byte("hello"))
	if v.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", v.Len())
	}
	if v.At(0) != 'h' || v.At(4) != 'o' {
		t.Fatalf("At() returned unexpected bytes")
	}
	if v.String() != "hello" {
		t.Fatalf("String() = %q, want %q", v.String(), "hello")
	}
	sub := v.Slice(1, 3)
	if sub.String() != "el" {
		t.Fatalf("Slice(1,3).String() = %q, want %q", sub.String(), "el")
	}
}

func TestByteViewEmpty(t *testing.T) {
	v := NewByteView(nil)
	if v.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", v.Len())
	}
	if v.String() != "" {
		t.Fatalf("String() = %q, want empty", v.String())
	}
}

func TestByteViewOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range At()")
		}
	}()
	v := NewByteView([]byte("hi"))
	_ = v.At(5)
}
