package fuzzy

import "unsafe"

// ByteView is a borrowed, bounds-checked view over a contiguous byte region.
// It never copies the underlying data; callers are responsible for keeping
// the backing slice alive for the lifetime of the view.
type ByteView struct {
	data []byte
}

// NewByteView wraps b without copying it.
func NewByteView(b []byte) ByteView {
	return ByteView{data: b}
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.data)
}

// At returns the byte at index i. It panics if i is out of range, the same
// contract as a plain slice index, so that a bounds violation is caught at
// the call site rather than silently producing garbage scores.
func (v ByteView) At(i int) byte {
	return v.data[i]
}

// Slice returns a sub-view over [lo, hi). It panics under the same
// conditions as re-slicing v.data[lo:hi].
func (v ByteView) Slice(lo, hi int) ByteView {
	return ByteView{data: v.data[lo:hi]}
}

// Bytes returns the underlying byte slice. The caller must not mutate it.
func (v ByteView) Bytes() []byte {
	return v.data
}

// String returns a zero-copy string view of the underlying bytes.
func (v ByteView) String() string {
	if len(v.data) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(v.data), len(v.data))
}
