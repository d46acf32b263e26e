package buffer

import (
	"bytes"

	"github.com/zeebo/xxh3"

	"github.com/smallstring/smallstring/decimal"
)

// DefaultCap is the capacity allocated by New.
const DefaultCap = 256

// Store is the backing byte container a T writes into. Methods take and
// return the store by value so a released source never aliases the
// storage it gave up.
type Store[S any] interface {
	// Resize returns the store with capacity exactly n. The prefix
	// [0, min(n, Size())) is preserved.
	Resize(n int) S
	Size() int
	Data() []byte
	// Release returns the store with all storage dropped.
	Release() S
}

// Heap is the default Store, backed by the Go heap.
type Heap []byte

func (h Heap) Resize(n int) Heap {
	nh := make(Heap, n)
	copy(nh, h)
	return nh
}

func (h Heap) Size() int     { return len(h) }
func (h Heap) Data() []byte  { return h }
func (h Heap) Release() Heap { return nil }

// T accumulates bytes at the front of a growable store. The first len
// bytes of the store are the content; everything past that is scratch.
type T[S Store[S]] struct {
	store S
	len   int
}

func New() T[Heap] { return OfCap(DefaultCap) }

func OfCap(n int) T[Heap] { return Of(make(Heap, n)) }

// Of wraps an existing store. Its current contents are treated as
// scratch.
func Of[S Store[S]](s S) T[S] { return T[S]{store: s} }

func (t *T[S]) Cap() int       { return t.store.Size() }
func (t *T[S]) Len() int       { return t.len }
func (t *T[S]) Remaining() int { return t.store.Size() - t.len }

// View is the zero-copy window over the content. It is valid until the
// next mutating call on t.
func (t *T[S]) View() []byte { return t.store.Data()[:t.len] }

// Tail is the free region past the content. Bytes written there become
// content once Advance is called.
func (t *T[S]) Tail() []byte { return t.store.Data()[t.len:] }

// Advance marks n bytes of Tail as content.
func (t *T[S]) Advance(n int) { t.len += n }

// EnsureFit grows the store so n more bytes fit. Growth is sized to the
// immediate need, not amortized, and never shrinks.
func (t *T[S]) EnsureFit(n int) {
	if t.len+n > t.store.Size() {
		t.store = t.store.Resize(t.len + n)
	}
}

// Clear drops the content but keeps the storage.
func (t *T[S]) Clear() { t.len = 0 }

// Release drops the content and the storage.
func (t *T[S]) Release() {
	t.store = t.store.Release()
	t.len = 0
}

func (t *T[S]) Push(p []byte) {
	t.EnsureFit(len(p))
	copy(t.store.Data()[t.len:], p)
	t.len += len(p)
}

func (t *T[S]) PushString(s string) {
	t.EnsureFit(len(s))
	copy(t.store.Data()[t.len:], s)
	t.len += len(s)
}

func (t *T[S]) PushByte(c byte) {
	t.EnsureFit(1)
	t.store.Data()[t.len] = c
	t.len++
}

func (t *T[S]) PushInt(v int)       { pushSigned(t, v) }
func (t *T[S]) PushInt64(v int64)   { pushSigned(t, v) }
func (t *T[S]) PushInt32(v int32)   { pushSigned(t, v) }
func (t *T[S]) PushUint(v uint)     { pushUnsigned(t, v) }
func (t *T[S]) PushUint64(v uint64) { pushUnsigned(t, v) }
func (t *T[S]) PushUint32(v uint32) { pushUnsigned(t, v) }

func pushUnsigned[S Store[S], U decimal.Unsigned](t *T[S], v U) {
	n := decimal.Count(v)
	t.EnsureFit(n)
	decimal.Put(t.store.Data()[t.len:t.len+n], v)
	t.len += n
}

func pushSigned[S Store[S], I decimal.Signed](t *T[S], v I) {
	n := decimal.CountSigned(v)
	t.EnsureFit(n)
	decimal.PutSigned(t.store.Data()[t.len:t.len+n], v)
	t.len += n
}

// Pop removes the first n bytes, shifting the rest down to offset 0.
// Popping more than Len clears. O(Len) per call.
func (t *T[S]) Pop(n int) {
	if n <= 0 {
		return
	}
	if n >= t.len {
		t.len = 0
		return
	}
	d := t.store.Data()
	copy(d, d[n:t.len])
	t.len -= n
}

// Find returns the offset of the first occurrence of needle, or -1.
func (t *T[S]) Find(needle []byte) int {
	return bytes.Index(t.View(), needle)
}

// FindAt is Find starting the search at offset start.
func (t *T[S]) FindAt(needle []byte, start int) int {
	if start < 0 {
		start = 0
	}
	if start > t.len {
		return -1
	}
	i := bytes.Index(t.View()[start:], needle)
	if i < 0 {
		return -1
	}
	return start + i
}

func (t *T[S]) FindString(needle string) int {
	return bytes.Index(t.View(), []byte(needle))
}

// Take transfers the storage and content out, leaving t empty with a
// released store. The result aliases nothing t still holds.
func (t *T[S]) Take() T[S] {
	out := *t
	t.store = t.store.Release()
	t.len = 0
	return out
}

// Clone duplicates the storage and content into an independent buffer.
func (t *T[S]) Clone() T[S] {
	s := t.store.Release().Resize(t.store.Size())
	copy(s.Data(), t.store.Data()[:t.len])
	return T[S]{store: s, len: t.len}
}

// Digest is an xxh3 fingerprint of the content.
func (t *T[S]) Digest() uint64 { return xxh3.Hash(t.View()) }
