// SPDX-License-Identifier: MIT
//
// File: propmap.go
// Role: Handle→value property storage used by every mesh algorithm.
// Policy:
//   - Algorithms depend only on the Map interface, never on a container.
//   - Slice is the fast path for dense int32 handles; Hash and Func cover
//     sparse or computed storage.
//   - No locking: callers own a map for the duration of a call.

// Package propmap provides generic property maps: a mapping from a mesh
// handle (vertex, edge, face, seam vertex, …) to a value.
//
// Three storage strategies are offered behind one interface:
//
//	Slice — dense array indexed by the handle value (O(1), no hashing)
//	Hash  — Go map keyed by the handle (sparse or opaque handles)
//	Func  — closures (computed or adapter-backed storage)
//
// Reading an absent key returns the zero value of V for all three.
package propmap

import "iter"

// Map is a mutable association from handles to values.
type Map[K comparable, V any] interface {
	// Get returns the value stored for k, or the zero value if none.
	Get(k K) V

	// Put stores v for k, replacing any previous value.
	Put(k K, v V)
}

// Index is the set of handle types that Slice can address directly.
type Index interface {
	~int | ~int32 | ~int64
}

// Slice is a dense property map backed by a []V indexed by the handle.
// Handles outside [0, Len()) read as the zero value; Put grows the slice.
type Slice[K Index, V any] struct {
	data []V
}

// NewSlice returns a Slice pre-sized for n handles.
func NewSlice[K Index, V any](n int) *Slice[K, V] {
	if n < 0 {
		n = 0
	}
	return &Slice[K, V]{data: make([]V, n)}
}

// Get implements Map.
func (s *Slice[K, V]) Get(k K) V {
	var zero V
	i := int(k)
	if i < 0 || i >= len(s.data) {
		return zero
	}
	return s.data[i]
}

// Put implements Map. Negative handles are ignored.
func (s *Slice[K, V]) Put(k K, v V) {
	i := int(k)
	if i < 0 {
		return
	}
	if i >= len(s.data) {
		grown := make([]V, i+1, max(i+1, 2*len(s.data)))
		copy(grown, s.data)
		s.data = grown
	}
	s.data[i] = v
}

// Len reports the number of addressable handles.
func (s *Slice[K, V]) Len() int { return len(s.data) }

// Values exposes the backing slice. Mutations are visible through the map.
func (s *Slice[K, V]) Values() []V { return s.data }

// Hash is a property map backed by a Go map.
type Hash[K comparable, V any] struct {
	data map[K]V
}

// NewHash returns an empty Hash.
func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{data: make(map[K]V)}
}

// Get implements Map.
func (h *Hash[K, V]) Get(k K) V { return h.data[k] }

// Put implements Map.
func (h *Hash[K, V]) Put(k K, v V) { h.data[k] = v }

// Lookup returns the stored value and whether k was present.
func (h *Hash[K, V]) Lookup(k K) (V, bool) {
	v, ok := h.data[k]
	return v, ok
}

// Len reports the number of stored keys.
func (h *Hash[K, V]) Len() int { return len(h.data) }

// Func adapts a pair of closures to Map. A nil PutFn makes Put a no-op;
// a nil GetFn makes Get return the zero value.
type Func[K comparable, V any] struct {
	GetFn func(K) V
	PutFn func(K, V)
}

// Get implements Map.
func (f Func[K, V]) Get(k K) V {
	if f.GetFn == nil {
		var zero V
		return zero
	}
	return f.GetFn(k)
}

// Put implements Map.
func (f Func[K, V]) Put(k K, v V) {
	if f.PutFn != nil {
		f.PutFn(k, v)
	}
}

// Copy writes every key yielded by keys from src into dst.
func Copy[K comparable, V any](dst, src Map[K, V], keys iter.Seq[K]) {
	for k := range keys {
		dst.Put(k, src.Get(k))
	}
}

// compile-time interface checks
var (
	_ Map[int32, float64] = (*Slice[int32, float64])(nil)
	_ Map[int32, float64] = (*Hash[int32, float64])(nil)
	_ Map[int32, float64] = Func[int32, float64]{}
)
