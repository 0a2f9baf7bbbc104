package propmap_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ricciflow/propmap"
)

type handle int32

// TestSlice_GetPut covers dense reads, writes, growth and out-of-range reads.
func TestSlice_GetPut(t *testing.T) {
	m := propmap.NewSlice[handle, float64](3)
	require.Equal(t, 3, m.Len())
	require.Zero(t, m.Get(1))

	m.Put(1, 2.5)
	require.Equal(t, 2.5, m.Get(1))

	// growth past the initial size
	m.Put(7, -1)
	require.Equal(t, 8, m.Len())
	require.Equal(t, -1.0, m.Get(7))
	require.Equal(t, 2.5, m.Get(1), "growth must keep existing values")

	// out of range reads are zero, negative writes ignored
	require.Zero(t, m.Get(100))
	require.Zero(t, m.Get(-1))
	m.Put(-3, 9)
	require.Equal(t, 8, m.Len())
}

// TestSlice_ValuesAlias verifies that Values shares storage with the map.
func TestSlice_ValuesAlias(t *testing.T) {
	m := propmap.NewSlice[handle, int](2)
	m.Values()[0] = 42
	require.Equal(t, 42, m.Get(0))
}

// TestHash_GetPutLookup covers the map-backed implementation.
func TestHash_GetPutLookup(t *testing.T) {
	m := propmap.NewHash[handle, bool]()
	_, ok := m.Lookup(4)
	require.False(t, ok)
	require.False(t, m.Get(4))

	m.Put(4, true)
	v, ok := m.Lookup(4)
	require.True(t, ok)
	require.True(t, v)
	require.Equal(t, 1, m.Len())
}

// TestFunc_Closures verifies closure adaptation and nil-safe defaults.
func TestFunc_Closures(t *testing.T) {
	store := map[handle]string{}
	f := propmap.Func[handle, string]{
		GetFn: func(k handle) string { return store[k] },
		PutFn: func(k handle, v string) { store[k] = v },
	}
	f.Put(2, "two")
	require.Equal(t, "two", f.Get(2))
	require.Equal(t, "two", store[2])

	var empty propmap.Func[handle, string]
	empty.Put(1, "ignored")
	require.Equal(t, "", empty.Get(1))
}

// TestCopy copies a subset of keys between two implementations.
func TestCopy(t *testing.T) {
	src := propmap.NewSlice[handle, float64](4)
	for i := range 4 {
		src.Put(handle(i), float64(i)*1.5)
	}
	dst := propmap.NewHash[handle, float64]()
	propmap.Copy[handle, float64](dst, src, slices.Values([]handle{1, 3}))

	require.Equal(t, 2, dst.Len())
	require.Equal(t, 1.5, dst.Get(1))
	require.Equal(t, 4.5, dst.Get(3))
	_, ok := dst.Lookup(0)
	require.False(t, ok)
}
