package binmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnjamespj/binmap"
)

func reversed[T any](list []T) []T {
	out := make([]T, len(list))
	for i, item := range list {
		out[len(list)-1-i] = item
	}
	return out
}

func between[K any, V any](t *testing.T, m *binmap.BinMap[K, V], r binmap.Range[K]) []binmap.Entry[K, V] {
	t.Helper()
	itr, err := m.Between(r)
	require.NoError(t, err)
	return itr.ToList()
}

func TestBetweenExample(t *testing.T) {
	forEachStorage(t, func(t *testing.T, kind binmap.StorageKind) {
		m, err := binmap.NewFrom(entries[string, string]("e", "f", "a", "b", "c", "d"), optionFor[string](kind))
		require.NoError(t, err)

		assert.Equal(t,
			entries[string, string]("c", "d", "e", "f"),
			between(t, m, binmap.Range[string]{Ge: binmap.At("b"), Le: binmap.At("e")}))

		assert.Equal(t,
			entries[string, string]("e", "f", "c", "d", "a", "b"),
			between(t, m, binmap.Range[string]{Reverse: true}))
	})
}

func TestBetweenUninitializedAndEmpty(t *testing.T) {
	forEachStorage(t, func(t *testing.T, kind binmap.StorageKind) {
		m := binmap.New[string, string](optionFor[string](kind))
		assert.Empty(t, between(t, m, binmap.Range[string]{}))
		assert.Empty(t, between(t, m, binmap.Range[string]{Ge: binmap.At("a"), Reverse: true}))

		require.NoError(t, m.Set("a", "b"))
		require.True(t, m.Delete("a"))
		assert.Empty(t, between(t, m, binmap.Range[string]{}))
		assert.Empty(t, between(t, m, binmap.Range[string]{Reverse: true}))
	})
}

func TestBetweenSingle(t *testing.T) {
	forEachStorage(t, func(t *testing.T, kind binmap.StorageKind) {
		m, err := binmap.NewFrom(entries[string, string]("a", "b"), optionFor[string](kind))
		require.NoError(t, err)

		assert.Equal(t, entries[string, string]("a", "b"), between(t, m, binmap.Range[string]{}))
		assert.Equal(t, entries[string, string]("a", "b"), between(t, m, binmap.Range[string]{Reverse: true}))
	})
}

func TestBetweenConflictingBounds(t *testing.T) {
	conflicts := []struct {
		name string
		r    binmap.Range[string]
		side string
	}{
		{name: "lt and le", r: binmap.Range[string]{Lt: binmap.At("a"), Le: binmap.At("b")}, side: "both upper bounds given"},
		{name: "gt and ge", r: binmap.Range[string]{Gt: binmap.At("a"), Ge: binmap.At("b")}, side: "both lower bounds given"},
		{name: "sentinels", r: binmap.Range[string]{Gt: binmap.Min[string](), Ge: binmap.Min[string]()}, side: "both lower bounds given"},
		{name: "reverse", r: binmap.Range[string]{Lt: binmap.Max[string](), Le: binmap.At("b"), Reverse: true}, side: "both upper bounds given"},
	}

	unbound := binmap.New[string, string](nil)
	bound, err := binmap.NewFrom(entries[string, string]("a", "b"), nil)
	require.NoError(t, err)

	for _, tt := range conflicts {
		for _, m := range []*binmap.BinMap[string, string]{unbound, bound} {
			for i := 0; i < 2; i++ {
				_, err := m.Between(tt.r)
				require.ErrorIs(t, err, binmap.ErrConflictingBounds, tt.name)
				assert.Contains(t, err.Error(), tt.side, tt.name)
			}
		}
	}
}

func TestBetweenBoundKeysAreChecked(t *testing.T) {
	m, err := binmap.NewFrom(entries[any, string](1, "one", 2, "two"), nil)
	require.NoError(t, err)

	_, err = m.Between(binmap.Range[any]{Ge: binmap.At[any]("1")})
	assert.ErrorIs(t, err, binmap.ErrIncompatible)

	_, err = m.Between(binmap.Range[any]{Lt: binmap.At[any](nil)})
	assert.ErrorIs(t, err, binmap.ErrNullKey)

	assert.Equal(t,
		entries[any, string](2, "two"),
		between(t, m, binmap.Range[any]{Gt: binmap.At[any](1.5)}))
}

func TestBetweenUnreachableSentinels(t *testing.T) {
	forEachStorage(t, func(t *testing.T, kind binmap.StorageKind) {
		m, err := binmap.NewFrom(entries[int, int](1, 1, 2, 2), optionFor[int](kind))
		require.NoError(t, err)

		for _, reverse := range []bool{false, true} {
			assert.Empty(t, between(t, m, binmap.Range[int]{Ge: binmap.Max[int](), Reverse: reverse}))
			assert.Empty(t, between(t, m, binmap.Range[int]{Gt: binmap.Max[int](), Reverse: reverse}))
			assert.Empty(t, between(t, m, binmap.Range[int]{Le: binmap.Min[int](), Reverse: reverse}))
			assert.Empty(t, between(t, m, binmap.Range[int]{Lt: binmap.Min[int](), Reverse: reverse}))
		}
	})
}

func TestBetweenIsLazy(t *testing.T) {
	m, err := binmap.NewFrom(entries[int, string](1, "a", 2, "b", 3, "c"), nil)
	require.NoError(t, err)

	itr, err := m.Between(binmap.Range[int]{Gt: binmap.At(1)})
	require.NoError(t, err)

	e, ok := itr.Next()
	require.True(t, ok)
	assert.Equal(t, 2, e.Key)
	assert.Equal(t, 2, itr.GetCurrent().Key)

	e, ok = itr.Next()
	require.True(t, ok)
	assert.Equal(t, 3, e.Key)

	_, ok = itr.Next()
	assert.False(t, ok)
	_, ok = itr.Next()
	assert.False(t, ok)
	assert.Panics(t, func() { itr.GetCurrent() })

	// a second call starts over
	assert.Len(t, between(t, m, binmap.Range[int]{Gt: binmap.At(1)}), 2)
}

type side struct {
	// "", "inclusive" or "exclusive"
	mode     string
	sentinel bool
	key      int
}

func (s side) String() string {
	switch {
	case s.mode == "":
		return "none"
	case s.sentinel:
		return s.mode + ":sentinel"
	}
	return fmt.Sprintf("%s:%d", s.mode, s.key)
}

func sides(keys []int) []side {
	list := []side{
		{},
		{mode: "inclusive", sentinel: true},
		{mode: "exclusive", sentinel: true},
	}
	for _, k := range keys {
		list = append(list, side{mode: "inclusive", key: k}, side{mode: "exclusive", key: k})
	}
	return list
}

func makeRange(lower, upper side, reverse bool) binmap.Range[int] {
	r := binmap.Range[int]{Reverse: reverse}

	lowerBound := binmap.At(lower.key)
	if lower.sentinel {
		lowerBound = binmap.Min[int]()
	}
	switch lower.mode {
	case "inclusive":
		r.Ge = lowerBound
	case "exclusive":
		r.Gt = lowerBound
	}

	upperBound := binmap.At(upper.key)
	if upper.sentinel {
		upperBound = binmap.Max[int]()
	}
	switch upper.mode {
	case "inclusive":
		r.Le = upperBound
	case "exclusive":
		r.Lt = upperBound
	}

	return r
}

func expected(all []binmap.Entry[int, string], compare func(a, b int) int, lower, upper side, reverse bool) []binmap.Entry[int, string] {
	out := make([]binmap.Entry[int, string], 0)
	for _, e := range all {
		if lower.mode != "" && !lower.sentinel {
			c := compare(e.Key, lower.key)
			if c < 0 || (c == 0 && lower.mode == "exclusive") {
				continue
			}
		}
		if upper.mode != "" && !upper.sentinel {
			c := compare(e.Key, upper.key)
			if c > 0 || (c == 0 && upper.mode == "exclusive") {
				continue
			}
		}
		out = append(out, e)
	}
	if reverse {
		return reversed(out)
	}
	return out
}

// Every bound combination, on and between stored keys and past both ends,
// in both directions, with both the inferred and an inverted comparator.
func TestBetweenAllBounds(t *testing.T) {
	probes := make([]int, 0)
	for k := -1; k <= 21; k++ {
		probes = append(probes, k)
	}

	forEachStorage(t, func(t *testing.T, kind binmap.StorageKind) {
		for _, inverted := range []bool{false, true} {
			option := optionFor[int](kind)
			compare := func(a, b int) int { return a - b }
			if inverted {
				compare = func(a, b int) int { return b - a }
				option.SetComparator("inverted", compare)
			}

			m := binmap.New[int, string](option)
			for k := 0; k <= 20; k += 2 {
				require.NoError(t, m.Set(k, fmt.Sprint(k)))
			}
			all := m.Entries().ToList()
			require.Len(t, all, 11)

			assert.Equal(t, all, between(t, m, binmap.Range[int]{}))
			assert.Equal(t, reversed(all), between(t, m, binmap.Range[int]{Reverse: true}))

			for _, lower := range sides(probes) {
				for _, upper := range sides(probes) {
					for _, reverse := range []bool{false, true} {
						r := makeRange(lower, upper, reverse)
						want := expected(all, compare, lower, upper, reverse)
						if !assert.Equal(t, want, between(t, m, r), "inverted=%v lower=%v upper=%v reverse=%v", inverted, lower, upper, reverse) {
							return
						}
					}
				}
			}
		}
	})
}

func TestBetweenSentinelEqualsOmission(t *testing.T) {
	m, err := binmap.NewFrom(entries[string, int]("a", 1, "b", 2, "c", 3), nil)
	require.NoError(t, err)

	for _, reverse := range []bool{false, true} {
		omitted := between(t, m, binmap.Range[string]{Le: binmap.At("b"), Reverse: reverse})
		assert.Equal(t, omitted, between(t, m, binmap.Range[string]{Ge: binmap.Min[string](), Le: binmap.At("b"), Reverse: reverse}))
		assert.Equal(t, omitted, between(t, m, binmap.Range[string]{Gt: binmap.Min[string](), Le: binmap.At("b"), Reverse: reverse}))

		omitted = between(t, m, binmap.Range[string]{Gt: binmap.At("a"), Reverse: reverse})
		assert.Equal(t, omitted, between(t, m, binmap.Range[string]{Gt: binmap.At("a"), Le: binmap.Max[string](), Reverse: reverse}))
		assert.Equal(t, omitted, between(t, m, binmap.Range[string]{Gt: binmap.At("a"), Lt: binmap.Max[string](), Reverse: reverse}))
	}
}

func TestBetweenWhere(t *testing.T) {
	m := binmap.New[int, int](nil)
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Set(i, i*i))
	}

	itr, err := m.Between(binmap.Range[int]{Ge: binmap.At(2), Lt: binmap.At(8), Reverse: true})
	require.NoError(t, err)

	even := itr.Where(func(e binmap.Entry[int, int]) bool { return e.Key%2 == 0 }).ToList()
	assert.Equal(t, entries[int, int](6, 36, 4, 16, 2, 4), even)
}
