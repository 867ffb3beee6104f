package structures

import (
	"sort"
)

type sortedListEntry[K any, V any] struct {
	key   K
	value V
}

// SortedList keeps entries in a slice ordered by key. Lookups are binary
// searches; inserts and removals shift the tail.
type SortedList[K any, V any] struct {
	list       []sortedListEntry[K, V]
	comparator Comparator[K]
}

func NewSortedList[K any, V any](comparator Comparator[K]) *SortedList[K, V] {
	return &SortedList[K, V]{
		list:       make([]sortedListEntry[K, V], 0),
		comparator: comparator,
	}
}

func (v *SortedList[K, V]) Size() int {
	return len(v.list)
}

func (v *SortedList[K, V]) Clear() {
	v.list = make([]sortedListEntry[K, V], 0)
}

// Adds or replaces a value in the list. O(n)
func (v *SortedList[K, V]) Insert(key K, value V) {
	i := v.ceiling(key)
	if i < len(v.list) && v.comparator(v.list[i].key, key) == 0 {
		v.list[i] = sortedListEntry[K, V]{key: key, value: value}
		return
	}

	v.list = append(v.list, sortedListEntry[K, V]{})
	copy(v.list[i+1:], v.list[i:])
	v.list[i] = sortedListEntry[K, V]{key: key, value: value}
}

// Removes a value from the list. O(n)
func (v *SortedList[K, V]) Remove(key K) bool {
	i := v.ceiling(key)
	if i >= len(v.list) || v.comparator(v.list[i].key, key) != 0 {
		return false
	}

	last := len(v.list) - 1
	copy(v.list[i:], v.list[i+1:])
	v.list[last] = sortedListEntry[K, V]{}
	v.list = v.list[:last]
	return true
}

// O(log n)
func (v *SortedList[K, V]) Find(key K) (V, bool) {
	i := v.ceiling(key)
	if i >= len(v.list) || v.comparator(v.list[i].key, key) != 0 {
		var zero V
		return zero, false
	}
	return v.list[i].value, true
}

func (v *SortedList[K, V]) Iterator() Cursor[K, V] {
	return &sortedListCursor[K, V]{list: v, index: -1}
}

func (v *SortedList[K, V]) LowerBound(key K) Cursor[K, V] {
	return &sortedListCursor[K, V]{list: v, index: v.ceiling(key)}
}

func (v *SortedList[K, V]) UpperBound(key K) Cursor[K, V] {
	return &sortedListCursor[K, V]{list: v, index: v.higher(key)}
}

func (v *SortedList[K, V]) Each(callback func(key K, value V)) {
	for _, entry := range v.list {
		callback(entry.key, entry.value)
	}
}

// Returns the index of the least key greater than or equal to the given
// key, or len(list) if there is no such key. O(log n)
func (v *SortedList[K, V]) ceiling(key K) int {
	return sort.Search(len(v.list), func(i int) bool {
		return v.comparator(v.list[i].key, key) >= 0
	})
}

// Returns the index of the least key strictly greater than the given key,
// or len(list) if there is no such key. O(log n)
func (v *SortedList[K, V]) higher(key K) int {
	return sort.Search(len(v.list), func(i int) bool {
		return v.comparator(v.list[i].key, key) > 0
	})
}

// Cursor for a SortedList. Any index outside the list is the nil position.
type sortedListCursor[K any, V any] struct {
	list  *SortedList[K, V]
	index int
}

func (i *sortedListCursor[K, V]) Next() (K, V, bool) {
	if i.inside() {
		i.index++
	} else {
		i.index = 0
	}
	return i.Data()
}

func (i *sortedListCursor[K, V]) Prev() (K, V, bool) {
	if i.inside() {
		i.index--
	} else {
		i.index = len(i.list.list) - 1
	}
	return i.Data()
}

func (i *sortedListCursor[K, V]) Data() (K, V, bool) {
	if !i.inside() {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	entry := i.list.list[i.index]
	return entry.key, entry.value, true
}

func (i *sortedListCursor[K, V]) inside() bool {
	return i.index >= 0 && i.index < len(i.list.list)
}
