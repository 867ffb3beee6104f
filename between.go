package binmap

import (
	"github.com/pkg/errors"

	"github.com/johnjamespj/binmap/internal/structures"
)

// Between returns the entries whose keys fall inside r, in ascending key
// order or descending when r.Reverse is set. Bounds are validated on every
// call, even on an empty map. The returned iterator is single-pass and
// reads the live map.
//
//	m.Between(binmap.Range[string]{Ge: binmap.At("b"), Lt: binmap.At("e")})
func (b *BinMap[K, V]) Between(r Range[K]) (Iterator[Entry[K, V]], error) {
	p, err := r.plan()
	if err != nil {
		return empty[Entry[K, V]](), err
	}

	if b.data == nil || b.data.Size() == 0 {
		return empty[Entry[K, V]](), nil
	}

	for _, e := range []edge[K]{p.lower, p.upper} {
		if err := b.checkBound(e.bound); err != nil {
			return empty[Entry[K, V]](), err
		}
	}

	if p.empty() {
		return empty[Entry[K, V]](), nil
	}

	var cursor structures.Cursor[K, V]
	if p.reverse {
		cursor = b.seekLast(p.upper)
	} else {
		cursor = b.seekFirst(p.lower)
	}

	return Iterator[Entry[K, V]]{base: &rangeIterator[K, V]{
		cursor:  cursor,
		reverse: p.reverse,
		stop:    b.stopPredicate(p),
	}}, nil
}

func (b *BinMap[K, V]) checkBound(bound Bound[K]) error {
	key, ok := bound.Key()
	if !ok {
		return nil
	}
	if isNullKey(key) {
		return errors.Wrap(ErrNullKey, "range bound")
	}
	if !b.comparator.sameType(key) {
		return errors.Wrapf(ErrIncompatible, "range bound of type %T against %s ordering", key, b.comparator.mode)
	}
	return nil
}

// seekFirst places a cursor on the lowest entry inside the lower edge.
func (b *BinMap[K, V]) seekFirst(lower edge[K]) structures.Cursor[K, V] {
	if lower.unbounded(true) {
		cursor := b.data.Iterator()
		cursor.Next()
		return cursor
	}

	if lower.exclusive {
		return b.data.UpperBound(lower.bound.key)
	}
	return b.data.LowerBound(lower.bound.key)
}

// seekLast places a cursor on the highest entry inside the upper edge.
// LowerBound lands on the first key >= bound, or on the nil position when
// every key is below it. Step back from there unless the cursor sits on a
// key equal to an inclusive bound.
func (b *BinMap[K, V]) seekLast(upper edge[K]) structures.Cursor[K, V] {
	if upper.unbounded(false) {
		cursor := b.data.Iterator()
		cursor.Prev()
		return cursor
	}

	cursor := b.data.LowerBound(upper.bound.key)
	key, _, ok := cursor.Data()
	if !ok {
		cursor.Prev()
		return cursor
	}

	c := b.comparator.compare(key, upper.bound.key)
	if c > 0 || (c == 0 && upper.exclusive) {
		cursor.Prev()
	}
	return cursor
}

// stopPredicate reports when a walk has left the range through its far
// edge: the upper one going forward, the lower one in reverse.
func (b *BinMap[K, V]) stopPredicate(p rangePlan[K]) func(key K) bool {
	compare := b.comparator.compare

	if p.reverse {
		lower := p.lower
		if lower.unbounded(true) {
			return func(K) bool { return false }
		}
		if lower.exclusive {
			return func(key K) bool { return compare(key, lower.bound.key) <= 0 }
		}
		return func(key K) bool { return compare(key, lower.bound.key) < 0 }
	}

	upper := p.upper
	if upper.unbounded(false) {
		return func(K) bool { return false }
	}
	if upper.exclusive {
		return func(key K) bool { return compare(key, upper.bound.key) >= 0 }
	}
	return func(key K) bool { return compare(key, upper.bound.key) > 0 }
}

// rangeIterator yields the entry under the cursor, then steps the cursor,
// until the cursor runs out or reaches a key the stop predicate rejects.
type rangeIterator[K any, V any] struct {
	cursor  structures.Cursor[K, V]
	reverse bool
	stop    func(key K) bool
	current Entry[K, V]
	state   iteratorState
}

func (i *rangeIterator[K, V]) MoveNext() bool {
	if i.state == iteratorDone {
		return false
	}

	key, value, ok := i.cursor.Data()
	if !ok || i.stop(key) {
		i.current = Entry[K, V]{}
		i.state = iteratorDone
		return false
	}

	i.current = Entry[K, V]{Key: key, Value: value}
	i.state = iteratorRunning
	if i.reverse {
		i.cursor.Prev()
	} else {
		i.cursor.Next()
	}
	return true
}

func (i *rangeIterator[K, V]) GetCurrent() Entry[K, V] {
	if i.state != iteratorRunning {
		panic(notPositioned)
	}
	return i.current
}
