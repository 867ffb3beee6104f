package binmap

import (
	"github.com/elliotchance/orderedmap"
	"github.com/pkg/errors"
)

// FromMap creates a map holding the entries of m.
func FromMap[K comparable, V any](m map[K]V, option *Option[K]) (*BinMap[K, V], error) {
	b := New[K, V](option)
	for key, value := range m {
		if err := b.Set(key, value); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ToMap copies b into a Go map.
func ToMap[K comparable, V any](b *BinMap[K, V]) map[K]V {
	m := make(map[K]V, b.Size())
	b.ForEach(func(value V, key K, _ *BinMap[K, V]) {
		m[key] = value
	})
	return m
}

// FromOrderedMap creates a map holding the entries of om. Every key and
// value of om must be a K and a V.
func FromOrderedMap[K any, V any](om *orderedmap.OrderedMap, option *Option[K]) (*BinMap[K, V], error) {
	b := New[K, V](option)
	for el := om.Front(); el != nil; el = el.Next() {
		key, ok := el.Key.(K)
		if !ok {
			return nil, errors.Wrapf(ErrIncompatible, "ordered map key %v is a %T", el.Key, el.Key)
		}

		var value V
		if el.Value != nil {
			if value, ok = el.Value.(V); !ok {
				return nil, errors.Errorf("ordered map value for %v is a %T", el.Key, el.Value)
			}
		}

		if err := b.Set(key, value); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ToOrderedMap copies b into an insertion-ordered map. Entries are inserted
// in key order, so walking the result from Front visits keys ascending.
// Keys must be hashable.
func (b *BinMap[K, V]) ToOrderedMap() *orderedmap.OrderedMap {
	om := orderedmap.NewOrderedMap()
	b.ForEach(func(value V, key K, _ *BinMap[K, V]) {
		om.Set(key, value)
	})
	return om
}
