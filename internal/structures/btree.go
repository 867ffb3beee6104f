package structures

import (
	"github.com/tidwall/btree"
)

type btreeItem[K any, V any] struct {
	key   K
	value V
}

// BTree keeps entries in a tidwall B-tree. Items are compared by key only.
type BTree[K any, V any] struct {
	tree       *btree.BTreeG[btreeItem[K, V]]
	comparator Comparator[K]
}

func NewBTree[K any, V any](comparator Comparator[K]) *BTree[K, V] {
	tree := btree.NewBTreeGOptions(func(a, b btreeItem[K, V]) bool {
		return comparator(a.key, b.key) < 0
	}, btree.Options{
		Degree:  32,
		NoLocks: true,
	})
	return &BTree[K, V]{tree: tree, comparator: comparator}
}

func (t *BTree[K, V]) Size() int {
	return t.tree.Len()
}

func (t *BTree[K, V]) Clear() {
	t.tree.Clear()
}

func (t *BTree[K, V]) Insert(key K, value V) {
	t.tree.Set(btreeItem[K, V]{key: key, value: value})
}

func (t *BTree[K, V]) Remove(key K) bool {
	_, removed := t.tree.Delete(btreeItem[K, V]{key: key})
	return removed
}

func (t *BTree[K, V]) Find(key K) (V, bool) {
	item, found := t.tree.Get(btreeItem[K, V]{key: key})
	return item.value, found
}

func (t *BTree[K, V]) Iterator() Cursor[K, V] {
	return &btreeCursor[K, V]{iter: t.tree.Iter()}
}

func (t *BTree[K, V]) LowerBound(key K) Cursor[K, V] {
	c := &btreeCursor[K, V]{iter: t.tree.Iter()}
	c.valid = c.iter.Seek(btreeItem[K, V]{key: key})
	return c
}

func (t *BTree[K, V]) UpperBound(key K) Cursor[K, V] {
	c := &btreeCursor[K, V]{iter: t.tree.Iter()}
	c.valid = c.iter.Seek(btreeItem[K, V]{key: key})
	if c.valid && t.comparator(c.iter.Item().key, key) == 0 {
		c.valid = c.iter.Next()
	}
	return c
}

func (t *BTree[K, V]) Each(callback func(key K, value V)) {
	t.tree.Scan(func(item btreeItem[K, V]) bool {
		callback(item.key, item.value)
		return true
	})
}

// btreeCursor tracks the nil position itself since the tidwall iterator
// does not step back in from the end.
type btreeCursor[K any, V any] struct {
	iter  btree.IterG[btreeItem[K, V]]
	valid bool
}

func (c *btreeCursor[K, V]) Next() (K, V, bool) {
	if c.valid {
		c.valid = c.iter.Next()
	} else {
		c.valid = c.iter.First()
	}
	return c.Data()
}

func (c *btreeCursor[K, V]) Prev() (K, V, bool) {
	if c.valid {
		c.valid = c.iter.Prev()
	} else {
		c.valid = c.iter.Last()
	}
	return c.Data()
}

func (c *btreeCursor[K, V]) Data() (K, V, bool) {
	if !c.valid {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	item := c.iter.Item()
	return item.key, item.value, true
}
