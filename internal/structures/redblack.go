package structures

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// RedBlackTree keeps entries in a gods red-black tree keyed by K.
type RedBlackTree[K any, V any] struct {
	tree       *rbt.Tree
	comparator Comparator[K]
}

func NewRedBlackTree[K any, V any](comparator Comparator[K]) *RedBlackTree[K, V] {
	return &RedBlackTree[K, V]{
		tree: rbt.NewWith(func(a, b interface{}) int {
			return comparator(a.(K), b.(K))
		}),
		comparator: comparator,
	}
}

func (t *RedBlackTree[K, V]) Size() int {
	return t.tree.Size()
}

func (t *RedBlackTree[K, V]) Clear() {
	t.tree.Clear()
}

// O(log n)
func (t *RedBlackTree[K, V]) Insert(key K, value V) {
	t.tree.Put(key, value)
}

// O(log n)
func (t *RedBlackTree[K, V]) Remove(key K) bool {
	if _, found := t.tree.Get(key); !found {
		return false
	}
	t.tree.Remove(key)
	return true
}

// O(log n)
func (t *RedBlackTree[K, V]) Find(key K) (V, bool) {
	value, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, _ := value.(V)
	return v, true
}

func (t *RedBlackTree[K, V]) Iterator() Cursor[K, V] {
	return &redBlackCursor[K, V]{tree: t.tree}
}

func (t *RedBlackTree[K, V]) LowerBound(key K) Cursor[K, V] {
	node, found := t.tree.Ceiling(key)
	if !found {
		node = nil
	}
	return &redBlackCursor[K, V]{tree: t.tree, node: node}
}

func (t *RedBlackTree[K, V]) UpperBound(key K) Cursor[K, V] {
	node, found := t.tree.Ceiling(key)
	if !found {
		node = nil
	} else if t.comparator(node.Key.(K), key) == 0 {
		node = successor(node)
	}
	return &redBlackCursor[K, V]{tree: t.tree, node: node}
}

func (t *RedBlackTree[K, V]) Each(callback func(key K, value V)) {
	for node := t.tree.Left(); node != nil; node = successor(node) {
		key, value := unpack[K, V](node)
		callback(key, value)
	}
}

type redBlackCursor[K any, V any] struct {
	tree *rbt.Tree
	node *rbt.Node
}

func (c *redBlackCursor[K, V]) Next() (K, V, bool) {
	if c.node == nil {
		c.node = c.tree.Left()
	} else {
		c.node = successor(c.node)
	}
	return c.Data()
}

func (c *redBlackCursor[K, V]) Prev() (K, V, bool) {
	if c.node == nil {
		c.node = c.tree.Right()
	} else {
		c.node = predecessor(c.node)
	}
	return c.Data()
}

func (c *redBlackCursor[K, V]) Data() (K, V, bool) {
	if c.node == nil {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	key, value := unpack[K, V](c.node)
	return key, value, true
}

// nil values come back out of the tree as untyped nil
func unpack[K any, V any](node *rbt.Node) (K, V) {
	key, _ := node.Key.(K)
	value, _ := node.Value.(V)
	return key, value
}

// in-order successor, or nil after the last node
func successor(node *rbt.Node) *rbt.Node {
	if node.Right != nil {
		node = node.Right
		for node.Left != nil {
			node = node.Left
		}
		return node
	}

	parent := node.Parent
	for parent != nil && node == parent.Right {
		node = parent
		parent = parent.Parent
	}
	return parent
}

// in-order predecessor, or nil before the first node
func predecessor(node *rbt.Node) *rbt.Node {
	if node.Left != nil {
		node = node.Left
		for node.Right != nil {
			node = node.Right
		}
		return node
	}

	parent := node.Parent
	for parent != nil && node == parent.Left {
		node = parent
		parent = parent.Parent
	}
	return parent
}
