package structures

import (
	"math"
	"math/rand"

	"github.com/golang-collections/collections/stack"
)

type Skiplist[K any, V any] struct {
	head       *skiplistNode[K, V]
	maxHeight  int
	size       int
	comparator Comparator[K]
}

type skiplistNode[K any, V any] struct {
	nodes []*skiplistNode[K, V]
	key   K
	value V
}

func CreateSkiplist[K any, V any](estimateSize int, comparator Comparator[K]) *Skiplist[K, V] {
	height := 1
	if estimateSize > 2 {
		height = int(math.Ceil(math.Log(float64(estimateSize)) / math.Log(2)))
	}
	return &Skiplist[K, V]{
		head:       &skiplistNode[K, V]{nodes: make([]*skiplistNode[K, V], height)},
		maxHeight:  height,
		comparator: comparator,
	}
}

func (v *Skiplist[K, V]) Size() int {
	return v.size
}

func (v *Skiplist[K, V]) Clear() {
	v.head = &skiplistNode[K, V]{nodes: make([]*skiplistNode[K, V], v.maxHeight)}
	v.size = 0
}

// Adds or replaces an item. O(log n)
func (v *Skiplist[K, V]) Insert(key K, value V) {
	previousNode := v.path(key)

	top := previousNode.Peek().(*skiplistNode[K, V])
	if next := top.nodes[0]; next != nil && v.comparator(next.key, key) == 0 {
		next.key = key
		next.value = value
		return
	}

	height := calculateRandomHeight(v.maxHeight)
	node := &skiplistNode[K, V]{key: key, value: value, nodes: make([]*skiplistNode[K, V], height)}
	for i := 0; i < height; i++ {
		lastPosition := previousNode.Pop().(*skiplistNode[K, V])
		node.nodes[i] = lastPosition.nodes[i]
		lastPosition.nodes[i] = node
	}
	v.size++
}

// O(log n)
func (v *Skiplist[K, V]) Remove(key K) bool {
	previousNode := v.path(key)

	top := previousNode.Peek().(*skiplistNode[K, V])
	target := top.nodes[0]
	if target == nil || v.comparator(target.key, key) != 0 {
		return false
	}

	for i := range target.nodes {
		lastPosition := previousNode.Pop().(*skiplistNode[K, V])
		lastPosition.nodes[i] = target.nodes[i]
	}
	v.size--
	return true
}

// O(log n)
func (v *Skiplist[K, V]) Find(key K) (V, bool) {
	node := v.ceiling(key)
	if node == nil || v.comparator(node.key, key) != 0 {
		var zero V
		return zero, false
	}
	return node.value, true
}

func (v *Skiplist[K, V]) Iterator() Cursor[K, V] {
	return &skipListCursor[K, V]{list: v}
}

func (v *Skiplist[K, V]) LowerBound(key K) Cursor[K, V] {
	return &skipListCursor[K, V]{list: v, currentNode: v.ceiling(key)}
}

func (v *Skiplist[K, V]) UpperBound(key K) Cursor[K, V] {
	node := v.lastNodeWhere(func(k K) bool {
		return v.comparator(k, key) <= 0
	})
	return &skipListCursor[K, V]{list: v, currentNode: node.nodes[0]}
}

func (v *Skiplist[K, V]) Each(callback func(key K, value V)) {
	for node := v.head.nodes[0]; node != nil; node = node.nodes[0] {
		callback(node.key, node.value)
	}
}

// Returns the node with the least key greater than or equal to the given
// key, or nil if there is no such key. O(log n)
func (v *Skiplist[K, V]) ceiling(key K) *skiplistNode[K, V] {
	return v.lastNodeWhere(func(k K) bool {
		return v.comparator(k, key) < 0
	}).nodes[0]
}

// Returns the node with the greatest key strictly less than the given key,
// or nil if there is no such key. O(log n)
func (v *Skiplist[K, V]) lower(key K) *skiplistNode[K, V] {
	node := v.lastNodeWhere(func(k K) bool {
		return v.comparator(k, key) < 0
	})
	if node == v.head {
		return nil
	}
	return node
}

// Returns the last node. O(log n)
func (v *Skiplist[K, V]) last() *skiplistNode[K, V] {
	node := v.lastNodeWhere(func(k K) bool { return true })
	if node == v.head {
		return nil
	}
	return node
}

// Walks down the tower and returns the last node whose key satisfies
// predicate, or the head when none does. predicate must hold for a prefix
// of the list.
func (v *Skiplist[K, V]) lastNodeWhere(predicate func(k K) bool) *skiplistNode[K, V] {
	currentNode := v.head
	level := v.maxHeight - 1
	for level >= 0 {
		if next := currentNode.nodes[level]; next != nil && predicate(next.key) {
			currentNode = next
		} else {
			level--
		}
	}
	return currentNode
}

// Collects, from the top level down, the last node before key on every
// level. The top of the stack is the level 0 predecessor.
func (v *Skiplist[K, V]) path(key K) *stack.Stack {
	previousNode := stack.New()
	currentNode := v.head
	level := v.maxHeight - 1
	for level >= 0 {
		if next := currentNode.nodes[level]; next != nil && v.comparator(next.key, key) < 0 {
			currentNode = next
		} else {
			previousNode.Push(currentNode)
			level--
		}
	}
	return previousNode
}

func calculateRandomHeight(maxHeight int) int {
	num := rand.Intn(1 << 30)
	height := 1

	for (num&1) != 0 && height < maxHeight {
		height++
		num >>= 1
	}

	return height
}

type skipListCursor[K any, V any] struct {
	list        *Skiplist[K, V]
	currentNode *skiplistNode[K, V]
}

func (i *skipListCursor[K, V]) Next() (K, V, bool) {
	if i.currentNode == nil {
		i.currentNode = i.list.head.nodes[0]
	} else {
		i.currentNode = i.currentNode.nodes[0]
	}
	return i.Data()
}

// The list is singly linked, so stepping back searches from the head.
// O(log n)
func (i *skipListCursor[K, V]) Prev() (K, V, bool) {
	if i.currentNode == nil {
		i.currentNode = i.list.last()
	} else {
		i.currentNode = i.list.lower(i.currentNode.key)
	}
	return i.Data()
}

func (i *skipListCursor[K, V]) Data() (K, V, bool) {
	if i.currentNode == nil {
		var (
			key   K
			value V
		)
		return key, value, false
	}
	return i.currentNode.key, i.currentNode.value, true
}
