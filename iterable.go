/*
*	Copyright (c) 2023
*	John's Page All rights reserved.
*
*	Redistribution and use in source and binary forms, with or without
*	modification, are permitted provided that the following conditions
*	are met:
*
*	Redistributions of source code must retain the above copyright notice,
*	this list of conditions and the following disclaimer.
*
*	THIS SOFTWARE IS PROVIDED BY [Name of Organization] “AS IS” AND ANY EXPRESS
*	OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES
*	OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO
*	EVENT SHALL [Name of Organisation] BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
*	SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO,
*	PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS;
*	OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER
*	IN CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
*	ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY
*	OF SUCH DAMAGE.
 */

package binmap

import "github.com/johnjamespj/binmap/internal/structures"

const notPositioned = "Iterator: No more items left or the first MoveNext() is called"

type IteratorBase[V any] interface {
	MoveNext() bool
	GetCurrent() V
}

// Iterator is a single-pass lazy sequence. Call MoveNext before every
// GetCurrent. An iterator over a BinMap is undefined once the map is
// modified; ask the map for a new one instead.
type Iterator[V any] struct {
	base IteratorBase[V]
}

func (i Iterator[V]) MoveNext() bool {
	if i.base == nil {
		return false
	}
	return i.base.MoveNext()
}

func (i Iterator[V]) GetCurrent() V {
	if i.base == nil {
		panic(notPositioned)
	}
	return i.base.GetCurrent()
}

// Next advances and returns the new current item, or false at the end.
func (i Iterator[V]) Next() (V, bool) {
	if !i.MoveNext() {
		var zero V
		return zero, false
	}
	return i.GetCurrent(), true
}

// ToList drains the iterator.
func (i Iterator[V]) ToList() []V {
	ary := make([]V, 0)
	for i.MoveNext() {
		ary = append(ary, i.GetCurrent())
	}
	return ary
}

func (i Iterator[V]) Where(filter FilterCallback[V]) Iterator[V] {
	return Iterator[V]{base: &FilterIterator[V]{itr: i, callback: filter}}
}

type FilterCallback[V any] func(a V) bool

type FilterIterator[V any] struct {
	itr      IteratorBase[V]
	callback FilterCallback[V]
	current  *V
}

func (i *FilterIterator[V]) MoveNext() bool {
	var cur V
	for i.itr.MoveNext() {
		cur = i.itr.GetCurrent()

		if i.callback(cur) {
			i.current = &cur
			return true
		}
	}
	i.current = nil
	return false
}

func (i *FilterIterator[V]) GetCurrent() V {
	if i.current == nil {
		panic(notPositioned)
	}
	return *i.current
}

// emptyIterator is zero sized, so handing one out never allocates.
type emptyIterator[V any] struct{}

func (emptyIterator[V]) MoveNext() bool {
	return false
}

func (emptyIterator[V]) GetCurrent() V {
	panic(notPositioned)
}

func empty[V any]() Iterator[V] {
	return Iterator[V]{base: emptyIterator[V]{}}
}

type iteratorState uint8

const (
	iteratorFresh iteratorState = iota
	iteratorRunning
	iteratorDone
)

// cursorIterator walks a storage cursor forward from wherever it sits and
// projects every entry through project.
type cursorIterator[K any, V any, T any] struct {
	cursor  structures.Cursor[K, V]
	project func(key K, value V) T
	current T
	state   iteratorState
}

func (i *cursorIterator[K, V, T]) MoveNext() bool {
	if i.state == iteratorDone {
		return false
	}

	key, value, ok := i.cursor.Next()
	if !ok {
		var zero T
		i.current = zero
		i.state = iteratorDone
		return false
	}

	i.current = i.project(key, value)
	i.state = iteratorRunning
	return true
}

func (i *cursorIterator[K, V, T]) GetCurrent() T {
	if i.state != iteratorRunning {
		panic(notPositioned)
	}
	return i.current
}

func walk[K any, V any, T any](data structures.Storage[K, V], project func(key K, value V) T) Iterator[T] {
	if data == nil || data.Size() == 0 {
		return empty[T]()
	}
	return Iterator[T]{base: &cursorIterator[K, V, T]{cursor: data.Iterator(), project: project}}
}

func entryOf[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

func keyOf[K any, V any](key K, _ V) K {
	return key
}

func valueOf[K any, V any](_ K, value V) V {
	return value
}
