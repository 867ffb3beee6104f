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

// Package binmap implements an in-memory map whose iteration order follows
// key order.
//
// Without an explicit comparator a BinMap infers its ordering from the first
// key it stores: strings (and anything converting to one through Primitive)
// are collated, numbers are ordered by value. Every later key must be of the
// same kind. A BinMap is not safe for concurrent use.
package binmap

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/johnjamespj/binmap/internal/structures"
)

// Entry is one key-value pair of a BinMap.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v, %v]", e.Key, e.Value)
}

// BinMap is an ordered map. The zero value is an empty map with default
// options.
type BinMap[K any, V any] struct {
	option     *Option[K]
	logger     *log.Logger
	id         string
	comparator *comparator[K]
	data       structures.Storage[K, V]
}

// New creates an empty map. option may be nil.
func New[K any, V any](option *Option[K]) *BinMap[K, V] {
	if option == nil {
		option = NewOption[K]()
	}

	b := &BinMap[K, V]{option: option}
	if option.comparator != nil {
		b.bind(explicitComparator(option.comparatorName, option.comparator))
	}
	return b
}

// NewFrom creates a map holding entries. Later entries overwrite earlier
// ones with an equal key.
func NewFrom[K any, V any](entries []Entry[K, V], option *Option[K]) (*BinMap[K, V], error) {
	b := New[K, V](option)
	for _, e := range entries {
		if err := b.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// NewFromIterator creates a map holding every entry the iterator yields,
// for instance the Entries of another BinMap.
func NewFromIterator[K any, V any](entries IteratorBase[Entry[K, V]], option *Option[K]) (*BinMap[K, V], error) {
	b := New[K, V](option)
	for entries.MoveNext() {
		e := entries.GetCurrent()
		if err := b.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *BinMap[K, V]) options() *Option[K] {
	if b.option == nil {
		b.option = NewOption[K]()
	}
	return b.option
}

// ID identifies the map in log lines.
func (b *BinMap[K, V]) ID() string {
	if b.id == "" {
		if option := b.options(); option.id != nil {
			b.id = *option.id
		} else {
			b.id = uuid.New().String()
		}
	}
	return b.id
}

func (b *BinMap[K, V]) log() *log.Logger {
	if b.logger == nil {
		if option := b.options(); option.logger != nil {
			b.logger = log.New(option.logger.Writer(), fmt.Sprintf("%s[%s] ", option.logger.Prefix(), b.ID()), option.logger.Flags())
		} else {
			b.logger = log.New(io.Discard, "", 0)
		}
	}
	return b.logger
}

// Size returns the number of entries.
func (b *BinMap[K, V]) Size() int {
	if b.data == nil {
		return 0
	}
	return b.data.Size()
}

// Set stores value under key, replacing the value of an equal key. The
// first key stored decides the ordering unless a comparator was given.
// O(log n)
func (b *BinMap[K, V]) Set(key K, value V) error {
	if err := b.resolve(key); err != nil {
		return err
	}

	b.data.Insert(key, value)
	return nil
}

// Get returns the value stored under key. Keys the map could not have
// stored are reported missing. O(log n)
func (b *BinMap[K, V]) Get(key K) (V, bool) {
	if !b.accepts(key) {
		var zero V
		return zero, false
	}
	return b.data.Find(key)
}

// Has reports whether key is present. O(log n)
func (b *BinMap[K, V]) Has(key K) bool {
	_, ok := b.Get(key)
	return ok
}

// Delete removes key and reports whether it was present. O(log n)
func (b *BinMap[K, V]) Delete(key K) bool {
	if !b.accepts(key) {
		return false
	}
	return b.data.Remove(key)
}

// Clear removes every entry. The map keeps its comparator.
func (b *BinMap[K, V]) Clear() {
	if b.data == nil {
		return
	}
	b.log().Printf("clearing %d entries", b.data.Size())
	b.data.Clear()
}

// Entries returns every entry in ascending key order.
func (b *BinMap[K, V]) Entries() Iterator[Entry[K, V]] {
	return walk(b.data, entryOf[K, V])
}

// Keys returns every key in ascending order.
func (b *BinMap[K, V]) Keys() Iterator[K] {
	return walk(b.data, keyOf[K, V])
}

// Values returns every value in ascending key order.
func (b *BinMap[K, V]) Values() Iterator[V] {
	return walk(b.data, valueOf[K, V])
}

// ForEach calls callback for every entry in ascending key order.
func (b *BinMap[K, V]) ForEach(callback func(value V, key K, m *BinMap[K, V])) {
	if b.data == nil {
		return
	}
	b.data.Each(func(key K, value V) {
		callback(value, key, b)
	})
}

func (b *BinMap[K, V]) String() string {
	return fmt.Sprintf("BinMap%v", b.Entries().ToList())
}
