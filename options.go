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

import (
	"log"

	"github.com/johnjamespj/binmap/internal/structures"
)

// Comparator orders two keys: negative when a < b, zero when equal and
// positive when a > b.
type Comparator[K any] func(a K, b K) int

// StorageKind selects the ordered structure backing a BinMap.
type StorageKind uint8

const (
	RedBlackStorage StorageKind = iota
	BTreeStorage
	SkipListStorage
	SortedListStorage
)

func (k StorageKind) String() string {
	return k.internal().String()
}

func (k StorageKind) internal() structures.Kind {
	switch k {
	case BTreeStorage:
		return structures.BTreeKind
	case SkipListStorage:
		return structures.SkipListKind
	case SortedListStorage:
		return structures.SortedListKind
	}
	return structures.RedBlackKind
}

type Option[K any] struct {
	logger         *log.Logger
	id             *string
	comparatorName string
	comparator     Comparator[K]
	storage        StorageKind
	estimatedSize  int
}

func NewOption[K any]() *Option[K] {
	return &Option[K]{
		comparatorName: "default",
		storage:        RedBlackStorage,
		estimatedSize:  1 << 16,
	}
}

// SetComparator binds the container to comparator from construction on.
// Keys are then never checked for kind; the comparator must accept every
// key it will be given.
func (i *Option[K]) SetComparator(name string, comparator Comparator[K]) {
	i.comparatorName = name
	i.comparator = comparator
}

func (i *Option[K]) SetStorage(kind StorageKind) {
	i.storage = kind
}

// SetEstimatedSize hints how many entries the container will hold. Only the
// skip list storage uses it.
func (i *Option[K]) SetEstimatedSize(size int) {
	i.estimatedSize = size
}

func (i *Option[K]) SetLogger(logger *log.Logger) {
	i.logger = logger
}

func (i *Option[K]) SetID(id string) {
	i.id = &id
}
