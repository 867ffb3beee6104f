package structures

type Comparator[V any] func(a V, b V) int

// Cursor is a position inside a Storage. A cursor is either on an entry or
// at the nil position, which sits both before the first and after the last
// entry: Next from nil moves to the first entry and Prev from nil moves to
// the last one.
type Cursor[K any, V any] interface {
	// Moves forward and returns the entry now under the cursor, or false
	// when the cursor walked off the end.
	Next() (K, V, bool)

	// Moves backward and returns the entry now under the cursor, or false
	// when the cursor walked off the front.
	Prev() (K, V, bool)

	// Reads the entry under the cursor without moving.
	Data() (K, V, bool)
}

// Storage is an ordered collection of unique keys.
type Storage[K any, V any] interface {
	Size() int

	Clear()

	// Inserts the entry, replacing the value of an equal key.
	Insert(key K, value V)

	// Removes the entry with an equal key. Returns true when one existed.
	Remove(key K) bool

	Find(key K) (V, bool)

	// Returns a cursor at the nil position.
	Iterator() Cursor[K, V]

	// Returns a cursor at the first entry with a key greater than or
	// equal to key, or at the nil position if there is none.
	LowerBound(key K) Cursor[K, V]

	// Returns a cursor at the first entry with a key strictly greater
	// than key, or at the nil position if there is none.
	UpperBound(key K) Cursor[K, V]

	// Walks every entry in ascending key order.
	Each(callback func(key K, value V))
}

type Kind uint8

const (
	RedBlackKind Kind = iota
	BTreeKind
	SkipListKind
	SortedListKind
)

func (k Kind) String() string {
	switch k {
	case RedBlackKind:
		return "redblack"
	case BTreeKind:
		return "btree"
	case SkipListKind:
		return "skiplist"
	case SortedListKind:
		return "sortedlist"
	}
	return "unknown"
}

// New creates an empty storage of the given kind. estimateSize is only used
// by the skip list to size its tower.
func New[K any, V any](kind Kind, estimateSize int, comparator Comparator[K]) Storage[K, V] {
	switch kind {
	case BTreeKind:
		return NewBTree[K, V](comparator)
	case SkipListKind:
		return CreateSkiplist[K, V](estimateSize, comparator)
	case SortedListKind:
		return NewSortedList[K, V](comparator)
	default:
		return NewRedBlackTree[K, V](comparator)
	}
}
