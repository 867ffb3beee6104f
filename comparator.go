package binmap

import (
	"cmp"
	"math"
	"reflect"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/johnjamespj/binmap/internal/structures"
)

// Primitive is implemented by keys that stand for a string or a number.
// Containers without an explicit comparator order such keys by the value
// Primitive returns. time.Time keys are ordered by their Unix nanoseconds.
type Primitive interface {
	Primitive() any
}

// keys can wrap each other through Primitive; stop unwrapping after this
const maxPrimitiveDepth = 8

type orderingMode uint8

const (
	explicitOrdering orderingMode = iota
	textOrdering
	numericOrdering
)

func (m orderingMode) String() string {
	switch m {
	case textOrdering:
		return "text"
	case numericOrdering:
		return "numeric"
	}
	return "explicit"
}

// comparator is bound to a container once and never replaced.
type comparator[K any] struct {
	name     string
	mode     orderingMode
	compare  Comparator[K]
	sameType func(key K) bool
}

func explicitComparator[K any](name string, compare Comparator[K]) *comparator[K] {
	return &comparator[K]{
		name:     name,
		mode:     explicitOrdering,
		compare:  compare,
		sameType: func(K) bool { return true },
	}
}

// inferComparator picks the default ordering for the kind of key.
func inferComparator[K any](key K) (*comparator[K], error) {
	p := classify(primitiveOf(key))

	switch p.mode {
	case textOrdering:
		collator := collate.New(language.Und)
		return &comparator[K]{
			name: "locale",
			mode: textOrdering,
			compare: func(a, b K) int {
				return collator.CompareString(classify(primitiveOf(a)).text, classify(primitiveOf(b)).text)
			},
			sameType: func(key K) bool {
				return classify(primitiveOf(key)).mode == textOrdering
			},
		}, nil
	case numericOrdering:
		return &comparator[K]{
			name: "numeric",
			mode: numericOrdering,
			compare: func(a, b K) int {
				return compareNumbers(classify(primitiveOf(a)).number, classify(primitiveOf(b)).number)
			},
			sameType: func(key K) bool {
				return classify(primitiveOf(key)).mode == numericOrdering
			},
		}, nil
	}

	return nil, errors.Wrapf(ErrUnorderable,
		"cannot set key of type %s which are not (or convertible into) strings or numbers", p.kind)
}

// resolve makes sure the container has a comparator and storage, and that
// key can be ordered by it.
func (b *BinMap[K, V]) resolve(key K) error {
	if isNullKey(key) {
		return ErrNullKey
	}

	if b.comparator != nil {
		if !b.comparator.sameType(key) {
			return errors.Wrapf(ErrIncompatible, "key of type %T against %s ordering", key, b.comparator.mode)
		}
		return nil
	}

	c, err := inferComparator(key)
	if err != nil {
		return err
	}
	b.bind(c)
	return nil
}

// accepts reports whether key can be looked up in a bound container.
func (b *BinMap[K, V]) accepts(key K) bool {
	return b.data != nil && !isNullKey(key) && b.comparator.sameType(key)
}

func (b *BinMap[K, V]) bind(c *comparator[K]) {
	option := b.options()
	b.comparator = c
	b.data = structures.New[K, V](option.storage.internal(), option.estimatedSize, structures.Comparator[K](c.compare))
	b.log().Printf("bound %s comparator (%s ordering) on %s storage", c.name, c.mode, option.storage)
}

func isNullKey[K any](key K) bool {
	return primitiveOf(key) == nil
}

// primitiveOf unwraps key through Primitive and time.Time. Nil interfaces and
// nil pointers, maps, slices, funcs and channels all come back as nil.
func primitiveOf(key any) any {
	v := key
	for i := 0; i < maxPrimitiveDepth; i++ {
		if isNil(v) {
			return nil
		}

		switch p := v.(type) {
		case time.Time:
			return p.UnixNano()
		case Primitive:
			v = p.Primitive()
		default:
			return v
		}
	}
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

type numberClass uint8

const (
	signedNumber numberClass = iota
	unsignedNumber
	floatNumber
)

type number struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
}

func (n number) float() float64 {
	switch n.class {
	case signedNumber:
		return float64(n.i)
	case unsignedNumber:
		return float64(n.u)
	}
	return n.f
}

type primitiveValue struct {
	mode   orderingMode
	kind   string
	text   string
	number number
}

// classify sorts an unwrapped key into text, numeric or neither. mode is
// explicitOrdering for keys with no default ordering.
func classify(v any) primitiveValue {
	switch t := v.(type) {
	case string:
		return primitiveValue{mode: textOrdering, kind: "string", text: t}
	case int:
		return primitiveValue{mode: numericOrdering, kind: "int", number: number{class: signedNumber, i: int64(t)}}
	case int64:
		return primitiveValue{mode: numericOrdering, kind: "int64", number: number{class: signedNumber, i: t}}
	case float64:
		return primitiveValue{mode: numericOrdering, kind: "float64", number: number{class: floatNumber, f: t}}
	case nil:
		return primitiveValue{kind: "nil"}
	}

	rv := reflect.ValueOf(v)
	kind := rv.Kind()
	switch kind {
	case reflect.String:
		return primitiveValue{mode: textOrdering, kind: kind.String(), text: rv.String()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return primitiveValue{mode: numericOrdering, kind: kind.String(), number: number{class: signedNumber, i: rv.Int()}}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return primitiveValue{mode: numericOrdering, kind: kind.String(), number: number{class: unsignedNumber, u: rv.Uint()}}
	case reflect.Float32, reflect.Float64:
		return primitiveValue{mode: numericOrdering, kind: kind.String(), number: number{class: floatNumber, f: rv.Float()}}
	}
	return primitiveValue{kind: kind.String()}
}

// compareNumbers is exact between any two numbers, whatever their class.
// NaN sorts before every number.
func compareNumbers(a, b number) int {
	switch {
	case a.class == floatNumber && b.class == floatNumber:
		return cmp.Compare(a.f, b.f)
	case a.class == floatNumber:
		return -compareIntegerFloat(b, a.f)
	case b.class == floatNumber:
		return compareIntegerFloat(a, b.f)
	case a.class == signedNumber && b.class == signedNumber:
		return cmp.Compare(a.i, b.i)
	case a.class == unsignedNumber && b.class == unsignedNumber:
		return cmp.Compare(a.u, b.u)
	case a.class == signedNumber:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

// compareIntegerFloat compares the integer n with f without rounding n to
// a float64.
func compareIntegerFloat(n number, f float64) int {
	if math.IsNaN(f) {
		return 1
	}

	whole := math.Trunc(f)
	var c int
	if n.class == signedNumber {
		switch {
		case whole < math.MinInt64:
			return 1
		case whole >= math.MaxInt64:
			return -1
		}
		c = cmp.Compare(n.i, int64(whole))
	} else {
		switch {
		case whole < 0:
			return 1
		case whole >= math.MaxUint64:
			return -1
		}
		c = cmp.Compare(n.u, uint64(whole))
	}

	if c != 0 {
		return c
	}
	// same whole part; any fraction puts f on the far side of n
	return cmp.Compare(whole, f)
}
