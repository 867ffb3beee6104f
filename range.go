package binmap

import "github.com/pkg/errors"

type boundKind uint8

const (
	absentBound boundKind = iota
	keyBound
	minBound
	maxBound
)

// Bound is one end of a Range: a key, or one of the Min and Max sentinels
// that sort below and above every key. The zero Bound is absent.
type Bound[K any] struct {
	kind boundKind
	key  K
}

// At bounds a range at key.
func At[K any](key K) Bound[K] {
	return Bound[K]{kind: keyBound, key: key}
}

// Min is the sentinel below every key. As a lower bound it leaves the range
// open at the bottom.
func Min[K any]() Bound[K] {
	return Bound[K]{kind: minBound}
}

// Max is the sentinel above every key. As an upper bound it leaves the range
// open at the top.
func Max[K any]() Bound[K] {
	return Bound[K]{kind: maxBound}
}

func (b Bound[K]) IsSet() bool {
	return b.kind != absentBound
}

// Key returns the bound key, or false for sentinels and absent bounds.
func (b Bound[K]) Key() (K, bool) {
	return b.key, b.kind == keyBound
}

// Range selects the entries of a BinMap between a lower and an upper bound.
// At most one of Gt and Ge, and one of Lt and Le, may be set. A missing
// side is unbounded. Reverse walks the range from the upper bound down; it
// does not change which field is lower or upper.
type Range[K any] struct {
	Gt Bound[K]
	Ge Bound[K]
	Lt Bound[K]
	Le Bound[K]

	Reverse bool
}

type edge[K any] struct {
	bound     Bound[K]
	exclusive bool
}

// unbounded is true for the sentinel that leaves this side open.
func (e edge[K]) unbounded(lower bool) bool {
	if lower {
		return e.bound.kind == minBound
	}
	return e.bound.kind == maxBound
}

// unsatisfiable is true for the sentinel no key can reach from this side.
func (e edge[K]) unsatisfiable(lower bool) bool {
	if lower {
		return e.bound.kind == maxBound
	}
	return e.bound.kind == minBound
}

type rangePlan[K any] struct {
	lower   edge[K]
	upper   edge[K]
	reverse bool
}

// plan checks r for conflicting bounds and fills in the missing sides.
func (r Range[K]) plan() (rangePlan[K], error) {
	if r.Gt.IsSet() && r.Ge.IsSet() {
		return rangePlan[K]{}, errors.Wrap(ErrConflictingBounds, "both lower bounds given (gt and ge)")
	}
	if r.Lt.IsSet() && r.Le.IsSet() {
		return rangePlan[K]{}, errors.Wrap(ErrConflictingBounds, "both upper bounds given (lt and le)")
	}

	p := rangePlan[K]{
		lower:   edge[K]{bound: Min[K]()},
		upper:   edge[K]{bound: Max[K]()},
		reverse: r.Reverse,
	}

	if r.Gt.IsSet() {
		p.lower = edge[K]{bound: r.Gt, exclusive: true}
	} else if r.Ge.IsSet() {
		p.lower = edge[K]{bound: r.Ge}
	}

	if r.Lt.IsSet() {
		p.upper = edge[K]{bound: r.Lt, exclusive: true}
	} else if r.Le.IsSet() {
		p.upper = edge[K]{bound: r.Le}
	}

	return p, nil
}

func (p rangePlan[K]) empty() bool {
	return p.lower.unsatisfiable(true) || p.upper.unsatisfiable(false)
}
