// This file declares Equal and Compare: structural, type-blind comparison
// over the stored value sequences. A record is a tuple with named views, so
// comparison is inherited entirely from ordered-sequence semantics — the
// declaring descriptor plays no part.

package record

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Float thresholds for exact integer/float ordering: the smallest float64
// values at or beyond the integer ranges. 2^63 and 2^64 are exactly
// representable; -2^63 is the exact lower bound of int64.
const (
	maxInt64Float  = float64(1 << 63)
	minInt64Float  = -float64(1 << 63)
	maxUint64Float = float64(1 << 63) * 2
)

// Equal reports whether two records hold element-wise equal value sequences.
// Sequence lengths must match; the descriptors that produced the records are
// ignored, so instances of differently named types with identical schemas and
// equal values compare equal. Nested Records compare structurally, numeric
// elements compare exactly by value across kinds (so Equal always agrees
// with Compare), and all other elements compare by deep equality.
// Complexity: O(F) over the value depth.
func Equal(a, b Record) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i := range a.values {
		if !elemEqual(a.values[i], b.values[i]) {
			return false
		}
	}

	return true
}

// Compare orders two records lexicographically over their value sequences:
// the first unequal element pair decides, and a sequence that is a strict
// prefix of the other orders first. Element ordering is defined for integer
// and float kinds (compared numerically across kinds, integers always
// exactly — no float64 widening of 64-bit values), strings, bools (false
// before true), and nested Records; any other pairing returns
// ErrIncomparable naming the offending position and Go types. NaN follows
// cmp.Compare semantics: below every other number, equal to itself.
// Complexity: O(F) over the value depth.
func Compare(a, b Record) (int, error) {
	n := min(len(a.values), len(b.values))
	for i := 0; i < n; i++ {
		c, err := elemCompare(a.values[i], b.values[i])
		if err != nil {
			return 0, fmt.Errorf("position %d: %w", i, err)
		}
		if c != 0 {
			return c, nil
		}
	}

	return cmp.Compare(len(a.values), len(b.values)), nil
}

// elemEqual compares one element pair. Records get structural treatment
// first so that descriptor identity never leaks into equality, and numeric
// kinds compare by exact value so that Equal agrees with Compare.
func elemEqual(x, y any) bool {
	if xr, ok := x.(Record); ok {
		yr, ok2 := y.(Record)

		return ok2 && Equal(xr, yr)
	}
	if c, ok := numCompare(x, y); ok {
		return c == 0
	}

	return reflect.DeepEqual(x, y)
}

// elemCompare orders one element pair, or reports ErrIncomparable.
func elemCompare(x, y any) (int, error) {
	switch xv := x.(type) {
	case Record:
		if yv, ok := y.(Record); ok {
			return Compare(xv, yv)
		}
	case string:
		if yv, ok := y.(string); ok {
			return strings.Compare(xv, yv), nil
		}
	case bool:
		if yv, ok := y.(bool); ok {
			switch {
			case xv == yv:
				return 0, nil
			case !xv:
				return -1, nil
			default:
				return 1, nil
			}
		}
	}
	if c, ok := numCompare(x, y); ok {
		return c, nil
	}

	return 0, fmt.Errorf("%w: %T vs %T", ErrIncomparable, x, y)
}

// numCompare orders two numeric values exactly, reporting ok=false when
// either operand is not a numeric kind. Same-signedness integer pairs
// compare in their native width, mixed signedness resolves via a sign check,
// and integer/float pairs compare without collapsing the integer into
// float64 (distinct 64-bit values never alias).
func numCompare(x, y any) (int, bool) {
	xi, xiok := asInt64(x)
	xu, xuok := asUint64(x)
	xf, xfok := asFloat64(x)
	if !xiok && !xuok && !xfok {
		return 0, false
	}
	yi, yiok := asInt64(y)
	yu, yuok := asUint64(y)
	yf, yfok := asFloat64(y)

	switch {
	case xiok && yiok:
		return cmp.Compare(xi, yi), true
	case xuok && yuok:
		return cmp.Compare(xu, yu), true
	case xiok && yuok:
		return compareIntUint(xi, yu), true
	case xuok && yiok:
		return -compareIntUint(yi, xu), true
	case xfok && yfok:
		return cmp.Compare(xf, yf), true
	case xiok && yfok:
		return compareIntFloat(xi, yf), true
	case xfok && yiok:
		return -compareIntFloat(yi, xf), true
	case xuok && yfok:
		return compareUintFloat(xu, yf), true
	case xfok && yuok:
		return -compareUintFloat(yu, xf), true
	}

	return 0, false
}

// compareIntUint orders a signed against an unsigned integer.
func compareIntUint(i int64, u uint64) int {
	if i < 0 {
		return -1
	}

	return cmp.Compare(uint64(i), u)
}

// compareIntFloat orders an int64 against a float64 exactly: out-of-range
// floats resolve by sign, in-range floats compare on their truncated integer
// part first and break ties on the fractional remainder.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= maxInt64Float:
		return -1
	case f < minInt64Float:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(i, int64(t)); c != 0 {
		return c
	}

	return cmp.Compare(0, f-t)
}

// compareUintFloat orders a uint64 against a float64 exactly, mirroring
// compareIntFloat for the unsigned range.
func compareUintFloat(u uint64, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f >= maxUint64Float:
		return -1
	case f < 0:
		return 1
	}
	t := math.Trunc(f)
	if c := cmp.Compare(u, uint64(t)); c != 0 {
		return c
	}

	return cmp.Compare(0, f-t)
}

// asInt64 widens any signed integer kind losslessly.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}

	return 0, false
}

// asUint64 widens any unsigned integer kind losslessly.
func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	}

	return 0, false
}

// asFloat64 widens the float kinds.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
