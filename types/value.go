package types

import (
	"math"
	"strings"
)

// Value is a dynamic scalar handled by simulators: nil, bool, int64, float64 or string.
type Value = any

// Normalize folds numeric kinds into int64 or float64. Integral floats become int64 so 1 and 1.0
// address the same vertex or hash key.
func Normalize(v Value) Value {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return normalizeUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return normalizeUint(x)
	case float32:
		return normalizeFloat(float64(x))
	case float64:
		return normalizeFloat(x)
	default:
		return v
	}
}

// normalizeUint keeps values exceeding int64 range as float64 instead of wrapping them to negatives.
func normalizeUint(u uint64) Value {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

func normalizeFloat(f float64) Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return int64(f)
	}
	return f
}

// AsInt returns the value as int64 if it is an integral number.
func AsInt(v Value) (int64, bool) {
	i, ok := Normalize(v).(int64)
	return i, ok
}

// AsFloat returns the value as float64 if it is a number.
func AsFloat(v Value) (float64, bool) {
	switch x := Normalize(v).(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

func rank(v Value) int {
	switch v.(type) {
	case nil:
		return rankNil
	case bool:
		return rankBool
	case int64, float64:
		return rankNumber
	case string:
		return rankString
	default:
		return rankOther
	}
}

// Compare orders two values. Values of different kinds are ordered nil < bool < number < string,
// numbers compare numerically and strings bytewise. It returns -1, 0 or +1.
func Compare(a, b Value) int {
	a, b = Normalize(a), Normalize(b)
	ra, rb := rank(a), rank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch ra {
	case rankBool:
		ab, bb := a.(bool), b.(bool)
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		default:
			return 1
		}
	case rankNumber:
		if ai, ok := a.(int64); ok {
			if bi, ok := b.(int64); ok {
				switch {
				case ai < bi:
					return -1
				case ai > bi:
					return 1
				default:
					return 0
				}
			}
		}
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		return 0
	}
}

// Less reports whether a orders before b.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

// Equal reports whether both values are the same after normalization.
func Equal(a, b Value) bool {
	return rank(Normalize(a)) == rank(Normalize(b)) && Compare(a, b) == 0
}
