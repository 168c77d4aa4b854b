package finite

import "fmt"

// IntRange returns a descriptor for the integers in the half-open interval
// [lo, hi). Index 0 is lo, index Inhabitants()-1 is hi-1. An empty interval
// (lo == hi) is a valid, uninhabited domain; hi < lo is an error.
func IntRange(lo, hi int) (Enum[int], error) {
	if hi < lo {
		return nil, fmt.Errorf("finite: invalid range [%d, %d)", lo, hi)
	}
	return intRangeEnum{lo: lo, hi: hi}, nil
}

type intRangeEnum struct {
	lo, hi int
}

func (e intRangeEnum) Inhabitants() int { return e.hi - e.lo }

func (e intRangeEnum) ToIndex(v int) int { return v - e.lo }

func (e intRangeEnum) FromIndex(i int) (int, bool) {
	if i < 0 || i >= e.hi-e.lo {
		return 0, false
	}
	return e.lo + i, true
}
