package finite

import "math"

// Unit returns the descriptor for struct{}, the single-inhabitant type.
func Unit() Enum[struct{}] { return unitEnum{} }

type unitEnum struct{}

func (unitEnum) Inhabitants() int { return 1 }
func (unitEnum) ToIndex(struct{}) int { return 0 }
func (unitEnum) FromIndex(i int) (struct{}, bool) {
	return struct{}{}, i == 0
}

// Bool returns the descriptor for bool: false is index 0, true is index 1.
func Bool() Enum[bool] { return boolEnum{} }

type boolEnum struct{}

func (boolEnum) Inhabitants() int { return 2 }

func (boolEnum) ToIndex(v bool) int {
	if v {
		return 1
	}
	return 0
}

func (boolEnum) FromIndex(i int) (bool, bool) {
	switch i {
	case 0:
		return false, true
	case 1:
		return true, true
	}
	return false, false
}

// Uint8 returns the descriptor for uint8. The index of a value equals the
// value itself, so iteration order matches numeric order.
func Uint8() Enum[uint8] { return uint8Enum{} }

type uint8Enum struct{}

func (uint8Enum) Inhabitants() int { return math.MaxUint8 + 1 }
func (uint8Enum) ToIndex(v uint8) int { return int(v) }

func (uint8Enum) FromIndex(i int) (uint8, bool) {
	if i < 0 || i > math.MaxUint8 {
		return 0, false
	}
	return uint8(i), true
}

// Uint16 returns the descriptor for uint16, indexed by numeric value.
func Uint16() Enum[uint16] { return uint16Enum{} }

type uint16Enum struct{}

func (uint16Enum) Inhabitants() int { return math.MaxUint16 + 1 }
func (uint16Enum) ToIndex(v uint16) int { return int(v) }

func (uint16Enum) FromIndex(i int) (uint16, bool) {
	if i < 0 || i > math.MaxUint16 {
		return 0, false
	}
	return uint16(i), true
}

// Int8 returns the descriptor for int8. Values are indexed by their
// two's-complement bit pattern: 0..127 come first, then -128..-1.
func Int8() Enum[int8] { return int8Enum{} }

type int8Enum struct{}

func (int8Enum) Inhabitants() int { return math.MaxUint8 + 1 }
func (int8Enum) ToIndex(v int8) int { return int(uint8(v)) }

func (int8Enum) FromIndex(i int) (int8, bool) {
	if i < 0 || i > math.MaxUint8 {
		return 0, false
	}
	return int8(uint8(i)), true
}

// Int16 returns the descriptor for int16, indexed like Int8 by bit pattern.
func Int16() Enum[int16] { return int16Enum{} }

type int16Enum struct{}

func (int16Enum) Inhabitants() int { return math.MaxUint16 + 1 }
func (int16Enum) ToIndex(v int16) int { return int(uint16(v)) }

func (int16Enum) FromIndex(i int) (int16, bool) {
	if i < 0 || i > math.MaxUint16 {
		return 0, false
	}
	return int16(uint16(i)), true
}

// Unicode scalar values exclude the UTF-16 surrogate range, so rune indices
// skip it to stay contiguous.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogateGap = surrogateMax - surrogateMin + 1
	runeCount    = 0x10FFFF + 1 - surrogateGap
)

// Rune returns the descriptor for rune over all Unicode scalar values.
// Indices follow code-point order with the surrogate range skipped;
// Inhabitants is 1,112,064.
func Rune() Enum[rune] { return runeEnum{} }

type runeEnum struct{}

func (runeEnum) Inhabitants() int { return runeCount }

func (runeEnum) ToIndex(r rune) int {
	v := int(r)
	if v > surrogateMax {
		v -= surrogateGap
	}
	return v
}

func (runeEnum) FromIndex(i int) (rune, bool) {
	if i < 0 || i >= runeCount {
		return 0, false
	}
	if i >= surrogateMin {
		i += surrogateGap
	}
	return rune(i), true
}
