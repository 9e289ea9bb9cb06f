package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "missing"
	}
}

// Value is a single cell: missing, a number, or text. The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	text string
}

func Missing() Value { return Value{} }

// Number returns a numeric cell. NaN is stored as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

func Text(s string) Value { return Value{kind: KindText, text: s} }

// Int is a convenience for integral numbers such as season years.
func Int(i int) Value { return Number(float64(i)) }

// ParseNumber converts raw text into a Number, or Missing when it does not parse.
func ParseNumber(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return Number(f)
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric reading of the cell. Text cells are parsed.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		n := ParseNumber(v.text)
		return n.num, n.kind == KindNumber
	default:
		return 0, false
	}
}

// Int returns the value truncated to an int when it is numeric.
func (v Value) Int() (int, bool) {
	f, ok := v.Float()
	if !ok || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// String renders the cell the way it is persisted: numbers in shortest form,
// missing as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.text
	default:
		return ""
	}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindText:
		return v.text == other.text
	default:
		return true
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
