package internal

import "strconv"

// Runtime values are one of exactly four shapes: nil, slateBool,
// slateNumber or slateString. Every operation over values (truthiness,
// equality, arithmetic, printing) handles all four.
type slateBool bool

type slateNumber float64

type slateString string

// truthy follows the usual rule: nil and false are falsy,
// everything else (including 0 and "") is truthy.
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, isBool := value.(slateBool); isBool {
		return bool(b)
	}
	return true
}

// valueEquals compares two runtime values structurally. Values of
// different shapes are unequal, never a type error.
func valueEquals(left, right interface{}) slateBool {
	if left == nil && right == nil {
		return true
	}
	if left == nil || right == nil {
		return false
	}
	switch l := left.(type) {
	case slateBool:
		r, ok := right.(slateBool)
		return slateBool(ok && l == r)
	case slateNumber:
		r, ok := right.(slateNumber)
		return slateBool(ok && l == r)
	case slateString:
		r, ok := right.(slateString)
		return slateBool(ok && l == r)
	}
	return false
}

// printString renders a value the way the print statement shows it:
// nil as the empty string, numbers without a trailing .0 when integral,
// strings unquoted.
func printString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case slateBool:
		if v {
			return "true"
		}
		return "false"
	case slateNumber:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case slateString:
		return string(v)
	}
	return ""
}
