package token

import (
	"strconv"

	"github.com/vagran/dxfmatch"
)

type codeRange struct {
	low, high int
	kind      Kind
}

// Value kinds per group code range, preserved bit-for-bit from the host
// interchange format. Gaps (e.g. 150-159, 482-998) have no assigned kind.
var codeRanges = []codeRange{
	{0, 9, Text},
	{10, 59, Float},
	{60, 99, Integer},
	{100, 109, Text},
	{110, 149, Float},
	{160, 179, Integer},
	{210, 239, Float},
	{270, 289, Integer},
	{290, 299, Boolean},
	{300, 369, Text},
	{370, 389, Integer},
	{390, 399, Text},
	{400, 409, Integer},
	{410, 419, Text},
	{420, 429, Integer},
	{430, 439, Text},
	{440, 459, Integer},
	{460, 469, Float},
	{470, 481, Text},
	{999, 999, Text},
	{1000, 1009, Text},
	{1010, 1059, Float},
	{1060, 1071, Integer},
}

// KindOf returns the value kind assigned to a group code.
// known is false for codes outside every assigned range; such codes are
// treated as text.
func KindOf(code int) (kind Kind, known bool) {
	l := 0
	h := len(codeRanges)
	for l < h {
		i := (l + h) >> 1
		r := codeRanges[i]
		if code < r.low {
			h = i
		} else if code > r.high {
			l = i + 1
		} else {
			return r.kind, true
		}
	}
	return Text, false
}

// Parse converts one raw tag into a typed token according to the group code
// table. Unrecognized codes yield a text token and, when diags is not nil,
// a report through it. Literals that do not parse as the assigned kind
// (including a boolean literal other than "0" and "1") yield an error.
func Parse(code int, literal string, diags dxfmatch.DiagSink) (Token, error) {
	kind, known := KindOf(code)
	if !known && diags != nil {
		diags.Report(unknownCodeError(code))
	}

	switch kind {
	case Float:
		v, e := strconv.ParseFloat(literal, 64)
		if e != nil {
			return Token{}, badValueError(code, literal, kind)
		}
		return NewFloat(code, v), nil

	case Integer:
		v, e := strconv.ParseInt(literal, 10, 64)
		if e != nil {
			return Token{}, badValueError(code, literal, kind)
		}
		return NewInt(code, v), nil

	case Boolean:
		switch literal {
		case "0":
			return NewBool(code, false), nil
		case "1":
			return NewBool(code, true), nil
		default:
			return Token{}, badBoolError(code, literal)
		}

	default:
		return NewText(code, literal), nil
	}
}
