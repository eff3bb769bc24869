// Package token defines the typed (group code, value) token model consumed by
// the matching engine. The value kind of a token is fixed by its group code;
// see KindOf for the exact table.
package token

import (
	"fmt"
)

// Kind enumerates token value kinds.
type Kind int

const (
	Text Kind = iota
	Float
	Integer
	Boolean
)

var kindNames = [...]string{"text", "float", "integer", "boolean"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one typed tag of a record stream. Tokens are immutable values;
// the zero Token is a Text token with code 0 and empty text.
type Token struct {
	code int
	kind Kind
	text string
	num  float64
	int_ int64
	flag bool
}

// Code returns the group code.
func (t Token) Code() int {
	return t.code
}

// Kind returns the value kind.
func (t Token) Kind() Kind {
	return t.kind
}

// Text returns the text value; empty string for non-text tokens.
func (t Token) Text() string {
	return t.text
}

// Float returns the float value; 0 for non-float tokens.
func (t Token) Float() float64 {
	return t.num
}

// Int returns the integer value; 0 for non-integer tokens.
func (t Token) Int() int64 {
	return t.int_
}

// Bool returns the boolean value; false for non-boolean tokens.
func (t Token) Bool() bool {
	return t.flag
}

// Value returns the value as text, float64, int64, or bool depending on Kind.
func (t Token) Value() any {
	switch t.kind {
	case Float:
		return t.num
	case Integer:
		return t.int_
	case Boolean:
		return t.flag
	default:
		return t.text
	}
}

func (t Token) String() string {
	if t.code == EofCode {
		return EofName
	}
	return fmt.Sprintf("(%d, %v)", t.code, t.Value())
}

// NewText creates a text token.
func NewText(code int, text string) Token {
	return Token{code: code, kind: Text, text: text}
}

// NewFloat creates a float token.
func NewFloat(code int, value float64) Token {
	return Token{code: code, kind: Float, num: value}
}

// NewInt creates an integer token.
func NewInt(code int, value int64) Token {
	return Token{code: code, kind: Integer, int_: value}
}

// NewBool creates a boolean token.
func NewBool(code int, value bool) Token {
	return Token{code: code, kind: Boolean, flag: value}
}

const (
	// EofCode is the reserved group code of the end-of-stream marker.
	// Real streams never contain it, group codes are non-negative.
	EofCode = -2
	EofName = "-end-of-stream-"
)

// Eof returns the end-of-stream marker token.
func Eof() Token {
	return Token{code: EofCode, kind: Text, text: EofName}
}

// IsEof reports whether t is the end-of-stream marker.
func (t Token) IsEof() bool {
	return t.code == EofCode
}
