package token

import (
	err "github.com/vagran/dxfmatch"
)

const (
	UnknownCodeError = iota + err.TokenErrors
	BadValueError
	BadBoolError
)

func unknownCodeError(code int) *err.Error {
	return err.FormatError(UnknownCodeError, "unrecognized group code %d, value treated as text", code)
}

func badValueError(code int, literal string, kind Kind) *err.Error {
	return err.FormatError(BadValueError, "group code %d requires a %s value, got %q", code, kind, literal)
}

func badBoolError(code int, literal string) *err.Error {
	return err.FormatError(BadBoolError, "group code %d requires a boolean literal \"0\" or \"1\", got %q", code, literal)
}
