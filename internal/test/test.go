// Package test contains assertion helpers shared by dxfmatch tests.
package test

import (
	"fmt"
	"testing"

	"github.com/vagran/dxfmatch"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	t.Fatal(message)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectNoError(t *testing.T, e error) {
	t.Helper()
	if e != nil {
		fatalf(t, "unexpected error: %s", e.Error())
	}
}

// ExpectErrorCode asserts that e is a *dxfmatch.Error carrying the given
// code.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if e != nil {
		ee, valid := e.(*dxfmatch.Error)
		if valid && ee.Code == expected {
			return
		}
	}
	fatalf(t, "expecting error code %d, got %v", expected, e)
}
