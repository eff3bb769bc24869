package token

import (
	"testing"

	"github.com/vagran/dxfmatch"
	it "github.com/vagran/dxfmatch/internal/test"
)

func TestKindOf(t *testing.T) {
	samples := []struct {
		code  int
		kind  Kind
		known bool
	}{
		{0, Text, true},
		{9, Text, true},
		{10, Float, true},
		{59, Float, true},
		{60, Integer, true},
		{99, Integer, true},
		{100, Text, true},
		{149, Float, true},
		{150, Text, false},
		{159, Text, false},
		{160, Integer, true},
		{179, Integer, true},
		{180, Text, false},
		{209, Text, false},
		{210, Float, true},
		{290, Boolean, true},
		{299, Boolean, true},
		{300, Text, true},
		{370, Integer, true},
		{460, Float, true},
		{469, Float, true},
		{470, Text, true},
		{481, Text, true},
		{482, Text, false},
		{998, Text, false},
		{999, Text, true},
		{1000, Text, true},
		{1010, Float, true},
		{1059, Float, true},
		{1060, Integer, true},
		{1071, Integer, true},
		{1072, Text, false},
		{-1, Text, false},
	}
	for _, s := range samples {
		kind, known := KindOf(s.code)
		it.Assert(t, kind == s.kind && known == s.known,
			"code %d: expecting (%s, %v), got (%s, %v)", s.code, s.kind, s.known, kind, known)
	}
}

func TestParse(t *testing.T) {
	tk, e := Parse(0, "LINE", nil)
	it.ExpectNoError(t, e)
	it.Expect(t, tk.Kind() == Text, Text, tk.Kind())
	it.ExpectString(t, "LINE", tk.Text())

	tk, e = Parse(10, "1.5", nil)
	it.ExpectNoError(t, e)
	it.Expect(t, tk.Kind() == Float, Float, tk.Kind())
	it.Assert(t, tk.Float() == 1.5, "expecting 1.5, got %v", tk.Float())

	tk, e = Parse(62, "-7", nil)
	it.ExpectNoError(t, e)
	it.Expect(t, tk.Kind() == Integer, Integer, tk.Kind())
	it.Assert(t, tk.Int() == -7, "expecting -7, got %v", tk.Int())

	tk, e = Parse(290, "1", nil)
	it.ExpectNoError(t, e)
	it.Expect(t, tk.Kind() == Boolean, Boolean, tk.Kind())
	it.ExpectBool(t, true, tk.Bool())

	tk, e = Parse(290, "0", nil)
	it.ExpectNoError(t, e)
	it.ExpectBool(t, false, tk.Bool())
}

func TestParseErrors(t *testing.T) {
	_, e := Parse(10, "abc", nil)
	it.ExpectErrorCode(t, BadValueError, e)

	_, e = Parse(62, "1.5", nil)
	it.ExpectErrorCode(t, BadValueError, e)

	_, e = Parse(290, "true", nil)
	it.ExpectErrorCode(t, BadBoolError, e)
}

func TestParseUnknownCode(t *testing.T) {
	var reported []*dxfmatch.Error
	sink := dxfmatch.DiagFunc(func(e *dxfmatch.Error) {
		reported = append(reported, e)
	})

	tk, e := Parse(155, "whatever", sink)
	it.ExpectNoError(t, e)
	it.Expect(t, tk.Kind() == Text, Text, tk.Kind())
	it.ExpectString(t, "whatever", tk.Text())
	it.ExpectInt(t, 1, len(reported))
	it.ExpectInt(t, UnknownCodeError, reported[0].Code)

	// nil sink just drops the diagnostic
	_, e = Parse(155, "whatever", nil)
	it.ExpectNoError(t, e)
}

func TestString(t *testing.T) {
	it.ExpectString(t, "(0, LINE)", NewText(0, "LINE").String())
	it.ExpectString(t, "(10, 1.5)", NewFloat(10, 1.5).String())
	it.ExpectString(t, "(62, 7)", NewInt(62, 7).String())
	it.ExpectString(t, "(290, true)", NewBool(290, true).String())
	it.ExpectString(t, EofName, Eof().String())
}

func TestEof(t *testing.T) {
	it.ExpectBool(t, true, Eof().IsEof())
	it.ExpectBool(t, false, NewText(0, "LINE").IsEof())
	it.ExpectInt(t, EofCode, Eof().Code())
}
