package gramdef

import (
	"strings"

	err "github.com/vagran/dxfmatch"
)

const (
	BadTokenError = iota + err.DefErrors
	UnexpectedTokenError
	UnexpectedEndError
	EmptyGrammarError
	DuplicateRuleError
	UndefinedRuleError
	UnusedRulesError
	RecursiveRuleError
	BadRangeError
	BadQuantError
	BadNumberError
)

func badTokenError(name string, line, col int) *err.Error {
	return err.FormatError(BadTokenError, "unreadable input in %s at line %d col %d", name, line, col)
}

func unexpectedTokenError(name string, t scanToken) *err.Error {
	if t.typ == endTok {
		return err.FormatError(UnexpectedEndError, "unexpected end of description in %s at line %d col %d", name, t.line, t.col)
	}
	return err.FormatError(UnexpectedTokenError, "unexpected %q in %s at line %d col %d", t.text, name, t.line, t.col)
}

func emptyGrammarError(name string) *err.Error {
	return err.FormatError(EmptyGrammarError, "no rules in %s", name)
}

func duplicateRuleError(name string, t scanToken) *err.Error {
	return err.FormatError(DuplicateRuleError, "rule %q already defined, in %s at line %d col %d", t.text, name, t.line, t.col)
}

func undefinedRuleError(name string, ref *item) *err.Error {
	return err.FormatError(UndefinedRuleError, "undefined rule %q in %s at line %d col %d", ref.name, name, ref.line, ref.col)
}

func unusedRulesError(name string, rules []string) *err.Error {
	return err.FormatError(UnusedRulesError, "unused rules in %s: %s", name, strings.Join(rules, ", "))
}

func recursiveRuleError(name string, ref *item) *err.Error {
	return err.FormatError(RecursiveRuleError, "recursive reference to rule %q in %s at line %d col %d", ref.name, name, ref.line, ref.col)
}

func badRangeError(name string, t scanToken, low, high int) *err.Error {
	return err.FormatError(BadRangeError, "empty code range %d-%d in %s at line %d col %d", low, high, name, t.line, t.col)
}

func badQuantError(name string, t scanToken, min, max int) *err.Error {
	return err.FormatError(BadQuantError, "impossible repetition {%d,%d} in %s at line %d col %d", min, max, name, t.line, t.col)
}

func badNumberError(name string, t scanToken) *err.Error {
	return err.FormatError(BadNumberError, "number %s out of range in %s at line %d col %d", t.text, name, t.line, t.col)
}
