package grammar

import (
	err "github.com/vagran/dxfmatch"
)

const (
	BadQuantifierError = iota + err.GrammarErrors
	EmptyAlternationError
	CyclicReferenceError
	NilNodeError
	NoPredicateError
	LeafChildrenError
	BadKindError
)

func ref(name string) string {
	if name == "" {
		return "unnamed node"
	}
	return "node " + name
}

func badQuantifierError(name string, min, max int) *err.Error {
	return err.FormatError(BadQuantifierError, "%s: bad quantifier {%d,%d}", ref(name), min, max)
}

func emptyAlternationError(name string) *err.Error {
	return err.FormatError(EmptyAlternationError, "%s: alternation has no options", ref(name))
}

func cyclicReferenceError(name string) *err.Error {
	return err.FormatError(CyclicReferenceError, "%s: definition refers to itself", ref(name))
}

func nilNodeError(name string) *err.Error {
	return err.FormatError(NilNodeError, "%s: nil definition", ref(name))
}

func noPredicateError(name string) *err.Error {
	return err.FormatError(NoPredicateError, "%s: terminal has no predicate", ref(name))
}

func leafChildrenError(name string, kind Kind) *err.Error {
	return err.FormatError(LeafChildrenError, "%s: %s node cannot have children", ref(name), kind)
}

func badKindError(name string, kind Kind) *err.Error {
	return err.FormatError(BadKindError, "%s: unknown node kind %d", ref(name), int(kind))
}
