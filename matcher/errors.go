package matcher

import (
	err "github.com/vagran/dxfmatch"
	"github.com/vagran/dxfmatch/grammar"
	"github.com/vagran/dxfmatch/token"
)

const (
	NoMatchError = iota + err.MatchErrors
	IncompleteMatchError
	AmbiguousGrammarError
	TooAmbiguousError
	WrongStateError
	EofFedError
)

func noMatchError(pos err.StreamPos, t token.Token) *err.Error {
	return err.FormatErrorPos(pos, NoMatchError, "token %s matches no live interpretation", t)
}

func incompleteMatchError(pos err.StreamPos) *err.Error {
	return err.FormatErrorPos(pos, IncompleteMatchError, "record ended before any interpretation was complete")
}

func ambiguousGrammarError(pos err.StreamPos, div *grammar.Node) *err.Error {
	if div == nil {
		return err.FormatErrorPos(pos, AmbiguousGrammarError, "ambiguous grammar: multiple equivalent interpretations")
	}
	return err.FormatErrorPos(pos, AmbiguousGrammarError, "ambiguous grammar: interpretations diverge at %s", div.Ref())
}

func tooAmbiguousError(pos err.StreamPos, tips, limit int) *err.Error {
	return err.FormatErrorPos(pos, TooAmbiguousError, "%d live interpretations exceed the limit of %d", tips, limit)
}

func wrongStateError(s State) *err.Error {
	return err.FormatError(WrongStateError, "engine is already %s", s)
}

func eofFedError() *err.Error {
	return err.FormatError(EofFedError, "the end-of-stream marker cannot be fed, call Finish instead")
}
