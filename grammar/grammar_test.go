package grammar

import (
	"testing"

	it "github.com/vagran/dxfmatch/internal/test"
	"github.com/vagran/dxfmatch/token"
)

func TestBadQuantifier(t *testing.T) {
	samples := []struct {
		min, max int
	}{
		{3, 1},
		{-1, 2},
		{0, -2},
	}
	for _, s := range samples {
		_, e := Build(Term(Code(0)).Times(s.min, s.max))
		it.ExpectErrorCode(t, BadQuantifierError, e)
	}

	// both bounds zero read as the default 1..1
	g, e := Build(Term(Code(0)).Times(0, 0))
	it.ExpectNoError(t, e)
	top := g.Root().Children()[0]
	it.ExpectInt(t, 1, top.Min())
	it.ExpectInt(t, 1, top.Max())
}

func TestEmptyAlternation(t *testing.T) {
	_, e := Build(Seq(Alt()))
	it.ExpectErrorCode(t, EmptyAlternationError, e)
}

func TestCyclicReference(t *testing.T) {
	d := Seq(Term(Code(0)))
	d.Children = append(d.Children, d)
	_, e := Build(d)
	it.ExpectErrorCode(t, CyclicReferenceError, e)

	inner := Alt(Term(Code(8)))
	outer := Seq(inner)
	inner.Children = append(inner.Children, outer)
	_, e = Build(outer)
	it.ExpectErrorCode(t, CyclicReferenceError, e)
}

func TestNilDefinition(t *testing.T) {
	_, e := Build(nil)
	it.ExpectErrorCode(t, NilNodeError, e)
	_, e = Build(Seq(Term(Code(0)), nil))
	it.ExpectErrorCode(t, NilNodeError, e)
}

func TestTerminalWithoutPredicate(t *testing.T) {
	_, e := Build(Seq(&NodeDef{Kind: Terminal}))
	it.ExpectErrorCode(t, NoPredicateError, e)
}

func TestSharedDefinitionCloned(t *testing.T) {
	point := Term(Code(10)).Label("point")
	g, e := Build(Seq(point, point))
	it.ExpectNoError(t, e)

	// root, sequence, two clones of point, eof
	it.ExpectInt(t, 5, g.NodeCount())
	seq := g.Root().Children()[0]
	a, b := seq.Children()[0], seq.Children()[1]
	it.Assert(t, a != b, "shared definition must build distinct nodes")
	it.Assert(t, a.Id() != b.Id(), "clones got the same id")
	it.ExpectString(t, "point", a.Ref())
	it.ExpectString(t, "point", b.Ref())
}

func TestNodeIds(t *testing.T) {
	g, e := Build(Seq(
		Term(Code(0)),
		Alt(Term(Code(8)), Term(Code(62))),
	))
	it.ExpectNoError(t, e)

	// depth-first declaration order: root 0, sequence 1, first terminal 2,
	// alternation 3, its branches 4 and 5, eof 6
	it.ExpectInt(t, 7, g.NodeCount())
	it.ExpectInt(t, 0, g.Root().Id())
	seq := g.Root().Children()[0]
	it.ExpectInt(t, 1, seq.Id())
	it.ExpectInt(t, 2, seq.Children()[0].Id())
	alt := seq.Children()[1]
	it.ExpectInt(t, 3, alt.Id())
	it.ExpectInt(t, 4, alt.Children()[0].Id())
	it.ExpectInt(t, 5, alt.Children()[1].Id())
	for id := 0; id < g.NodeCount(); id++ {
		it.ExpectInt(t, id, g.NodeById(id).Id())
	}
	it.Assert(t, g.NodeById(7) == nil, "id past the last node must yield nil")
	it.Assert(t, g.NodeById(-1) == nil, "negative id must yield nil")
}

func TestNullable(t *testing.T) {
	g, e := Build(Seq(
		Term(Code(0)).Opt(),
		Seq(Term(Code(8)).Opt()).Label("allOpt"),
		Alt(Term(Code(10)), Term(Code(20)).Opt()).Label("someOpt"),
		Term(Code(30)),
	))
	it.ExpectNoError(t, e)

	seq := g.Root().Children()[0]
	it.ExpectBool(t, false, seq.Nullable())
	it.ExpectBool(t, true, seq.Children()[0].Nullable())
	it.ExpectBool(t, true, seq.Children()[1].Nullable())
	it.ExpectBool(t, true, seq.Children()[2].Nullable())
	it.ExpectBool(t, false, seq.Children()[3].Nullable())
	it.ExpectBool(t, false, g.Root().Nullable())
}

func TestRef(t *testing.T) {
	g, e := Build(Seq(Term(Code(0)).Label("head"), Term(Code(8))))
	it.ExpectNoError(t, e)
	seq := g.Root().Children()[0]
	it.ExpectString(t, "head", seq.Children()[0].Ref())
	it.ExpectString(t, "#3", seq.Children()[1].Ref())
}

func TestPredicates(t *testing.T) {
	it.ExpectBool(t, true, Code(8)(token.NewText(8, "0")))
	it.ExpectBool(t, false, Code(8)(token.NewText(9, "0")))

	r := CodeRange(10, 59)
	it.ExpectBool(t, true, r(token.NewFloat(10, 1)))
	it.ExpectBool(t, true, r(token.NewFloat(59, 1)))
	it.ExpectBool(t, false, r(token.NewFloat(60, 1)))

	ct := CodeText(0, "LINE")
	it.ExpectBool(t, true, ct(token.NewText(0, "LINE")))
	it.ExpectBool(t, false, ct(token.NewText(0, "ARC")))
	it.ExpectBool(t, false, ct(token.NewText(1, "LINE")))
}

func TestMatchRejectsEof(t *testing.T) {
	g, e := Build(Term(CodeRange(-10, 10)))
	it.ExpectNoError(t, e)
	term := g.Root().Children()[0]
	it.ExpectBool(t, true, term.Match(token.NewText(0, "LINE")))
	it.ExpectBool(t, false, term.Match(token.Eof()))

	eof := g.Root().Children()[1]
	it.ExpectBool(t, true, eof.Match(token.Eof()))
	it.ExpectBool(t, false, eof.Match(token.NewText(0, "LINE")))
}
