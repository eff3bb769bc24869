// Package matcher implements the incremental matching engine: it consumes
// one typed token at a time, keeps every interpretation of the prefix that is
// still consistent with the grammar alive as a tip, and commits exactly one
// interpretation when the stream ends.
package matcher

import (
	"github.com/vagran/dxfmatch/grammar"
	"github.com/vagran/dxfmatch/token"
	"github.com/vagran/dxfmatch/tree"
)

// State enumerates engine states.
type State int

const (
	Idle State = iota
	Matching
	Finished
	Failed
)

var stateNames = [...]string{"idle", "matching", "finished", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "state(?)"
	}
	return stateNames[s]
}

const noIndex = int32(-1)

// pnode is one attempted repetition of a grammar node within one
// interpretation. Records are immutable once added; interpretations share
// their common prefix chains. Dead candidates are left in the arena
// unreferenced and vanish with the engine.
type pnode struct {
	g      *grammar.Node
	parent int32 // enclosing instance, noIndex for the root instance
	pos    int32 // index of g within the parent grammar node's children
	rep    int32 // repetition ordinal, 1-based
	prev   int32 // previous consuming leaf in the same interpretation
	tok    token.Token
}

// Engine matches one record against a grammar. An engine is exclusively
// owned by its caller and requires no locking; only the grammar may be
// shared between engines.
type Engine struct {
	grammar *grammar.Grammar

	// Stream is an optional stream name used in error messages.
	Stream string

	// TipLimit caps the number of live tips after a Feed; zero means no
	// limit. Exceeding it fails the engine with TooAmbiguousError.
	TipLimit int

	arena     []pnode
	tips      []int32
	state     State
	offset    int
	failure   error
	committed *tree.Tree
}

// New creates an engine for one record. The grammar must come from
// grammar.Build and is only read.
func New(g *grammar.Grammar) *Engine {
	return &Engine{grammar: g}
}

// State returns the current engine state.
func (m *Engine) State() State {
	return m.state
}

// StreamName returns the stream name for error reporting.
func (m *Engine) StreamName() string {
	return m.Stream
}

// Offset returns the ordinal of the token being consumed, i.e. the number
// of tokens accepted so far.
func (m *Engine) Offset() int {
	return m.offset
}

// Tips returns the number of live interpretations.
func (m *Engine) Tips() int {
	return len(m.tips)
}

// Feed consumes the next token of the record. A token matching no live
// interpretation fails the engine with NoMatchError; once failed, every
// further Feed returns the original failure.
func (m *Engine) Feed(t token.Token) error {
	switch m.state {
	case Failed:
		return m.failure
	case Finished:
		return wrongStateError(m.state)
	}
	if t.IsEof() {
		return eofFedError()
	}

	tips := m.advance(t)
	if len(tips) == 0 {
		return m.fail(noMatchError(m, t))
	}
	if m.TipLimit > 0 && len(tips) > m.TipLimit {
		return m.fail(tooAmbiguousError(m, len(tips), m.TipLimit))
	}

	m.tips = tips
	m.state = Matching
	m.offset++
	return nil
}

// Finish injects the end-of-stream marker, disambiguates the surviving
// interpretations and commits exactly one of them. Repeated Finish on a
// finished engine returns the committed tree again.
func (m *Engine) Finish() (*tree.Tree, error) {
	switch m.state {
	case Failed:
		return nil, m.failure
	case Finished:
		return m.committed, nil
	}

	finals := m.advance(token.Eof())
	if len(finals) == 0 {
		return nil, m.fail(incompleteMatchError(m))
	}

	winner, e := m.resolve(finals)
	if e != nil {
		return nil, m.fail(e)
	}

	m.committed = m.commit(winner)
	m.tips = nil
	m.state = Finished
	return m.committed, nil
}

func (m *Engine) fail(e error) error {
	m.state = Failed
	m.failure = e
	m.tips = nil
	return e
}

func (m *Engine) add(n pnode) int32 {
	m.arena = append(m.arena, n)
	return int32(len(m.arena) - 1)
}

// advance computes the tip set after consuming t. On the first call it
// expands the grammar depth-first from the root; afterwards it resumes at
// each live tip, so per-token cost depends on grammar depth and ambiguity,
// not on the length of the prefix consumed so far.
func (m *Engine) advance(t token.Token) []int32 {
	var out []int32
	if m.state == Idle {
		root := m.add(pnode{g: m.grammar.Root(), parent: noIndex, rep: 1, prev: noIndex})
		m.enterChildren(root, 0, noIndex, t, &out)
	} else {
		for _, tip := range m.tips {
			m.extend(tip, t, &out)
		}
	}
	return out
}

// extend resumes one tip: the consuming leaf is first offered one more
// repetition of its own node, then, once its minimum is met, the successor
// candidates of every enclosing node in turn (the cross-level fallback
// chain).
func (m *Engine) extend(tip int32, t token.Token, out *[]int32) {
	n := m.arena[tip]
	if (n.g.Max() == grammar.Unbounded || int(n.rep) < n.g.Max()) && n.g.Match(t) {
		*out = append(*out, m.add(pnode{
			g: n.g, parent: n.parent, pos: n.pos, rep: n.rep + 1, prev: tip, tok: t,
		}))
	}
	if int(n.rep) >= n.g.Min() {
		m.climb(n.parent, int(n.pos), tip, t, out)
	}
}

// climb moves past the child at fromPos within the instance at idx: in a
// sequence the following children become candidates until a non-skippable
// one is reached; reaching the end (or leaving an alternation branch)
// completes one repetition of the instance itself.
func (m *Engine) climb(idx int32, fromPos int, prev int32, t token.Token, out *[]int32) {
	if idx == noIndex {
		return
	}

	n := m.arena[idx]
	if n.g.Kind() == grammar.Sequence {
		if m.enterChildren(idx, fromPos+1, prev, t, out) {
			return
		}
	}
	m.complete(idx, prev, t, out)
}

// complete handles a finished repetition of the instance at idx: another
// repetition of the same node is offered while its maximum allows, and once
// its minimum is met the walk continues in the enclosing instance. Both
// outcomes may yield tips; that is how variable-length repetition forks
// interpretations.
func (m *Engine) complete(idx int32, prev int32, t token.Token, out *[]int32) {
	n := m.arena[idx]
	if n.g.Max() == grammar.Unbounded || int(n.rep) < n.g.Max() {
		next := m.add(pnode{g: n.g, parent: n.parent, pos: n.pos, rep: n.rep + 1, prev: noIndex})
		m.descend(next, prev, t, out)
	}
	if int(n.rep) >= n.g.Min() {
		m.climb(n.parent, int(n.pos), prev, t, out)
	}
}

// enterChildren tries the children of the sequence instance at idx starting
// at position from, skipping leading nullable children. Returns true when a
// non-skippable child was reached, false when the end of the child list is
// reachable without consuming.
func (m *Engine) enterChildren(idx int32, from int, prev int32, t token.Token, out *[]int32) bool {
	children := m.arena[idx].g.Children()
	for pos := from; pos < len(children); pos++ {
		m.enter(children[pos], idx, pos, prev, t, out)
		if !children[pos].Nullable() {
			return true
		}
	}
	return false
}

// enter attempts the first repetition of grammar node g as child pos of the
// instance at parentIdx.
func (m *Engine) enter(g *grammar.Node, parentIdx int32, pos int, prev int32, t token.Token, out *[]int32) {
	switch g.Kind() {
	case grammar.Terminal, grammar.Eof:
		if g.Match(t) {
			*out = append(*out, m.add(pnode{
				g: g, parent: parentIdx, pos: int32(pos), rep: 1, prev: prev, tok: t,
			}))
		}

	case grammar.Sequence, grammar.Alternation:
		inst := m.add(pnode{g: g, parent: parentIdx, pos: int32(pos), rep: 1, prev: noIndex})
		m.descend(inst, prev, t, out)
	}
}

// descend expands one fresh repetition of the composite instance at idx.
func (m *Engine) descend(idx int32, prev int32, t token.Token, out *[]int32) {
	n := m.arena[idx]
	switch n.g.Kind() {
	case grammar.Sequence:
		m.enterChildren(idx, 0, prev, t, out)
	case grammar.Alternation:
		for i, c := range n.g.Children() {
			m.enter(c, idx, i, prev, t, out)
		}
	}
}
