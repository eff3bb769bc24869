// Package grammar defines the immutable grammar tree recognized by the
// matching engine and the Build function validating and freezing a
// declarative description into it.
package grammar

import (
	"fmt"

	"github.com/vagran/dxfmatch/token"
)

// Kind enumerates grammar node kinds.
type Kind int

const (
	// Terminal matches exactly one token via its predicate.
	Terminal Kind = iota
	// Sequence matches its children in order.
	Sequence
	// Alternation matches exactly one of its children per repetition.
	Alternation
	// Eof matches only the end-of-stream marker.
	Eof
)

var kindNames = [...]string{"terminal", "sequence", "alternation", "eof"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Unbounded as a Max bound means no repetition limit.
const Unbounded = -1

// RootId is the node id of the root sequence of every built grammar.
const RootId = 0

// Predicate decides whether a terminal matches a token.
type Predicate func(t token.Token) bool

// Node is one node of a built grammar tree. Nodes are never mutated after
// Build returns, a grammar may be shared by concurrent engines.
type Node struct {
	kind     Kind
	min, max int
	match    Predicate
	name     string
	children []*Node
	id       int
	nullable bool
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Min returns the minimum repetition count.
func (n *Node) Min() int {
	return n.min
}

// Max returns the maximum repetition count, Unbounded for no limit.
func (n *Node) Max() int {
	return n.max
}

// Id returns the node id, unique within its grammar and assigned in
// depth-first declaration order starting from RootId.
func (n *Node) Id() int {
	return n.id
}

// Name returns the optional label given in the description, or "" if none.
func (n *Node) Name() string {
	return n.name
}

// Children returns the child list of a sequence or alternation node.
// Callers must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// Nullable reports whether the node can be satisfied consuming zero tokens.
func (n *Node) Nullable() bool {
	return n.nullable
}

// Match reports whether one repetition of a terminal or eof node accepts t.
// Always false for sequences and alternations.
func (n *Node) Match(t token.Token) bool {
	switch n.kind {
	case Terminal:
		return !t.IsEof() && n.match(t)
	case Eof:
		return t.IsEof()
	default:
		return false
	}
}

// Ref returns a human-readable reference to the node for diagnostics:
// its name when labeled, otherwise "#<id>".
func (n *Node) Ref() string {
	if n.name != "" {
		return n.name
	}
	return fmt.Sprintf("#%d", n.id)
}

// Grammar is an immutable grammar tree. The root is always a sequence with
// quantifier 1..1 whose last child is the implicit eof node.
type Grammar struct {
	root  *Node
	nodes []*Node
}

// Root returns the root sequence node.
func (g *Grammar) Root() *Node {
	return g.root
}

// NodeById returns the node with the given id or nil.
func (g *Grammar) NodeById(id int) *Node {
	if id < 0 || id >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// NodeCount returns the total number of nodes including the implicit root
// and eof nodes.
func (g *Grammar) NodeCount() int {
	return len(g.nodes)
}

// Build validates a description and freezes it into a grammar. The
// description is copied, every occurrence of a shared *NodeDef becomes a
// distinct node; a NodeDef reachable from itself is a build error. The built
// root is a 1..1 sequence holding the description followed by the implicit
// eof node.
func Build(def *NodeDef) (*Grammar, error) {
	if def == nil {
		return nil, nilNodeError("")
	}

	b := builder{onPath: map[*NodeDef]bool{}}
	top, e := b.convert(def)
	if e != nil {
		return nil, e
	}

	eof := &Node{kind: Eof, min: 1, max: 1}
	root := &Node{
		kind:     Sequence,
		min:      1,
		max:      1,
		children: []*Node{top, eof},
	}
	g := &Grammar{root: root}
	g.index(root)
	return g, nil
}

type builder struct {
	onPath map[*NodeDef]bool
}

func (b *builder) convert(def *NodeDef) (*Node, error) {
	if def == nil {
		return nil, nilNodeError("")
	}
	if b.onPath[def] {
		return nil, cyclicReferenceError(def.Name)
	}

	min, max := def.Min, def.Max
	if min == 0 && max == 0 {
		min, max = 1, 1
	}
	if min < 0 || max < Unbounded || (max != Unbounded && max < min) {
		return nil, badQuantifierError(def.Name, min, max)
	}

	n := &Node{kind: def.Kind, min: min, max: max, match: def.Match, name: def.Name}

	switch def.Kind {
	case Terminal:
		if def.Match == nil {
			return nil, noPredicateError(def.Name)
		}
		if len(def.Children) > 0 {
			return nil, leafChildrenError(def.Name, def.Kind)
		}
		n.nullable = min == 0

	case Eof:
		if len(def.Children) > 0 {
			return nil, leafChildrenError(def.Name, def.Kind)
		}

	case Sequence, Alternation:
		if def.Kind == Alternation && len(def.Children) == 0 {
			return nil, emptyAlternationError(def.Name)
		}
		b.onPath[def] = true
		n.children = make([]*Node, len(def.Children))
		allNull := true
		anyNull := false
		for i, c := range def.Children {
			cn, e := b.convert(c)
			if e != nil {
				return nil, e
			}
			n.children[i] = cn
			allNull = allNull && cn.nullable
			anyNull = anyNull || cn.nullable
		}
		delete(b.onPath, def)
		if def.Kind == Sequence {
			n.nullable = min == 0 || allNull
		} else {
			n.nullable = min == 0 || anyNull
		}

	default:
		return nil, badKindError(def.Name, def.Kind)
	}

	return n, nil
}

// index assigns node ids in depth-first declaration order.
func (g *Grammar) index(n *Node) {
	n.id = len(g.nodes)
	g.nodes = append(g.nodes, n)
	for _, c := range n.children {
		g.index(c)
	}
}
