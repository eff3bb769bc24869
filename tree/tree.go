// Package tree holds the parse tree committed by a successful match: the
// realized grammar-node instances in root-to-leaf token order together with
// the consumed tokens. Trees are immutable once built.
package tree

import (
	"strings"

	"github.com/vagran/dxfmatch/grammar"
	"github.com/vagran/dxfmatch/token"
)

// Node is one realized grammar-node repetition of the committed
// interpretation.
type Node struct {
	g        *grammar.Node
	tok      token.Token
	isLeaf   bool
	rep      int
	parent   *Node
	children []*Node
}

// Grammar returns the grammar node this instance realized.
func (n *Node) Grammar() *grammar.Node {
	return n.g
}

// Token returns the consumed token of a leaf node; ok is false for
// sequence and alternation instances.
func (n *Node) Token() (t token.Token, ok bool) {
	return n.tok, n.isLeaf
}

// Rep returns the 1-based repetition ordinal of this instance.
func (n *Node) Rep() int {
	return n.rep
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child instances in token order.
// Callers must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// Ancestor returns the ancestor the given number of levels above the node,
// 0 being the parent; nil when the root is passed.
func Ancestor(n *Node, level int) *Node {
	for n != nil && level >= 0 {
		n = n.parent
		level--
	}
	return n
}

// Pair is one committed (grammar node id, token) entry.
type Pair struct {
	NodeId int
	Tok    token.Token
}

// Tree is the committed parse tree.
type Tree struct {
	root  *Node
	pairs []Pair
}

// Root returns the root instance (the grammar root sequence).
func (t *Tree) Root() *Node {
	return t.root
}

// Pairs returns the committed (grammar node id, token) list in token order.
// Callers must not modify the returned slice.
func (t *Tree) Pairs() []Pair {
	return t.pairs
}

// Len returns the number of consumed tokens.
func (t *Tree) Len() int {
	return len(t.pairs)
}

// Walk calls visit for every node in depth-first token order, root first.
// Traversal stops early when visit returns false.
func (t *Tree) Walk(visit func(n *Node) bool) {
	if t.root != nil {
		walk(t.root, visit)
	}
}

func walk(n *Node, visit func(n *Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func (t *Tree) String() string {
	var sb strings.Builder
	for i, p := range t.pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Tok.String())
	}
	return sb.String()
}

// Builder accumulates a tree during commit. It is used by the matcher
// package; a built Tree is immutable.
type Builder struct {
	tree Tree
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Node appends a sequence or alternation instance under parent; a nil
// parent makes the instance the root.
func (b *Builder) Node(g *grammar.Node, rep int, parent *Node) *Node {
	n := &Node{g: g, rep: rep, parent: parent}
	b.attach(n, parent)
	return n
}

// Leaf appends a terminal instance with its consumed token under parent and
// records the (node id, token) pair.
func (b *Builder) Leaf(g *grammar.Node, rep int, parent *Node, tok token.Token) *Node {
	n := &Node{g: g, rep: rep, parent: parent, tok: tok, isLeaf: true}
	b.attach(n, parent)
	b.tree.pairs = append(b.tree.pairs, Pair{g.Id(), tok})
	return n
}

func (b *Builder) attach(n *Node, parent *Node) {
	if parent == nil {
		b.tree.root = n
	} else {
		parent.children = append(parent.children, n)
	}
}

// Done returns the finished tree. The builder must not be used afterwards.
func (b *Builder) Done() *Tree {
	return &b.tree
}
