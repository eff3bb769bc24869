package tree

import (
	"testing"

	"github.com/vagran/dxfmatch/grammar"
	it "github.com/vagran/dxfmatch/internal/test"
	"github.com/vagran/dxfmatch/token"
)

// builds the tree for a record (0 "LINE") (10 1.5) (10 2.5) under
// root > seq > [term0, term10{1,2}]
func sample(t *testing.T) (*Tree, *grammar.Grammar) {
	g, e := grammar.Build(grammar.Seq(
		grammar.Term(grammar.Code(0)).Label("head"),
		grammar.Term(grammar.Code(10)).Times(1, 2),
	))
	it.ExpectNoError(t, e)

	seqG := g.Root().Children()[0]
	b := NewBuilder()
	root := b.Node(g.Root(), 1, nil)
	seq := b.Node(seqG, 1, root)
	b.Leaf(seqG.Children()[0], 1, seq, token.NewText(0, "LINE"))
	b.Leaf(seqG.Children()[1], 1, seq, token.NewFloat(10, 1.5))
	b.Leaf(seqG.Children()[1], 2, seq, token.NewFloat(10, 2.5))
	return b.Done(), g
}

func TestPairs(t *testing.T) {
	tr, _ := sample(t)
	it.ExpectInt(t, 3, tr.Len())
	ps := tr.Pairs()
	it.ExpectInt(t, 2, ps[0].NodeId)
	it.ExpectString(t, "(0, LINE)", ps[0].Tok.String())
	it.ExpectInt(t, 3, ps[1].NodeId)
	it.ExpectInt(t, 3, ps[2].NodeId)
	it.ExpectString(t, "(0, LINE) (10, 1.5) (10, 2.5)", tr.String())
}

func TestWalk(t *testing.T) {
	tr, g := sample(t)

	var order []int
	tr.Walk(func(n *Node) bool {
		order = append(order, n.Grammar().Id())
		return true
	})
	it.ExpectInt(t, 5, len(order))
	for i, id := range []int{0, 1, 2, 3, 3} {
		it.ExpectInt(t, id, order[i])
	}

	// early stop
	var count int
	tr.Walk(func(n *Node) bool {
		count++
		return n.Grammar() != g.Root().Children()[0]
	})
	it.ExpectInt(t, 2, count)
}

func TestNodes(t *testing.T) {
	tr, _ := sample(t)
	root := tr.Root()
	it.Assert(t, root.Parent() == nil, "root must have no parent")
	_, leaf := root.Token()
	it.ExpectBool(t, false, leaf)

	seq := root.Children()[0]
	it.ExpectInt(t, 3, len(seq.Children()))

	head := seq.Children()[0]
	tok, leaf := head.Token()
	it.ExpectBool(t, true, leaf)
	it.ExpectString(t, "head", head.Grammar().Ref())
	it.ExpectString(t, "(0, LINE)", tok.String())
	it.ExpectInt(t, 1, head.Rep())
	it.ExpectInt(t, 2, seq.Children()[2].Rep())
}

func TestAncestor(t *testing.T) {
	tr, _ := sample(t)
	seq := tr.Root().Children()[0]
	head := seq.Children()[0]

	it.Assert(t, Ancestor(head, 0) == seq, "level 0 must be the parent")
	it.Assert(t, Ancestor(head, 1) == tr.Root(), "level 1 must be the grandparent")
	it.Assert(t, Ancestor(head, 2) == nil, "walking past the root must yield nil")
	it.Assert(t, Ancestor(tr.Root(), 0) == nil, "the root has no ancestors")
}
