package matcher

import (
	"github.com/vagran/dxfmatch/grammar"
	"github.com/vagran/dxfmatch/tree"
)

// interp is one surviving interpretation materialized for disambiguation:
// for every consumed leaf (final eof marker included) the chain of arena
// records from the root instance down to the leaf, plus the total number of
// distinct instances, i.e. the total repetition count.
type interp struct {
	tip   int32
	paths [][]int32
	size  int
}

// leaves returns the consuming leaf records of the interpretation ending at
// tip, in token order.
func (m *Engine) leaves(tip int32) []int32 {
	var rev []int32
	for i := tip; i != noIndex; i = m.arena[i].prev {
		rev = append(rev, i)
	}
	out := make([]int32, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// path returns the arena records from the root instance down to leaf.
func (m *Engine) path(leaf int32) []int32 {
	var rev []int32
	for i := leaf; i != noIndex; i = m.arena[i].parent {
		rev = append(rev, i)
	}
	out := make([]int32, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

func (m *Engine) interpOf(tip int32) *interp {
	leaves := m.leaves(tip)
	paths := make([][]int32, len(leaves))
	seen := map[int32]bool{}
	for i, leaf := range leaves {
		paths[i] = m.path(leaf)
		for _, idx := range paths[i] {
			seen[idx] = true
		}
	}
	return &interp{tip: tip, paths: paths, size: len(seen)}
}

// compare orders two interpretations of the same token stream: negative
// means a wins, positive means b wins, zero means the tie-break rules do not
// converge and div names the grammar node at the point of divergence. The
// first divergence in (token, depth) order decides: an alternation choice is
// won by the earlier-declared branch, anything else falls back to the total
// repetition count.
func (m *Engine) compare(a, b *interp) (cmp int, div *grammar.Node) {
	for k := range a.paths {
		pa := a.paths[k]
		pb := b.paths[k]
		depth := len(pa)
		if len(pb) < depth {
			depth = len(pb)
		}
		for j := 0; j < depth; j++ {
			if pa[j] == pb[j] {
				continue
			}

			// both records are children of the instance at pa[j-1];
			// j is never 0, all interpretations share the root instance
			na := m.arena[pa[j]]
			nb := m.arena[pb[j]]
			parent := m.arena[na.parent].g
			if parent.Kind() == grammar.Alternation && na.pos != nb.pos {
				if na.pos < nb.pos {
					return -1, nil
				}
				return 1, nil
			}

			if a.size != b.size {
				if a.size < b.size {
					return -1, nil
				}
				return 1, nil
			}
			return 0, parent
		}
	}
	return 0, nil
}

// resolve picks the single committed interpretation out of the tips that
// survived the end-of-stream marker. The choice never depends on tip
// creation order.
func (m *Engine) resolve(finals []int32) (int32, error) {
	if len(finals) == 1 {
		return finals[0], nil
	}

	all := make([]*interp, len(finals))
	for i, f := range finals {
		all[i] = m.interpOf(f)
	}

	best := all[0]
	for _, cand := range all[1:] {
		if c, _ := m.compare(cand, best); c < 0 {
			best = cand
		}
	}

	// the two tie-break rules are not mutually transitive, so the scan
	// winner must still beat every rival it never met directly; a tie or
	// a loss here means no interpretation dominates all others
	for _, cand := range all {
		if cand == best {
			continue
		}
		c, div := m.compare(best, cand)
		if c >= 0 {
			return noIndex, ambiguousGrammarError(m, div)
		}
	}
	return best.tip, nil
}

// commit materializes the winning interpretation as an immutable parse
// tree. The end-of-stream marker is not part of the committed record, its
// ancestors are.
func (m *Engine) commit(tip int32) *tree.Tree {
	b := tree.NewBuilder()
	built := map[int32]*tree.Node{}

	for _, leaf := range m.leaves(tip) {
		var parent *tree.Node
		for _, idx := range m.path(leaf) {
			if n, ok := built[idx]; ok {
				parent = n
				continue
			}

			pn := m.arena[idx]
			switch pn.g.Kind() {
			case grammar.Eof:
				continue
			case grammar.Terminal:
				parent = b.Leaf(pn.g, int(pn.rep), parent, pn.tok)
			default:
				parent = b.Node(pn.g, int(pn.rep), parent)
			}
			built[idx] = parent
		}
	}

	return b.Done()
}
