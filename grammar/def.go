package grammar

import (
	"github.com/vagran/dxfmatch/token"
)

// NodeDef is one node of a declarative grammar description fed to Build.
// Descriptions are plain data; sharing a *NodeDef between two parents is
// allowed (each occurrence is built into a distinct node), a node reachable
// from itself is not.
type NodeDef struct {
	Kind Kind

	// Min and Max bound the repetition count; both zero mean the default
	// 1..1, Max == Unbounded means no upper limit.
	Min, Max int

	// Match is the token predicate, terminals only.
	Match Predicate

	// Name is an optional label used in diagnostics.
	Name string

	Children []*NodeDef
}

// Times sets the repetition bounds and returns the same definition.
func (d *NodeDef) Times(min, max int) *NodeDef {
	d.Min = min
	d.Max = max
	return d
}

// Opt marks the definition optional (0..1) and returns it.
func (d *NodeDef) Opt() *NodeDef {
	return d.Times(0, 1)
}

// Label names the definition for diagnostics and returns it.
func (d *NodeDef) Label(name string) *NodeDef {
	d.Name = name
	return d
}

// Term creates a terminal definition with the given predicate.
func Term(match Predicate) *NodeDef {
	return &NodeDef{Kind: Terminal, Match: match}
}

// Seq creates a sequence definition over the given children.
func Seq(children ...*NodeDef) *NodeDef {
	return &NodeDef{Kind: Sequence, Children: children}
}

// Alt creates an alternation definition over the given children.
func Alt(children ...*NodeDef) *NodeDef {
	return &NodeDef{Kind: Alternation, Children: children}
}

// End creates an explicit end-of-stream definition. Build always appends an
// implicit one under the root, an explicit End is only needed inside
// alternation branches that must end the record early.
func End() *NodeDef {
	return &NodeDef{Kind: Eof}
}

// Code returns a predicate matching tokens with the given group code.
func Code(code int) Predicate {
	return func(t token.Token) bool {
		return t.Code() == code
	}
}

// CodeRange returns a predicate matching group codes low..high inclusive.
func CodeRange(low, high int) Predicate {
	return func(t token.Token) bool {
		return t.Code() >= low && t.Code() <= high
	}
}

// CodeText returns a predicate matching the group code and exact text value.
func CodeText(code int, text string) Predicate {
	return func(t token.Token) bool {
		return t.Code() == code && t.Kind() == token.Text && t.Text() == text
	}
}
