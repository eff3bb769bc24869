/*
Package gramdef compiles a compact text notation into a grammar definition,
so record grammars can live in files next to the streams they describe.

A description is a list of named rules; the first rule is the root:

	entity = (0 "LINE"), common?, point{2,4};
	common = (8) | (60-79);     # layer or visibility flags
	point  = (10), (20), (30)?;

Terminals match one tag: (code) by group code, (low-high) by a code range,
(code "text") by code plus exact text value. Rules are referenced by name and
inlined; recursive references are rejected. Sub-expressions group with
[...], sequence with "," and alternate with "|". Any element takes a
repetition suffix: ? + * {m} {m,} {m,n}.
*/
package gramdef

import (
	"fmt"
	"strconv"

	"github.com/vagran/dxfmatch/grammar"
	"github.com/vagran/dxfmatch/internal/ints"
)

// ParseString compiles a description and builds the grammar.
func ParseString(name, content string) (*grammar.Grammar, error) {
	def, e := ParseDef(name, content)
	if e != nil {
		return nil, e
	}
	return grammar.Build(def)
}

// ParseDef compiles a description into a grammar definition without
// building it.
func ParseDef(name, content string) (*grammar.NodeDef, error) {
	toks, e := scan(name, content)
	if e != nil {
		return nil, e
	}

	c := &parseContext{name: name, toks: toks, index: map[string]int{}}
	e = c.parse()
	if e == nil {
		e = c.resolveRefs()
	}
	if e == nil {
		e = c.checkRules()
	}
	if e != nil {
		return nil, e
	}

	root := c.lower(c.rules[0].body)
	root.Name = c.rules[0].name
	return root, nil
}

// MustParse is ParseString panicking on error, for generated code and
// grammars known to be valid.
func MustParse(name, content string) *grammar.Grammar {
	g, e := ParseString(name, content)
	if e != nil {
		panic(e)
	}
	return g
}

type itemKind int

const (
	termItem itemKind = iota
	refItem
	seqItem
	altItem
)

// item is one parsed expression; min and max both zero mean no repetition
// suffix.
type item struct {
	kind      itemKind
	code, hi  int
	text      string
	hasText   bool
	name      string
	ruleIdx   int
	min, max  int
	line, col int
	children  []*item
}

type rule struct {
	name      string
	line, col int
	body      *item
	refs      []*item
}

type parseContext struct {
	name  string
	toks  []scanToken
	pos   int
	rules []*rule
	index map[string]int
}

func (c *parseContext) peek() scanToken {
	return c.toks[c.pos]
}

func (c *parseContext) fetch() scanToken {
	t := c.toks[c.pos]
	if t.typ != endTok {
		c.pos++
	}
	return t
}

func (c *parseContext) expect(typ int) (scanToken, error) {
	t := c.fetch()
	if t.typ != typ {
		return t, unexpectedTokenError(c.name, t)
	}
	return t, nil
}

func (c *parseContext) expectOp(text string) error {
	t := c.fetch()
	if t.typ != opTok || t.text != text {
		return unexpectedTokenError(c.name, t)
	}
	return nil
}

func (c *parseContext) atOp(text string) bool {
	t := c.peek()
	return t.typ == opTok && t.text == text
}

func (c *parseContext) parse() error {
	for c.peek().typ != endTok {
		e := c.parseRule()
		if e != nil {
			return e
		}
	}
	if len(c.rules) == 0 {
		return emptyGrammarError(c.name)
	}
	return nil
}

func (c *parseContext) parseRule() error {
	nt, e := c.expect(nameTok)
	if e != nil {
		return e
	}
	if _, defined := c.index[nt.text]; defined {
		return duplicateRuleError(c.name, nt)
	}
	if e = c.expectOp("="); e != nil {
		return e
	}

	r := &rule{name: nt.text, line: nt.line, col: nt.col}
	c.index[nt.text] = len(c.rules)
	c.rules = append(c.rules, r)

	r.body, e = c.parseAlt(r)
	if e != nil {
		return e
	}
	return c.expectOp(";")
}

func (c *parseContext) parseAlt(r *rule) (*item, error) {
	first, e := c.parseCat(r)
	if e != nil {
		return nil, e
	}
	if !c.atOp("|") {
		return first, nil
	}

	result := &item{kind: altItem, line: first.line, col: first.col, children: []*item{first}}
	for c.atOp("|") {
		c.fetch()
		next, e := c.parseCat(r)
		if e != nil {
			return nil, e
		}
		result.children = append(result.children, next)
	}
	return result, nil
}

func (c *parseContext) parseCat(r *rule) (*item, error) {
	first, e := c.parseUnit(r)
	if e != nil {
		return nil, e
	}
	if !c.atOp(",") {
		return first, nil
	}

	result := &item{kind: seqItem, line: first.line, col: first.col, children: []*item{first}}
	for c.atOp(",") {
		c.fetch()
		next, e := c.parseUnit(r)
		if e != nil {
			return nil, e
		}
		result.children = append(result.children, next)
	}
	return result, nil
}

func (c *parseContext) parseUnit(r *rule) (*item, error) {
	it, e := c.parsePrimary(r)
	if e != nil {
		return nil, e
	}
	return c.parseQuant(it)
}

func (c *parseContext) parsePrimary(r *rule) (*item, error) {
	t := c.fetch()
	switch {
	case t.typ == nameTok:
		it := &item{kind: refItem, name: t.text, line: t.line, col: t.col}
		r.refs = append(r.refs, it)
		return it, nil

	case t.typ == opTok && t.text == "(":
		return c.parseTerm(t)

	case t.typ == opTok && t.text == "[":
		it, e := c.parseAlt(r)
		if e != nil {
			return nil, e
		}
		return it, c.expectOp("]")

	default:
		return nil, unexpectedTokenError(c.name, t)
	}
}

// number converts a numeric literal; the scanner only passes digit runs, so
// the sole failure mode is overflow.
func (c *parseContext) number(t scanToken) (int, error) {
	n, e := strconv.Atoi(t.text)
	if e != nil {
		return 0, badNumberError(c.name, t)
	}
	return n, nil
}

func (c *parseContext) parseTerm(open scanToken) (*item, error) {
	ct, e := c.expect(numberTok)
	if e != nil {
		return nil, e
	}
	code, e := c.number(ct)
	if e != nil {
		return nil, e
	}
	it := &item{kind: termItem, code: code, hi: code, line: open.line, col: open.col}

	if c.atOp("-") {
		c.fetch()
		ht, e := c.expect(numberTok)
		if e != nil {
			return nil, e
		}
		if it.hi, e = c.number(ht); e != nil {
			return nil, e
		}
		if it.hi < it.code {
			return nil, badRangeError(c.name, open, it.code, it.hi)
		}
	} else if c.peek().typ == stringTok {
		st := c.fetch()
		it.text, e = strconv.Unquote(st.text)
		if e != nil {
			return nil, unexpectedTokenError(c.name, st)
		}
		it.hasText = true
	}

	return it, c.expectOp(")")
}

func (c *parseContext) parseQuant(it *item) (*item, error) {
	t := c.peek()
	if t.typ != opTok {
		return it, nil
	}

	switch t.text {
	case "?":
		c.fetch()
		it.min, it.max = 0, 1
	case "+":
		c.fetch()
		it.min, it.max = 1, grammar.Unbounded
	case "*":
		c.fetch()
		it.min, it.max = 0, grammar.Unbounded
	case "{":
		c.fetch()
		mt, e := c.expect(numberTok)
		if e != nil {
			return nil, e
		}
		if it.min, e = c.number(mt); e != nil {
			return nil, e
		}
		it.max = it.min
		if c.atOp(",") {
			c.fetch()
			if c.peek().typ == numberTok {
				xt := c.fetch()
				if it.max, e = c.number(xt); e != nil {
					return nil, e
				}
			} else {
				it.max = grammar.Unbounded
			}
		}
		if e = c.expectOp("}"); e != nil {
			return nil, e
		}
		if it.max == 0 || (it.max != grammar.Unbounded && it.max < it.min) {
			return nil, badQuantError(c.name, t, it.min, it.max)
		}
	}
	return it, nil
}

func (c *parseContext) resolveRefs() error {
	for _, r := range c.rules {
		for _, ref := range r.refs {
			idx, defined := c.index[ref.name]
			if !defined {
				return undefinedRuleError(c.name, ref)
			}
			ref.ruleIdx = idx
		}
	}
	return nil
}

// checkRules rejects recursive references and unreferenced rules, walking
// the reference graph from the root rule.
func (c *parseContext) checkRules() error {
	visited := ints.NewSet()
	onPath := ints.NewSet()

	var visit func(idx int) error
	visit = func(idx int) error {
		r := c.rules[idx]
		onPath.Add(idx)
		visited.Add(idx)
		for _, ref := range r.refs {
			if onPath.Contains(ref.ruleIdx) {
				return recursiveRuleError(c.name, ref)
			}
			if !visited.Contains(ref.ruleIdx) {
				e := visit(ref.ruleIdx)
				if e != nil {
					return e
				}
			}
		}
		onPath.Remove(idx)
		return nil
	}

	e := visit(0)
	if e != nil {
		return e
	}

	var unused []string
	for i, r := range c.rules {
		if !visited.Contains(i) {
			unused = append(unused, r.name)
		}
	}
	if len(unused) > 0 {
		return unusedRulesError(c.name, unused)
	}
	return nil
}

// lower converts a checked item to a grammar definition, inlining rule
// references. Every reference gets a fresh copy, the result is a tree.
func (c *parseContext) lower(it *item) *grammar.NodeDef {
	var def *grammar.NodeDef

	switch it.kind {
	case termItem:
		switch {
		case it.hasText:
			def = grammar.Term(grammar.CodeText(it.code, it.text)).
				Label(fmt.Sprintf("(%d %q)", it.code, it.text))
		case it.hi != it.code:
			def = grammar.Term(grammar.CodeRange(it.code, it.hi)).
				Label(fmt.Sprintf("(%d-%d)", it.code, it.hi))
		default:
			def = grammar.Term(grammar.Code(it.code)).
				Label(fmt.Sprintf("(%d)", it.code))
		}

	case refItem:
		r := c.rules[it.ruleIdx]
		def = c.lower(r.body)
		if def.Name == "" {
			def.Name = r.name
		}

	case seqItem:
		def = grammar.Seq(c.lowerAll(it.children)...)

	case altItem:
		def = grammar.Alt(c.lowerAll(it.children)...)
	}

	if it.min == 0 && it.max == 0 {
		return def
	}
	if def.Min == 0 && def.Max == 0 {
		return def.Times(it.min, it.max)
	}
	// the element already carries bounds (a quantified rule body), keep
	// both by wrapping
	return grammar.Seq(def).Times(it.min, it.max)
}

func (c *parseContext) lowerAll(items []*item) []*grammar.NodeDef {
	defs := make([]*grammar.NodeDef, len(items))
	for i, it := range items {
		defs[i] = c.lower(it)
	}
	return defs
}
