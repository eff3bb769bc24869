package dxfmatch_test

import (
	"fmt"

	"github.com/vagran/dxfmatch/gramdef"
	"github.com/vagran/dxfmatch/matcher"
	"github.com/vagran/dxfmatch/token"
)

func Example() {
	grammar := `
line   = (0 "LINE"), common*, point{2};
common = (8) | (62);
point  = (10), (20), (30)?;
`
	lineGrammar, e := gramdef.ParseString("example grammar", grammar)
	if e != nil {
		fmt.Println(e)
		return
	}

	record := []token.Token{
		token.NewText(0, "LINE"),
		token.NewText(8, "walls"),
		token.NewFloat(10, 1), token.NewFloat(20, 2),
		token.NewFloat(10, 4), token.NewFloat(20, 6), token.NewFloat(30, 0),
	}

	m := matcher.New(lineGrammar)
	m.Stream = "example record"
	for _, t := range record {
		if e = m.Feed(t); e != nil {
			fmt.Println(e)
			return
		}
	}

	result, e := m.Finish()
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, p := range result.Pairs() {
		fmt.Printf("%s %s\n", lineGrammar.NodeById(p.NodeId).Ref(), p.Tok)
	}
	// Output:
	// (0 "LINE") (0, LINE)
	// (8) (8, walls)
	// (10) (10, 1)
	// (20) (20, 2)
	// (10) (10, 4)
	// (20) (20, 6)
	// (30) (30, 0)
}
