package gramdef

import (
	"regexp"
)

const (
	nameTok = iota
	numberTok
	stringTok
	opTok
	endTok
)

type scanToken struct {
	typ       int
	text      string
	line, col int
}

// One alternation group per token class; group 1 is skipped input
// (whitespace and # comments).
var tokenRe = regexp.MustCompile(`(?s:([ \t\r\n]+|#[^\n]*)|([A-Za-z_]\w*)|(\d+)|("(?:[^"\\]|\\.)*")|([=(),|;?+*{}\[\]\-]))`)

func scan(name, content string) ([]scanToken, error) {
	var out []scanToken
	line, col := 1, 1
	pos := 0

	for pos < len(content) {
		ms := tokenRe.FindStringSubmatchIndex(content[pos:])
		if ms == nil || ms[0] != 0 {
			return nil, badTokenError(name, line, col)
		}

		text := content[pos : pos+ms[1]]
		typ := -1
		switch {
		case ms[2] >= 0:
			// skipped
		case ms[4] >= 0:
			typ = nameTok
		case ms[6] >= 0:
			typ = numberTok
		case ms[8] >= 0:
			typ = stringTok
		case ms[10] >= 0:
			typ = opTok
		}
		if typ >= 0 {
			out = append(out, scanToken{typ, text, line, col})
		}

		for _, r := range text {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		pos += ms[1]
	}

	return append(out, scanToken{endTok, "", line, col}), nil
}
