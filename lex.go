package swp

import (
	"unicode"
)

type token struct {
	text string
	line int
}

// lex splits src into whitespace-separated tokens. Square brackets always
// form tokens of their own, so that "[1", "[ 1" and "[1 ]" all lex the same.
func lex(src string) []token {
	var toks []token
	line := 1
	start := -1
	flush := func(end int) {
		if start >= 0 {
			toks = append(toks, token{src[start:end], line})
			start = -1
		}
	}
	for i, r := range src {
		switch {
		case unicode.IsSpace(r):
			flush(i)
			if r == '\n' {
				line++
			}
		case r == '[' || r == ']':
			flush(i)
			toks = append(toks, token{src[i : i+1], line})
		default:
			if start < 0 {
				start = i
			}
		}
	}
	flush(len(src))
	return toks
}
