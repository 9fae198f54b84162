package filter

import (
	"strings"
	"unicode"
)

// tokenKind classifies lexer output.
type tokenKind int

const (
	tokenText tokenKind = iota
	tokenAnd
	tokenOr
	tokenNot
	tokenBang // '!' before operator-vs-text resolution
	tokenLParen
	tokenRParen
)

// token is one lexeme with its source span. Spans let the repair passes
// fold stray operator characters back into adjacent literal text without
// losing the spacing between them.
type token struct {
	kind tokenKind
	text string
	pos  int
	end  int
}

// lex turns a normalized query into a parseable token stream. Unmatched
// parentheses become literal text, '!' is kept as an operator only where
// a negation can start, and adjacent text runs are merged. After these
// passes any stream parses: malformed input degrades to ordinary
// condition text instead of failing.
func lex(query string) []token {
	tokens := tokenize(query)
	tokens = repairParens(tokens, query)
	tokens = resolveBangs(tokens)
	return mergeAdjacentText(tokens, query)
}

func isOperatorChar(c byte) bool {
	return c == '&' || c == '|' || c == '!' || c == '(' || c == ')'
}

// tokenize splits the query into operator characters and trimmed text
// runs. Operator characters are ASCII, so byte scanning is safe on UTF-8
// input.
func tokenize(query string) []token {
	var tokens []token
	i := 0
	for i < len(query) {
		c := query[i]
		if isOperatorChar(c) {
			kind := map[byte]tokenKind{
				'&': tokenAnd,
				'|': tokenOr,
				'!': tokenBang,
				'(': tokenLParen,
				')': tokenRParen,
			}[c]
			tokens = append(tokens, token{kind: kind, text: string(c), pos: i, end: i + 1})
			i++
			continue
		}

		start := i
		for i < len(query) && !isOperatorChar(query[i]) {
			i++
		}
		raw := query[start:i]
		leading := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
		if leading == len(raw) {
			continue // whitespace only
		}
		trailing := len(raw) - len(strings.TrimRightFunc(raw, unicode.IsSpace))
		tokens = append(tokens, token{
			kind: tokenText,
			text: raw[leading : len(raw)-trailing],
			pos:  start + leading,
			end:  start + len(raw) - trailing,
		})
	}
	return tokens
}

// repairParens converts unmatched parentheses into literal text tokens.
// Matching is stack-based, so properly nested pairs stay structural.
func repairParens(tokens []token, source string) []token {
	matched := make([]bool, len(tokens))
	var stack []int
	for i, t := range tokens {
		switch t.kind {
		case tokenLParen:
			stack = append(stack, i)
		case tokenRParen:
			if len(stack) > 0 {
				matched[i] = true
				matched[stack[len(stack)-1]] = true
				stack = stack[:len(stack)-1]
			}
		}
	}

	repaired := make([]token, 0, len(tokens))
	for i, t := range tokens {
		if (t.kind == tokenLParen || t.kind == tokenRParen) && !matched[i] {
			t.kind = tokenText
			t.text = source[t.pos:t.end]
		}
		repaired = append(repaired, t)
	}
	return repaired
}

// resolveBangs decides which '!' characters are negation operators. A
// bang negates only at an operand start with something to negate after
// it; every other bang is literal text. At most one bang per operand is
// an operator, so "!!x" negates the atomic condition "!x" rather than
// double-negating x.
func resolveBangs(tokens []token) []token {
	resolved := make([]token, 0, len(tokens))
	for i, t := range tokens {
		if t.kind == tokenBang {
			if atOperandStart(resolved) && negatable(tokens, i+1) {
				t.kind = tokenNot
			} else {
				t.kind = tokenText
			}
		}
		resolved = append(resolved, t)
	}
	return resolved
}

func atOperandStart(resolved []token) bool {
	if len(resolved) == 0 {
		return true
	}
	switch resolved[len(resolved)-1].kind {
	case tokenAnd, tokenOr, tokenLParen:
		return true
	default:
		return false
	}
}

func negatable(tokens []token, next int) bool {
	if next >= len(tokens) {
		return false
	}
	switch tokens[next].kind {
	case tokenText, tokenLParen, tokenBang:
		return true
	default:
		return false
	}
}

// mergeAdjacentText joins consecutive text tokens through their source
// spans, preserving whatever separated them.
func mergeAdjacentText(tokens []token, source string) []token {
	merged := make([]token, 0, len(tokens))
	for _, t := range tokens {
		if t.kind == tokenText && len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.kind == tokenText {
				last.end = t.end
				last.text = source[last.pos:last.end]
				continue
			}
		}
		merged = append(merged, t)
	}
	return merged
}
