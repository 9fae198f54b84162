package filter

// predicateNode is an atomic condition, e.g. "p1" or "#work".
type predicateNode struct {
	text string
}

// notNode negates its operand.
type notNode struct {
	inner node
}

// andNode requires both operands.
type andNode struct {
	left  node
	right node
}

// orNode requires either operand.
type orNode struct {
	left  node
	right node
}

// groupNode is an explicitly parenthesized sub-expression.
type groupNode struct {
	inner node
}

// parser performs recursive descent over a repaired token stream.
// Precedence is structural: NOT binds tightest, then AND, then OR.
// Missing operands parse as the empty predicate, which matches every
// task through the fallback substring rule, mirroring how dangling
// operators behaved when the expression was split on raw strings.
type parser struct {
	tokens []token
	pos    int
}

// parse compiles a normalized (trimmed, lowercased) query into an AST.
// It cannot fail; see lex for how malformed input is repaired.
func parse(query string) node {
	p := &parser{tokens: lex(query)}
	return p.parseOr()
}

func (p *parser) parseOr() node {
	left := p.parseAnd()
	for p.match(tokenOr) {
		left = orNode{left: left, right: p.parseAnd()}
	}
	return left
}

// parseAnd folds explicit conjunctions and juxtaposed operands, e.g.
// "(a) (b)", so any token stream is consumed in full.
func (p *parser) parseAnd() node {
	left := p.parseUnary()
	for {
		switch {
		case p.match(tokenAnd):
			left = andNode{left: left, right: p.parseUnary()}
		case p.atOperand():
			left = andNode{left: left, right: p.parseUnary()}
		default:
			return left
		}
	}
}

func (p *parser) parseUnary() node {
	if p.match(tokenNot) {
		return notNode{inner: p.parseOperand()}
	}
	return p.parseOperand()
}

func (p *parser) parseOperand() node {
	switch {
	case p.match(tokenLParen):
		inner := p.parseOr()
		p.match(tokenRParen)
		return groupNode{inner: inner}
	case p.peekIs(tokenText):
		return predicateNode{text: p.advance().text}
	default:
		return predicateNode{text: ""}
	}
}

func (p *parser) peekIs(kind tokenKind) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].kind == kind
}

func (p *parser) atOperand() bool {
	if p.pos >= len(p.tokens) {
		return false
	}
	switch p.tokens[p.pos].kind {
	case tokenText, tokenLParen, tokenNot:
		return true
	default:
		return false
	}
}

func (p *parser) match(kind tokenKind) bool {
	if p.peekIs(kind) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) advance() token {
	t := p.tokens[p.pos]
	p.pos++
	return t
}
