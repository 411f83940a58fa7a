package spec

import (
	"fmt"
	"strings"
)

const (
	tokTermOpen   = "<"
	tokTermClose  = ">"
	tokQuote      = `"`
	tokDefinition = "::="
	tokOr         = "|"
	tokEmpty      = "E"
	tokEnd        = "end of rule"
	tokNameChar   = "name character"
)

var exprFirst = []string{tokEmpty, tokTermOpen, tokQuote}

// Match is the result of running a single production. Matched is the consumed prefix of
// the input and Remaining is everything after it.
type Match struct {
	Node      Node
	Matched   string
	Remaining string
}

// Len returns the length of the matched prefix.
func (m *Match) Len() int {
	return len(m.Matched)
}

// Parse parses one production rule, for instance `<list>::="x"<list>|E`. The whole text
// must be consumed.
func Parse(text string) (*Rule, error) {
	m, err := ParseAs(NodeKindRule, text)
	if err != nil {
		return nil, err
	}
	if m.Remaining != "" {
		return nil, &ParseError{
			Cause:      synErrTrailingText,
			Production: NodeKindRule,
			Expected:   []string{tokEnd},
			Remaining:  m.Remaining,
			Offset:     m.Len(),
		}
	}
	return m.Node.(*Rule), nil
}

// ParseAs runs the production kind against the beginning of text. Unlike Parse, it doesn't
// fail when text has an unconsumed remainder. NodeKindTerm yields a *Reference.
func ParseAs(kind NodeKind, text string) (m *Match, retErr error) {
	p := &parser{
		src: text,
	}
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		err, ok := v.(*ParseError)
		if !ok {
			panic(v)
		}
		m = nil
		retErr = err
	}()

	var n Node
	switch kind {
	case NodeKindRule:
		n = p.parseRule()
	case NodeKindTerm:
		n = &Reference{
			Target: p.parseTerm(),
		}
	case NodeKindStatement:
		n = p.parseStatement()
	case NodeKindAlternation:
		n = p.parseAlternation()
	case NodeKindExpression:
		n = p.parseExpression()
	case NodeKindAtom:
		n = p.parseAtom()
	case NodeKindContinuation:
		n = p.parseContinuation()
	case NodeKindName:
		n = p.parseName()
	default:
		return nil, fmt.Errorf("unknown production: %v", kind)
	}

	return &Match{
		Node:      n,
		Matched:   text[:p.pos],
		Remaining: text[p.pos:],
	}, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) raiseParseError(cause *SyntaxError, prod NodeKind, expected ...string) {
	panic(&ParseError{
		Cause:      cause,
		Production: prod,
		Expected:   expected,
		Remaining:  p.src[p.pos:],
		Offset:     p.pos,
	})
}

func (p *parser) expect(tok string, cause *SyntaxError, prod NodeKind) {
	if !strings.HasPrefix(p.src[p.pos:], tok) {
		p.raiseParseError(cause, prod, tok)
	}
	p.pos += len(tok)
}

// Rule := Term "::=" Statement
func (p *parser) parseRule() *Rule {
	name := p.parseTerm()
	p.expect(tokDefinition, synErrNoDefinition, NodeKindRule)
	return &Rule{
		Name: name,
		Body: p.parseStatement(),
	}
}

// Term := "<" Name ">"
func (p *parser) parseTerm() Name {
	p.expect(tokTermOpen, synErrNoTermOpener, NodeKindTerm)
	name := p.parseName()
	p.expect(tokTermClose, synErrUnclosedTerm, NodeKindTerm)
	return name
}

// Statement := Expression Alternation
// Alternation := ε | "|" Statement
//
// The alternatives are collected first and then linked from the last one so that the
// arity of each statement is known when it is built.
func (p *parser) parseStatement() *Statement {
	var exprs []Expression
	for {
		exprs = append(exprs, p.parseExpression())
		c, ok := p.peek()
		if !ok {
			break
		}
		if c != '|' {
			p.raiseParseError(synErrNoOr, NodeKindAlternation, tokOr, tokEnd)
		}
		p.pos++
	}

	var stmt *Statement
	var rest Alternation = &NoAlternative{}
	for i := len(exprs) - 1; i >= 0; i-- {
		stmt = newStatement(exprs[i], rest)
		rest = &OrAlternative{
			Next: stmt,
		}
	}
	return stmt
}

func (p *parser) parseAlternation() Alternation {
	c, ok := p.peek()
	if !ok {
		return &NoAlternative{}
	}
	if c != '|' {
		p.raiseParseError(synErrNoOr, NodeKindAlternation, tokOr, tokEnd)
	}
	p.pos++
	return &OrAlternative{
		Next: p.parseStatement(),
	}
}

// Expression := "E" | Atom ExprCont
// ExprCont := ε | Expression
func (p *parser) parseExpression() Expression {
	c, ok := p.peek()
	if !ok {
		p.raiseParseError(synErrNoExpression, NodeKindExpression, exprFirst...)
	}

	var atoms []Atom
	var last Expression
	for {
		if c == 'E' {
			p.pos++
			last = &EmptyExpression{}
			break
		}
		if c != '<' && c != '"' {
			p.raiseParseError(synErrInvalidExpression, NodeKindExpression, exprFirst...)
		}
		atoms = append(atoms, p.parseAtom())

		c, ok = p.peek()
		if !ok || c == '|' {
			break
		}
		if !isExprFirst(c) {
			p.raiseParseError(synErrInvalidContinuation, NodeKindContinuation, tokEmpty, tokTermOpen, tokQuote, tokOr, tokEnd)
		}
	}

	if len(atoms) == 0 {
		return last
	}
	var cont Continuation = &EndOfExpression{}
	if last != nil {
		cont = &MoreExpression{
			Expr: last,
		}
	}
	var expr Expression
	for i := len(atoms) - 1; i >= 0; i-- {
		expr = &Concatenation{
			Head: atoms[i],
			Tail: cont,
		}
		cont = &MoreExpression{
			Expr: expr,
		}
	}
	return expr
}

func (p *parser) parseContinuation() Continuation {
	c, ok := p.peek()
	if !ok || c == '|' {
		return &EndOfExpression{}
	}
	if !isExprFirst(c) {
		p.raiseParseError(synErrInvalidContinuation, NodeKindContinuation, tokEmpty, tokTermOpen, tokQuote, tokOr, tokEnd)
	}
	return &MoreExpression{
		Expr: p.parseExpression(),
	}
}

// Atom := Term | '"' Name '"'
func (p *parser) parseAtom() Atom {
	c, ok := p.peek()
	if !ok {
		p.raiseParseError(synErrNoExpression, NodeKindAtom, tokTermOpen, tokQuote)
	}
	switch c {
	case '<':
		return &Reference{
			Target: p.parseTerm(),
		}
	case '"':
		p.pos++
		text := p.parseName()
		p.expect(tokQuote, synErrUnclosedLiteral, NodeKindAtom)
		return &Literal{
			Text: text,
		}
	}
	p.raiseParseError(synErrInvalidExpression, NodeKindAtom, tokTermOpen, tokQuote)
	return nil
}

// Name := <supported-char> Name | ε
func (p *parser) parseName() Name {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || c == '>' || c == '"' {
			break
		}
		if !IsNameChar(c) {
			p.raiseParseError(synErrInvalidNameChar, NodeKindName, tokNameChar, tokTermClose, tokQuote)
		}
		p.pos++
	}
	return NewName(p.src[start:p.pos])
}

func isExprFirst(c byte) bool {
	return c == 'E' || c == '<' || c == '"'
}

// IsNameChar reports whether c may appear in a name or a literal.
func IsNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '+', '-', '*', '/':
		return true
	}
	return false
}
