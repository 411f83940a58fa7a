package spec

import (
	"fmt"
	"strings"
)

// NodeKind identifies a production of the meta-grammar.
type NodeKind string

const (
	NodeKindRule         = NodeKind("rule")
	NodeKindTerm         = NodeKind("term")
	NodeKindStatement    = NodeKind("statement")
	NodeKindAlternation  = NodeKind("alternation")
	NodeKindExpression   = NodeKind("expression")
	NodeKindAtom         = NodeKind("atom")
	NodeKindContinuation = NodeKind("continuation")
	NodeKindName         = NodeKind("name")
)

func (k NodeKind) String() string {
	return string(k)
}

// Node is a node of a derivation tree. Nodes are immutable once the parser returns them.
type Node interface {
	fmt.Stringer
	Kind() NodeKind
	Children() []Node

	format(b *strings.Builder)
}

var (
	_ Node = &Rule{}
	_ Node = &Statement{}
	_ Node = &NoAlternative{}
	_ Node = &OrAlternative{}
	_ Node = &EmptyExpression{}
	_ Node = &Concatenation{}
	_ Node = &EndOfExpression{}
	_ Node = &MoreExpression{}
	_ Node = &Literal{}
	_ Node = &Reference{}
	_ Node = &NameEnd{}
	_ Node = &NameChar{}
)

func stringify(n Node) string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

// Rule defines one non-terminal.
type Rule struct {
	Name Name
	Body *Statement
}

// Ident returns the name of the non-terminal the rule defines.
func (r *Rule) Ident() string {
	return NameText(r.Name)
}

func (r *Rule) Kind() NodeKind {
	return NodeKindRule
}

func (r *Rule) Children() []Node {
	return []Node{r.Name, r.Body}
}

func (r *Rule) String() string {
	return stringify(r)
}

func (r *Rule) format(b *strings.Builder) {
	b.WriteString("<")
	r.Name.format(b)
	b.WriteString(">::=")
	r.Body.format(b)
}

// Statement is an ordered alternation. Arity is the number of alternatives reachable from
// this statement, itself included.
type Statement struct {
	Expr  Expression
	Rest  Alternation
	Arity int
}

func newStatement(expr Expression, rest Alternation) *Statement {
	arity := 1
	if or, ok := rest.(*OrAlternative); ok {
		arity += or.Next.Arity
	}
	return &Statement{
		Expr:  expr,
		Rest:  rest,
		Arity: arity,
	}
}

func (s *Statement) Kind() NodeKind {
	return NodeKindStatement
}

func (s *Statement) Children() []Node {
	return []Node{s.Expr, s.Rest}
}

func (s *Statement) String() string {
	return stringify(s)
}

func (s *Statement) format(b *strings.Builder) {
	for {
		s.Expr.format(b)
		or, ok := s.Rest.(*OrAlternative)
		if !ok {
			return
		}
		b.WriteString("|")
		s = or.Next
	}
}

// Alternation is either NoAlternative or OrAlternative.
type Alternation interface {
	Node
	alternation()
}

type NoAlternative struct{}

func (a *NoAlternative) alternation() {}

func (a *NoAlternative) Kind() NodeKind {
	return NodeKindAlternation
}

func (a *NoAlternative) Children() []Node {
	return nil
}

func (a *NoAlternative) String() string {
	return ""
}

func (a *NoAlternative) format(b *strings.Builder) {}

type OrAlternative struct {
	Next *Statement
}

func (a *OrAlternative) alternation() {}

func (a *OrAlternative) Kind() NodeKind {
	return NodeKindAlternation
}

func (a *OrAlternative) Children() []Node {
	return []Node{a.Next}
}

func (a *OrAlternative) String() string {
	return stringify(a)
}

func (a *OrAlternative) format(b *strings.Builder) {
	b.WriteString("|")
	a.Next.format(b)
}

// Expression is either EmptyExpression or Concatenation.
type Expression interface {
	Node
	expression()
}

// EmptyExpression is the E token. It derives the empty string.
type EmptyExpression struct{}

func (e *EmptyExpression) expression() {}

func (e *EmptyExpression) Kind() NodeKind {
	return NodeKindExpression
}

func (e *EmptyExpression) Children() []Node {
	return nil
}

func (e *EmptyExpression) String() string {
	return "E"
}

func (e *EmptyExpression) format(b *strings.Builder) {
	b.WriteString("E")
}

type Concatenation struct {
	Head Atom
	Tail Continuation
}

func (e *Concatenation) expression() {}

func (e *Concatenation) Kind() NodeKind {
	return NodeKindExpression
}

func (e *Concatenation) Children() []Node {
	return []Node{e.Head, e.Tail}
}

func (e *Concatenation) String() string {
	return stringify(e)
}

func (e *Concatenation) format(b *strings.Builder) {
	var expr Expression = e
	for {
		cat, ok := expr.(*Concatenation)
		if !ok {
			expr.format(b)
			return
		}
		cat.Head.format(b)
		more, ok := cat.Tail.(*MoreExpression)
		if !ok {
			return
		}
		expr = more.Expr
	}
}

// Continuation is either EndOfExpression or MoreExpression.
type Continuation interface {
	Node
	continuation()
}

type EndOfExpression struct{}

func (c *EndOfExpression) continuation() {}

func (c *EndOfExpression) Kind() NodeKind {
	return NodeKindContinuation
}

func (c *EndOfExpression) Children() []Node {
	return nil
}

func (c *EndOfExpression) String() string {
	return ""
}

func (c *EndOfExpression) format(b *strings.Builder) {}

type MoreExpression struct {
	Expr Expression
}

func (c *MoreExpression) continuation() {}

func (c *MoreExpression) Kind() NodeKind {
	return NodeKindContinuation
}

func (c *MoreExpression) Children() []Node {
	return []Node{c.Expr}
}

func (c *MoreExpression) String() string {
	return stringify(c)
}

func (c *MoreExpression) format(b *strings.Builder) {
	c.Expr.format(b)
}

// Atom is either Literal or Reference.
type Atom interface {
	Node
	atom()
}

// Literal is a terminal. Its text appears verbatim in generated output.
type Literal struct {
	Text Name
}

func (a *Literal) atom() {}

func (a *Literal) Kind() NodeKind {
	return NodeKindAtom
}

func (a *Literal) Children() []Node {
	return []Node{a.Text}
}

func (a *Literal) String() string {
	return stringify(a)
}

func (a *Literal) format(b *strings.Builder) {
	b.WriteString(`"`)
	a.Text.format(b)
	b.WriteString(`"`)
}

// Reference refers to a non-terminal by name. The name is resolved only when a rule table
// generates text, so a tree never points at another rule.
type Reference struct {
	Target Name
}

func (a *Reference) atom() {}

func (a *Reference) Kind() NodeKind {
	return NodeKindAtom
}

func (a *Reference) Children() []Node {
	return []Node{a.Target}
}

func (a *Reference) String() string {
	return stringify(a)
}

func (a *Reference) format(b *strings.Builder) {
	b.WriteString("<")
	a.Target.format(b)
	b.WriteString(">")
}

// Ident returns the name of the referenced non-terminal.
func (a *Reference) Ident() string {
	return NameText(a.Target)
}

// Name is a chain of NameChar terminated by NameEnd.
type Name interface {
	Node
	name()
}

type NameEnd struct{}

func (n *NameEnd) name() {}

func (n *NameEnd) Kind() NodeKind {
	return NodeKindName
}

func (n *NameEnd) Children() []Node {
	return nil
}

func (n *NameEnd) String() string {
	return ""
}

func (n *NameEnd) format(b *strings.Builder) {}

type NameChar struct {
	Head byte
	Tail Name
}

func (n *NameChar) name() {}

func (n *NameChar) Kind() NodeKind {
	return NodeKindName
}

func (n *NameChar) Children() []Node {
	return []Node{n.Tail}
}

func (n *NameChar) String() string {
	return stringify(n)
}

func (n *NameChar) format(b *strings.Builder) {
	var c Name = n
	for {
		nc, ok := c.(*NameChar)
		if !ok {
			return
		}
		b.WriteByte(nc.Head)
		c = nc.Tail
	}
}

// NameText flattens a name chain into a string.
func NameText(n Name) string {
	if n == nil {
		return ""
	}
	return stringify(n)
}

// NewName builds a name chain from s. s is not validated against the name alphabet.
func NewName(s string) Name {
	var n Name = &NameEnd{}
	for i := len(s) - 1; i >= 0; i-- {
		n = &NameChar{
			Head: s[i],
			Tail: n,
		}
	}
	return n
}
