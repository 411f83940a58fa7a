package grammar

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/nihei9/bnfgen/spec"
	"golang.org/x/exp/ebnf"
)

// Names may contain spaces and operators, so every production is named P<hex of the name>_
// in the EBNF form.
var reEncodedName = regexp2.MustCompile(`P([0-9a-f]*)_`, regexp2.RE2)

func encodeName(name string) string {
	return "P" + hex.EncodeToString([]byte(name)) + "_"
}

func decodeNames(msg string) string {
	s, err := reEncodedName.ReplaceFunc(msg, func(m regexp2.Match) string {
		b, err := hex.DecodeString(m.GroupByNumber(1).String())
		if err != nil {
			return m.String()
		}
		return "<" + string(b) + ">"
	}, -1, -1)
	if err != nil {
		return msg
	}
	return s
}

// EBNF writes the table in the notation of golang.org/x/exp/ebnf, one production per rule in
// lexical order of the names.
func (t *Table) EBNF() string {
	var b strings.Builder
	for _, name := range t.Names() {
		r := t.rules[name]
		fmt.Fprintf(&b, "%v = ", encodeName(name))
		s := r.Body
		for {
			writeEBNFExpression(&b, s.Expr)
			or, ok := s.Rest.(*spec.OrAlternative)
			if !ok {
				break
			}
			b.WriteString(" | ")
			s = or.Next
		}
		b.WriteString(" .\n")
	}
	return b.String()
}

func writeEBNFExpression(b *strings.Builder, expr spec.Expression) {
	first := true
	for {
		if !first {
			b.WriteString(" ")
		}
		first = false

		cat, ok := expr.(*spec.Concatenation)
		if !ok {
			b.WriteString(`""`)
			return
		}
		switch a := cat.Head.(type) {
		case *spec.Literal:
			b.WriteString(strconv.Quote(spec.NameText(a.Text)))
		case *spec.Reference:
			b.WriteString(encodeName(a.Ident()))
		}
		more, ok := cat.Tail.(*spec.MoreExpression)
		if !ok {
			return
		}
		expr = more.Expr
	}
}

// Check verifies that every referenced non-terminal is defined, that every rule is
// reachable from start, and that every rule can derive a finite string. Unlike Generate, it
// finds undefined names on paths a random derivation may never take.
func (t *Table) Check(start string) error {
	g, err := ebnf.Parse("rules.ebnf", strings.NewReader(t.EBNF()))
	if err != nil {
		return fmt.Errorf("cannot convert the rules into EBNF: %v", decodeNames(err.Error()))
	}
	err = ebnf.Verify(g, encodeName(start))
	if err != nil {
		return errors.New(decodeNames(err.Error()))
	}
	if names := t.Unproductive(); len(names) > 0 {
		return &UnproductiveError{
			Names: names,
		}
	}
	return nil
}
