package grammar

import (
	"github.com/nihei9/bnfgen/spec"
)

// production is one alternative of a rule flattened into a sequence of symbols.
type production struct {
	lhs string
	rhs []symbol
}

type symbol struct {
	text        string
	nonTerminal bool
}

type productionSet struct {
	lhs2Prods map[string][]*production
}

func newProductionSet(rules map[string]*spec.Rule) *productionSet {
	ps := &productionSet{
		lhs2Prods: map[string][]*production{},
	}
	for name, r := range rules {
		s := r.Body
		for {
			ps.append(&production{
				lhs: name,
				rhs: flattenExpression(s.Expr),
			})
			or, ok := s.Rest.(*spec.OrAlternative)
			if !ok {
				break
			}
			s = or.Next
		}
	}
	return ps
}

func (ps *productionSet) append(prod *production) {
	ps.lhs2Prods[prod.lhs] = append(ps.lhs2Prods[prod.lhs], prod)
}

// flattenExpression drops empty literals and E, so an alternative deriving only the empty
// string has no symbols.
func flattenExpression(expr spec.Expression) []symbol {
	var rhs []symbol
	for {
		cat, ok := expr.(*spec.Concatenation)
		if !ok {
			return rhs
		}
		switch a := cat.Head.(type) {
		case *spec.Literal:
			if text := spec.NameText(a.Text); text != "" {
				rhs = append(rhs, symbol{
					text: text,
				})
			}
		case *spec.Reference:
			rhs = append(rhs, symbol{
				text:        a.Ident(),
				nonTerminal: true,
			})
		}
		more, ok := cat.Tail.(*spec.MoreExpression)
		if !ok {
			return rhs
		}
		expr = more.Expr
	}
}
