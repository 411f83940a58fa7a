package grammar

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/nihei9/bnfgen/spec"
)

type generator struct {
	rules  map[string]*spec.Rule
	policy Policy
	rand   *rand.Rand
}

// generate walks the tree with an explicit stack instead of recursion, so a deeply
// recursive grammar grows the stack slice but never the call stack. Children are pushed in
// reverse order to be popped left to right.
func (g *generator) generate(root *spec.Rule) (string, error) {
	var out strings.Builder
	stack := []spec.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := n.(type) {
		case *spec.Rule:
			stack = append(stack, n.Body)
		case *spec.Statement:
			if or, ok := n.Rest.(*spec.OrAlternative); ok {
				if g.policy.Skip(g.rand.Float64(), out.Len(), n.Arity) {
					stack = append(stack, or.Next)
					continue
				}
			}
			stack = append(stack, n.Expr)
		case *spec.OrAlternative:
			stack = append(stack, n.Next)
		case *spec.Concatenation:
			stack = append(stack, n.Tail, n.Head)
		case *spec.MoreExpression:
			stack = append(stack, n.Expr)
		case *spec.Literal:
			stack = append(stack, n.Text)
		case *spec.Reference:
			name := n.Ident()
			r, ok := g.rules[name]
			if !ok {
				return "", &UndefinedNonTerminalError{
					Name: name,
				}
			}
			stack = append(stack, r.Body)
		case *spec.NameChar:
			out.WriteByte(n.Head)
			stack = append(stack, n.Tail)
		case *spec.NoAlternative, *spec.EmptyExpression, *spec.EndOfExpression, *spec.NameEnd:
		default:
			return "", fmt.Errorf("unexpected node: %v", n.Kind())
		}
	}

	return out.String(), nil
}
