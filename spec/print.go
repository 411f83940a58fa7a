package spec

import (
	"fmt"
	"io"
)

// PrintTree writes n as an indented tree. A name chain is printed as a single leaf.
func PrintTree(w io.Writer, n Node) {
	printTree(w, n, "", "")
}

func printTree(w io.Writer, n Node, ruledLine string, childRuledLinePrefix string) {
	if n == nil {
		return
	}

	label, text, children := describe(n)
	if text != nil {
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, label, *text)
	} else {
		fmt.Fprintf(w, "%v%v\n", ruledLine, label)
	}

	num := len(children)
	for i, child := range children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}

		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}

		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}

func describe(n Node) (string, *string, []Node) {
	switch n := n.(type) {
	case *Rule:
		name := n.Ident()
		return "rule", &name, []Node{n.Body}
	case *Statement:
		return fmt.Sprintf("statement (arity %v)", n.Arity), nil, n.Children()
	case *NoAlternative:
		return "alternation ε", nil, nil
	case *OrAlternative:
		return "alternation |", nil, n.Children()
	case *EmptyExpression:
		return "expression E", nil, nil
	case *Concatenation:
		return "expression", nil, n.Children()
	case *EndOfExpression:
		return "continuation ε", nil, nil
	case *MoreExpression:
		return "continuation", nil, n.Children()
	case *Literal:
		text := NameText(n.Text)
		return "literal", &text, nil
	case *Reference:
		name := n.Ident()
		return "reference", &name, nil
	case Name:
		text := NameText(n)
		return "name", &text, nil
	}
	return string(n.Kind()), nil, n.Children()
}
