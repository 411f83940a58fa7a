package spec

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrNoTermOpener        = newSyntaxError("a non-terminal must begin with <")
	synErrInvalidNameChar     = newSyntaxError("a name can contain only letters, digits, the space, and + - * /")
	synErrUnclosedTerm        = newSyntaxError("unclosed non-terminal; > is missing")
	synErrNoDefinition        = newSyntaxError("::= must follow the name of a rule")
	synErrNoExpression        = newSyntaxError("an expression is missing")
	synErrInvalidExpression   = newSyntaxError("an expression must begin with E, < or \"")
	synErrUnclosedLiteral     = newSyntaxError("unclosed literal")
	synErrInvalidContinuation = newSyntaxError("an atom must be followed by another atom, E, | or the end of the rule")
	synErrNoOr                = newSyntaxError("alternatives must be separated by |")
	synErrTrailingText        = newSyntaxError("unexpected text after the rule")
)

// ParseError reports where the meta-grammar parser stopped. Production is the
// sub-production that failed, Expected lists the tokens it would have accepted, and
// Remaining is the unconsumed input starting at Offset.
type ParseError struct {
	Cause      *SyntaxError
	Production NodeKind
	Expected   []string
	Remaining  string
	Offset     int
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%v] %v; expected %v", e.Production, e.Cause, strings.Join(e.Expected, " or "))
	if e.Remaining == "" {
		b.WriteString(", found the end of the rule")
	} else {
		fmt.Fprintf(&b, ", found %q", e.Remaining)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
