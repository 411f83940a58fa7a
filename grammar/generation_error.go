package grammar

import (
	"errors"
	"fmt"
)

// ErrNotARule is returned when a node other than a rule is added to a table.
var ErrNotARule = errors.New("not a rule")

// UndefinedNonTerminalError is returned when a derivation reaches a non-terminal that no rule
// defines.
type UndefinedNonTerminalError struct {
	Name string
}

func (e *UndefinedNonTerminalError) Error() string {
	return fmt.Sprintf("No production rule for `<%v>`", e.Name)
}
