package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// productiveSet holds the non-terminals that can derive at least one finite string. A
// derivation that enters any other non-terminal never ends.
type productiveSet struct {
	set map[string]struct{}
}

func (ps *productiveSet) contains(name string) bool {
	_, ok := ps.set[name]
	return ok
}

func (ps *productiveSet) add(name string) bool {
	if ps.contains(name) {
		return false
	}
	ps.set[name] = struct{}{}
	return true
}

func (ps *productiveSet) derivable(prod *production) bool {
	for _, sym := range prod.rhs {
		if sym.nonTerminal && !ps.contains(sym.text) {
			return false
		}
	}
	return true
}

func genProductiveSet(prods *productionSet) *productiveSet {
	ps := &productiveSet{
		set: map[string]struct{}{},
	}
	for {
		more := false
		for lhs, alts := range prods.lhs2Prods {
			if ps.contains(lhs) {
				continue
			}
			for _, prod := range alts {
				if !ps.derivable(prod) {
					continue
				}
				if ps.add(lhs) {
					more = true
				}
				break
			}
		}
		if !more {
			break
		}
	}
	return ps
}

// UnproductiveError reports rules from which no derivation can finish.
type UnproductiveError struct {
	Names []string
}

func (e *UnproductiveError) Error() string {
	ns := make([]string, len(e.Names))
	for i, name := range e.Names {
		ns[i] = fmt.Sprintf("<%v>", name)
	}
	return fmt.Sprintf("rules never derive a finite string: %v", strings.Join(ns, ", "))
}

// Unproductive returns the names of the rules that cannot derive any finite string, in
// lexical order. Generating from such a rule runs until the process runs out of memory.
// A rule referencing an undefined name through every alternative is unproductive too.
func (t *Table) Unproductive() []string {
	ps := genProductiveSet(newProductionSet(t.rules))
	var names []string
	for name := range t.rules {
		if !ps.contains(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
