package grammar

import (
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	verr "github.com/nihei9/bnfgen/error"
	"github.com/nihei9/bnfgen/spec"
)

// Table maps non-terminal names to the rules defining them.
//
// A table is not safe for concurrent use while rules are being added. Once no more rules are
// added, Generate, Lookup, and Check may be called concurrently.
type Table struct {
	rules  map[string]*spec.Rule
	policy Policy
}

type TableOption func(t *Table)

// BranchPolicy replaces the default DecayPolicy.
func BranchPolicy(p Policy) TableOption {
	return func(t *Table) {
		t.policy = p
	}
}

func NewTable(opts ...TableOption) *Table {
	t := &Table{
		rules:  map[string]*spec.Rule{},
		policy: NewDecayPolicy(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add parses a rule and stores it under its name, replacing any rule of the same name. When
// the text doesn't parse, the table is left as it was.
func (t *Table) Add(text string) error {
	r, err := spec.Parse(text)
	if err != nil {
		return err
	}
	t.rules[r.Ident()] = r
	return nil
}

// AddNode stores an already parsed rule. It fails with ErrNotARule for any other node.
func (t *Table) AddNode(n spec.Node) error {
	r, ok := n.(*spec.Rule)
	if !ok || r == nil {
		return ErrNotARule
	}
	t.rules[r.Ident()] = r
	return nil
}

// AddAll adds every source. A source that fails doesn't stop the rest; the failures are
// returned together as verr.SpecErrors.
func (t *Table) AddAll(srcs []*spec.RuleSource) error {
	var errs verr.SpecErrors
	for _, src := range srcs {
		err := t.Add(src.Text)
		if err != nil {
			errs = append(errs, &verr.SpecError{
				Cause:  err,
				Detail: src.Text,
				Row:    src.Row,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (t *Table) Lookup(name string) (*spec.Rule, bool) {
	r, ok := t.rules[name]
	return r, ok
}

// Names returns the names of all rules in lexical order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.rules))
	for name := range t.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Table) Len() int {
	return len(t.rules)
}

type generateConfig struct {
	src rand.Source
}

type GenerateOption func(c *generateConfig)

// Seed makes a generation reproducible.
func Seed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		c.src = rand.NewSource(seed)
	}
}

// Source draws random numbers from src. src must not be shared with concurrent calls.
func Source(src rand.Source) GenerateOption {
	return func(c *generateConfig) {
		c.src = src
	}
}

var seedCounter int64

func newSeed() int64 {
	return time.Now().UnixNano() + atomic.AddInt64(&seedCounter, 1)
}

// Generate derives a random string from the rule named start. The derivation fails as a
// whole with *UndefinedNonTerminalError when it reaches a name that has no rule.
func (t *Table) Generate(start string, opts ...GenerateOption) (string, error) {
	r, ok := t.rules[start]
	if !ok {
		return "", &UndefinedNonTerminalError{
			Name: start,
		}
	}

	c := &generateConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = rand.NewSource(newSeed())
	}

	g := &generator{
		rules:  t.rules,
		policy: t.policy,
		rand:   rand.New(c.src),
	}
	return g.generate(r)
}
