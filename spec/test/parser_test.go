package test

import (
	"strings"
	"testing"
)

func TestParseTestCase(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		start   string
		trials  int
		seed    int64
		matches []string
		misses  []string
		err     bool
	}{
		{
			caption: "a test case with all directives",
			src: `Lists of x
---
start list
trials 100
seed 7
---
x( x)*
`,
			start:   "list",
			trials:  100,
			seed:    7,
			matches: []string{"x", "x x x"},
			misses:  []string{"", "xx", "x x "},
		},
		{
			caption: "trials default to one and a start symbol may contain spaces",
			src: `Alternatives
---
start my rule
---
a|b
`,
			start:   "my rule",
			trials:  1,
			matches: []string{"a", "b"},
			misses:  []string{"ab"},
		},
		{
			caption: "the start directive is required",
			src: `No start
---
trials 3
---
x
`,
			err: true,
		},
		{
			caption: "trials must be positive",
			src: `Zero trials
---
start a
trials 0
---
x
`,
			err: true,
		},
		{
			caption: "unknown directives are rejected",
			src: `Unknown
---
start a
count 3
---
x
`,
			err: true,
		},
		{
			caption: "a test case needs a pattern",
			src: `No pattern
---
start a
---
`,
			err: true,
		},
		{
			caption: "an invalid pattern is rejected",
			src: `Invalid
---
start a
---
x(
`,
			err: true,
		},
		{
			caption: "a test case consists of just three parts",
			src: `Too many
---
start a
---
x
---
y
`,
			err: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			c, err := ParseTestCase(strings.NewReader(tt.src))
			if tt.err {
				if err == nil {
					t.Fatal("an error is expected")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.Start != tt.start {
				t.Errorf("unexpected start symbol: want: %q, got: %q", tt.start, c.Start)
			}
			if c.Trials != tt.trials {
				t.Errorf("unexpected trials: want: %v, got: %v", tt.trials, c.Trials)
			}
			if c.Seed != tt.seed {
				t.Errorf("unexpected seed: want: %v, got: %v", tt.seed, c.Seed)
			}
			for _, s := range tt.matches {
				ok, err := c.Pattern.MatchString(s)
				if err != nil {
					t.Fatal(err)
				}
				if !ok {
					t.Errorf("%q must match the pattern", s)
				}
			}
			for _, s := range tt.misses {
				ok, err := c.Pattern.MatchString(s)
				if err != nil {
					t.Fatal(err)
				}
				if ok {
					t.Errorf("%q must not match the pattern", s)
				}
			}
		})
	}
}
