package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nihei9/bnfgen/grammar"
	tspec "github.com/nihei9/bnfgen/spec/test"
	"github.com/stretchr/testify/require"
)

func TestTester_Run(t *testing.T) {
	rules1 := []string{
		`<s>::=<foo>" "<bar>|<foo>" "<baz>`,
		`<foo>::="foo"`,
		`<bar>::="bar"`,
		`<baz>::="baz"`,
	}

	rules2 := []string{
		`<foos>::="foo"|"foo "<foos>`,
	}

	tests := []struct {
		rules   []string
		testSrc string
		error   bool
	}{
		{
			rules: rules1,
			testSrc: `
Test
---
start s
trials 50
---
foo (bar|baz)
`,
		},
		{
			rules: rules1,
			testSrc: `
Test
---
start s
trials 200
---
foo bar
`,
			error: true,
		},
		{
			rules: rules1,
			testSrc: `
Test
---
start qux
---
.*
`,
			error: true,
		},
		{
			rules: rules2,
			testSrc: `
Test
---
start foos
trials 500
seed 42
---
foo( foo)*
`,
		},
		{
			rules: []string{
				`<a>::="x"<b>|E`,
			},
			testSrc: `
Test
---
start a
trials 200
---
x?
`,
			error: true,
		},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("#%v", i), func(t *testing.T) {
			tab := grammar.NewTable()
			for _, r := range tt.rules {
				require.NoError(t, tab.Add(r))
			}
			c, err := tspec.ParseTestCase(strings.NewReader(tt.testSrc))
			require.NoError(t, err)
			tester := &Tester{
				Table: tab,
				Cases: []*TestCaseWithMetadata{
					{
						TestCase: c,
					},
				},
			}
			rs := tester.Run()
			require.Len(t, rs, 1)
			if tt.error {
				require.Error(t, rs[0].Error, "this test must fail, but it passed")
				require.True(t, strings.HasPrefix(rs[0].String(), "Failed"))
				return
			}
			require.NoError(t, rs[0].Error)
			require.True(t, strings.HasPrefix(rs[0].String(), "Passed"))
		})
	}
}

func TestTester_Run_Reproducible(t *testing.T) {
	tab := grammar.NewTable()
	require.NoError(t, tab.Add(`<a>::="x"<a>|"y"<a>|E`))
	c, err := tspec.ParseTestCase(strings.NewReader(`Never matches
---
start a
trials 10
seed 3
---
z
`))
	require.NoError(t, err)

	tester := &Tester{
		Table: tab,
		Cases: []*TestCaseWithMetadata{
			{
				TestCase: c,
			},
		},
	}
	r1 := tester.Run()[0]
	r2 := tester.Run()[0]
	require.Error(t, r1.Error)
	require.Equal(t, 1, r1.Trial)
	require.Equal(t, r1.Sample, r2.Sample)
	require.Contains(t, r1.String(), "trial: 1")
}

func TestListTestCases(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	valid := `Valid
---
start a
---
x
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.test"), []byte(valid), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.test"), []byte(valid), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.test"), []byte("broken"), 0644))

	cs := ListTestCases(dir)
	require.Len(t, cs, 3)

	byName := map[string]*TestCaseWithMetadata{}
	for _, c := range cs {
		byName[filepath.Base(c.FilePath)] = c
	}
	require.NoError(t, byName["a.test"].Error)
	require.Equal(t, "a", byName["a.test"].TestCase.Start)
	require.NoError(t, byName["b.test"].Error)
	require.Error(t, byName["c.test"].Error)

	missing := ListTestCases(filepath.Join(dir, "missing"))
	require.Len(t, missing, 1)
	require.Error(t, missing[0].Error)

	tab := grammar.NewTable()
	require.NoError(t, tab.Add(`<a>::="x"`))
	rs := (&Tester{
		Table: tab,
		Cases: cs,
	}).Run()
	failed := 0
	for _, r := range rs {
		if r.Error != nil {
			failed++
		}
	}
	require.Equal(t, 1, failed)
}
