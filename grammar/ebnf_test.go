package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_EBNF(t *testing.T) {
	tab := newTestTable(t,
		`<a>::="x"<a>|E`,
		`<b c>::=<a>"+"<a>E`,
	)
	require.Equal(t, `P61_ = "x" P61_ | "" .
P622063_ = P61_ "+" P61_ "" .
`, tab.EBNF())
}

func TestTable_Check(t *testing.T) {
	tests := []struct {
		caption string
		rules   []string
		start   string
		errMsgs []string
	}{
		{
			caption: "a complete grammar passes",
			rules: []string{
				`<expr>::=<term>|<term><op><expr>`,
				`<term>::="1"|"2"|"open "<expr>" close"`,
				`<op>::="+"|"-"|"*"|"/"`,
			},
			start: "expr",
		},
		{
			caption: "names with spaces are checked like any other name",
			rules: []string{
				`<top>::=<my rule>`,
				`<my rule>::="x"|E`,
			},
			start: "top",
		},
		{
			caption: "an undefined reference is reported even on a rarely taken path",
			rules: []string{
				`<a>::="x"|"y"|"z"<b>`,
			},
			start:   "a",
			errMsgs: []string{"<b>"},
		},
		{
			caption: "an unreachable rule is reported",
			rules: []string{
				`<a>::="x"`,
				`<unused>::="y"`,
			},
			start:   "a",
			errMsgs: []string{"<unused>"},
		},
		{
			caption: "an undefined start symbol is reported",
			rules: []string{
				`<a>::="x"`,
			},
			start:   "b",
			errMsgs: []string{"<b>"},
		},
		{
			caption: "a rule that never stops recursing is reported",
			rules: []string{
				`<a>::="x"|<b>`,
				`<b>::="y"<b>`,
			},
			start:   "a",
			errMsgs: []string{"never derive", "<b>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			tab := newTestTable(t, tt.rules...)
			err := tab.Check(tt.start)
			if len(tt.errMsgs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.errMsgs {
				require.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestDecodeNames(t *testing.T) {
	require.Equal(t, "missing production <a b>", decodeNames("missing production "+encodeName("a b")))
	require.Equal(t, "<> is unreachable", decodeNames(encodeName("")+" is unreachable"))
	require.Equal(t, "P123_", decodeNames("P123_"))
}
