package spec

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestPrintTree(t *testing.T) {
	tests := []struct {
		golden string
		src    string
	}{
		{
			golden: "print_tree_recursive",
			src:    `<a>::="x"<a>|E`,
		},
		{
			golden: "print_tree_names",
			src:    `<op>::="+"|"-"|<mul op>E`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			r, err := Parse(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			var b bytes.Buffer
			PrintTree(&b, r)
			g := goldie.New(t)
			g.Assert(t, tt.golden, b.Bytes())
		})
	}
}
