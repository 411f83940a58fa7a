package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecayPolicy_Skip(t *testing.T) {
	tests := []struct {
		caption string
		policy  *DecayPolicy
		draw    float64
		length  int
		arity   int
		skip    bool
	}{
		{
			caption: "a short output is bounded by the uniform threshold",
			policy:  NewDecayPolicy(),
			draw:    0.49,
			length:  0,
			arity:   2,
			skip:    true,
		},
		{
			caption: "the uniform threshold is exclusive",
			policy:  NewDecayPolicy(),
			draw:    0.5,
			length:  0,
			arity:   2,
			skip:    false,
		},
		{
			caption: "more alternatives raise the uniform threshold",
			policy:  NewDecayPolicy(),
			draw:    0.7,
			length:  0,
			arity:   4,
			skip:    true,
		},
		{
			caption: "a long output lowers the continuation threshold below the uniform one",
			policy:  NewDecayPolicy(),
			draw:    0.34,
			length:  99,
			arity:   2,
			skip:    false,
		},
		{
			caption: "a draw under both thresholds skips",
			policy:  NewDecayPolicy(),
			draw:    0.33,
			length:  99,
			arity:   2,
			skip:    true,
		},
		{
			caption: "the divisor is configurable",
			policy: &DecayPolicy{
				Divisor: 1,
				Offset:  1,
			},
			draw:   0.34,
			length: 1,
			arity:  2,
			skip:   false,
		},
		{
			caption: "the offset is configurable",
			policy: &DecayPolicy{
				Divisor: 50,
				Offset:  0,
			},
			draw:   0.499,
			length: 49,
			arity:  2,
			skip:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			require.Equal(t, tt.skip, tt.policy.Skip(tt.draw, tt.length, tt.arity))
		})
	}
}

func TestUniformPolicy_Skip(t *testing.T) {
	p := UniformPolicy{}
	require.True(t, p.Skip(0.66, 100000, 3))
	require.False(t, p.Skip(0.67, 0, 3))
	require.False(t, p.Skip(0, 0, 1))
}

func TestLengthCapPolicy_Skip(t *testing.T) {
	p := &LengthCapPolicy{
		Policy: PolicyFunc(func(draw float64, length int, arity int) bool {
			return true
		}),
		MaxLength: 10,
	}
	require.True(t, p.Skip(0.9, 9, 2))
	require.False(t, p.Skip(0, 10, 2))
	require.False(t, p.Skip(0, 11, 2))
}

func TestTable_Generate_Policy(t *testing.T) {
	always := PolicyFunc(func(draw float64, length int, arity int) bool {
		return true
	})
	never := PolicyFunc(func(draw float64, length int, arity int) bool {
		return false
	})

	tab := NewTable(BranchPolicy(never))
	require.NoError(t, tab.Add(`<a>::="x"|"y"|"z"`))
	s, err := tab.Generate("a")
	require.NoError(t, err)
	require.Equal(t, "x", s)

	tab = NewTable(BranchPolicy(always))
	require.NoError(t, tab.Add(`<a>::="x"|"y"|"z"`))
	s, err = tab.Generate("a")
	require.NoError(t, err)
	require.Equal(t, "z", s)

	var arities []int
	record := PolicyFunc(func(draw float64, length int, arity int) bool {
		arities = append(arities, arity)
		require.GreaterOrEqual(t, draw, 0.0)
		require.Less(t, draw, 1.0)
		return true
	})
	tab = NewTable(BranchPolicy(record))
	require.NoError(t, tab.Add(`<a>::="w"|"x"|"y"|"z"`))
	_, err = tab.Generate("a")
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2}, arities)
}
