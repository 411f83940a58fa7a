package grammar

// Policy decides, at a statement that has further alternatives, whether the generator skips
// the current alternative and moves on to the next one. draw is uniform in [0, 1), length
// is the length of the output generated so far, and arity is the number of alternatives
// left, the current one included. arity is always at least 2.
type Policy interface {
	Skip(draw float64, length int, arity int) bool
}

// PolicyFunc adapts an ordinary function to Policy.
type PolicyFunc func(draw float64, length int, arity int) bool

func (f PolicyFunc) Skip(draw float64, length int, arity int) bool {
	return f(draw, length, arity)
}

const (
	DefaultDecayDivisor = 50.0
	DefaultDecayOffset  = 1.0
)

// DecayPolicy skips to the next alternative while both of the following hold:
//
//	draw < 1 / ((Offset + length) / Divisor + 1)
//	draw < (arity - 1) / arity
//
// The first threshold falls as the output grows and the second one alone picks the
// alternatives uniformly. Together they keep derivations of recursive grammars short
// without cutting them off at a fixed depth.
type DecayPolicy struct {
	Divisor float64
	Offset  float64
}

func NewDecayPolicy() *DecayPolicy {
	return &DecayPolicy{
		Divisor: DefaultDecayDivisor,
		Offset:  DefaultDecayOffset,
	}
}

func (p *DecayPolicy) Skip(draw float64, length int, arity int) bool {
	cont := 1 / ((p.Offset+float64(length))/p.Divisor + 1)
	return draw < cont && draw < uniformThreshold(arity)
}

// UniformPolicy picks every alternative with the same probability regardless of the output
// length. It doesn't bound the length of recursive derivations.
type UniformPolicy struct{}

func (p UniformPolicy) Skip(draw float64, length int, arity int) bool {
	return draw < uniformThreshold(arity)
}

// LengthCapPolicy delegates to Policy until the output reaches MaxLength. From then on it
// always commits to the current alternative.
type LengthCapPolicy struct {
	Policy    Policy
	MaxLength int
}

func (p *LengthCapPolicy) Skip(draw float64, length int, arity int) bool {
	if length >= p.MaxLength {
		return false
	}
	return p.Policy.Skip(draw, length, arity)
}

func uniformThreshold(arity int) float64 {
	if arity <= 1 {
		return 0
	}
	return float64(arity-1) / float64(arity)
}
