package native

import (
	"github.com/f3rmion/bilinear/pairing"
)

// The native notation is the core notation; all types are aliases and
// carry no wrapper state.
type (
	// G1 is the additively written first source group.
	G1 = pairing.G1
	// G1Element is an element of G1.
	G1Element = pairing.G1Element
	// G2 is the additively written second source group.
	G2 = pairing.G2
	// G2Element is an element of G2.
	G2Element = pairing.G2Element
	// Gt is the multiplicatively written target group.
	Gt = pairing.Gt
	// GtElement is an element of Gt.
	GtElement = pairing.GtElement
)

// Re-exported error taxonomy, so callers of this notation need not
// import the core package for errors.Is checks.
var (
	ErrDomain              = pairing.ErrDomain
	ErrInvalidEncoding     = pairing.ErrInvalidEncoding
	ErrNotOnCurve          = pairing.ErrNotOnCurve
	ErrNoAffineCoordinates = pairing.ErrNoAffineCoordinates
)

// Pair computes the bilinear map e(p, q). See [pairing.Pair].
func Pair(p *G1Element, q *G2Element) (*GtElement, error) {
	return pairing.Pair(p, q)
}

// PairMulti computes Π e(ps[i], qs[i]) with a batched Miller loop.
// See [pairing.PairMulti].
func PairMulti(ps []*G1Element, qs []*G2Element) (*GtElement, error) {
	return pairing.PairMulti(ps, qs)
}
