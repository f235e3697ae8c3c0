package pairing

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pair computes the bilinear map e: G1 × G2 → Gt. It is pure and
// deterministic, and for all scalars a, b:
//
//	Pair(a·P, b·Q) == Pair(P, Q)^(a·b)
//
// Inputs are validated eagerly: an element that fails group
// membership is rejected with ErrDomain rather than producing an
// unusable result. Pairing the two generators yields the fixed
// constant Gt{}.Generator().
func Pair(p *G1Element, q *G2Element) (*GtElement, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: invalid G1 element", ErrDomain)
	}
	if !q.IsValid() {
		return nil, fmt.Errorf("%w: invalid G2 element", ErrDomain)
	}
	gt, err := bls12381.Pair([]bls12381.G1Affine{p.p}, []bls12381.G2Affine{q.p})
	if err != nil {
		return nil, err
	}
	return &GtElement{v: gt}, nil
}

// PairMulti computes the product Π e(ps[i], qs[i]) through the
// engine's batched Miller loop followed by a single final
// exponentiation. The result equals multiplying individually computed
// pairings but is substantially cheaper. The slices must have equal
// length; all inputs are validated as in [Pair].
func PairMulti(ps []*G1Element, qs []*G2Element) (*GtElement, error) {
	if len(ps) != len(qs) {
		return nil, fmt.Errorf("%w: %d G1 elements for %d G2 elements", ErrDomain, len(ps), len(qs))
	}
	if len(ps) == 0 {
		// The engine rejects empty batches; the empty product is unity.
		return &GtElement{v: gtOne}, nil
	}
	g1s := make([]bls12381.G1Affine, len(ps))
	g2s := make([]bls12381.G2Affine, len(qs))
	for i := range ps {
		if !ps[i].IsValid() {
			return nil, fmt.Errorf("%w: invalid G1 element at index %d", ErrDomain, i)
		}
		if !qs[i].IsValid() {
			return nil, fmt.Errorf("%w: invalid G2 element at index %d", ErrDomain, i)
		}
		g1s[i] = ps[i].p
		g2s[i] = qs[i].p
	}
	gt, err := bls12381.Pair(g1s, g2s)
	if err != nil {
		return nil, err
	}
	return &GtElement{v: gt}, nil
}
