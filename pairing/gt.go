package pairing

import (
	"crypto/sha512"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/bn"
)

// GtSize is the serialized length of a Gt element in bytes. Gt
// elements live in the degree-12 extension field, so they are much
// larger than G1 or G2 points, and the engine defines a single
// fixed-width encoding for them.
const GtSize = bls12381.SizeOfGT

// Gt is the target group of the pairing, a multiplicative subgroup of
// the degree-12 extension field with the same prime order as G1 and
// G2.
type Gt struct{}

// Order returns the prime order r of the group.
func (Gt) Order() *bn.Bn {
	return orderBn
}

// Generator returns the fixed generator e(g1, g2), the pairing of the
// G1 and G2 generators. It is computed once at package
// initialization and is a useful sanity-check constant.
func (Gt) Generator() *GtElement {
	return &GtElement{v: gtGen}
}

// NeutralElement returns unity, the identity of Gt.
func (Gt) NeutralElement() *GtElement {
	return &GtElement{v: gtOne}
}

// HashToElement deterministically maps an arbitrary byte string to a
// valid element of Gt by raising the generator to a hashed scalar.
// The 512-bit digest is reduced modulo the 255-bit order, keeping the
// modular bias negligible. Unlike the G1/G2 hash-to-curve maps, the
// discrete logarithm of the result relative to the generator is
// exactly the hashed scalar, so this is not suitable where an unknown
// discrete log is required.
func (Gt) HashToElement(msg []byte) *GtElement {
	h := sha512.Sum512(msg)
	k := new(big.Int).SetBytes(h[:])
	k.Mod(k, groupOrder)
	var r GtElement
	r.v.Exp(gtGen, k)
	return &r
}

// Random returns a uniformly sampled element of Gt, obtained by
// raising the generator to a random scalar.
func (Gt) Random(r io.Reader) (*GtElement, error) {
	k, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	var e GtElement
	e.v.Exp(gtGen, k)
	return &e, nil
}

// ElementFromBytes deserializes an element of Gt. It returns
// ErrInvalidEncoding for a wrong length or non-canonical field
// coefficients, and ErrNotOnCurve when the decoded value is not in
// the prime-order subgroup.
func (Gt) ElementFromBytes(b []byte) (*GtElement, error) {
	if len(b) != GtSize {
		return nil, fmt.Errorf("%w: Gt element must be %d bytes, got %d", ErrInvalidEncoding, GtSize, len(b))
	}
	var e GtElement
	if err := e.v.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if !e.IsValid() {
		return nil, fmt.Errorf("%w: Gt element outside the prime-order subgroup", ErrNotOnCurve)
	}
	return &e, nil
}

// Prod returns the product of the given elements, or unity when
// called with none.
func (Gt) Prod(elems ...*GtElement) *GtElement {
	r := GtElement{v: gtOne}
	for _, e := range elems {
		r.v.Mul(&r.v, &e.v)
	}
	return &r
}

// WProd returns the weighted product Π elems[i]^weights[i]. The
// slices must have equal length.
func (Gt) WProd(weights []*bn.Bn, elems []*GtElement) (*GtElement, error) {
	if len(weights) != len(elems) {
		return nil, fmt.Errorf("%w: %d weights for %d elements", ErrDomain, len(weights), len(elems))
	}
	r := GtElement{v: gtOne}
	for i, e := range elems {
		var t bls12381.GT
		t.Exp(e.v, reduceScalar(weights[i]))
		r.v.Mul(&r.v, &t)
	}
	return &r, nil
}

// GtElement is an element of Gt, written multiplicatively. Values are
// immutable from the caller's perspective.
type GtElement struct {
	v bls12381.GT
}

// Copy returns a new element with the same value.
func (e *GtElement) Copy() *GtElement {
	return &GtElement{v: e.v}
}

// Mul returns the group operation e * o.
func (e *GtElement) Mul(o *GtElement) *GtElement {
	var r GtElement
	r.v.Mul(&e.v, &o.v)
	return &r
}

// Div returns e * o⁻¹.
func (e *GtElement) Div(o *GtElement) *GtElement {
	var inv bls12381.GT
	inv.Inverse(&o.v)
	var r GtElement
	r.v.Mul(&e.v, &inv)
	return &r
}

// Inverse returns e⁻¹.
func (e *GtElement) Inverse() *GtElement {
	var r GtElement
	r.v.Inverse(&e.v)
	return &r
}

// Square returns e * e using the engine's dedicated squaring formula.
func (e *GtElement) Square() *GtElement {
	var r GtElement
	r.v.Square(&e.v)
	return &r
}

// Exp returns e raised to the scalar k. The exponent may be negative,
// zero or larger than the group order; it is reduced modulo the order
// before the engine is invoked.
func (e *GtElement) Exp(k *bn.Bn) *GtElement {
	var r GtElement
	r.v.Exp(e.v, reduceScalar(k))
	return &r
}

// Equal reports whether e and o are the same group element.
func (e *GtElement) Equal(o *GtElement) bool {
	return e.v.Equal(&o.v)
}

// IsValid reports whether e is a member of the prime-order subgroup,
// i.e. whether e^r is unity.
func (e *GtElement) IsValid() bool {
	var t bls12381.GT
	t.Exp(e.v, groupOrder)
	return t.Equal(&gtOne)
}

// IsNeutralElement reports whether e is unity.
func (e *GtElement) IsNeutralElement() bool {
	return e.v.Equal(&gtOne)
}

// ToBytes serializes the element into the engine's fixed 576-byte
// encoding. Gt has no compressed form in this engine.
func (e *GtElement) ToBytes() []byte {
	b := e.v.Bytes()
	return b[:]
}

// String returns a short hex form of the serialized element.
func (e *GtElement) String() string {
	return fmt.Sprintf("GtElement(%x)", e.ToBytes())
}
