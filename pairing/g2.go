package pairing

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/bn"
)

// Serialized lengths of a G2 element in bytes. G2 points live on the
// twist over a quadratic extension, so both encodings are twice the
// G1 size.
const (
	G2CompressedSize   = bls12381.SizeOfG2AffineCompressed
	G2UncompressedSize = bls12381.SizeOfG2AffineUncompressed
)

// G2 is the group of points on the twist of the BLS12-381 curve,
// written additively. It has the same prime order as G1.
type G2 struct{}

// Order returns the prime order r of the group.
func (G2) Order() *bn.Bn {
	return orderBn
}

// Generator returns the fixed, well-known base point of G2.
func (G2) Generator() *G2Element {
	return &G2Element{p: g2Gen, isGen: true}
}

// NeutralElement returns the point at infinity, the identity of G2.
func (G2) NeutralElement() *G2Element {
	return &G2Element{}
}

// HashToPoint deterministically maps an arbitrary byte string to a
// valid element of G2 using the engine's RFC 9380 hash-to-curve map.
func (G2) HashToPoint(msg []byte) (*G2Element, error) {
	p, err := bls12381.HashToG2(msg, []byte(dstG2))
	if err != nil {
		return nil, err
	}
	return &G2Element{p: p}, nil
}

// Random returns a uniformly sampled element of G2.
func (G2) Random(r io.Reader) (*G2Element, error) {
	k, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	var e G2Element
	e.p.ScalarMultiplicationBase(k)
	return &e, nil
}

// ElementFromBytes deserializes an element of G2, accepting both the
// compressed and the uncompressed encoding (detected by length). The
// error contract matches [G1.ElementFromBytes].
func (G2) ElementFromBytes(b []byte) (*G2Element, error) {
	if len(b) != G2CompressedSize && len(b) != G2UncompressedSize {
		return nil, fmt.Errorf("%w: G2 element must be %d or %d bytes, got %d",
			ErrInvalidEncoding, G2CompressedSize, G2UncompressedSize, len(b))
	}
	infinity, err := checkEncodingFlags(b, G2CompressedSize)
	if err != nil {
		return nil, err
	}
	var e G2Element
	if _, err := e.p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	if e.p.IsInfinity() && !infinity {
		return nil, fmt.Errorf("%w: infinity must use its dedicated flag", ErrInvalidEncoding)
	}
	return &e, nil
}

// Sum returns the sum of the given elements, or the neutral element
// when called with none.
func (G2) Sum(elems ...*G2Element) *G2Element {
	var acc G2Element
	for _, e := range elems {
		acc.p.Add(&acc.p, &e.p)
	}
	return &acc
}

// WSum returns Σ weights[i]·elems[i] in a single multi-scalar
// multiplication. The slices must have equal length.
func (G2) WSum(weights []*bn.Bn, elems []*G2Element) (*G2Element, error) {
	if len(weights) != len(elems) {
		return nil, fmt.Errorf("%w: %d weights for %d elements", ErrDomain, len(weights), len(elems))
	}
	points := make([]bls12381.G2Affine, len(elems))
	for i, e := range elems {
		points[i] = e.p
	}
	var acc G2Element
	if _, err := acc.p.MultiExp(points, frScalars(weights), ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return &acc, nil
}

// G2Element is an element of G2. Like G1Element, values are immutable
// from the caller's perspective.
type G2Element struct {
	p     bls12381.G2Affine
	isGen bool
}

// Copy returns a new element with the same value.
func (e *G2Element) Copy() *G2Element {
	return &G2Element{p: e.p, isGen: e.isGen}
}

// Add returns e + o.
func (e *G2Element) Add(o *G2Element) *G2Element {
	var r G2Element
	r.p.Add(&e.p, &o.p)
	return &r
}

// Sub returns e - o.
func (e *G2Element) Sub(o *G2Element) *G2Element {
	var neg bls12381.G2Affine
	neg.Neg(&o.p)
	var r G2Element
	r.p.Add(&e.p, &neg)
	return &r
}

// Neg returns the inverse element -e.
func (e *G2Element) Neg() *G2Element {
	var r G2Element
	r.p.Neg(&e.p)
	return &r
}

// Double returns e + e using the engine's doubling formula.
func (e *G2Element) Double() *G2Element {
	var r G2Element
	r.p.Double(&e.p)
	return &r
}

// Mul returns the scalar multiple k·e, with k reduced modulo the
// group order.
func (e *G2Element) Mul(k *bn.Bn) *G2Element {
	s := reduceScalar(k)
	var r G2Element
	if e.isGen {
		r.p.ScalarMultiplicationBase(s)
	} else {
		r.p.ScalarMultiplication(&e.p, s)
	}
	return &r
}

// Equal reports whether e and o are the same group element.
func (e *G2Element) Equal(o *G2Element) bool {
	return e.p.Equal(&o.p)
}

// IsValid reports whether e lies on the twist and in the prime-order
// subgroup. The point at infinity is valid.
func (e *G2Element) IsValid() bool {
	return e.p.IsOnCurve() && e.p.IsInSubGroup()
}

// IsNeutralElement reports whether e is the point at infinity.
func (e *G2Element) IsNeutralElement() bool {
	return e.p.IsInfinity()
}

// ToBytes serializes the element into the engine's fixed-width
// encoding: 96 bytes compressed or 192 bytes uncompressed.
func (e *G2Element) ToBytes(compressed bool) []byte {
	if compressed {
		b := e.p.Bytes()
		return b[:]
	}
	b := e.p.RawBytes()
	return b[:]
}

// String returns a short hex form of the compressed encoding.
func (e *G2Element) String() string {
	return fmt.Sprintf("G2Element(%x)", e.ToBytes(true))
}
