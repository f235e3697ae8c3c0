package pairing

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/bn"
)

// Serialized lengths of a G1 element in bytes.
const (
	G1CompressedSize   = bls12381.SizeOfG1AffineCompressed
	G1UncompressedSize = bls12381.SizeOfG1AffineUncompressed
)

// G1 is the group of points on the BLS12-381 curve over the base
// field, written additively. It is a stateless handle; all instances
// are interchangeable.
type G1 struct{}

// Order returns the prime order r of the group. G1, G2 and Gt all
// share the same order.
func (G1) Order() *bn.Bn {
	return orderBn
}

// Generator returns the fixed, well-known base point of G1.
func (G1) Generator() *G1Element {
	return &G1Element{p: g1Gen, isGen: true}
}

// NeutralElement returns the point at infinity, the identity of G1.
func (G1) NeutralElement() *G1Element {
	return &G1Element{}
}

// HashToPoint deterministically maps an arbitrary byte string to a
// valid element of G1 using the engine's RFC 9380 hash-to-curve map.
// The discrete logarithm of the result is not known to anyone.
func (G1) HashToPoint(msg []byte) (*G1Element, error) {
	p, err := bls12381.HashToG1(msg, []byte(dstG1))
	if err != nil {
		return nil, err
	}
	return &G1Element{p: p}, nil
}

// Random returns a uniformly sampled element of G1, obtained by
// scaling the generator with a random scalar from r.
func (G1) Random(r io.Reader) (*G1Element, error) {
	k, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	var e G1Element
	e.p.ScalarMultiplicationBase(k)
	return &e, nil
}

// ElementFromBytes deserializes an element of G1, accepting both the
// compressed and the uncompressed encoding (detected by length). It
// returns ErrInvalidEncoding when the length, the flag bits or the
// infinity form are not canonical, and ErrNotOnCurve when the bytes
// decode but fail the curve or subgroup membership checks.
func (G1) ElementFromBytes(b []byte) (*G1Element, error) {
	if len(b) != G1CompressedSize && len(b) != G1UncompressedSize {
		return nil, fmt.Errorf("%w: G1 element must be %d or %d bytes, got %d",
			ErrInvalidEncoding, G1CompressedSize, G1UncompressedSize, len(b))
	}
	infinity, err := checkEncodingFlags(b, G1CompressedSize)
	if err != nil {
		return nil, err
	}
	var e G1Element
	if _, err := e.p.SetBytes(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOnCurve, err)
	}
	// An all-zero coordinate block without the infinity flag also
	// decodes to infinity; only the flagged form is canonical.
	if e.p.IsInfinity() && !infinity {
		return nil, fmt.Errorf("%w: infinity must use its dedicated flag", ErrInvalidEncoding)
	}
	return &e, nil
}

// Sum returns the sum of the given elements, or the neutral element
// when called with none.
func (G1) Sum(elems ...*G1Element) *G1Element {
	var acc G1Element
	for _, e := range elems {
		acc.p.Add(&acc.p, &e.p)
	}
	return &acc
}

// WSum returns the weighted sum Σ weights[i]·elems[i] in a single
// multi-scalar multiplication, which the engine computes faster than
// the equivalent sequence of Mul and Add calls. The slices must have
// equal length.
func (G1) WSum(weights []*bn.Bn, elems []*G1Element) (*G1Element, error) {
	if len(weights) != len(elems) {
		return nil, fmt.Errorf("%w: %d weights for %d elements", ErrDomain, len(weights), len(elems))
	}
	points := make([]bls12381.G1Affine, len(elems))
	for i, e := range elems {
		points[i] = e.p
	}
	var acc G1Element
	if _, err := acc.p.MultiExp(points, frScalars(weights), ecc.MultiExpConfig{}); err != nil {
		return nil, err
	}
	return &acc, nil
}

// G1Element is an element of G1. Elements are immutable: every
// operation returns a new element and leaves its operands untouched,
// even though the engine representation underneath is mutable.
type G1Element struct {
	p bls12381.G1Affine

	// isGen marks elements known to be the generator, enabling the
	// engine's fixed-base scalar multiplication in Mul.
	isGen bool
}

// Copy returns a new element with the same value.
func (e *G1Element) Copy() *G1Element {
	return &G1Element{p: e.p, isGen: e.isGen}
}

// Add returns e + o.
func (e *G1Element) Add(o *G1Element) *G1Element {
	var r G1Element
	r.p.Add(&e.p, &o.p)
	return &r
}

// Sub returns e - o.
func (e *G1Element) Sub(o *G1Element) *G1Element {
	var neg bls12381.G1Affine
	neg.Neg(&o.p)
	var r G1Element
	r.p.Add(&e.p, &neg)
	return &r
}

// Neg returns the inverse element -e.
func (e *G1Element) Neg() *G1Element {
	var r G1Element
	r.p.Neg(&e.p)
	return &r
}

// Double returns e + e using the engine's dedicated doubling formula,
// which is cheaper than Add(e, e).
func (e *G1Element) Double() *G1Element {
	var r G1Element
	r.p.Double(&e.p)
	return &r
}

// Mul returns the scalar multiple k·e. The scalar may be negative,
// zero or larger than the group order; it is reduced modulo the order
// before the engine is invoked. Multiplying the generator uses the
// engine's fixed-base path.
func (e *G1Element) Mul(k *bn.Bn) *G1Element {
	s := reduceScalar(k)
	var r G1Element
	if e.isGen {
		r.p.ScalarMultiplicationBase(s)
	} else {
		r.p.ScalarMultiplication(&e.p, s)
	}
	return &r
}

// Pair computes the bilinear map e(e, q) into Gt. See [Pair].
func (e *G1Element) Pair(q *G2Element) (*GtElement, error) {
	return Pair(e, q)
}

// Equal reports whether e and o are the same group element. Equality
// is on logical value: an element and a re-normalized copy of it
// compare equal.
func (e *G1Element) Equal(o *G1Element) bool {
	return e.p.Equal(&o.p)
}

// IsValid reports whether e lies on the curve and in the prime-order
// subgroup. The point at infinity is valid.
func (e *G1Element) IsValid() bool {
	return e.p.IsOnCurve() && e.p.IsInSubGroup()
}

// IsNeutralElement reports whether e is the point at infinity.
func (e *G1Element) IsNeutralElement() bool {
	return e.p.IsInfinity()
}

// AffineCoordinates returns the affine (x, y) coordinates of the
// point. The point at infinity has none and yields
// ErrNoAffineCoordinates.
func (e *G1Element) AffineCoordinates() (x, y *bn.Bn, err error) {
	if e.p.IsInfinity() {
		return nil, nil, ErrNoAffineCoordinates
	}
	var xi, yi big.Int
	e.p.X.BigInt(&xi)
	e.p.Y.BigInt(&yi)
	return bn.FromBigInt(&xi), bn.FromBigInt(&yi), nil
}

// ToBytes serializes the element into the engine's fixed-width
// encoding: 48 bytes compressed (one coordinate plus parity flags) or
// 96 bytes uncompressed. The encoding is interoperable with any other
// consumer of the engine's format.
func (e *G1Element) ToBytes(compressed bool) []byte {
	if compressed {
		b := e.p.Bytes()
		return b[:]
	}
	b := e.p.RawBytes()
	return b[:]
}

// String returns a short hex form of the compressed encoding.
func (e *G1Element) String() string {
	return fmt.Sprintf("G1Element(%x)", e.ToBytes(true))
}
