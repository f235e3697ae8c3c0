package multiplicative

import (
	"io"

	"github.com/f3rmion/bilinear/bn"
	"github.com/f3rmion/bilinear/pairing"
)

// Gt is multiplicative in the native convention already; the types
// are aliases and values are interchangeable with the core package.
type (
	// Gt is the multiplicatively written target group.
	Gt = pairing.Gt
	// GtElement is an element of Gt.
	GtElement = pairing.GtElement
)

// Re-exported error taxonomy for errors.Is checks.
var (
	ErrDomain              = pairing.ErrDomain
	ErrInvalidEncoding     = pairing.ErrInvalidEncoding
	ErrNotOnCurve          = pairing.ErrNotOnCurve
	ErrNoAffineCoordinates = pairing.ErrNoAffineCoordinates
)

// G1 is the first source group presented multiplicatively: the
// underlying point addition becomes Mul, scalar multiplication
// becomes Exp.
type G1 struct{}

// Order returns the prime order r shared by all three groups.
func (G1) Order() *bn.Bn {
	return pairing.G1{}.Order()
}

// Generator returns the fixed generator of G1.
func (G1) Generator() *G1Element {
	return &G1Element{inner: pairing.G1{}.Generator()}
}

// NeutralElement returns the identity of G1 (the point at infinity).
func (G1) NeutralElement() *G1Element {
	return &G1Element{inner: pairing.G1{}.NeutralElement()}
}

// HashToPoint deterministically maps bytes to a valid element of G1.
func (G1) HashToPoint(msg []byte) (*G1Element, error) {
	e, err := pairing.G1{}.HashToPoint(msg)
	if err != nil {
		return nil, err
	}
	return &G1Element{inner: e}, nil
}

// Random returns a uniformly sampled element of G1.
func (G1) Random(r io.Reader) (*G1Element, error) {
	e, err := pairing.G1{}.Random(r)
	if err != nil {
		return nil, err
	}
	return &G1Element{inner: e}, nil
}

// ElementFromBytes deserializes an element of G1 from either
// encoding.
func (G1) ElementFromBytes(b []byte) (*G1Element, error) {
	e, err := pairing.G1{}.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &G1Element{inner: e}, nil
}

// Prod returns the product of the given elements (the underlying
// sum), or the neutral element when called with none.
func (G1) Prod(elems ...*G1Element) *G1Element {
	unwrapped := make([]*pairing.G1Element, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	return &G1Element{inner: pairing.G1{}.Sum(unwrapped...)}
}

// WProd returns Π elems[i]^weights[i] (the underlying multi-scalar
// multiplication). The slices must have equal length.
func (G1) WProd(weights []*bn.Bn, elems []*G1Element) (*G1Element, error) {
	unwrapped := make([]*pairing.G1Element, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	r, err := pairing.G1{}.WSum(weights, unwrapped)
	if err != nil {
		return nil, err
	}
	return &G1Element{inner: r}, nil
}

// G1Element is an element of G1 under multiplicative names. It wraps
// the underlying point without copying.
type G1Element struct {
	inner *pairing.G1Element
}

// WrapG1 presents an existing element under multiplicative names. The
// element is shared, not copied.
func WrapG1(e *pairing.G1Element) *G1Element {
	return &G1Element{inner: e}
}

// Unwrap returns the underlying element.
func (e *G1Element) Unwrap() *pairing.G1Element {
	return e.inner
}

// Copy returns a new element with the same value.
func (e *G1Element) Copy() *G1Element {
	return &G1Element{inner: e.inner.Copy()}
}

// Mul returns the group operation e * o (the underlying point
// addition).
func (e *G1Element) Mul(o *G1Element) *G1Element {
	return &G1Element{inner: e.inner.Add(o.inner)}
}

// Div returns e * o⁻¹ (the underlying point subtraction).
func (e *G1Element) Div(o *G1Element) *G1Element {
	return &G1Element{inner: e.inner.Sub(o.inner)}
}

// Inverse returns e⁻¹ (the underlying point negation).
func (e *G1Element) Inverse() *G1Element {
	return &G1Element{inner: e.inner.Neg()}
}

// Square returns e * e (the underlying point doubling).
func (e *G1Element) Square() *G1Element {
	return &G1Element{inner: e.inner.Double()}
}

// Exp returns e raised to the scalar k (the underlying scalar
// multiplication, with k reduced modulo the group order).
func (e *G1Element) Exp(k *bn.Bn) *G1Element {
	return &G1Element{inner: e.inner.Mul(k)}
}

// Pair computes the bilinear map e(e, q). See [Pair].
func (e *G1Element) Pair(q *G2Element) (*GtElement, error) {
	return Pair(e, q)
}

// Equal reports whether e and o are the same group element.
func (e *G1Element) Equal(o *G1Element) bool {
	return e.inner.Equal(o.inner)
}

// IsValid reports whether e lies on the curve and in the prime-order
// subgroup.
func (e *G1Element) IsValid() bool {
	return e.inner.IsValid()
}

// IsNeutralElement reports whether e is the identity.
func (e *G1Element) IsNeutralElement() bool {
	return e.inner.IsNeutralElement()
}

// AffineCoordinates returns the affine (x, y) coordinates of the
// underlying point.
func (e *G1Element) AffineCoordinates() (x, y *bn.Bn, err error) {
	return e.inner.AffineCoordinates()
}

// ToBytes serializes the element; the encoding is identical across
// notations.
func (e *G1Element) ToBytes(compressed bool) []byte {
	return e.inner.ToBytes(compressed)
}

// String returns a short hex form of the compressed encoding.
func (e *G1Element) String() string {
	return e.inner.String()
}

// G2 is the second source group presented multiplicatively.
type G2 struct{}

// Order returns the prime order r shared by all three groups.
func (G2) Order() *bn.Bn {
	return pairing.G2{}.Order()
}

// Generator returns the fixed generator of G2.
func (G2) Generator() *G2Element {
	return &G2Element{inner: pairing.G2{}.Generator()}
}

// NeutralElement returns the identity of G2 (the point at infinity).
func (G2) NeutralElement() *G2Element {
	return &G2Element{inner: pairing.G2{}.NeutralElement()}
}

// HashToPoint deterministically maps bytes to a valid element of G2.
func (G2) HashToPoint(msg []byte) (*G2Element, error) {
	e, err := pairing.G2{}.HashToPoint(msg)
	if err != nil {
		return nil, err
	}
	return &G2Element{inner: e}, nil
}

// Random returns a uniformly sampled element of G2.
func (G2) Random(r io.Reader) (*G2Element, error) {
	e, err := pairing.G2{}.Random(r)
	if err != nil {
		return nil, err
	}
	return &G2Element{inner: e}, nil
}

// ElementFromBytes deserializes an element of G2 from either
// encoding.
func (G2) ElementFromBytes(b []byte) (*G2Element, error) {
	e, err := pairing.G2{}.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &G2Element{inner: e}, nil
}

// Prod returns the product of the given elements, or the neutral
// element when called with none.
func (G2) Prod(elems ...*G2Element) *G2Element {
	unwrapped := make([]*pairing.G2Element, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	return &G2Element{inner: pairing.G2{}.Sum(unwrapped...)}
}

// WProd returns Π elems[i]^weights[i]. The slices must have equal
// length.
func (G2) WProd(weights []*bn.Bn, elems []*G2Element) (*G2Element, error) {
	unwrapped := make([]*pairing.G2Element, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	r, err := pairing.G2{}.WSum(weights, unwrapped)
	if err != nil {
		return nil, err
	}
	return &G2Element{inner: r}, nil
}

// G2Element is an element of G2 under multiplicative names.
type G2Element struct {
	inner *pairing.G2Element
}

// WrapG2 presents an existing element under multiplicative names. The
// element is shared, not copied.
func WrapG2(e *pairing.G2Element) *G2Element {
	return &G2Element{inner: e}
}

// Unwrap returns the underlying element.
func (e *G2Element) Unwrap() *pairing.G2Element {
	return e.inner
}

// Copy returns a new element with the same value.
func (e *G2Element) Copy() *G2Element {
	return &G2Element{inner: e.inner.Copy()}
}

// Mul returns the group operation e * o.
func (e *G2Element) Mul(o *G2Element) *G2Element {
	return &G2Element{inner: e.inner.Add(o.inner)}
}

// Div returns e * o⁻¹.
func (e *G2Element) Div(o *G2Element) *G2Element {
	return &G2Element{inner: e.inner.Sub(o.inner)}
}

// Inverse returns e⁻¹.
func (e *G2Element) Inverse() *G2Element {
	return &G2Element{inner: e.inner.Neg()}
}

// Square returns e * e.
func (e *G2Element) Square() *G2Element {
	return &G2Element{inner: e.inner.Double()}
}

// Exp returns e raised to the scalar k.
func (e *G2Element) Exp(k *bn.Bn) *G2Element {
	return &G2Element{inner: e.inner.Mul(k)}
}

// Equal reports whether e and o are the same group element.
func (e *G2Element) Equal(o *G2Element) bool {
	return e.inner.Equal(o.inner)
}

// IsValid reports whether e lies on the twist and in the prime-order
// subgroup.
func (e *G2Element) IsValid() bool {
	return e.inner.IsValid()
}

// IsNeutralElement reports whether e is the identity.
func (e *G2Element) IsNeutralElement() bool {
	return e.inner.IsNeutralElement()
}

// ToBytes serializes the element; the encoding is identical across
// notations.
func (e *G2Element) ToBytes(compressed bool) []byte {
	return e.inner.ToBytes(compressed)
}

// String returns a short hex form of the compressed encoding.
func (e *G2Element) String() string {
	return e.inner.String()
}

// Pair computes the bilinear map e(p, q) on the wrapped points.
func Pair(p *G1Element, q *G2Element) (*GtElement, error) {
	return pairing.Pair(p.inner, q.inner)
}

// PairMulti computes Π e(ps[i], qs[i]) with one Miller loop batch.
func PairMulti(ps []*G1Element, qs []*G2Element) (*GtElement, error) {
	unwrappedP := make([]*pairing.G1Element, len(ps))
	for i, p := range ps {
		unwrappedP[i] = p.inner
	}
	unwrappedQ := make([]*pairing.G2Element, len(qs))
	for i, q := range qs {
		unwrappedQ[i] = q.inner
	}
	return pairing.PairMulti(unwrappedP, unwrappedQ)
}
