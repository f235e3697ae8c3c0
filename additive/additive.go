package additive

import (
	"io"

	"github.com/f3rmion/bilinear/bn"
	"github.com/f3rmion/bilinear/pairing"
)

// G1 and G2 are additive in the native convention already; the types
// are aliases and values are interchangeable with the core package.
type (
	// G1 is the additively written first source group.
	G1 = pairing.G1
	// G1Element is an element of G1.
	G1Element = pairing.G1Element
	// G2 is the additively written second source group.
	G2 = pairing.G2
	// G2Element is an element of G2.
	G2Element = pairing.G2Element
)

// Re-exported error taxonomy for errors.Is checks.
var (
	ErrDomain              = pairing.ErrDomain
	ErrInvalidEncoding     = pairing.ErrInvalidEncoding
	ErrNotOnCurve          = pairing.ErrNotOnCurve
	ErrNoAffineCoordinates = pairing.ErrNoAffineCoordinates
)

// Gt is the target group presented additively: the underlying
// multiplication becomes Add, exponentiation becomes scalar Mul.
type Gt struct{}

// Order returns the prime order r shared by all three groups.
func (Gt) Order() *bn.Bn {
	return pairing.Gt{}.Order()
}

// Generator returns e(g1, g2), the fixed generator of Gt.
func (Gt) Generator() *GtElement {
	return &GtElement{inner: pairing.Gt{}.Generator()}
}

// NeutralElement returns the identity of Gt.
func (Gt) NeutralElement() *GtElement {
	return &GtElement{inner: pairing.Gt{}.NeutralElement()}
}

// HashToElement deterministically maps bytes into Gt. See
// [pairing.Gt.HashToElement] for the discrete-log caveat.
func (Gt) HashToElement(msg []byte) *GtElement {
	return &GtElement{inner: pairing.Gt{}.HashToElement(msg)}
}

// Random returns a uniformly sampled element of Gt.
func (Gt) Random(r io.Reader) (*GtElement, error) {
	e, err := pairing.Gt{}.Random(r)
	if err != nil {
		return nil, err
	}
	return &GtElement{inner: e}, nil
}

// ElementFromBytes deserializes an element of Gt.
func (Gt) ElementFromBytes(b []byte) (*GtElement, error) {
	e, err := pairing.Gt{}.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &GtElement{inner: e}, nil
}

// Sum returns the sum of the given elements (the underlying product),
// or the neutral element when called with none.
func (Gt) Sum(elems ...*GtElement) *GtElement {
	unwrapped := make([]*pairing.GtElement, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	return &GtElement{inner: pairing.Gt{}.Prod(unwrapped...)}
}

// WSum returns Σ weights[i]·elems[i] (the underlying weighted
// product). The slices must have equal length.
func (Gt) WSum(weights []*bn.Bn, elems []*GtElement) (*GtElement, error) {
	unwrapped := make([]*pairing.GtElement, len(elems))
	for i, e := range elems {
		unwrapped[i] = e.inner
	}
	r, err := pairing.Gt{}.WProd(weights, unwrapped)
	if err != nil {
		return nil, err
	}
	return &GtElement{inner: r}, nil
}

// GtElement is an element of Gt under additive names. It wraps the
// underlying element without copying; several adapters may wrap the
// same element.
type GtElement struct {
	inner *pairing.GtElement
}

// WrapGt presents an existing element under additive names. The
// element is shared, not copied.
func WrapGt(e *pairing.GtElement) *GtElement {
	return &GtElement{inner: e}
}

// Unwrap returns the underlying element.
func (e *GtElement) Unwrap() *pairing.GtElement {
	return e.inner
}

// Copy returns a new element with the same value.
func (e *GtElement) Copy() *GtElement {
	return &GtElement{inner: e.inner.Copy()}
}

// Add returns the group operation e + o (the underlying Gt
// multiplication).
func (e *GtElement) Add(o *GtElement) *GtElement {
	return &GtElement{inner: e.inner.Mul(o.inner)}
}

// Sub returns e - o (the underlying division).
func (e *GtElement) Sub(o *GtElement) *GtElement {
	return &GtElement{inner: e.inner.Div(o.inner)}
}

// Neg returns the inverse element (the underlying Gt inversion).
func (e *GtElement) Neg() *GtElement {
	return &GtElement{inner: e.inner.Inverse()}
}

// Double returns e + e (the underlying squaring).
func (e *GtElement) Double() *GtElement {
	return &GtElement{inner: e.inner.Square()}
}

// Mul returns the scalar multiple k·e (the underlying exponentiation,
// with k reduced modulo the group order).
func (e *GtElement) Mul(k *bn.Bn) *GtElement {
	return &GtElement{inner: e.inner.Exp(k)}
}

// Equal reports whether e and o are the same group element.
func (e *GtElement) Equal(o *GtElement) bool {
	return e.inner.Equal(o.inner)
}

// IsValid reports whether e is a member of the prime-order subgroup.
func (e *GtElement) IsValid() bool {
	return e.inner.IsValid()
}

// IsNeutralElement reports whether e is the identity.
func (e *GtElement) IsNeutralElement() bool {
	return e.inner.IsNeutralElement()
}

// ToBytes serializes the element; the encoding is identical across
// notations.
func (e *GtElement) ToBytes() []byte {
	return e.inner.ToBytes()
}

// String returns a short hex form of the serialized element.
func (e *GtElement) String() string {
	return e.inner.String()
}

// Pair computes the bilinear map e(p, q) and presents the result
// additively.
func Pair(p *G1Element, q *G2Element) (*GtElement, error) {
	r, err := pairing.Pair(p, q)
	if err != nil {
		return nil, err
	}
	return &GtElement{inner: r}, nil
}

// PairMulti computes Σ-style batched pairings: the additive view of
// Π e(ps[i], qs[i]) with one Miller loop batch.
func PairMulti(ps []*G1Element, qs []*G2Element) (*GtElement, error) {
	r, err := pairing.PairMulti(ps, qs)
	if err != nil {
		return nil, err
	}
	return &GtElement{inner: r}, nil
}
