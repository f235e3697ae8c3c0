package multiplicative

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/f3rmion/bilinear/bn"
	"github.com/f3rmion/bilinear/pairing"
)

func TestG1MultiplicativeLaws(t *testing.T) {
	g := G1{}.Generator()
	one := G1{}.NeutralElement()
	order := G1{}.Order()

	if !g.Mul(one).Equal(g) {
		t.Fatal("g * 1 != g")
	}
	if !g.Mul(g.Inverse()).IsNeutralElement() {
		t.Fatal("g * g^-1 != 1")
	}
	if !g.Div(g).IsNeutralElement() {
		t.Fatal("g / g != 1")
	}
	if !g.Square().Equal(g.Mul(g)) {
		t.Fatal("square(g) != g * g")
	}
	if !g.Exp(order).IsNeutralElement() {
		t.Fatal("g^r != 1")
	}
	if !g.Exp(bn.New(-1)).Equal(g.Inverse()) {
		t.Fatal("g^-1 disagrees with Inverse")
	}

	a := bn.New(4)
	b := bn.New(13)
	if !g.Exp(a.Add(b)).Equal(g.Exp(a).Mul(g.Exp(b))) {
		t.Fatal("g^(a+b) != g^a * g^b")
	}
}

func TestG2MultiplicativeLaws(t *testing.T) {
	g := G2{}.Generator()
	one := G2{}.NeutralElement()

	if !g.Mul(one).Equal(g) {
		t.Fatal("g * 1 != g")
	}
	if !g.Div(g).IsNeutralElement() {
		t.Fatal("g / g != 1")
	}
	if !g.Square().Equal(g.Mul(g)) {
		t.Fatal("square(g) != g * g")
	}
	if !g.Exp(G2{}.Order()).IsNeutralElement() {
		t.Fatal("g^r != 1")
	}
}

func TestFacadeMatchesCore(t *testing.T) {
	k := bn.New(271828)

	coreG1 := pairing.G1{}.Generator().Mul(k)
	adaptedG1 := G1{}.Generator().Exp(k)
	if !adaptedG1.Unwrap().Equal(coreG1) {
		t.Fatal("multiplicative Exp disagrees with the core Mul on G1")
	}
	if !bytes.Equal(adaptedG1.ToBytes(true), coreG1.ToBytes(true)) {
		t.Fatal("serialization differs across notations")
	}

	coreG2 := pairing.G2{}.Generator().Mul(k)
	adaptedG2 := G2{}.Generator().Exp(k)
	if !adaptedG2.Unwrap().Equal(coreG2) {
		t.Fatal("multiplicative Exp disagrees with the core Mul on G2")
	}
}

func TestWrapSharesElement(t *testing.T) {
	core := pairing.G1{}.Generator()
	wrapped := WrapG1(core)
	if wrapped.Unwrap() != core {
		t.Fatal("wrap must share the underlying element")
	}
	if wrapped.Copy().Unwrap() == core {
		t.Fatal("copy must not share the underlying element")
	}

	coreQ := pairing.G2{}.Generator()
	if WrapG2(coreQ).Unwrap() != coreQ {
		t.Fatal("wrap must share the underlying element")
	}
}

func TestAggregates(t *testing.T) {
	g := G1{}.Generator()

	if !(G1{}).Prod().IsNeutralElement() {
		t.Fatal("empty product is not the neutral element")
	}
	if !(G1{}).Prod(g, g, g).Equal(g.Exp(bn.New(3))) {
		t.Fatal("product disagrees with exponentiation")
	}

	h, err := G1{}.Random(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	got, err := G1{}.WProd([]*bn.Bn{bn.New(2), bn.New(3)}, []*G1Element{g, h})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(g.Exp(bn.New(2)).Mul(h.Exp(bn.New(3)))) {
		t.Fatal("weighted product disagrees with the naive computation")
	}

	_, err = G1{}.WProd(nil, []*G1Element{g})
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("want ErrDomain, got %v", err)
	}
}

func TestSerialization(t *testing.T) {
	e, err := G1{}.Random(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	back, err := G1{}.ElementFromBytes(e.ToBytes(true))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(e) {
		t.Fatal("round trip changed the element")
	}

	_, err = G2{}.ElementFromBytes([]byte{1})
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("want ErrInvalidEncoding, got %v", err)
	}

	x, y, err := G1{}.Generator().AffineCoordinates()
	if err != nil {
		t.Fatal(err)
	}
	if x.IsZero() || y.IsZero() {
		t.Fatal("generator coordinates should be nonzero")
	}
}

func TestPairMultiplicativeView(t *testing.T) {
	g1 := G1{}.Generator()
	g2 := G2{}.Generator()
	a := bn.New(6)
	b := bn.New(11)

	lhs, err := Pair(g1.Exp(a), g2.Exp(b))
	if err != nil {
		t.Fatal(err)
	}
	base, err := g1.Pair(g2)
	if err != nil {
		t.Fatal(err)
	}
	if !lhs.Equal(base.Exp(a.Mul(b))) {
		t.Fatal("e(g1^a, g2^b) != e(g1, g2)^(ab)")
	}

	batched, err := PairMulti([]*G1Element{g1, g1}, []*G2Element{g2, g2})
	if err != nil {
		t.Fatal(err)
	}
	if !batched.Equal(base.Square()) {
		t.Fatal("batched pairing disagrees with the squared pairing")
	}

	_, err = PairMulti([]*G1Element{g1}, nil)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("want ErrDomain, got %v", err)
	}
}
