package pairing

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"

	"github.com/f3rmion/bilinear/bn"
)

func TestPairBilinearity(t *testing.T) {
	g1 := G1{}.Generator()
	g2 := G2{}.Generator()
	a := bn.New(3)
	b := bn.New(7)

	lhs, err := Pair(g1.Mul(a), g2.Mul(b))
	if err != nil {
		t.Fatal(err)
	}
	base, err := Pair(g1, g2)
	if err != nil {
		t.Fatal(err)
	}
	if !lhs.Equal(base.Exp(a.Mul(b))) {
		t.Fatal("e(a·P, b·Q) != e(P, Q)^(ab)")
	}

	t.Run("SlideScalars", func(t *testing.T) {
		left, err := Pair(g1.Mul(a), g2)
		if err != nil {
			t.Fatal(err)
		}
		right, err := Pair(g1, g2.Mul(a))
		if err != nil {
			t.Fatal(err)
		}
		if !left.Equal(right) {
			t.Fatal("e(a·P, Q) != e(P, a·Q)")
		}
	})
}

func TestPairNonDegeneracy(t *testing.T) {
	base, err := Pair(G1{}.Generator(), G2{}.Generator())
	if err != nil {
		t.Fatal(err)
	}
	if base.IsNeutralElement() {
		t.Fatal("pairing of the generators is degenerate")
	}
	if !base.Equal(Gt{}.Generator()) {
		t.Fatal("pairing of the generators differs from the Gt generator")
	}
	if !base.IsValid() {
		t.Fatal("pairing output failed subgroup membership")
	}
}

func TestPairNeutralInputs(t *testing.T) {
	g2 := G2{}.Generator()

	out, err := Pair(G1{}.NeutralElement(), g2)
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsNeutralElement() {
		t.Fatal("e(0, Q) != 1")
	}

	out, err = Pair(G1{}.Generator(), G2{}.NeutralElement())
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsNeutralElement() {
		t.Fatal("e(P, 0) != 1")
	}
}

func TestPairRejectsInvalidInput(t *testing.T) {
	// A point off the curve cannot be produced through the public
	// constructors, so build one directly.
	var bad G1Element
	bad.p.X.SetOne()
	bad.p.Y.SetOne()
	if bad.IsValid() {
		t.Fatal("test point is unexpectedly valid")
	}

	_, err := Pair(&bad, G2{}.Generator())
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("want ErrDomain, got %v", err)
	}

	var badQ G2Element
	var one fp.Element
	one.SetOne()
	badQ.p.X.A0 = one
	badQ.p.Y.A0 = one
	if badQ.IsValid() {
		t.Fatal("test point is unexpectedly valid")
	}
	_, err = Pair(G1{}.Generator(), &badQ)
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("want ErrDomain, got %v", err)
	}
}

func TestPairMulti(t *testing.T) {
	ps := make([]*G1Element, 3)
	qs := make([]*G2Element, 3)
	for i := range ps {
		p, err := G1{}.Random(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		q, err := G2{}.Random(rand.Reader)
		if err != nil {
			t.Fatal(err)
		}
		ps[i] = p
		qs[i] = q
	}

	batched, err := PairMulti(ps, qs)
	if err != nil {
		t.Fatal(err)
	}

	product := Gt{}.NeutralElement()
	for i := range ps {
		one, err := Pair(ps[i], qs[i])
		if err != nil {
			t.Fatal(err)
		}
		product = product.Mul(one)
	}
	if !batched.Equal(product) {
		t.Fatal("batched pairing disagrees with the product of pairings")
	}

	t.Run("Empty", func(t *testing.T) {
		out, err := PairMulti(nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if !out.IsNeutralElement() {
			t.Fatal("empty pairing product is not unity")
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := PairMulti(ps[:2], qs)
		if !errors.Is(err, ErrDomain) {
			t.Fatalf("want ErrDomain, got %v", err)
		}
	})
}

func TestPairMethodOnElement(t *testing.T) {
	p, err := G1{}.Random(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	q, err := G2{}.Random(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	viaMethod, err := p.Pair(q)
	if err != nil {
		t.Fatal(err)
	}
	viaFunc, err := Pair(p, q)
	if err != nil {
		t.Fatal(err)
	}
	if !viaMethod.Equal(viaFunc) {
		t.Fatal("method and function pairing disagree")
	}
}
