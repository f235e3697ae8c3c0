package bls

import (
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/bilinear/bn"
	"github.com/f3rmion/bilinear/pairing"
)

// ErrNoInputs is returned when aggregation is attempted over an empty
// set of signatures or keys.
var ErrNoInputs = errors.New("bls: nothing to aggregate")

// PrivateKeySize is the serialized length of a private key: the group
// order is a 255-bit prime, so scalars fit 32 bytes.
const PrivateKeySize = 32

// PrivateKey is a BLS signing key, a scalar modulo the group order.
type PrivateKey struct {
	sk *bn.Bn
}

// PublicKey is a BLS verification key, an element of G2.
type PublicKey struct {
	pk *pairing.G2Element
}

// Signature is a BLS signature, an element of G1.
type Signature struct {
	sig *pairing.G1Element
}

// KeyGen samples a fresh key pair from the given randomness source,
// typically crypto/rand.Reader.
func KeyGen(r io.Reader) (*PrivateKey, *PublicKey, error) {
	sk, err := randomNonZeroScalar(r)
	if err != nil {
		return nil, nil, err
	}
	pk := pairing.G2{}.Generator().Mul(sk)
	return &PrivateKey{sk: sk}, &PublicKey{pk: pk}, nil
}

// randomNonZeroScalar samples uniformly from [1, r). A zero secret
// key would make the public key the identity and every pairing check
// trivially true.
func randomNonZeroScalar(r io.Reader) (*bn.Bn, error) {
	order := pairing.G1{}.Order()
	for {
		k, err := bn.RandomBelowFrom(r, order)
		if err != nil {
			return nil, err
		}
		if !k.IsZero() {
			return k, nil
		}
	}
}

// Sign produces a signature on msg: the hash of the message mapped
// into G1 and scaled by the secret key.
func (sk *PrivateKey) Sign(msg []byte) (*Signature, error) {
	h, err := pairing.G1{}.HashToPoint(msg)
	if err != nil {
		return nil, err
	}
	return &Signature{sig: h.Mul(sk.sk)}, nil
}

// PublicKey derives the verification key sk·g2.
func (sk *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{pk: pairing.G2{}.Generator().Mul(sk.sk)}
}

// Bytes returns the fixed-width big-endian encoding of the secret
// scalar.
func (sk *PrivateKey) Bytes() ([]byte, error) {
	return sk.sk.FixedBytes(PrivateKeySize)
}

// PrivateKeyFromBytes restores a private key serialized by
// [PrivateKey.Bytes]. The scalar is reduced modulo the group order.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key must be %d bytes, got %d",
			pairing.ErrInvalidEncoding, PrivateKeySize, len(b))
	}
	order := pairing.G1{}.Order()
	sk, err := bn.FromBytes(b).Mod(order)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{sk: sk}, nil
}

// Verify reports whether sig is a valid signature on msg under pk.
// The pairing identity e(sig, g2) == e(H(msg), pk) is checked as a
// single two-term pairing product.
func (pk *PublicKey) Verify(msg []byte, sig *Signature) (bool, error) {
	h, err := pairing.G1{}.HashToPoint(msg)
	if err != nil {
		return false, err
	}
	// e(sig, -g2) * e(H(m), pk) == 1  <=>  e(sig, g2) == e(H(m), pk)
	check, err := pairing.PairMulti(
		[]*pairing.G1Element{sig.sig, h},
		[]*pairing.G2Element{pairing.G2{}.Generator().Neg(), pk.pk},
	)
	if err != nil {
		return false, err
	}
	return check.IsNeutralElement(), nil
}

// ToBytes serializes the public key G2 point.
func (pk *PublicKey) ToBytes(compressed bool) []byte {
	return pk.pk.ToBytes(compressed)
}

// Element returns the underlying G2 element of the key.
func (pk *PublicKey) Element() *pairing.G2Element {
	return pk.pk
}

// PublicKeyFromBytes restores a public key from either G2 encoding,
// rejecting points outside the prime-order subgroup.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	e, err := pairing.G2{}.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{pk: e}, nil
}

// ToBytes serializes the signature G1 point.
func (s *Signature) ToBytes(compressed bool) []byte {
	return s.sig.ToBytes(compressed)
}

// Element returns the underlying G1 element of the signature.
func (s *Signature) Element() *pairing.G1Element {
	return s.sig
}

// SignatureFromBytes restores a signature from either G1 encoding,
// rejecting points outside the prime-order subgroup.
func SignatureFromBytes(b []byte) (*Signature, error) {
	e, err := pairing.G1{}.ElementFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &Signature{sig: e}, nil
}

// AggregateSignatures combines signatures on the same message into
// one signature verifiable under the aggregated public key.
func AggregateSignatures(sigs ...*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, ErrNoInputs
	}
	elems := make([]*pairing.G1Element, len(sigs))
	for i, s := range sigs {
		elems[i] = s.sig
	}
	return &Signature{sig: pairing.G1{}.Sum(elems...)}, nil
}

// VerifySameMessage reports whether sig is a valid aggregate
// signature on msg by the holders of all the given keys. It is
// shorthand for aggregating the keys and verifying against the sum.
func VerifySameMessage(pks []*PublicKey, msg []byte, sig *Signature) (bool, error) {
	agg, err := AggregateKeys(pks...)
	if err != nil {
		return false, err
	}
	return agg.Verify(msg, sig)
}

// AggregateKeys combines public keys for verifying a same-message
// aggregate signature. See the package documentation for the
// rogue-key caveat.
func AggregateKeys(pks ...*PublicKey) (*PublicKey, error) {
	if len(pks) == 0 {
		return nil, ErrNoInputs
	}
	elems := make([]*pairing.G2Element, len(pks))
	for i, pk := range pks {
		elems[i] = pk.pk
	}
	return &PublicKey{pk: pairing.G2{}.Sum(elems...)}, nil
}
