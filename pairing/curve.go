package pairing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/f3rmion/bilinear/bn"
)

var (
	// ErrDomain is returned when an operand is outside the domain of
	// an operation, such as an invalid element handed to the pairing
	// or mismatched slice lengths in a weighted sum.
	ErrDomain = errors.New("pairing: operand outside operation domain")
	// ErrInvalidEncoding is returned when a serialized element has a
	// length that matches no encoding of the group.
	ErrInvalidEncoding = errors.New("pairing: malformed serialized element")
	// ErrNotOnCurve is returned when a decoded element fails the
	// group's curve or subgroup membership checks.
	ErrNotOnCurve = errors.New("pairing: element fails group membership")
	// ErrNoAffineCoordinates is returned when affine coordinates are
	// requested for the point at infinity.
	ErrNoAffineCoordinates = errors.New("pairing: point at infinity has no affine coordinates")
)

// Domain separation tags for the RFC 9380 hash-to-curve maps. Fixed
// per group; changing them changes every hashed point.
const (
	dstG1 = "BILINEAR-V01-CS01-with-BLS12381G1_XMD:SHA-256_SSWU_RO_"
	dstG2 = "BILINEAR-V01-CS01-with-BLS12381G2_XMD:SHA-256_SSWU_RO_"
)

// One-time engine-derived state. gnark-crypto initializes its own
// parameter tables in its package init; everything this package
// derives from them is computed here, before first use.
var (
	groupOrder *big.Int
	orderBn    *bn.Bn
	g1Gen      bls12381.G1Affine
	g2Gen      bls12381.G2Affine
	gtGen      bls12381.GT
	gtOne      bls12381.GT
)

func init() {
	groupOrder = fr.Modulus()
	orderBn = bn.FromBigInt(groupOrder)
	_, _, g1Gen, g2Gen = bls12381.Generators()

	gt, err := bls12381.Pair([]bls12381.G1Affine{g1Gen}, []bls12381.G2Affine{g2Gen})
	if err != nil {
		panic("pairing: generator pairing failed: " + err.Error())
	}
	gtGen = gt
	gtOne.SetOne()
}

// Flag bits carried in the top three bits of the first byte of a
// serialized G1 or G2 point, shared by both encodings of the engine.
const (
	encMask                 = 0b111 << 5
	encUncompressed         = 0b000 << 5
	encUncompressedInfinity = 0b010 << 5
	encCompressedSmallest   = 0b100 << 5
	encCompressedLargest    = 0b101 << 5
	encCompressedInfinity   = 0b110 << 5
)

// checkEncodingFlags validates that the flag bits of a serialized
// point agree with its length, and reports whether the flags name the
// point at infinity. The length itself must already be one of the two
// valid sizes.
func checkEncodingFlags(b []byte, compressedSize int) (infinity bool, err error) {
	var wantCompressed bool
	switch b[0] & encMask {
	case encUncompressed:
	case encUncompressedInfinity:
		infinity = true
	case encCompressedSmallest, encCompressedLargest:
		wantCompressed = true
	case encCompressedInfinity:
		wantCompressed = true
		infinity = true
	default:
		return false, fmt.Errorf("%w: unknown encoding flag 0x%02x", ErrInvalidEncoding, b[0]&encMask)
	}
	if wantCompressed != (len(b) == compressedSize) {
		return false, fmt.Errorf("%w: encoding flag 0x%02x does not match length %d",
			ErrInvalidEncoding, b[0]&encMask, len(b))
	}
	return infinity, nil
}

// reduceScalar maps a scalar into [0, r). Reduction modulo the group
// order is the identity on the group action, so negative and oversized
// scalars are total without a runtime range error.
func reduceScalar(k *bn.Bn) *big.Int {
	v := k.BigInt()
	return v.Mod(v, groupOrder)
}

// randomScalar samples a uniform scalar in [0, r) from the given
// source, typically crypto/rand.Reader.
func randomScalar(r io.Reader) (*big.Int, error) {
	return rand.Int(r, groupOrder)
}

// frScalars reduces a weight vector into the engine's scalar field
// representation for multi-scalar multiplication.
func frScalars(weights []*bn.Bn) []fr.Element {
	scalars := make([]fr.Element, len(weights))
	for i, w := range weights {
		scalars[i].SetBigInt(reduceScalar(w))
	}
	return scalars
}
