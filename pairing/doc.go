// Package pairing implements the three groups of the BLS12-381
// pairing-friendly curve and the bilinear map that ties them together.
//
// The package exposes two additive-notation groups [G1] and [G2]
// (points on the curve and its twist) and one multiplicative-notation
// group [Gt] (a subgroup of the degree-12 extension field), all of the
// same prime order. This mixed convention mirrors the underlying
// arithmetic engine and is the zero-translation-cost default; the
// native, additive and multiplicative packages re-expose the same
// objects under uniform operator names.
//
// All field, curve and pairing arithmetic is delegated to
// gnark-crypto's bls12-381 implementation. This package contributes
// the algebraic structure layer: value semantics (operations return
// new elements and never mutate their operands), one distinct Go type
// per group so that elements of different groups cannot be mixed, a
// fixed error taxonomy for serialization boundaries, and the derived
// constants (group order, generators, e(g1, g2)) computed once at
// package initialization.
//
// # Example: BLS signatures
//
// The pairing makes signature verification a pure algebraic identity.
// A secret key is a scalar, the public key lives in G2 and the
// signature is the hashed message scaled by the secret key in G1:
//
//	sk, _ := bn.RandomBelow(pairing.G1{}.Order())
//	pk := pairing.G2{}.Generator().Mul(sk)
//
//	h, _ := pairing.G1{}.HashToPoint(msg)
//	sig := h.Mul(sk)
//
//	lhs, _ := pairing.Pair(sig, pairing.G2{}.Generator())
//	rhs, _ := pairing.Pair(h, pk)
//	ok := lhs.Equal(rhs)
//
// The bls package packages this scheme up; here it illustrates the
// bilinearity contract: Pair(a·P, b·Q) == Pair(P, Q)^(a·b).
//
// # Not hardened
//
// This is a prototyping library. Operations are not constant time and
// no side-channel hardening is attempted beyond what the engine
// provides.
package pairing
