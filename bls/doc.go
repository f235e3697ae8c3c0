// Package bls implements Boneh-Lynn-Shacham signatures over the
// bilinear groups, in the type III configuration: signatures live in
// G1, public keys in G2.
//
// A secret key is a scalar sk modulo the group order. The public key
// is sk·g2, and a signature on a message m is sk·H(m), where H is the
// G1 hash-to-curve map. Verification checks the pairing identity
//
//	e(sig, g2) == e(H(m), pk)
//
// which holds exactly when sig was produced with the secret key
// behind pk, by bilinearity. The check is performed as a single
// product of two pairings, so verifying costs one batched Miller loop
// and one final exponentiation.
//
// Signatures on the same message aggregate by addition in G1 and
// verify against the sum of the signers' public keys. Plain
// aggregation is vulnerable to rogue-key attacks when the verifier
// does not know that every aggregated key holder possesses their
// secret key; callers aggregating keys from untrusted parties must
// require proofs of possession. This package does not implement
// proof-of-possession registration.
//
// Like the rest of the module this is a prototyping tool: signing is
// not constant time.
package bls
