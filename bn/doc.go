// Package bn provides an immutable arbitrary-precision signed integer
// with the modular-arithmetic helpers needed by pairing-based
// cryptography.
//
// A [Bn] is a value: every operation returns a fresh Bn and never
// mutates its operands, so values can be shared freely between
// goroutines without coordination. This is a deliberate contrast with
// math/big's mutable receiver style; the wrapper pays one allocation
// per operation to keep the algebraic layer free of aliasing bugs.
//
//	order := bn.FromBytes(orderBytes)
//	sk, _ := bn.RandomBelow(order)
//	inv, _ := sk.ModInverse(order)
//
// Serialization is big-endian, either minimal-length ([Bn.Bytes]) or
// caller-specified fixed width with leading zero padding
// ([Bn.FixedBytes]). Only non-negative values can be serialized; the
// sign must be tracked separately by the caller.
//
// Operations that can fail return errors rather than panicking:
// [ErrDecode] for malformed input, [ErrDivisionByZero] for a zero
// divisor, [ErrNotInvertible] when a modular inverse does not exist,
// and [ErrDomain] for out-of-range arguments such as a non-positive
// sampling modulus.
package bn
