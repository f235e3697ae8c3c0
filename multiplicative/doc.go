// Package multiplicative exposes all three bilinear groups in
// multiplicative notation, including the source groups G1 and G2.
//
// Gt is already multiplicative in the native convention and is
// aliased unchanged. For G1 and G2 the group operation is renamed:
// Mul is the underlying point addition, Div the subtraction, Inverse
// the negation, Square the doubling and Exp the scalar
// multiplication. This is purely a naming transform; a multiplicative
// element wraps the same underlying point a native caller sees, and
// Wrap/Unwrap convert between the views without copying.
//
// The renaming lets schemes written in classic discrete-log style
// (group elements as powers of a generator) read uniformly:
//
//	pk := multiplicative.G2{}.Generator().Exp(sk)   // g2^sk
//	sig := h.Exp(sk)                                // H(m)^sk in G1
//
// No operation gains or loses failure modes compared to the native
// notation, and serialized bytes are identical across notations.
package multiplicative
