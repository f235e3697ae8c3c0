// Package native exposes the bilinear groups in the curve-native
// notation: G1 and G2 are written additively (Add, Sub, Neg, Double,
// scalar Mul) while Gt is written multiplicatively (Mul, Div,
// Inverse, Square, Exp).
//
// This is the convention of the underlying arithmetic engine and of
// the core pairing package, so the package consists of zero-cost
// aliases: a native element is the same object as a pairing element,
// and values flow between the two packages (and the other notation
// packages) without conversion.
//
// Use the additive or multiplicative packages when a uniform operator
// convention across all three groups reads better for the scheme at
// hand; any sequence of operations produces the same underlying
// elements through every notation.
package native
