// Package additive exposes all three bilinear groups in additive
// notation, including the target group Gt.
//
// G1 and G2 are already additive in the native convention and are
// aliased unchanged. Gt's group operation is renamed: Add is the
// underlying Gt multiplication, Sub the division, Neg the inversion,
// Double the squaring and the scalar Mul the exponentiation. This is
// purely a naming transform; an additive GtElement wraps the same
// underlying element a native caller sees, and Wrap/Unwrap convert
// between the views without copying or affecting identity.
//
// The renaming lets schemes written in vector-space style (all groups
// as Z_r-modules) read uniformly:
//
//	c := additive.Pair(p, q)        // c in Gt
//	d := c.Mul(k).Add(c)            // (k+1)·e(p, q)
//
// No operation gains or loses failure modes compared to the native
// notation, and serialized bytes are identical across notations.
package additive
