package bn

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrDecode is returned when a literal cannot be parsed as a number.
	ErrDecode = errors.New("bn: malformed number literal")
	// ErrDivisionByZero is returned by division and remainder
	// operations with a zero divisor.
	ErrDivisionByZero = errors.New("bn: division by zero")
	// ErrNotInvertible is returned by ModInverse (and ModPow with a
	// negative exponent) when the operand and modulus are not coprime.
	ErrNotInvertible = errors.New("bn: element is not invertible")
	// ErrDomain is returned when an argument is outside the range an
	// operation is defined on.
	ErrDomain = errors.New("bn: argument out of range")
)

// Bn is an immutable arbitrary-precision signed integer.
//
// The zero value is not usable; create values through [New],
// [FromDecimal], [FromHex], [FromBytes] or the sampling helpers.
type Bn struct {
	v *big.Int
}

// wrap takes ownership of v. The caller must not retain v.
func wrap(v *big.Int) *Bn {
	return &Bn{v: v}
}

// New returns a Bn holding the given small integer.
func New(x int64) *Bn {
	return wrap(big.NewInt(x))
}

// FromDecimal parses a decimal string, optionally starting with a
// minus sign. It returns ErrDecode for anything else.
func FromDecimal(s string) (*Bn, error) {
	return fromString(s, 10)
}

// FromHex parses a hexadecimal string (digits 0-9, a-f, A-F),
// optionally starting with a minus sign.
func FromHex(s string) (*Bn, error) {
	return fromString(s, 16)
}

func fromString(s string, base int) (*Bn, error) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q (base %d)", ErrDecode, s, base)
	}
	return wrap(v), nil
}

// FromBytes interprets b as an unsigned big-endian integer. An empty
// slice yields zero. The sign of a negative value must be stored
// separately by the caller, mirroring the byte encoding produced by
// [Bn.Bytes].
func FromBytes(b []byte) *Bn {
	return wrap(new(big.Int).SetBytes(b))
}

// FromBigInt copies v into a new Bn. v is not retained.
func FromBigInt(v *big.Int) *Bn {
	return wrap(new(big.Int).Set(v))
}

// RandomBelow returns a uniformly sampled value in [0, m) using
// crypto/rand. It returns ErrDomain if m is not positive.
func RandomBelow(m *Bn) (*Bn, error) {
	return RandomBelowFrom(rand.Reader, m)
}

// RandomBelowFrom is RandomBelow with an explicit randomness source,
// for deterministic tests and callers that manage entropy themselves.
func RandomBelowFrom(r io.Reader, m *Bn) (*Bn, error) {
	if m.Sign() <= 0 {
		return nil, fmt.Errorf("%w: sampling modulus must be positive", ErrDomain)
	}
	v, err := rand.Int(r, m.v)
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

// Random returns a uniformly sampled value of at most the given number
// of bits, i.e. in [0, 2^bits).
func Random(bits int) (*Bn, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("%w: bit length must be positive", ErrDomain)
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	v, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

// Prime returns a number of the given bit length that is prime with
// exponentially small error probability. Use this, not
// [Bn.IsProbablePrime], when a guaranteed prime is needed.
func Prime(bits int) (*Bn, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bit length must be at least 2", ErrDomain)
	}
	v, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return nil, err
	}
	return wrap(v), nil
}

// BigInt returns a copy of the value as a math/big integer. The
// returned value does not alias internal state.
func (b *Bn) BigInt() *big.Int {
	return new(big.Int).Set(b.v)
}

// Copy returns a new Bn with the same value.
func (b *Bn) Copy() *Bn {
	return FromBigInt(b.v)
}

// Add returns b + o.
func (b *Bn) Add(o *Bn) *Bn {
	return wrap(new(big.Int).Add(b.v, o.v))
}

// Sub returns b - o.
func (b *Bn) Sub(o *Bn) *Bn {
	return wrap(new(big.Int).Sub(b.v, o.v))
}

// Mul returns b * o.
func (b *Bn) Mul(o *Bn) *Bn {
	return wrap(new(big.Int).Mul(b.v, o.v))
}

// Neg returns -b.
func (b *Bn) Neg() *Bn {
	return wrap(new(big.Int).Neg(b.v))
}

// Abs returns |b|.
func (b *Bn) Abs() *Bn {
	return wrap(new(big.Int).Abs(b.v))
}

// Div returns the quotient of b / o with Euclidean semantics (the
// remainder is always non-negative). It returns ErrDivisionByZero if
// o is zero.
func (b *Bn) Div(o *Bn) (*Bn, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}
	return wrap(new(big.Int).Div(b.v, o.v)), nil
}

// Mod returns b mod o, in [0, |o|). It returns ErrDivisionByZero if o
// is zero.
func (b *Bn) Mod(o *Bn) (*Bn, error) {
	if o.IsZero() {
		return nil, ErrDivisionByZero
	}
	return wrap(new(big.Int).Mod(b.v, o.v)), nil
}

// DivMod returns quotient and remainder such that
// b = q*o + r with 0 <= r < |o|.
func (b *Bn) DivMod(o *Bn) (q, r *Bn, err error) {
	if o.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	qv, rv := new(big.Int).DivMod(b.v, o.v, new(big.Int))
	return wrap(qv), wrap(rv), nil
}

// GCD returns the greatest common divisor of |b| and |o|.
func (b *Bn) GCD(o *Bn) *Bn {
	a := new(big.Int).Abs(b.v)
	c := new(big.Int).Abs(o.v)
	return wrap(new(big.Int).GCD(nil, nil, a, c))
}

// ModAdd returns (b + o) mod m.
func (b *Bn) ModAdd(o, m *Bn) (*Bn, error) {
	return wrap(new(big.Int).Add(b.v, o.v)).Mod(m)
}

// ModSub returns (b - o) mod m.
func (b *Bn) ModSub(o, m *Bn) (*Bn, error) {
	return wrap(new(big.Int).Sub(b.v, o.v)).Mod(m)
}

// ModMul returns (b * o) mod m.
func (b *Bn) ModMul(o, m *Bn) (*Bn, error) {
	return wrap(new(big.Int).Mul(b.v, o.v)).Mod(m)
}

// ModInverse returns x such that b*x = 1 mod m. It returns
// ErrNotInvertible when gcd(b, m) != 1.
func (b *Bn) ModInverse(m *Bn) (*Bn, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	inv := new(big.Int).ModInverse(b.v, m.v)
	if inv == nil {
		return nil, fmt.Errorf("%w: no inverse of %s modulo %s", ErrNotInvertible, b, m)
	}
	return wrap(inv), nil
}

// ModPow returns b^e mod m. A negative exponent is applied to the
// modular inverse of b, so it fails with ErrNotInvertible when b has
// no inverse modulo m.
func (b *Bn) ModPow(e, m *Bn) (*Bn, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	base := b.v
	exp := e.v
	if e.Sign() < 0 {
		inv, err := b.ModInverse(m)
		if err != nil {
			return nil, err
		}
		base = inv.v
		exp = new(big.Int).Neg(e.v)
	}
	return wrap(new(big.Int).Exp(base, exp, m.v)), nil
}

// Pow returns b^e. A negative exponent is only meaningful modulo some
// m; without one it fails with ErrDomain.
func (b *Bn) Pow(e *Bn) (*Bn, error) {
	if e.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative exponent requires a modulus", ErrDomain)
	}
	return wrap(new(big.Int).Exp(b.v, e.v, nil)), nil
}

// Cmp compares b and o, returning -1, 0 or +1. The order is the usual
// mathematical integer order, including negative values.
func (b *Bn) Cmp(o *Bn) int {
	return b.v.Cmp(o.v)
}

// Equal reports whether b and o hold the same value.
func (b *Bn) Equal(o *Bn) bool {
	return b.v.Cmp(o.v) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of b.
func (b *Bn) Sign() int {
	return b.v.Sign()
}

// IsZero reports whether b is zero.
func (b *Bn) IsZero() bool {
	return b.v.Sign() == 0
}

// IsOdd reports whether b is odd.
func (b *Bn) IsOdd() bool {
	return b.v.Bit(0) == 1
}

// IsEven reports whether b is even.
func (b *Bn) IsEven() bool {
	return b.v.Bit(0) == 0
}

// IsBitSet reports whether bit i of |b| is set.
func (b *Bn) IsBitSet(i int) bool {
	return b.v.Bit(i) == 1
}

// BitLen returns the number of bits needed to represent |b|.
func (b *Bn) BitLen() int {
	return b.v.BitLen()
}

// IsProbablePrime reports whether b is prime using 64 rounds of
// Miller-Rabin (with a Baillie-PSW pre-test). It never reports a
// prime as composite; a composite is reported prime with probability
// at most 4^-64.
func (b *Bn) IsProbablePrime() bool {
	if b.Sign() <= 0 {
		return false
	}
	return b.v.ProbablyPrime(64)
}

// Bytes returns the minimal big-endian representation of b. Zero
// encodes to an empty slice. Negative values cannot be represented;
// the caller must track the sign separately.
func (b *Bn) Bytes() ([]byte, error) {
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: cannot serialize a negative number", ErrDomain)
	}
	return b.v.Bytes(), nil
}

// FixedBytes returns the big-endian representation of b left-padded
// with zero bytes to exactly width bytes. It fails with ErrDomain when
// b is negative or does not fit.
func (b *Bn) FixedBytes(width int) ([]byte, error) {
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: cannot serialize a negative number", ErrDomain)
	}
	if n := (b.v.BitLen() + 7) / 8; n > width {
		return nil, fmt.Errorf("%w: value needs %d bytes, width is %d", ErrDomain, n, width)
	}
	return b.v.FillBytes(make([]byte, width)), nil
}

// String returns the decimal representation of b, with a leading minus
// sign when negative.
func (b *Bn) String() string {
	return b.v.String()
}

// Hex returns the hexadecimal representation of b, with a leading
// minus sign when negative.
func (b *Bn) Hex() string {
	return b.v.Text(16)
}
