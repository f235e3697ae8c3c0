package bn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	n, err := FromDecimal("100")
	require.NoError(t, err)
	require.True(t, n.Equal(New(100)))

	n, err = FromDecimal("-100")
	require.NoError(t, err)
	require.True(t, n.Equal(New(-100)))

	_, err = FromDecimal("100ABC")
	require.ErrorIs(t, err, ErrDecode)

	_, err = FromDecimal("")
	require.ErrorIs(t, err, ErrDecode)

	_, err = FromHex("100ABCZ")
	require.ErrorIs(t, err, ErrDecode)

	n, err = FromHex(New(-100).Hex())
	require.NoError(t, err)
	require.True(t, n.Equal(New(-100)))

	require.True(t, FromBytes([]byte{0x01, 0x02, 0x03}).Equal(New(66051)))
	require.True(t, FromBytes(nil).IsZero())
}

func TestBytesRoundTrip(t *testing.T) {
	n := New(66051)
	b, err := n.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, b)
	require.True(t, FromBytes(b).Equal(n))

	_, err = New(-100).Bytes()
	require.ErrorIs(t, err, ErrDomain)

	t.Run("FixedWidth", func(t *testing.T) {
		b, err := n.FixedBytes(8)
		require.NoError(t, err)
		require.Len(t, b, 8)
		require.Equal(t, []byte{0, 0, 0, 0, 0, 1, 2, 3}, b)
		require.True(t, FromBytes(b).Equal(n))

		_, err = n.FixedBytes(2)
		require.ErrorIs(t, err, ErrDomain)

		_, err = New(-1).FixedBytes(8)
		require.ErrorIs(t, err, ErrDomain)

		zero, err := New(0).FixedBytes(4)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0}, zero)
	})
}

func TestArithmetic(t *testing.T) {
	require.True(t, New(1).Add(New(1)).Equal(New(2)))
	require.True(t, New(1).Add(New(-1)).IsZero())
	require.True(t, New(-1).Mul(New(-1)).Equal(New(1)))
	require.True(t, New(10).Sub(New(100)).Equal(New(-90)))
	require.True(t, New(-10).Neg().Equal(New(10)))
	require.True(t, New(-10).Abs().Equal(New(10)))

	q, r, err := New(10).DivMod(New(3))
	require.NoError(t, err)
	require.True(t, q.Equal(New(3)))
	require.True(t, r.Equal(New(1)))

	q, err = New(10).Div(New(3))
	require.NoError(t, err)
	require.True(t, q.Equal(New(3)))

	m, err := New(10).Mod(New(3))
	require.NoError(t, err)
	require.True(t, m.Equal(New(1)))

	// Euclidean remainder: always non-negative.
	m, err = New(-7).Mod(New(3))
	require.NoError(t, err)
	require.True(t, m.Equal(New(2)))

	require.True(t, New(12).GCD(New(-18)).Equal(New(6)))
}

func TestDivisionByZero(t *testing.T) {
	_, err := New(10).Div(New(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = New(10).Mod(New(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, _, err = New(10).DivMod(New(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, err = New(10).ModPow(New(2), New(0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestModularArithmetic(t *testing.T) {
	sum, err := New(10).ModAdd(New(10), New(15))
	require.NoError(t, err)
	require.True(t, sum.Equal(New(5)))

	diff, err := New(10).ModSub(New(100), New(15))
	require.NoError(t, err)
	require.True(t, diff.Equal(New(0)))

	prod, err := New(10).ModMul(New(10), New(15))
	require.NoError(t, err)
	require.True(t, prod.Equal(New(10)))

	inv, err := New(3).ModInverse(New(16))
	require.NoError(t, err)
	require.True(t, inv.Equal(New(11)))

	_, err = New(0).ModInverse(New(13))
	require.ErrorIs(t, err, ErrNotInvertible)
	_, err = New(4).ModInverse(New(16))
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestPow(t *testing.T) {
	p, err := New(2).Pow(New(8))
	require.NoError(t, err)
	require.True(t, p.Equal(New(256)))

	_, err = New(2).Pow(New(-1))
	require.ErrorIs(t, err, ErrDomain)

	p, err = New(2).ModPow(New(8), New(27))
	require.NoError(t, err)
	require.True(t, p.Equal(New(256%27)))

	// Negative exponent goes through the modular inverse.
	p, err = New(3).ModPow(New(-1), New(16))
	require.NoError(t, err)
	require.True(t, p.Equal(New(11)))

	_, err = New(4).ModPow(New(-1), New(16))
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestComparisons(t *testing.T) {
	require.Equal(t, -1, New(1).Cmp(New(2)))
	require.Equal(t, 0, New(2).Cmp(New(2)))
	require.Equal(t, 1, New(3).Cmp(New(2)))
	require.Equal(t, -1, New(-3).Cmp(New(2)))
	require.True(t, New(-3).Cmp(New(-2)) < 0)

	require.Equal(t, -1, New(-5).Sign())
	require.Equal(t, 0, New(0).Sign())
	require.Equal(t, 1, New(5).Sign())
}

func TestPredicates(t *testing.T) {
	require.True(t, New(1).IsOdd())
	require.True(t, New(3).IsOdd())
	require.False(t, New(0).IsOdd())
	require.True(t, New(2).IsEven())

	require.True(t, New(1).IsBitSet(0))
	require.False(t, New(1).IsBitSet(1))
	require.True(t, New(3).IsBitSet(1))
	require.True(t, New(100).IsBitSet(New(100).BitLen()-1))

	require.Equal(t, 7, New(100).BitLen())
}

func TestStringForms(t *testing.T) {
	require.Equal(t, "0", New(0).String())
	require.Equal(t, "-1", New(-1).String())
	require.Equal(t, "f", New(15).Hex())
	require.Equal(t, "-f", New(-15).Hex())
}

func TestRandomBelow(t *testing.T) {
	m := New(100)
	for i := 0; i < 64; i++ {
		n, err := RandomBelow(m)
		require.NoError(t, err)
		require.True(t, n.Sign() >= 0)
		require.True(t, n.Cmp(m) < 0)
	}

	_, err := RandomBelow(New(0))
	require.ErrorIs(t, err, ErrDomain)
	_, err = RandomBelow(New(-5))
	require.ErrorIs(t, err, ErrDomain)
}

func TestPrime(t *testing.T) {
	p, err := Prime(128)
	require.NoError(t, err)
	require.True(t, p.Sign() > 0)
	require.True(t, p.IsProbablePrime())
	require.True(t, p.BitLen() == 128)

	require.False(t, New(16).IsProbablePrime())
	require.True(t, New(37).IsProbablePrime())
	require.False(t, New(-7).IsProbablePrime())
	require.False(t, New(1).IsProbablePrime())
}

func TestImmutability(t *testing.T) {
	a := New(10)
	b := New(3)
	_ = a.Add(b)
	_ = a.Neg()
	_, _ = a.Mod(b)
	_, _, _ = a.DivMod(b)
	require.True(t, a.Equal(New(10)))
	require.True(t, b.Equal(New(3)))

	// The escape hatch must hand out a copy, not internal state.
	v := a.BigInt()
	v.SetInt64(42)
	require.True(t, a.Equal(New(10)))
}
