package bignum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"bigcrypt/internal/bignum"
)

func n(i int64) *bignum.Int { return bignum.FromInt64(i) }

func requireEqual(t *testing.T, want, got *bignum.Int) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestCmp(t *testing.T) {
	two64 := bignum.FromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0})

	require.Equal(t, -1, n(12).Cmp(n(15)))
	require.Equal(t, 1, n(15).Cmp(n(12)))
	require.Equal(t, 0, n(15).Cmp(n(15)))
	require.Equal(t, -1, n(12).Cmp(two64))
	require.Equal(t, 1, two64.Cmp(n(math.MaxInt64)))

	require.Equal(t, -1, n(-14).Cmp(n(-12)))
	require.Equal(t, 1, n(-12).Cmp(n(-14)))
	require.Equal(t, -1, n(-12).Cmp(n(12)))
	require.Equal(t, 1, n(0).Cmp(n(-1)))
	require.Equal(t, 1, n(-1).Cmp(two64.Neg()), "longer negative magnitude is smaller")
	require.True(t, n(-12).Equal(n(-12)))
	require.False(t, n(-12).Equal(n(12)))
}

func TestAdd(t *testing.T) {
	requireEqual(t, n(27), n(12).Add(n(15)))
	requireEqual(t, n(-8), n(-12).Add(n(4)))
	requireEqual(t, n(-8), n(4).Add(n(-12)))
	requireEqual(t, n(-16), n(-12).Add(n(-4)))
	requireEqual(t, n(-16), n(-4).Add(n(-12)))
	requireEqual(t, n(-12), n(-12).Add(n(0)))
	requireEqual(t, n(0), n(12).Add(n(-12)))
	require.Equal(t, 0, n(-12).Add(n(12)).Sign())
}

func TestAddCarry(t *testing.T) {
	maxU64 := bignum.FromUnsigned(uint64(math.MaxUint64))
	got := maxU64.Add(n(2))

	// 2^64 + 1: the low digit wraps to 1 and a second digit is carried out.
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0, 1}, got.Bytes())
	require.Equal(t, 65, got.BitLen())
}

func TestSub(t *testing.T) {
	requireEqual(t, n(4), n(12).Sub(n(8)))
	requireEqual(t, n(-3), n(12).Sub(n(15)))
	requireEqual(t, n(-16), n(-12).Sub(n(4)))
	requireEqual(t, n(-8), n(-12).Sub(n(-4)))
	requireEqual(t, n(12), n(4).Sub(n(-8)))
	requireEqual(t, n(-8), n(4).Sub(n(12)))
	requireEqual(t, n(8), n(-4).Sub(n(-12)))
	require.Equal(t, 0, n(4).Sub(n(4)).Sign())
	require.Equal(t, 0, n(-4).Sub(n(-4)).Sign())
}

func TestSubBorrow(t *testing.T) {
	two64 := bignum.FromBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0})
	got := two64.Sub(n(1))
	requireEqual(t, bignum.FromUnsigned(uint64(math.MaxUint64)), got)
	require.Equal(t, 8, got.ByteLen())
	require.True(t, two64.Sub(two64).IsZero())
}

func TestMul(t *testing.T) {
	requireEqual(t, n(6), n(2).Mul(n(3)))
	requireEqual(t, n(-12), n(3).Mul(n(-4)))
	requireEqual(t, n(12), n(-4).Mul(n(-3)))
	require.Equal(t, 0, n(-12).Mul(n(0)).Sign())
	require.Equal(t, 0, n(0).Mul(n(-12)).Sign())

	maxU64 := bignum.FromUnsigned(uint64(math.MaxUint64))
	// (2^64-1) * 4 = 2^66 - 4
	require.Equal(t, []byte{3, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfc}, maxU64.Mul(n(4)).Bytes())
	// (2^64-1)^2 = 2^128 - 2^65 + 1
	require.Equal(t, []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0, 0, 0, 0, 0, 0, 0, 1,
	}, maxU64.Mul(maxU64).Bytes())
}

func TestAssign(t *testing.T) {
	a := n(12)
	a.AddAssign(n(15))
	requireEqual(t, n(27), a)

	a = n(12)
	a.SubAssign(n(15))
	requireEqual(t, n(-3), a)

	a = n(3)
	a.MulAssign(n(6))
	requireEqual(t, n(18), a)

	a = n(14)
	a.DivAssign(n(7))
	requireEqual(t, n(2), a)

	a = n(14)
	a.ModAssign(n(5))
	requireEqual(t, n(4), a)

	a = n(9)
	a.NegAssign()
	requireEqual(t, n(-9), a)
}

func TestAssignSelf(t *testing.T) {
	a := n(21)
	a.AddAssign(a)
	requireEqual(t, n(42), a)

	a.SubAssign(a)
	require.True(t, a.IsZero())

	b := n(-7)
	b.MulAssign(b)
	requireEqual(t, n(49), b)

	b.DivAssign(b)
	requireEqual(t, n(1), b)
}
