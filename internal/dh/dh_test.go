package dh_test

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcrypt/internal/bignum"
	"bigcrypt/internal/dh"
)

func smallGroup(t *testing.T) *dh.Group {
	t.Helper()
	g, err := dh.NewGroup(bignum.FromInt64(8675309), bignum.FromInt64(2))
	require.NoError(t, err)
	return g
}

func TestDefaultGroup(t *testing.T) {
	g := dh.DefaultGroup()
	assert.Equal(t, 1536, g.P.BitLen())
	assert.True(t, g.G.Equal(bignum.FromInt64(2)))
	assert.Same(t, g, dh.DefaultGroup())
	assert.True(t, g.Equal(dh.DefaultGroup()))
}

func TestNewGroup_Invalid(t *testing.T) {
	for _, tc := range []struct{ p, g int64 }{
		{3, 2},
		{23, 1},
		{23, 22},
		{23, 0},
		{23, -5},
	} {
		_, err := dh.NewGroup(bignum.FromInt64(tc.p), bignum.FromInt64(tc.g))
		require.ErrorIs(t, err, dh.ErrInvalidGroup, "p=%d g=%d", tc.p, tc.g)
	}
}

func TestNewPrivateKey_KnownValue(t *testing.T) {
	g, err := dh.NewGroup(bignum.FromInt64(23), bignum.FromInt64(5))
	require.NoError(t, err)

	alice := dh.NewPrivateKey(g, bignum.FromInt64(6))
	bob := dh.NewPrivateKey(g, bignum.FromInt64(15))
	assert.True(t, alice.Y.Equal(bignum.FromInt64(8)))
	assert.True(t, bob.Y.Equal(bignum.FromInt64(19)))

	s, err := alice.SharedSecret(&bob.PublicKey)
	require.NoError(t, err)
	assert.True(t, s.Equal(bignum.FromInt64(2)))
}

func TestKeyExchange_DefaultGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	alice, err := dh.GenerateKey(rng, dh.DefaultGroup())
	require.NoError(t, err)
	bob, err := dh.GenerateKey(rng, dh.DefaultGroup())
	require.NoError(t, err)

	assert.False(t, alice.X.IsZero())
	assert.False(t, alice.Y.IsZero())
	assert.Equal(t, -1, alice.X.Cmp(dh.DefaultGroup().P))

	ka, err := alice.DeriveKey(&bob.PublicKey, []byte("test"), 32)
	require.NoError(t, err)
	kb, err := bob.DeriveKey(&alice.PublicKey, []byte("test"), 32)
	require.NoError(t, err)
	assert.Len(t, ka, 32)
	assert.Equal(t, ka, kb)

	other, err := alice.DeriveKey(&bob.PublicKey, []byte("other"), 32)
	require.NoError(t, err)
	assert.NotEqual(t, ka, other)
}

func TestKeyExchange_SmallGroup(t *testing.T) {
	g := smallGroup(t)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		a, err := dh.GenerateKey(rng, g)
		require.NoError(t, err)
		b, err := dh.GenerateKey(rng, g)
		require.NoError(t, err)

		sa, err := a.SharedSecret(&b.PublicKey)
		if err != nil {
			// A public value of 1 or p-1 is possible in a small group.
			require.ErrorIs(t, err, dh.ErrInvalidPublicKey)
			continue
		}
		sb, err := b.SharedSecret(&a.PublicKey)
		require.NoError(t, err)
		assert.True(t, sa.Equal(sb))
	}
}

func TestSharedSecret_GroupMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := dh.GenerateKey(rng, smallGroup(t))
	require.NoError(t, err)
	b, err := dh.GenerateKey(rng, dh.DefaultGroup())
	require.NoError(t, err)

	_, err = a.SharedSecret(&b.PublicKey)
	require.ErrorIs(t, err, dh.ErrGroupMismatch)
}

func TestSharedSecret_InvalidPublicKey(t *testing.T) {
	g := smallGroup(t)
	k := dh.NewPrivateKey(g, bignum.FromInt64(1234))
	for _, y := range []*bignum.Int{
		bignum.Zero(),
		bignum.One(),
		bignum.FromInt64(-5),
		g.P.Sub(bignum.One()),
		g.P,
	} {
		_, err := k.SharedSecret(&dh.PublicKey{Group: g, Y: y})
		require.ErrorIs(t, err, dh.ErrInvalidPublicKey, "y=%s", y)
	}
}

func TestGenerateKey_RandFailure(t *testing.T) {
	_, err := dh.GenerateKey(bytes.NewReader(nil), smallGroup(t))
	require.ErrorIs(t, err, io.EOF)
}
