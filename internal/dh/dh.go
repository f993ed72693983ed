package dh

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"bigcrypt/internal/bignum"
	"bigcrypt/internal/crypto"
)

var (
	// ErrGroupMismatch is returned when two keys use different groups.
	ErrGroupMismatch = errors.New("dh: keys belong to different groups")
	// ErrInvalidPublicKey is returned for a peer value outside (1, P-1).
	ErrInvalidPublicKey = errors.New("dh: invalid public key")
)

// PublicKey is Y = G^x mod P.
type PublicKey struct {
	Group *Group
	Y     *bignum.Int
}

// PrivateKey carries the secret exponent next to its public value.
type PrivateKey struct {
	PublicKey
	X *bignum.Int
}

// GenerateKey draws a private exponent in [2, P) from rand and computes the
// matching public value.
func GenerateKey(rand io.Reader, g *Group) (*PrivateKey, error) {
	buf := make([]byte, g.P.ByteLen()+1)
	two := bignum.FromInt64(2)
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, fmt.Errorf("dh: read random: %w", err)
		}
		x := bignum.FromBytes(buf).Mod(g.P)
		if x.Cmp(two) < 0 {
			continue
		}
		return NewPrivateKey(g, x), nil
	}
}

// NewPrivateKey rebuilds a key pair from a known exponent.
func NewPrivateKey(g *Group, x *bignum.Int) *PrivateKey {
	return &PrivateKey{
		PublicKey: PublicKey{Group: g, Y: g.G.ModExp(x, g.P)},
		X:         x,
	}
}

// Validate checks that Y lies strictly between 1 and P-1.
func (k *PublicKey) Validate() error {
	pMinus1 := k.Group.P.Sub(bignum.One())
	if k.Y.Cmp(bignum.One()) <= 0 || k.Y.Cmp(pMinus1) >= 0 {
		return ErrInvalidPublicKey
	}
	return nil
}

// SharedSecret returns peer.Y^x mod P.
func (k *PrivateKey) SharedSecret(peer *PublicKey) (*bignum.Int, error) {
	if !k.Group.Equal(peer.Group) {
		return nil, ErrGroupMismatch
	}
	if err := peer.Validate(); err != nil {
		return nil, err
	}
	return peer.Y.ModExp(k.X, k.Group.P), nil
}

// DeriveKey expands the shared secret with HKDF-SHA256 into n bytes. The
// secret is left-padded to the byte length of P so both sides feed HKDF the
// same input regardless of leading zeros.
func (k *PrivateKey) DeriveKey(peer *PublicKey, info []byte, n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("dh: invalid key size %d", n)
	}
	s, err := k.SharedSecret(peer)
	if err != nil {
		return nil, err
	}
	ikm := leftPad(s.Bytes(), k.Group.P.ByteLen())
	defer crypto.Wipe(ikm)

	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, info), out); err != nil {
		return nil, fmt.Errorf("dh: hkdf: %w", err)
	}
	return out, nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
