package dh

import (
	"encoding/hex"
	"errors"
	"sync"

	"bigcrypt/internal/bignum"
)

// modp1536 is the RFC 3526 group 5 prime.
const modp1536 = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74" +
	"020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F1437" +
	"4FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF05" +
	"98DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB" +
	"9ED529077096966D670C354E4ABC9804F1746C08CA237327FFFFFFFFFFFFFFFF"

// ErrInvalidGroup is returned for a modulus or generator that cannot be used.
var ErrInvalidGroup = errors.New("dh: invalid group parameters")

// Group holds the public domain parameters shared by both parties.
type Group struct {
	P *bignum.Int
	G *bignum.Int
}

var (
	defaultOnce  sync.Once
	defaultGroup *Group
)

// DefaultGroup returns the 1536-bit MODP group with generator 2. The value is
// built once and must not be modified.
func DefaultGroup() *Group {
	defaultOnce.Do(func() {
		p, err := hex.DecodeString(modp1536)
		if err != nil {
			panic(err)
		}
		defaultGroup = &Group{P: bignum.FromBytes(p), G: bignum.FromInt64(2)}
	})
	return defaultGroup
}

// NewGroup validates p and g and returns them as a Group.
func NewGroup(p, g *bignum.Int) (*Group, error) {
	if p.Cmp(bignum.FromInt64(3)) <= 0 {
		return nil, ErrInvalidGroup
	}
	pMinus1 := p.Sub(bignum.One())
	if g.Cmp(bignum.One()) <= 0 || g.Cmp(pMinus1) >= 0 {
		return nil, ErrInvalidGroup
	}
	return &Group{P: p, G: g}, nil
}

// Equal reports whether both groups use the same parameters.
func (g *Group) Equal(o *Group) bool {
	if g == o {
		return true
	}
	if g == nil || o == nil {
		return false
	}
	return g.P.Equal(o.P) && g.G.Equal(o.G)
}
