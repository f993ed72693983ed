package types

import "bigcrypt/internal/bignum"

// KeyPair is a Diffie-Hellman key pair together with its group parameters.
// Private is nil when only the public half has been loaded.
type KeyPair struct {
	P       *bignum.Int
	G       *bignum.Int
	Public  *bignum.Int
	Private *bignum.Int
}

// HasPrivate reports whether the private exponent is present.
func (k KeyPair) HasPrivate() bool { return k.Private != nil }

// PublicOnly returns a copy of k without the private exponent.
func (k KeyPair) PublicOnly() KeyPair {
	k.Private = nil
	return k
}
