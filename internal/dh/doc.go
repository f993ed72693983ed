// Package dh implements finite-field Diffie-Hellman on top of bignum.Int.
//
// # Overview
//
// Two parties sharing a Group (prime P, generator G) each pick a private
// exponent x and publish Y = G^x mod P. Each side raises the peer's Y to its own
// x and arrives at the same secret, which DeriveKey expands into key material
// with HKDF-SHA256.
//
// DefaultGroup is the 1536-bit MODP group from RFC 3526 with G = 2.
//
// # Errors
//
// ErrInvalidGroup is returned by NewGroup for unusable parameters,
// ErrGroupMismatch when the two keys belong to different groups, and
// ErrInvalidPublicKey when a peer value lies outside (1, P-1).
//
// # Security notes
//
// Exponentiation is not constant-time. The random source is injected so tests
// can run deterministically; callers outside tests should pass crypto/rand.
package dh
