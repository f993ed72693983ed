// Package crypto holds the symmetric helpers bigcrypt needs around its
// public-key code.
//
// Contents
//
//   - Passphrase key derivation with scrypt or Argon2id (DeriveKEK, ParseKDF)
//   - ChaCha20-Poly1305 sealing of secrets under a passphrase (Seal, Open)
//   - Short fingerprints of public values for display (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Envelopes record which KDF produced their key, so a store written with one
// KDF can still be opened after the default changes.
package crypto
