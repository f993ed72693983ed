// Package store provides file-based persistence for bigcrypt's key material.
//
// KeyFileStore implements domain.KeyStore. The public half of a key pair
// (group parameters and public value) is written as plain JSON; the private
// exponent is sealed under the user's passphrase with ChaCha20-Poly1305 and
// a scrypt or Argon2id derived key. Writes go through a temp file and rename,
// and all methods are serialised by an internal mutex.
package store
