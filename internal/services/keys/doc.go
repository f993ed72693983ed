// Package keys manages the local Diffie-Hellman key pair.
//
// It enforces the passphrase policy, generates keys in the configured group,
// persists them via domain.KeyStore, and derives shared keys with peers.
package keys
