package interfaces

import domaintypes "bigcrypt/internal/domain/types"

// KeyStore persists the local Diffie-Hellman key pair. The private exponent
// is protected by a passphrase; the public half is readable without one.
type KeyStore interface {
	SaveKeyPair(passphrase string, kp domaintypes.KeyPair) error
	LoadKeyPair(passphrase string) (domaintypes.KeyPair, error)
	LoadPublic() (domaintypes.KeyPair, error)
}
