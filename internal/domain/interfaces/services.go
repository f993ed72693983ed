package interfaces

import domaintypes "bigcrypt/internal/domain/types"

// KeyService creates the local key pair and runs key agreement with peers.
type KeyService interface {
	Generate(passphrase string) (domaintypes.KeyPair, domaintypes.Fingerprint, error)
	Public() (domaintypes.KeyPair, domaintypes.Fingerprint, error)
	Agree(
		passphrase string,
		peerPublic []byte,
		info string,
		size int,
	) ([]byte, domaintypes.Fingerprint, error)
}
