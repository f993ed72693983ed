package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// KDF names a passphrase key-derivation function.
type KDF string

const (
	KDFScrypt   KDF = "scrypt"
	KDFArgon2id KDF = "argon2id"
)

const (
	KeyBytes  = chacha20poly1305.KeySize
	SaltBytes = 16
)

var (
	// ErrUnknownKDF is returned for a KDF name other than scrypt or argon2id.
	ErrUnknownKDF = errors.New("unknown key derivation function")
	// ErrSaltSize is returned when the salt is not SaltBytes long.
	ErrSaltSize = errors.New("invalid salt size")
)

// ParseKDF maps a flag value to a KDF. The empty string selects scrypt.
func ParseKDF(s string) (KDF, error) {
	switch KDF(s) {
	case "", KDFScrypt:
		return KDFScrypt, nil
	case KDFArgon2id:
		return KDFArgon2id, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKDF, s)
	}
}

// DeriveKEK derives a key-encryption key from a passphrase and salt.
func DeriveKEK(kdf KDF, passphrase string, salt []byte) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, ErrSaltSize
	}
	switch kdf {
	case KDFScrypt:
		return scrypt.Key([]byte(passphrase), salt, 1<<15, 8, 1, KeyBytes)
	case KDFArgon2id:
		return argon2.IDKey([]byte(passphrase), salt, 1, 1<<16, 4, KeyBytes), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKDF, kdf)
	}
}
