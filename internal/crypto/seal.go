package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/chacha20poly1305"
)

// Envelope is a passphrase-sealed secret as stored on disk.
type Envelope struct {
	KDF   KDF    `json:"kdf"`
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	CT    []byte `json:"ct"`
}

// Seal encrypts plaintext under a KEK derived from passphrase with a fresh
// salt and nonce. The KDF name and salt are bound as associated data.
func Seal(kdf KDF, passphrase string, plaintext []byte) (Envelope, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return Envelope{}, err
	}
	kek, err := DeriveKEK(kdf, passphrase, salt)
	if err != nil {
		return Envelope{}, err
	}
	defer Wipe(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return Envelope{}, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return Envelope{}, err
	}
	env := Envelope{KDF: kdf, Salt: salt, Nonce: nonce}
	env.CT = aead.Seal(nil, nonce, plaintext, env.ad())
	return env, nil
}

// Open decrypts an envelope. A wrong passphrase fails authentication.
func Open(passphrase string, env Envelope) ([]byte, error) {
	kek, err := DeriveKEK(env.KDF, passphrase, env.Salt)
	if err != nil {
		return nil, err
	}
	defer Wipe(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, env.Nonce, env.CT, env.ad())
}

func (e Envelope) ad() []byte {
	return append([]byte(e.KDF), e.Salt...)
}
