package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"bigcrypt/internal/crypto"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

// blob is the on-disk JSON structure wrapping a sealed secret.
type blob struct {
	V        int             `json:"v"`
	Envelope crypto.Envelope `json:"envelope"`
}

// encrypt seals raw under passphrase and encodes it as a versioned blob.
func encrypt(kdf crypto.KDF, passphrase string, raw []byte) ([]byte, error) {
	env, err := crypto.Seal(kdf, passphrase, raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blob{V: keystoreFormatVersion, Envelope: env})
}

// decrypt opens a blob written by encrypt.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	pt, err := crypto.Open(passphrase, bl.Envelope)
	if errors.Is(err, crypto.ErrUnknownKDF) || errors.Is(err, crypto.ErrSaltSize) {
		return nil, err
	}
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
