package store

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bigcrypt/internal/bignum"
	"bigcrypt/internal/crypto"
	"bigcrypt/internal/domain"
)

const (
	publicFilename  = "dh_public.json"
	privateFilename = "dh_private.enc"
)

// ErrNoKey is returned when no key pair has been stored yet.
var ErrNoKey = errors.New("no key pair stored")

// publicRecord is the plaintext half of a stored key pair. Values are
// big-endian hex magnitudes.
type publicRecord struct {
	P      string `json:"p"`
	G      string `json:"g"`
	Public string `json:"public"`
}

// KeyFileStore persists the local Diffie-Hellman key pair to disk.
type KeyFileStore struct {
	dir string
	kdf crypto.KDF
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir that seals new
// private keys with kdf.
func NewKeyFileStore(dir string, kdf crypto.KDF) *KeyFileStore {
	return &KeyFileStore{dir: dir, kdf: kdf}
}

// SaveKeyPair writes the public record and the sealed private exponent.
func (s *KeyFileStore) SaveKeyPair(passphrase string, kp domain.KeyPair) error {
	if !kp.HasPrivate() {
		return errors.New("key pair has no private exponent")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := kp.Private.Bytes()
	defer crypto.Wipe(raw)
	ct, err := encrypt(s.kdf, passphrase, raw)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, privateFilename), ct, 0o600); err != nil {
		return err
	}
	rec := publicRecord{
		P:      encodeInt(kp.P),
		G:      encodeInt(kp.G),
		Public: encodeInt(kp.Public),
	}
	return writeJSON(filepath.Join(s.dir, publicFilename), rec, 0o644)
}

// LoadKeyPair reads the public record and decrypts the private exponent.
func (s *KeyFileStore) LoadKeyPair(passphrase string) (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kp, err := s.loadPublic()
	if err != nil {
		return domain.KeyPair{}, err
	}
	b, err := readFile(filepath.Join(s.dir, privateFilename))
	if err != nil {
		return domain.KeyPair{}, err
	}
	raw, err := decrypt(passphrase, b)
	if err != nil {
		return domain.KeyPair{}, err
	}
	kp.Private = bignum.FromBytes(raw)
	crypto.Wipe(raw)
	return kp, nil
}

// LoadPublic reads the public half only; no passphrase is needed.
func (s *KeyFileStore) LoadPublic() (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPublic()
}

func (s *KeyFileStore) loadPublic() (domain.KeyPair, error) {
	var rec publicRecord
	if err := readJSON(filepath.Join(s.dir, publicFilename), &rec); err != nil {
		return domain.KeyPair{}, err
	}
	var kp domain.KeyPair
	for _, f := range []struct {
		dst  **bignum.Int
		name string
		val  string
	}{
		{&kp.P, "p", rec.P},
		{&kp.G, "g", rec.G},
		{&kp.Public, "public", rec.Public},
	} {
		v, err := decodeInt(f.val)
		if err != nil {
			return domain.KeyPair{}, fmt.Errorf("%s: field %s: %w", publicFilename, f.name, err)
		}
		*f.dst = v
	}
	return kp, nil
}

// Exists reports whether a key pair has been written to dir.
func (s *KeyFileStore) Exists() bool {
	_, err := os.Stat(filepath.Join(s.dir, publicFilename))
	return err == nil
}

func encodeInt(x *bignum.Int) string { return hex.EncodeToString(x.Bytes()) }

func decodeInt(s string) (*bignum.Int, error) {
	if s == "" {
		return nil, errors.New("empty value")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return bignum.FromBytes(b), nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
