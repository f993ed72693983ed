package keys

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"go.uber.org/zap"

	"bigcrypt/internal/bignum"
	"bigcrypt/internal/crypto"
	"bigcrypt/internal/dh"
	"bigcrypt/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrKeyMismatch is returned when the stored public value does not match
	// the decrypted private exponent.
	ErrKeyMismatch = errors.New("stored public key does not match private key")
)

// Service manages the local Diffie-Hellman key pair using a backing store.
type Service struct {
	store domain.KeyStore
	group *dh.Group
	rand  io.Reader
	log   *zap.Logger
}

// New returns a key service that generates keys in group from rand.
func New(s domain.KeyStore, group *dh.Group, rand io.Reader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: s, group: group, rand: rand, log: log}
}

// Generate creates a new key pair, saves it encrypted with the passphrase,
// and returns it with a fingerprint of the public value.
func (s *Service) Generate(passphrase string) (domain.KeyPair, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.KeyPair{}, "", ErrWeakPassphrase
	}

	key, err := dh.GenerateKey(s.rand, s.group)
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	kp := domain.KeyPair{
		P:       s.group.P,
		G:       s.group.G,
		Public:  key.Y,
		Private: key.X,
	}
	if err := s.store.SaveKeyPair(passphrase, kp); err != nil {
		return domain.KeyPair{}, "", fmt.Errorf("save key pair: %w", err)
	}
	fp := fingerprint(key.Y)
	s.log.Debug("generated key pair",
		zap.Int("group_bits", s.group.P.BitLen()),
		zap.String("fingerprint", fp.String()))
	return kp, fp, nil
}

// Public returns the stored public half and its fingerprint.
func (s *Service) Public() (domain.KeyPair, domain.Fingerprint, error) {
	kp, err := s.store.LoadPublic()
	if err != nil {
		return domain.KeyPair{}, "", err
	}
	return kp, fingerprint(kp.Public), nil
}

// Agree derives size bytes of key material shared with the holder of
// peerPublic (a big-endian value in the stored key's group). It returns the
// key and its fingerprint.
func (s *Service) Agree(
	passphrase string,
	peerPublic []byte,
	info string,
	size int,
) ([]byte, domain.Fingerprint, error) {
	kp, err := s.store.LoadKeyPair(passphrase)
	if err != nil {
		return nil, "", err
	}
	group, err := dh.NewGroup(kp.P, kp.G)
	if err != nil {
		return nil, "", fmt.Errorf("stored group: %w", err)
	}
	key := dh.NewPrivateKey(group, kp.Private)
	if !key.Y.Equal(kp.Public) {
		return nil, "", ErrKeyMismatch
	}

	peer := &dh.PublicKey{Group: group, Y: bignum.FromBytes(peerPublic)}
	out, err := key.DeriveKey(peer, []byte(info), size)
	if err != nil {
		return nil, "", err
	}
	fp := domain.Fingerprint(crypto.Fingerprint(out))
	s.log.Debug("derived shared key",
		zap.String("peer", fingerprint(peer.Y).String()),
		zap.String("key", fp.String()),
		zap.Int("size", size))
	return out, fp, nil
}

func fingerprint(y *bignum.Int) domain.Fingerprint {
	return domain.Fingerprint(crypto.Fingerprint(y.Bytes()))
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
