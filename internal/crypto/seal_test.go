package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcrypt/internal/crypto"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	for _, kdf := range []crypto.KDF{crypto.KDFScrypt, crypto.KDFArgon2id} {
		t.Run(string(kdf), func(t *testing.T) {
			env, err := crypto.Seal(kdf, "pass", []byte("secret exponent"))
			require.NoError(t, err)
			assert.Equal(t, kdf, env.KDF)
			assert.Len(t, env.Salt, crypto.SaltBytes)

			pt, err := crypto.Open("pass", env)
			require.NoError(t, err)
			assert.Equal(t, "secret exponent", string(pt))
		})
	}
}

func TestOpen_WrongPassphraseFails(t *testing.T) {
	env, err := crypto.Seal(crypto.KDFScrypt, "correct", []byte("x"))
	require.NoError(t, err)

	_, err = crypto.Open("wrong", env)
	require.Error(t, err)
}

func TestOpen_TamperedKDFFails(t *testing.T) {
	env, err := crypto.Seal(crypto.KDFScrypt, "pass", []byte("x"))
	require.NoError(t, err)

	env.KDF = "bogus"
	_, err = crypto.Open("pass", env)
	require.ErrorIs(t, err, crypto.ErrUnknownKDF)
}

func TestParseKDF(t *testing.T) {
	kdf, err := crypto.ParseKDF("")
	require.NoError(t, err)
	assert.Equal(t, crypto.KDFScrypt, kdf)

	kdf, err = crypto.ParseKDF("argon2id")
	require.NoError(t, err)
	assert.Equal(t, crypto.KDFArgon2id, kdf)

	_, err = crypto.ParseKDF("md5")
	require.ErrorIs(t, err, crypto.ErrUnknownKDF)
}

func TestDeriveKEK_SaltSize(t *testing.T) {
	_, err := crypto.DeriveKEK(crypto.KDFScrypt, "pass", []byte("short"))
	require.ErrorIs(t, err, crypto.ErrSaltSize)
}

func TestFingerprintAndWipe(t *testing.T) {
	fp := crypto.Fingerprint([]byte{1, 2, 3})
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint([]byte{1, 2, 3}))
	assert.NotEqual(t, fp, crypto.Fingerprint([]byte{1, 2, 4}))

	b := []byte{9, 9, 9}
	crypto.Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
