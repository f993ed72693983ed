package app_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bigcrypt/internal/app"
	"bigcrypt/internal/crypto"
)

func TestNew_Defaults(t *testing.T) {
	home := filepath.Join(t.TempDir(), "keys")
	a, err := app.New(app.Config{Home: home, LogPath: filepath.Join(home, "log", "bigcrypt.log")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.NotNil(t, a.Keys)
	assert.False(t, a.Store.Exists())
	assert.DirExists(t, home)
}

func TestNew_BadConfig(t *testing.T) {
	_, err := app.New(app.Config{})
	require.Error(t, err)

	_, err = app.New(app.Config{Home: t.TempDir(), KDF: crypto.KDF("pbkdf2")})
	require.ErrorIs(t, err, crypto.ErrUnknownKDF)

	_, err = app.New(app.Config{Home: t.TempDir(), LogLevel: "loud"})
	require.Error(t, err)
}
