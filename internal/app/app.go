package app

import (
	"crypto/rand"
	"fmt"
	"os"

	"go.uber.org/zap"

	"bigcrypt/internal/crypto"
	"bigcrypt/internal/dh"
	"bigcrypt/internal/domain"
	"bigcrypt/internal/services/keys"
	"bigcrypt/internal/store"
)

// App bundles the stores, services and logger used by the CLI.
type App struct {
	Keys  domain.KeyService
	Store *store.KeyFileStore
	Log   *zap.Logger
}

// New constructs the dependency graph from cfg. The caller must Close the
// returned App.
func New(cfg Config) (*App, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("app: home directory not set")
	}
	if cfg.KDF == "" {
		cfg.KDF = crypto.KDFScrypt
	}
	if _, err := crypto.ParseKDF(string(cfg.KDF)); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	ks := store.NewKeyFileStore(cfg.Home, cfg.KDF)
	log.Debug("app initialised",
		zap.String("home", cfg.Home),
		zap.String("kdf", string(cfg.KDF)),
		zap.Bool("have_key", ks.Exists()))

	return &App{
		Keys:  keys.New(ks, dh.DefaultGroup(), rand.Reader, log),
		Store: ks,
		Log:   log,
	}, nil
}

// Close flushes the logger.
func (a *App) Close() error {
	// Sync on stderr returns EINVAL/ENOTTY on some platforms; ignore it.
	_ = a.Log.Sync()
	return nil
}
