package app

import "bigcrypt/internal/crypto"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string     // key directory, e.g. $HOME/.bigcrypt
	KDF      crypto.KDF // KDF for newly sealed keys; defaults to scrypt
	LogLevel string     // zap level name; empty means info
	LogPath  string     // optional log file; stderr when empty
	Debug    bool       // forces debug level
}
