package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bigcrypt/internal/app"
	"bigcrypt/internal/crypto"
)

var (
	home       string
	passphrase string
	kdfName    string
	logLevel   string
	logPath    string
	debug      bool
	appCtx     *app.App
)

// Execute runs the bigcrypt CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bigcrypt",
		Short:         "Big-integer calculator and Diffie-Hellman key tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".bigcrypt")
			}
			kdf, err := crypto.ParseKDF(kdfName)
			if err != nil {
				return err
			}
			appCtx, err = app.New(app.Config{
				Home:     home,
				KDF:      kdf,
				LogLevel: logLevel,
				LogPath:  logPath,
				Debug:    debug,
			})
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			appCtx = nil
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "key directory (default ~/.bigcrypt)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the private key")
	pf.StringVar(&kdfName, "kdf", string(crypto.KDFScrypt), "key derivation for new keys (scrypt|argon2id)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error)")
	pf.StringVar(&logPath, "log-path", "", "write logs to this file instead of stderr")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(calcCmd(), keygenCmd(), pubkeyCmd(), fingerprintCmd(), agreeCmd())
	return root
}
