package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func agreeCmd() *cobra.Command {
	var (
		info    string
		size    int
		showKey bool
	)
	cmd := &cobra.Command{
		Use:   "agree <peer-public-hex>",
		Short: "Derive a shared key with a peer's public value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			peer, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("peer public value: %w", err)
			}
			key, fp, err := appCtx.Keys.Agree(passphrase, peer, info, size)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Shared key fingerprint: %s\n", fp)
			if showKey {
				fmt.Fprintf(out, "Shared key: %s\n", hex.EncodeToString(key))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&info, "info", "bigcrypt", "HKDF context string")
	cmd.Flags().IntVar(&size, "size", 32, "derived key length in bytes")
	cmd.Flags().BoolVar(&showKey, "show-key", false, "print the derived key in hex")
	return cmd
}
