package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a Diffie-Hellman key pair and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if appCtx.Store.Exists() && !force {
				return fmt.Errorf("key pair already exists in %s (use --force to replace it)", home)
			}
			kp, fp, err := appCtx.Keys.Generate(passphrase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key pair created (%d-bit group).\nFingerprint: %s\n", kp.P.BitLen(), fp)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key pair")
	return cmd
}
