package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public value as big-endian hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, _, err := appCtx.Keys.Public()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(kp.Public.Bytes()))
			return nil
		},
	}
}
