package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bigcrypt/internal/bignum"
)

var errDivByZero = errors.New("division by zero")

func calcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Arbitrary-precision integer arithmetic on hex operands",
		Long: `Arbitrary-precision integer arithmetic on signed hex operands.

Operands are hex with an optional sign and 0x prefix ("ff", "0x1F", "-0x2a").
Pass negative operands after "--" so they are not read as flags:

  bigcrypt calc sub -- 0x10 -0x20`,
		// Arithmetic needs no key directory.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}

	binary := []struct {
		use, short string
		divides    bool
		op         func(x, y *bignum.Int) []*bignum.Int
	}{
		{"add", "x + y", false, func(x, y *bignum.Int) []*bignum.Int { return []*bignum.Int{x.Add(y)} }},
		{"sub", "x - y", false, func(x, y *bignum.Int) []*bignum.Int { return []*bignum.Int{x.Sub(y)} }},
		{"mul", "x * y", false, func(x, y *bignum.Int) []*bignum.Int { return []*bignum.Int{x.Mul(y)} }},
		{"div", "floor(x / y)", true, func(x, y *bignum.Int) []*bignum.Int { return []*bignum.Int{x.Div(y)} }},
		{"mod", "x mod y, with the sign of y", true, func(x, y *bignum.Int) []*bignum.Int { return []*bignum.Int{x.Mod(y)} }},
		{"divmod", "quotient and remainder on two lines", true, func(x, y *bignum.Int) []*bignum.Int {
			q, r := x.DivMod(y)
			return []*bignum.Int{q, r}
		}},
	}
	for _, b := range binary {
		b := b // per-iteration copy; go directive is < 1.22
		cmd.AddCommand(&cobra.Command{
			Use:   b.use + " <x> <y>",
			Short: b.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, y, err := parsePair(args)
				if err != nil {
					return err
				}
				if b.divides && y.IsZero() {
					return errDivByZero
				}
				for _, v := range b.op(x, y) {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
				return nil
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Print -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(y))
			return nil
		},
	}, modexpCmd())
	return cmd
}

func modexpCmd() *cobra.Command {
	var mod hexIntValue
	cmd := &cobra.Command{
		Use:   "modexp <base> <exp> --mod <m>",
		Short: "base^|exp| mod m",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, exp, err := parsePair(args)
			if err != nil {
				return err
			}
			if mod.v == nil || mod.v.IsZero() {
				return errDivByZero
			}
			fmt.Fprintln(cmd.OutOrStdout(), base.ModExp(exp, mod.v))
			return nil
		},
	}
	cmd.Flags().Var(&mod, "mod", "modulus (hex)")
	_ = cmd.MarkFlagRequired("mod")
	return cmd
}

func parsePair(args []string) (*bignum.Int, *bignum.Int, error) {
	x, err := parseHexInt(args[0])
	if err != nil {
		return nil, nil, err
	}
	y, err := parseHexInt(args[1])
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
