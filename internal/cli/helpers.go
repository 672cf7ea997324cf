package cli

import (
	"fmt"
	"strconv"

	"aethervault/internal/auth"
	"aethervault/internal/services/cipher"

	"github.com/spf13/cobra"
)

func (a *app) gfMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gf-mul VALUE MULTIPLIER",
		Short: "Multiply a hex byte by a MixColumns constant in GF(2^8)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := cipher.GFMultiply(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s x %s = %s (%s)\n", res.Value, res.Multiplier, res.Result, res.Binary)
			return nil
		},
	}
}

func (a *app) modInverseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mod-inverse A [M]",
		Short: "Modular inverse by the extended Euclidean algorithm (M defaults to 26)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("A must be an integer")
			}
			m := cipher.DefaultModulus
			if len(args) == 2 {
				if m, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("M must be an integer")
				}
			}
			inv, err := cipher.ModInverse(n, m)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, inv)
			return nil
		},
	}
}

func (a *app) modPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mod-pow BASE EXP M",
		Short: "Square-and-multiply exponentiation BASE^EXP mod M",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n [3]int
			for i, name := range []string{"BASE", "EXP", "M"} {
				v, err := strconv.Atoi(args[i])
				if err != nil {
					return fmt.Errorf("%s must be an integer", name)
				}
				n[i] = v
			}
			res, err := cipher.ModPow(n[0], n[1], n[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, res)
			return nil
		},
	}
}

func (a *app) hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, h)
			return nil
		},
	}
}
