package cli

import (
	"fmt"

	"aethervault/internal/services/cipher"

	"github.com/spf13/cobra"
)

func (a *app) traceCmd() *cobra.Command {
	var text, key string
	var decrypt bool
	cmd := &cobra.Command{
		Use:       "trace des|aes",
		Short:     "Print the round-by-round breakdown of one DES or AES-128 block",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"des", "aes"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "des":
				bd, err := cipher.TraceDES(text, key, decrypt)
				if err != nil {
					return err
				}
				return a.printJSON(bd)
			case "aes", "aes128":
				bd, err := cipher.TraceAES(text, key, decrypt)
				if err != nil {
					return err
				}
				return a.printJSON(bd)
			}
			return fmt.Errorf("unknown block cipher %q", args[0])
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "input block (hex)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key (hex)")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "trace decryption")
	return cmd
}
