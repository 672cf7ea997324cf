package cli

import (
	"errors"

	"aethervault/internal/services/vector"

	"github.com/spf13/cobra"
)

func (a *app) selfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the DES and AES-128 engines against published answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vectors, ok := vector.SelfTest()
			if err := a.printJSON(vectors); err != nil {
				return err
			}
			if !ok {
				return errors.New("self test failed")
			}
			return nil
		},
	}
}
