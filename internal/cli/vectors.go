package cli

import (
	"fmt"
	"os"

	"aethervault/internal/services/vector"

	"github.com/spf13/cobra"
)

func (a *app) vectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectors",
		Short: "Generate or validate known-answer vector files",
	}
	cmd.AddCommand(a.vectorsGenerateCmd(), a.vectorsValidateCmd())
	return cmd
}

func (a *app) vectorsGenerateCmd() *cobra.Command {
	var (
		algorithm, testMode, out string
		count                    int
		expected, asJSON         bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a KAT or MCT vector file for des or aes128",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := vector.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			mode, err := vector.ParseTestMode(testMode)
			if err != nil {
				return err
			}
			set, err := vector.Generate(vector.GenParams{Algorithm: alg, TestMode: mode, Count: count, IncludeExpected: expected}, nil)
			if err != nil {
				return err
			}
			a.lg.Debugw("vectors generated", "algorithm", alg, "test_mode", mode, "count", len(set.Encrypt))
			if asJSON {
				return a.printJSON(set)
			}
			if out == "" || out == "-" {
				_, err = fmt.Fprint(a.out, set.ToTXT())
				return err
			}
			if err := os.WriteFile(out, []byte(set.ToTXT()), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "wrote", out)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&algorithm, "algorithm", "a", "des", "des or aes128")
	fl.StringVarP(&testMode, "test-mode", "m", "KAT", "KAT or MCT")
	fl.IntVarP(&count, "count", "n", vector.DefaultCount, "number of records per direction")
	fl.BoolVar(&expected, "expected", true, "include expected outputs")
	fl.StringVarP(&out, "out", "o", "-", "output file")
	fl.BoolVar(&asJSON, "json", false, "print JSON instead of TXT")
	return cmd
}

func (a *app) vectorsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Replay a vector file through the engines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			recs, err := vector.ParseFile(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			res, err := vector.Validate(recs)
			if err != nil {
				return err
			}
			if err := a.printJSON(res); err != nil {
				return err
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d of %d vectors failed", res.Failed, res.Total)
			}
			return nil
		},
	}
}
