// Package cli is the aethervault command-line front end.
package cli

import (
	"io"
	"os"

	"aethervault/internal/config"
	"aethervault/internal/logger"

	json "github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	lg      *zap.SugaredLogger
	out     io.Writer
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: config.New(), out: out}

	root := &cobra.Command{
		Use:           "aethervault",
		Short:         "Classical and block cipher toolkit",
		Long:          "aethervault runs the classical ciphers, ADFGVX, DES and AES-128,\ntraces the block ciphers round by round and generates known-answer vectors.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug or info)")
	_ = a.v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		a.cipherCmd("encrypt", false),
		a.cipherCmd("decrypt", true),
		a.traceCmd(),
		a.gfMulCmd(),
		a.modInverseCmd(),
		a.modPowCmd(),
		a.hashPasswordCmd(),
		a.vectorsCmd(),
		a.selfTestCmd(),
	)
	return root
}

func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return err
		}
	}
	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.lg = logger.New(cfg.LogLevel)
	return nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the CLI against os.Args.
func Execute() {
	_ = godotenv.Load()
	root := NewRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
