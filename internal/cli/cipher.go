package cli

import (
	"fmt"
	"strings"

	"aethervault/internal/services/cipher"
	"aethervault/internal/util"

	"github.com/spf13/cobra"
)

type cipherFlags struct {
	algorithm  string
	text       string
	ascii      bool
	key        string
	keyA       string
	keyB       string
	matrixSize string
	hillMode   string
	matrix     string
	square     string
	transKey   string
	padding    bool
	asJSON     bool
}

// parseMatrix turns "3,3;2,5" into the m-i-j cells of a request.
func parseMatrix(s string) (map[string]string, string) {
	if strings.TrimSpace(s) == "" {
		return nil, ""
	}
	cells := map[string]string{}
	rows := strings.Split(s, ";")
	for i, row := range rows {
		for j, v := range strings.Split(row, ",") {
			cells[fmt.Sprintf("m-%d-%d", i, j)] = strings.TrimSpace(v)
		}
	}
	return cells, fmt.Sprint(len(rows))
}

func blockBytes(alg cipher.Algorithm) int {
	switch alg {
	case cipher.DES:
		return 8
	case cipher.AES128:
		return 16
	}
	return 0
}

func (f cipherFlags) request(decrypt bool) (cipher.Request, error) {
	req := cipher.Request{
		Algorithm:  cipher.Algorithm(strings.ToLower(f.algorithm)),
		Text:       f.text,
		Action:     cipher.Encrypt,
		Key:        f.key,
		KeyA:       f.keyA,
		KeyB:       f.keyB,
		MatrixSize: f.matrixSize,
		HillMode:   f.hillMode,
		Square:     f.square,
		TransKey:   f.transKey,
	}
	switch {
	case decrypt:
		req.Action = cipher.Decrypt
	case req.Algorithm == cipher.ADFGVX && f.padding:
		req.Action = cipher.EncryptWithPadding
	case req.Algorithm == cipher.ADFGVX:
		req.Action = cipher.EncryptNoPadding
	}
	if cells, size := parseMatrix(f.matrix); cells != nil {
		req.Matrix = cells
		if req.MatrixSize == "" {
			req.MatrixSize = size
		}
	}
	if f.ascii {
		n := blockBytes(req.Algorithm)
		if n == 0 {
			return req, fmt.Errorf("--ascii only applies to des and aes128")
		}
		block, ok := util.ASCIIBlock(f.text, n)
		if !ok {
			return req, fmt.Errorf("--ascii text must be at most %d characters", n)
		}
		req.Text = block
		req.Key = util.ToHex(f.key)
	}
	return req, nil
}

func (a *app) cipherCmd(name string, decrypt bool) *cobra.Command {
	var f cipherFlags
	cmd := &cobra.Command{
		Use:   name,
		Short: strings.ToUpper(name[:1]) + name[1:] + " text with one of the supported ciphers",
		Example: "  aethervault " + name + " --algorithm vigenere --key LEMON --text \"attack at dawn\"\n" +
			"  aethervault " + name + " --algorithm hill --matrix \"3,3;2,5\" --text help",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request(decrypt)
			if err != nil {
				return err
			}
			res := cipher.Process(req)
			a.lg.Debugw("cipher", "algorithm", req.Algorithm, "action", req.Action, "success", res.Success)
			if f.asJSON {
				return a.printJSON(res)
			}
			if !res.Success {
				return fmt.Errorf("%s", res.Message)
			}
			fmt.Fprintln(a.out, res.Output)
			if res.Metadata != nil && res.Metadata.FullSquare != "" {
				fmt.Fprintln(a.out, "square:", res.Metadata.FullSquare)
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "cipher id ("+algorithmIDs()+")")
	fl.StringVarP(&f.text, "text", "t", "", "input text")
	fl.BoolVar(&f.ascii, "ascii", false, "treat --text and --key as ASCII for des/aes128")
	fl.StringVarP(&f.key, "key", "k", "", "key")
	fl.StringVar(&f.keyA, "key-a", "", "affine multiplier")
	fl.StringVar(&f.keyB, "key-b", "", "affine shift")
	fl.StringVar(&f.matrixSize, "matrix-size", "", "hill matrix size (2-5)")
	fl.StringVar(&f.hillMode, "hill-mode", "", "hill mode (standard or book)")
	fl.StringVar(&f.matrix, "matrix", "", `hill key rows, e.g. "3,3;2,5"`)
	fl.StringVar(&f.square, "square", "", "adfgvx square seed")
	fl.StringVar(&f.transKey, "trans-key", "", "adfgvx transposition key")
	fl.BoolVar(&f.asJSON, "json", false, "print the response envelope as JSON")
	if !decrypt {
		fl.BoolVar(&f.padding, "padding", false, "pad the adfgvx grid with X")
	}
	_ = cmd.MarkFlagRequired("algorithm")
	return cmd
}

func algorithmIDs() string {
	var ids []string
	for _, info := range cipher.Algorithms() {
		ids = append(ids, string(info.ID))
	}
	return strings.Join(ids, ", ")
}
