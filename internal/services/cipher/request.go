package cipher

// Algorithm identifies one of the supported ciphers.
type Algorithm string

const (
	Additive       Algorithm = "additive"
	Multiplicative Algorithm = "multiplicative"
	Affine         Algorithm = "affine"
	Vigenere       Algorithm = "vigenere"
	Autokey        Algorithm = "autokey"
	Playfair       Algorithm = "playfair"
	Hill           Algorithm = "hill"
	ADFGVX         Algorithm = "adfgvx"
	AES128         Algorithm = "aes128"
	DES            Algorithm = "des"
)

// Action is the requested direction. The padding variants only matter for ADFGVX.
type Action string

const (
	Encrypt            Action = "encrypt"
	Decrypt            Action = "decrypt"
	EncryptNoPadding   Action = "encrypt-no-padding"
	EncryptWithPadding Action = "encrypt-with-padding"
)

// Request carries the text and every algorithm-specific parameter. Numeric parameters arrive
// as strings, the way form fields do, and are parsed per algorithm.
type Request struct {
	Algorithm  Algorithm         `json:"algorithm"`
	Text       string            `json:"text"`
	Action     Action            `json:"action"`
	Key        string            `json:"key,omitempty"`
	KeyA       string            `json:"keyA,omitempty"`
	KeyB       string            `json:"keyB,omitempty"`
	MatrixSize string            `json:"matrixSize,omitempty"`
	HillMode   string            `json:"hillMode,omitempty"`
	Matrix     map[string]string `json:"matrix,omitempty"` // "m-<row>-<col>", 0-based
	Square     string            `json:"square,omitempty"`
	TransKey   string            `json:"transKey,omitempty"`
}

// Metadata holds the extra values some algorithms report next to their output.
type Metadata struct {
	FullSquare string `json:"fullSquare,omitempty"`
}

// Result is a successful run.
type Result struct {
	Output   string
	Metadata *Metadata
}

// Response is the rendered outcome of Process.
type Response struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Output   string    `json:"output"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
