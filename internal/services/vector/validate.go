package vector

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tmthrgd/go-hex"
)

type Record struct {
	Count      int
	Key        []byte
	PT         []byte
	CT         []byte
	Iterations int
	Mode       string // ENCRYPT or DECRYPT
}

type Mismatch struct {
	Count    int    `json:"count"`
	Mode     string `json:"mode"`
	Expected string `json:"expected"`
	Got      string `json:"got"`
}

type ValidationResult struct {
	Algorithm Algorithm  `json:"algorithm,omitempty"`
	Total     int        `json:"total"`
	Passed    int        `json:"passed"`
	Failed    int        `json:"failed"`
	Failures  []Mismatch `json:"failures,omitempty"`
}

// ParseFile reads a vector file. Lines starting with '#' and unknown keys are ignored.
func ParseFile(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	section := ""
	var cur Record
	started := false

	flush := func() {
		if started {
			cur.Mode = section
			if cur.Iterations <= 0 {
				cur.Iterations = 1
			}
			recs = append(recs, cur)
		}
		cur = Record{}
		started = false
	}

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			flush()
			section = strings.ToUpper(strings.Trim(text, "[]"))
			continue
		}
		k, v, ok := strings.Cut(text, "=")
		if !ok {
			continue
		}
		k = strings.ToUpper(strings.TrimSpace(k))
		v = strings.TrimSpace(v)

		var err error
		switch k {
		case "COUNT":
			flush()
			started = true
			cur.Count, err = strconv.Atoi(v)
		case "KEY":
			cur.Key, err = hex.DecodeString(v)
		case "PLAINTEXT":
			cur.PT, err = hex.DecodeString(v)
		case "CIPHERTEXT":
			cur.CT, err = hex.DecodeString(v)
		case "ITERATIONS":
			cur.Iterations, err = strconv.Atoi(v)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: bad %s: %w", line, k, err)
		}
	}
	flush()
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Validate replays every record through the engine selected by its key length.
func Validate(recs []Record) (ValidationResult, error) {
	res := ValidationResult{Total: len(recs)}
	for _, r := range recs {
		e, alg, ok := engineForKey(len(r.Key))
		if !ok {
			return res, fmt.Errorf("unsupported key length %d at COUNT=%d", len(r.Key), r.Count)
		}
		if res.Algorithm == "" {
			res.Algorithm = alg
		}
		if r.Iterations > MCTIterations {
			return res, fmt.Errorf("too many iterations at COUNT=%d", r.Count)
		}

		var in, want []byte
		var f func(key, block []byte) []byte
		switch r.Mode {
		case "ENCRYPT":
			in, want, f = r.PT, r.CT, e.encrypt
		case "DECRYPT":
			in, want, f = r.CT, r.PT, e.decrypt
		default:
			return res, fmt.Errorf("unknown section/mode at COUNT=%d", r.Count)
		}
		if len(in) != e.blkLen || len(want) != e.blkLen {
			return res, fmt.Errorf("block size mismatch at COUNT=%d", r.Count)
		}

		got := iterate(f, r.Key, in, r.Iterations)
		if bytes.Equal(got, want) {
			res.Passed++
			continue
		}
		res.Failed++
		res.Failures = append(res.Failures, Mismatch{
			Count:    r.Count,
			Mode:     r.Mode,
			Expected: hex.EncodeToString(want),
			Got:      hex.EncodeToString(got),
		})
	}
	return res, nil
}
