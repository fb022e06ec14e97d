// Package dataset reads numeric datasets from text.
//
// Numbers are separated by whitespace, commas or semicolons, so one value per
// line, space-separated columns and simple CSV rows all work. Blank lines and
// lines starting with # are ignored. Thousands separators are not supported:
// "1,234" reads as two numbers.
package dataset

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	benford "github.com/maxgfr/benford-law"
)

// StdinName is the path that means standard input on the command line.
const StdinName = "-"

// ErrNoNumbers is returned when a source holds no numbers at all. The error
// also matches benford.ErrEmptyInput.
var ErrNoNumbers = errors.New("no numbers found")

// ParseError reports an unparsable token.
type ParseError struct {
	Source string
	Line   int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid number %q", e.Source, e.Line, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Options configures the reader.
type Options struct {
	// SkipInvalid drops unparsable tokens instead of failing.
	SkipInvalid bool
}

// Dataset is the content of one source.
type Dataset struct {
	Source  string
	Numbers []float64

	// Skipped counts tokens dropped under SkipInvalid.
	Skipped int

	// Digest is the hex SHA-256 of the raw input.
	Digest string
}

// Read parses r. name labels errors and the result.
//
// Values are returned exactly as parsed. Zero, negative and non-finite
// numbers are kept; rejecting them is the analyzer's job.
func Read(r io.Reader, name string, opts Options) (*Dataset, error) {
	h := sha256.New()
	scanner := bufio.NewScanner(io.TeeReader(r, h))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	ds := &Dataset{Source: name}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		for _, token := range strings.FieldsFunc(text, isSeparator) {
			x, err := strconv.ParseFloat(token, 64)
			if err != nil {
				if opts.SkipInvalid {
					ds.Skipped++
					continue
				}
				return nil, &ParseError{Source: name, Line: line, Token: token, Err: err}
			}
			ds.Numbers = append(ds.Numbers, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	if len(ds.Numbers) == 0 {
		return nil, fmt.Errorf("%s: %w: %w", name, ErrNoNumbers, benford.ErrEmptyInput)
	}

	ds.Digest = hex.EncodeToString(h.Sum(nil))
	return ds, nil
}

// ReadFile reads the named file.
func ReadFile(path string, opts Options) (ds *Dataset, err error) {
	f, err := os.Open(path) //nolint:gosec // user-provided dataset path
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close dataset: %w", closeErr)
		}
	}()

	return Read(f, path, opts)
}

func isSeparator(r rune) bool {
	switch r {
	case ',', ';', ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}
