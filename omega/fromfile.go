// SPDX-License-Identifier: MIT
// Package omega: the file-backed intramolecular correlation provider.
package omega

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// gridTol is the absolute tolerance used when matching a stored k grid
// against a requested axis. Values that disagree beyond it are a domain
// mismatch, not a rounding artifact.
const gridTol = 1e-8

// FromFile reads a pre-computed intramolecular correlation from a
// plain-text table: one (k, ω) pair per line, columns separated by
// whitespace or commas, '#' lines and blank lines ignored.
//
// The table is loaded lazily on the first Calculate and cached. The stored
// k grid must match the requested axis exactly — same length, same values —
// otherwise Calculate fails with ErrDomainMismatch; the provider never
// interpolates.
type FromFile struct {
	Path string

	k, value []float64 // cached table columns
}

// NewFromFile returns a provider backed by the table at path.
func NewFromFile(path string) *FromFile { return &FromFile{Path: path} }

// Calculate implements Omega. It returns a copy of the stored ω column
// after verifying the stored k grid against the supplied axis.
func (f *FromFile) Calculate(k []float64) ([]float64, error) {
	if f.k == nil {
		if err := f.load(); err != nil {
			return nil, err
		}
	}

	if len(k) != len(f.k) {
		return nil, fmt.Errorf("omega: FromFile(%s): table has %d points, axis has %d: %w",
			f.Path, len(f.k), len(k), ErrDomainMismatch)
	}
	for i := range k {
		if math.Abs(k[i]-f.k[i]) > gridTol {
			return nil, fmt.Errorf("omega: FromFile(%s): k[%d]=%g vs table %g: %w",
				f.Path, i, k[i], f.k[i], ErrDomainMismatch)
		}
	}

	return append([]float64(nil), f.value...), nil
}

// load parses the two-column table into the cache.
func (f *FromFile) load() error {
	file, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("omega: FromFile: %w", err)
	}
	defer file.Close()

	var ks, vs []float64
	sc := bufio.NewScanner(file)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cols := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(cols) < 2 {
			return fmt.Errorf("omega: FromFile(%s): line %d: need two columns: %w", f.Path, line, ErrBadTable)
		}
		kv, err := strconv.ParseFloat(cols[0], 64)
		if err != nil {
			return fmt.Errorf("omega: FromFile(%s): line %d: %v: %w", f.Path, line, err, ErrBadTable)
		}
		wv, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			return fmt.Errorf("omega: FromFile(%s): line %d: %v: %w", f.Path, line, err, ErrBadTable)
		}
		ks = append(ks, kv)
		vs = append(vs, wv)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("omega: FromFile(%s): %w", f.Path, err)
	}
	if len(ks) == 0 {
		return fmt.Errorf("omega: FromFile(%s): empty table: %w", f.Path, ErrBadTable)
	}

	f.k, f.value = ks, vs
	return nil
}
