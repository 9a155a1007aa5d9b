// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Decode reads a JSON model document from r and applies the recovery policy.
func Decode(r io.Reader) (*Model, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return resolve(&doc)
}

// DecodeYAML reads a YAML model document from r and applies the recovery policy.
func DecodeYAML(r io.Reader) (*Model, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return resolve(&doc)
}

// FromMap decodes a generic map (e.g. parsed front matter or form values).
// Input is weakly typed: "10" is accepted for a number.
func FromMap(raw map[string]any) (*Model, error) {
	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return resolve(&doc)
}

// ReadFile loads path, decoding .yaml and .yml files as YAML and anything else as JSON.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return Decode(f)
	}
}

// Encode writes m as an indented JSON document.
func Encode(w io.Writer, m *Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}

// EncodeYAML writes m as a YAML document.
func EncodeYAML(w io.Writer, m *Model) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}

	return enc.Close()
}

// FileName returns the conventional save name
// "ctmc_model_<n>x<n>_<ISO timestamp with ':' and '.' replaced by '-'>.json".
func FileName(m *Model, now time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.UTC().Format(savedAtLayout))

	return fmt.Sprintf("ctmc_model_%dx%d_%s.json", m.Size, m.Size, stamp)
}
