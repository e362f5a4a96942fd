package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the text encoding of a configuration resource.
type Format string

const (
	// FormatTOML is the canonical resource format.
	FormatTOML Format = "toml"
	// FormatYAML is accepted for .yaml and .yml resources.
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Anything that is
// not .yaml or .yml is treated as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads the resource at path and decodes it into a Document.
// Sections missing from the resource are left nil; no defaults are applied
// and no validation is done.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrResourceUnreadable, path, err)
	}

	doc, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return doc, nil
}

// Decode parses resource text in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	}
	return &doc, nil
}

// Encode serializes the document. Keys follow struct declaration order, so
// the output is stable for a given document.
func Encode(doc *Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(false)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
