package openapi

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/speclint/internal/errors"
	"github.com/thoreinstein/speclint/internal/translate"
	"github.com/thoreinstein/speclint/pkg/fileutil"
)

// Format is a serialization format for OpenAPI documents.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
)

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%s (supported: .json, .yaml, .yml, .toml)", path)
	}
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		err = errors.Wrapf(err, "reading %s", path)
		if os.IsNotExist(errors.UnwrapAll(err)) {
			return nil, errors.Mark(err, errors.ErrNotFound)
		}
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decoding %s", path), errors.ErrInvalidDocument)
	}
	return doc, nil
}

// Read decodes a document of the given format from r, such as stdin.
func Read(r io.Reader, format Format) (*Document, error) {
	data, err := fileutil.ReadAllWithLimit(r)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Mark(err, errors.ErrInvalidDocument)
	}
	return doc, nil
}

// ParseFormat converts a format name such as "yml" into a Format.
func ParseFormat(name string) (Format, error) {
	return DetectFormat("." + strings.TrimPrefix(name, "."))
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("document is empty")
	}

	var doc Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "parsing JSON")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "parsing YAML")
		}
	case FormatTOML:
		converted, err := translate.TOMLToYAML(data)
		if err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
		if err := yaml.Unmarshal(converted, &doc); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", format)
	}
	return &doc, nil
}
