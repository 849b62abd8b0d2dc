package schema

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/codedom/errors"
)

// Encoding is the syntax of a descriptor file.
type Encoding string

const (
	EncodingYAML Encoding = "yaml"
	EncodingJSON Encoding = "json"
	EncodingTOML Encoding = "toml"
)

const (
	// CurrentFormat is written by tools that emit descriptors.
	CurrentFormat = "1.0.0"
	// FormatConstraint is the range of format versions this build reads.
	FormatConstraint = ">= 1.0.0, < 2.0.0"
)

// EncodingOf derives the encoding from a file extension.
func EncodingOf(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return EncodingYAML, nil
	case ".json":
		return EncodingJSON, nil
	case ".toml":
		return EncodingTOML, nil
	}
	return "", errors.Wrapf(errors.ErrUnsupportedFormat, "cannot tell descriptor encoding of %s", path)
}

// LoadFile reads, version-checks and validates a descriptor file.
func LoadFile(path string) (*Document, error) {
	enc, err := EncodingOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read descriptor %s", path)
	}
	doc, err := Parse(data, enc)
	if err != nil {
		return nil, errors.Wrapf(err, "descriptor %s", path)
	}
	return doc, nil
}

// Parse decodes data. Unknown keys are rejected so typos surface early.
func Parse(data []byte, enc Encoding) (*Document, error) {
	var doc Document
	switch enc {
	case EncodingYAML, EncodingJSON:
		// JSON is a subset of YAML.
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", enc)
		}
	case EncodingTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode toml")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "encoding %q", enc)
	}

	if err := CheckFormat(doc.Format); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CheckFormat accepts an empty version as CurrentFormat.
func CheckFormat(format string) error {
	if format == "" {
		format = CurrentFormat
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return errors.Wrapf(errors.ErrUnsupportedFormat, "invalid format version %q: %v", format, err)
	}
	c, err := semver.NewConstraint(FormatConstraint)
	if err != nil {
		return errors.Wrapf(err, "invalid format constraint %s", FormatConstraint)
	}
	if !c.Check(v) {
		return errors.Wrapf(errors.ErrUnsupportedFormat, "format %s is outside %s", format, FormatConstraint)
	}
	return nil
}
