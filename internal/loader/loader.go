// Package loader reads reflection documents produced by the native host and
// turns them into model snapshots and registration events.
package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the only document major version understood by this loader.
const SupportedMajor = "v1"

type Format int

const (
	FormatYAML Format = iota // also accepts JSON
	FormatTOML
)

var (
	ErrUnknownFormat      = errors.New("unknown document format")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// FormatOf picks the document format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%s", path)
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read reflection document")
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "decode yaml")
		}
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return &doc, nil
}

func checkVersion(v string) error {
	canonical := v
	if !strings.HasPrefix(canonical, "v") {
		canonical = "v" + canonical
	}
	if !semver.IsValid(canonical) {
		return errors.WithHint(
			errors.Wrapf(ErrUnsupportedVersion, "%q is not a semantic version", v),
			"set the top-level version field, e.g. version: 1.0.0",
		)
	}
	if major := semver.Major(canonical); major != SupportedMajor {
		return errors.Wrapf(ErrUnsupportedVersion, "major version %s, want %s", major, SupportedMajor)
	}
	return nil
}
