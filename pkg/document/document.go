package document

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stacklayout/pkg/errors"
)

// Format names a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Element kinds.
const (
	KindVStack  = "vstack"
	KindHStack  = "hstack"
	KindText    = "text"
	KindDivider = "divider"
)

// Document is a decoded view description.
type Document struct {
	// Width is the proposed root width. Zero means the caller decides.
	Width int      `json:"width,omitempty" toml:"width,omitempty"`
	Root  *Element `json:"root" toml:"root"`
}

// Element is one view in a document.
type Element struct {
	Kind     string     `json:"kind" toml:"kind"`
	Text     string     `json:"text,omitempty" toml:"text,omitempty"`
	Font     string     `json:"font,omitempty" toml:"font,omitempty"`
	Color    string     `json:"color,omitempty" toml:"color,omitempty"`
	Padding  any        `json:"padding,omitempty" toml:"padding,omitempty"`
	Children []*Element `json:"children,omitempty" toml:"children,omitempty"`
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document extension %q (want .toml or .json)", filepath.Ext(path))
}

// ParseFormat validates a format name such as a Content-Type suffix or a
// query parameter.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTOML, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", s)
}

// Read decodes a document from r. Read does not close r.
func Read(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode toml")
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if doc.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no root element")
	}
	if doc.Width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidWidth, "document width must not be negative: %d", doc.Width)
	}
	return &doc, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte, format Format) (*Document, error) {
	return Read(bytes.NewReader(data), format)
}

// ReadFile reads and decodes the document at path, choosing the format from
// the file extension.
func ReadFile(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported document format %q", format)
}
