package secc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Format represents an output format for a rendered [Block].
type Format string

const (
	Plain Format = "plain"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders the block using a Go
// text/template followed by a newline.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings; the template is parsed up front so a bad
// template is reported before anything is rendered.
func ParseFormat(s string) (Format, error) {
	if tmpl, ok := strings.CutPrefix(s, goTemplatePrefix); ok {
		if _, err := parseTemplate(tmpl); err != nil {
			return "", err
		}
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write encodes b in format f and writes it to w.
func Write(w io.Writer, f Format, b Block) error {
	switch f {
	case Plain:
		return writePlain(w, b)
	case JSON:
		return writeJSON(w, b)
	case YAML:
		return writeYAML(w, b)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, b)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal encodes b in format f and returns the bytes.
func Marshal(f Format, b Block) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return t, nil
}
