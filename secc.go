package secc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidWidth      = errors.New("invalid width")
	ErrInvalidChar       = errors.New("invalid character")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Width limits, and the defaults applied by [DefaultRequest] and the secc
// command.
const (
	MinWidth     = 20
	MaxWidth     = 10000
	DefaultWidth = 100
	DefaultChar  = '/'
	DefaultStyle = Center
)

// Style controls where the label sits on the middle line.
type Style string

const (
	Center Style = "center"
	Left   Style = "left"
	Right  Style = "right"
)

var styles = []Style{Center, Left, Right}

// String returns the style name.
func (s Style) String() string { return string(s) }

// Styles returns all supported styles.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle parses a style name. Matching is exact.
func ParseStyle(s string) (Style, error) {
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrUnknownStyle, s, styleList())
}

// ParseWidth parses a line width and enforces [MinWidth] and [MaxWidth].
func ParseWidth(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinWidth || n > MaxWidth {
		return 0, fmt.Errorf("%w %q: %s", ErrInvalidWidth, s, widthRule)
	}
	return n, nil
}

// ParseChar parses a border character. s must hold exactly one character.
func ParseChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w %q: must be a single character", ErrInvalidChar, s)
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("%w %q: not valid UTF-8", ErrInvalidChar, s)
	}
	if r == 0 {
		return 0, fmt.Errorf("%w %q: must not be NUL", ErrInvalidChar, s)
	}
	return r, nil
}

var widthRule = fmt.Sprintf("must be a number between %d and %d characters", MinWidth, MaxWidth)

func styleList() string {
	names := make([]string, len(styles))
	for i, st := range styles {
		names[i] = string(st)
	}
	return strings.Join(names, ", ")
}

// Request describes one section comment.
type Request struct {
	Text  string
	Width int
	Char  rune
	Style Style
}

// DefaultRequest returns a request for text with the default width,
// border character and style.
func DefaultRequest(text string) Request {
	return Request{
		Text:  text,
		Width: DefaultWidth,
		Char:  DefaultChar,
		Style: DefaultStyle,
	}
}

// Validate applies the command-line rules to r: width first, then the
// border character, then the style.
func (r Request) Validate() error {
	if r.Width < MinWidth || r.Width > MaxWidth {
		return fmt.Errorf("%w %d: %s", ErrInvalidWidth, r.Width, widthRule)
	}
	if r.Char == 0 || !utf8.ValidRune(r.Char) {
		return fmt.Errorf("%w %q: must be a single character", ErrInvalidChar, r.Char)
	}
	if _, err := ParseStyle(string(r.Style)); err != nil {
		return err
	}
	return nil
}
