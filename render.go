package secc

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	ellipsis    = "..."
	slashPrefix = "// "
	slashSuffix = " //"
)

// Block is a rendered section comment.
type Block struct {
	Top    string `json:"top" yaml:"top"`
	Middle string `json:"middle" yaml:"middle"`
	Bottom string `json:"bottom" yaml:"bottom"`
	Width  int    `json:"width" yaml:"width"`
	Char   string `json:"char" yaml:"char"`
	Style  Style  `json:"style" yaml:"style"`
}

// Lines returns the border, middle and border lines in order.
func (b Block) Lines() []string {
	return []string{b.Top, b.Middle, b.Bottom}
}

// String joins the lines with newlines. There is no trailing newline.
func (b Block) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Columns returns the terminal display width of the widest line. It is
// larger than Width when the text or border holds wide characters.
func (b Block) Columns() int {
	n := 0
	for _, line := range b.Lines() {
		if w := runewidth.StringWidth(line); w > n {
			n = w
		}
	}
	return n
}

// Generate renders a section comment and returns it as three lines joined
// by newlines. It fails only for an unknown style; width and char are
// taken as given (see [Request.Validate]).
func Generate(text string, width int, char rune, style Style) (string, error) {
	b, err := Render(Request{Text: text, Width: width, Char: char, Style: style})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// Render renders req into a Block. Every line of the result is exactly
// req.Width characters long. A negative width renders as zero.
func Render(req Request) (Block, error) {
	width := max(req.Width, 0)
	fill := string(req.Char)
	text := []rune(req.Text)

	var middle string
	switch req.Style {
	case Center:
		text = truncate(text, width-4, width-7)
		left := floorHalf(width - len(text) - 2)
		right := width - left - len(text) - 2
		middle = repeat(fill, left) + " " + string(text) + " " + repeat(fill, right)
	case Left:
		text = truncate(text, width-6, width-9)
		middle = slashPrefix + string(text) + " " + repeat(fill, width-len(text)-4)
	case Right:
		text = truncate(text, width-6, width-9)
		middle = repeat(fill, width-len(text)-4) + " " + string(text) + slashSuffix
	default:
		return Block{}, fmt.Errorf("%w: %q", ErrUnknownStyle, req.Style)
	}

	border := repeat(fill, width)
	return Block{
		Top:    border,
		Middle: fit(middle, width, fill),
		Bottom: border,
		Width:  width,
		Char:   fill,
		Style:  req.Style,
	}, nil
}

// truncate cuts text to keep characters plus an ellipsis when it is longer
// than limit.
func truncate(text []rune, limit, keep int) []rune {
	if len(text) <= limit {
		return text
	}
	keep = min(max(keep, 0), len(text))
	out := make([]rune, 0, keep+len(ellipsis))
	out = append(out, text[:keep]...)
	return append(out, []rune(ellipsis)...)
}

// fit pads line on the right with fill, or cuts it, to exactly width
// characters.
func fit(line string, width int, fill string) string {
	width = max(width, 0)
	n := utf8.RuneCountInString(line)
	switch {
	case n < width:
		return line + repeat(fill, width-n)
	case n > width:
		return string([]rune(line)[:width])
	default:
		return line
	}
}

// repeat is strings.Repeat with negative counts treated as zero.
func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func floorHalf(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}
	return n / 2
}
