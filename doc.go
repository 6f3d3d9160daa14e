// Package secc renders section comments: three-line bordered blocks that
// visually separate regions of source code.
//
//	////////////////////////////////////////
//	/////////////// Handlers ///////////////
//	////////////////////////////////////////
//
// The central entry points are [Generate], which returns the block as a
// string, and [Render], which returns a [Block] value. Both are pure: the
// same input always yields the same output.
//
// # Styles
//
// A [Style] places the label on the middle line:
//
//   - [Center] — label centered between border characters, one space on
//     each side; an odd leftover character goes to the right
//   - [Left] — "// " + label + " " followed by border characters
//   - [Right] — border characters followed by " " + label + " //"
//
// Labels that do not fit are cut and end in "...". Every line of a block
// is exactly the requested width, counted in characters. Any other style
// fails with [ErrUnknownStyle].
//
// # Input
//
// [ParseWidth], [ParseChar] and [ParseStyle] turn command-line strings into
// request fields and enforce the same rules as [Request.Validate]: width
// between [MinWidth] and [MaxWidth], a single non-NUL border character,
// and a known style.
//
//	width, err := secc.ParseWidth(flagValue)
//
// # Output
//
// Use [Write] or [Marshal] to encode a block as plain text, JSON, YAML, or
// through a Go [text/template]:
//
//	secc.Write(os.Stdout, secc.JSON, block)
//	secc.Write(os.Stdout, secc.GoTemplate("{{.Middle}}"), block)
//
// [ParseFormat] converts a flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidWidth] — width not a number or outside [MinWidth]..[MaxWidth]
//   - [ErrInvalidChar] — border is not exactly one character
//   - [ErrUnknownStyle] — style is not center, left, or right
//   - [ErrUnsupportedFormat] — unknown output format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package secc
