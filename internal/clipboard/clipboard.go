// Package clipboard provides write access to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard not supported")

// Copier copies text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to [Copier].
type CopierFunc func(text string) error

// Copy calls f(text).
func (f CopierFunc) Copy(text string) error { return f(text) }

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service.
func NewService() *Service {
	return &Service{}
}

// Copy writes text to the system clipboard.
func (s *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w on %s", ErrUnsupported, runtime.GOOS)
	}
	return clipboard.WriteAll(text)
}

var (
	_ Copier = (*Service)(nil)
	_ Copier = CopierFunc(nil)
)
