package secc

import (
	"fmt"
	"io"
)

func writePlain(w io.Writer, b Block) error {
	_, err := fmt.Fprintln(w, b.String())
	return err
}
