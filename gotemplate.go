package secc

import (
	"fmt"
	"io"
)

func writeGoTemplate(w io.Writer, tmplStr string, b Block) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(w, b); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
