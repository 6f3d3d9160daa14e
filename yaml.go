package secc

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, b Block) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(len(indent))
	if err := enc.Encode(b); err != nil {
		return err
	}
	return enc.Close()
}
