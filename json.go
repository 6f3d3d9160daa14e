package secc

import (
	"encoding/json"
	"io"
)

const indent = "  "

func writeJSON(w io.Writer, b Block) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(b)
}
