package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON prints v as two-space indented JSON followed by a newline.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
