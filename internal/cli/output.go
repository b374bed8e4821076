package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeResult prints v as indented JSON, or calls text for the text format
func writeResult(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		return nil
	}
	return text(w)
}
