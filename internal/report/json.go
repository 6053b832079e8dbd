// internal/report/json.go
package report

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func init() { Register(FormatJSON, writeJSON) }
