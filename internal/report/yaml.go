// internal/report/yaml.go
package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML routes through JSON first so the payloads' json tags name the
// YAML keys too; core types carry only json tags.
func writeYAML(w io.Writer, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

func init() { Register(FormatYAML, writeYAML) }
