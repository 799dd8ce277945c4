package output

import (
	"encoding/json"
	"time"
)

// jsonNode represents a node in JSON output
type jsonNode struct {
	Name       string      `json:"name" yaml:"name"`
	Path       string      `json:"path" yaml:"path"`
	Type       string      `json:"type" yaml:"type"`
	Icon       string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Target     string      `json:"target,omitempty" yaml:"target,omitempty"`
	Executable bool        `json:"executable,omitempty" yaml:"executable,omitempty"`
	Truncated  int         `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Children   []*jsonNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// jsonOutput represents the complete document, shared by JSON and YAML
type jsonOutput struct {
	Root       *jsonNode `json:"root" yaml:"root"`
	Statistics *stats    `json:"statistics" yaml:"statistics"`
	Generated  time.Time `json:"generated" yaml:"generated"`
}

func encodeJSON(doc *jsonOutput) ([]byte, error) {
	bytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(bytes, '\n'), nil
}
