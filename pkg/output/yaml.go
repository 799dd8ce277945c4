package output

import "gopkg.in/yaml.v3"

// Reuse the JSON document for YAML output
func encodeYAML(doc *jsonOutput) ([]byte, error) {
	return yaml.Marshal(doc)
}
