package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a flat dotted-key style map from a YAML file. File
// keys go through the same validation as any other override, so an
// unrecognized key fails the load. Callback keys (generator.*,
// layout.*) cannot be expressed in a file.
func LoadFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style file: %w", err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing style file: %w", err)
	}
	// Validate eagerly so a bad file is reported against the file, not
	// against a later draw call.
	if _, err := Resolve(nil, raw); err != nil {
		return nil, err
	}
	return raw, nil
}
