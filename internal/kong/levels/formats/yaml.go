package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	Name   string `yaml:"name"`
	Author string `yaml:"author,omitempty"`
	Layout string `yaml:"layout"`
}

// ParseYAML parses a YAML level file. The layout is a block scalar in the
// text grid format.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows := trimBlank(strings.Split(strings.ReplaceAll(yl.Layout, "\r", ""), "\n"))
	if len(rows) == 0 {
		return Level{}, ErrEmpty
	}

	return Level{
		Name:   yl.Name,
		Author: yl.Author,
		Rows:   rows,
	}, nil
}
