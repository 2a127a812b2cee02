package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a chart spec from a YAML file.
func Load(path string) (*ChartSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec ChartSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a chart spec from a project directory.
// It looks for chart.yaml in the given directory.
func LoadProject(projectDir string) (*ChartSpec, error) {
	specPath := filepath.Join(projectDir, "chart.yaml")
	return Load(specPath)
}
