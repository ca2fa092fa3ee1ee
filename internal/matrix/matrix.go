package matrix

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Matrix is a parsed build matrix file.
type Matrix struct {
	Builds []Entry `yaml:"builds"`
}

// Entry pairs one Blender release with the Python versions to build it for.
type Entry struct {
	Blender string   `yaml:"blender"`
	Python  []string `yaml:"python"`
}

// Pair is one expanded (blender, python) build combination.
type Pair struct {
	Blender string
	Python  string
}

// Pairs expands the matrix into individual build combinations, preserving
// file order and dropping duplicates.
func (m *Matrix) Pairs() []Pair {
	seen := make(map[Pair]bool)
	var pairs []Pair
	for _, entry := range m.Builds {
		for _, python := range entry.Python {
			p := Pair{Blender: entry.Blender, Python: python}
			if seen[p] {
				continue
			}
			seen[p] = true
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Load reads a matrix file, validates it against the embedded schema, and
// parses it. Validation issues are returned as an error listing each problem.
func Load(path string) (*Matrix, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating matrix %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("matrix %s is invalid:\n%s", path, result.IssueSummary())
	}

	var m Matrix
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing matrix %s: %w", path, err)
	}
	return &m, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
