package instance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Instance is the on-disk YAML description of one mTSP problem: node
// coordinates and/or an explicit cost matrix, plus the solve parameters.
// Zero-valued parameters defer to the mtsp defaults.
type Instance struct {
	Name    string `yaml:"name"`
	Comment string `yaml:"comment,omitempty"`

	Coordinates [][]float64 `yaml:"coordinates,omitempty"`
	Costs       [][]float64 `yaml:"costs,omitempty"`

	Salesmen  int `yaml:"salesmen"`
	MinCities int `yaml:"min_cities,omitempty"`
	MaxCities int `yaml:"max_cities,omitempty"`
}

// CostMatrix returns the explicit cost matrix when present, otherwise the
// Euclidean distances over the coordinates.
//
// Errors: ErrBadInstance when neither is present or the explicit matrix is
// not square; ErrRaggedNodes from the distance computation.
func (in *Instance) CostMatrix() ([][]float64, error) {
	if len(in.Costs) > 0 {
		var i int
		for i = 0; i < len(in.Costs); i++ {
			if len(in.Costs[i]) != len(in.Costs) {
				return nil, ErrBadInstance
			}
		}

		return in.Costs, nil
	}
	if len(in.Coordinates) > 0 {
		return Distances(in.Coordinates)
	}

	return nil, ErrBadInstance
}

// Load reads and decodes an instance file.
func Load(path string) (*Instance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}

	var in Instance
	if err = yaml.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("instance: decode %s: %w", path, err)
	}
	if len(in.Coordinates) == 0 && len(in.Costs) == 0 {
		return nil, ErrBadInstance
	}

	return &in, nil
}

// Save encodes the instance to YAML and writes it to path.
func Save(path string, in *Instance) error {
	if in == nil || (len(in.Coordinates) == 0 && len(in.Costs) == 0) {
		return ErrBadInstance
	}
	raw, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("instance: encode %s: %w", path, err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("instance: write %s: %w", path, err)
	}

	return nil
}
