package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadgen/internal/quad"
)

// RecursionFile is the YAML form of a caller-supplied recursion:
//
//	alpha: [0, 0, 0]
//	beta:  [2, 0.3333333333333333, 0.26666666666666666]
//	mu0:   2
type RecursionFile struct {
	Alpha []float64 `yaml:"alpha"`
	Beta  []float64 `yaml:"beta"`
	Mu0   float64   `yaml:"mu0"`
}

func LoadRecursion(path string) (quad.Recursion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return quad.Recursion{}, err
	}
	var rf RecursionFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return quad.Recursion{}, err
	}
	rec := quad.Recursion{Alpha: rf.Alpha, Beta: rf.Beta, Mu0: rf.Mu0}
	return rec, rec.Validate()
}

func SaveRecursion(path string, rec quad.Recursion) error {
	data, err := yaml.Marshal(RecursionFile{Alpha: rec.Alpha, Beta: rec.Beta, Mu0: rec.Mu0})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
