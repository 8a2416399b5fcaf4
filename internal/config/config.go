package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quadgen/internal/ftn"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/tridiag"
	"github.com/san-kum/quadgen/internal/vandermonde"
)

const (
	DefaultFamily    = "legendre"
	DefaultOrder     = 8
	DefaultBackend   = "ql"
	DefaultFormat    = "table"
	DefaultPrecision = 16
)

type Config struct {
	Family      string            `yaml:"family"`
	Order       int               `yaml:"order"`
	Alpha       float64           `yaml:"alpha"`
	Beta        float64           `yaml:"beta"`
	Interval    []float64         `yaml:"interval,omitempty"`
	Solver      SolverConfig      `yaml:"solver"`
	Vandermonde VandermondeConfig `yaml:"vandermonde"`
	Output      OutputConfig      `yaml:"output"`
	FtnSuffix   string            `yaml:"ftn_suffix"`
}

type SolverConfig struct {
	Backend string `yaml:"backend"`
	MaxIter int    `yaml:"max_iter"`
}

type VandermondeConfig struct {
	MaxCondition float64 `yaml:"max_condition"`
}

type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
}

func DefaultConfig() *Config {
	return &Config{
		Family: DefaultFamily,
		Order:  DefaultOrder,
		Solver: SolverConfig{
			Backend: DefaultBackend,
			MaxIter: tridiag.DefaultMaxIter,
		},
		Vandermonde: VandermondeConfig{
			MaxCondition: vandermonde.DefaultMaxCondition,
		},
		Output: OutputConfig{
			Format:    DefaultFormat,
			Precision: DefaultPrecision,
		},
		FtnSuffix: ftn.DefaultSuffix.String(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetFamily resolves the family name and shape parameters.
func (c *Config) GetFamily() (quad.Family, error) {
	kind, err := quad.ParseKind(c.Family)
	if err != nil {
		return quad.Family{}, err
	}
	f := quad.Family{Kind: kind, A: c.Alpha, B: c.Beta}
	return f, f.Validate()
}

// GetInterval returns the rescale target, if one is configured.
func (c *Config) GetInterval() (lo, hi float64, ok bool) {
	if len(c.Interval) != 2 {
		return 0, 0, false
	}
	return c.Interval[0], c.Interval[1], true
}

func (c *Config) Validate() error {
	if _, err := c.GetFamily(); err != nil {
		return err
	}
	if c.Order <= 0 {
		return quad.Invalid("order", c.Order, "must be positive")
	}
	switch len(c.Interval) {
	case 0:
	case 2:
		if !(c.Interval[0] < c.Interval[1]) {
			return quad.Invalid("interval", c.Interval, "lower bound must be below upper bound")
		}
	default:
		return quad.Invalid("interval", c.Interval, "need exactly two bounds")
	}
	switch c.Solver.Backend {
	case "ql", "lapack":
	default:
		return quad.Invalid("solver.backend", c.Solver.Backend, "want ql or lapack")
	}
	if c.Solver.MaxIter <= 0 {
		return quad.Invalid("solver.max_iter", c.Solver.MaxIter, "must be positive")
	}
	if !(c.Vandermonde.MaxCondition > 0) {
		return quad.Invalid("vandermonde.max_condition", c.Vandermonde.MaxCondition, "must be positive")
	}
	switch c.Output.Format {
	case "table", "csv", "json":
	default:
		return quad.Invalid("output.format", c.Output.Format, "want table, csv or json")
	}
	if c.Output.Precision < 1 || c.Output.Precision > 17 {
		return quad.Invalid("output.precision", c.Output.Precision, "must be in 1..17")
	}
	if _, err := ftn.ParseSuffix(c.FtnSuffix); err != nil {
		return quad.Invalid("ftn_suffix", c.FtnSuffix, err.Error())
	}
	return nil
}
