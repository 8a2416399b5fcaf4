package config

func preset(family string, order int, a, b float64, interval []float64, backend string) *Config {
	cfg := DefaultConfig()
	cfg.Family = family
	cfg.Order = order
	cfg.Alpha = a
	cfg.Beta = b
	cfg.Interval = interval
	if backend != "" {
		cfg.Solver.Backend = backend
	}
	return cfg
}

var Presets = map[string]map[string]*Config{
	"legendre": {
		"small": preset("legendre", 5, 0, 0, nil, ""),
		"large": preset("legendre", 64, 0, 0, nil, ""),
		"unit":  preset("legendre", 8, 0, 0, []float64{0, 1}, ""),
	},
	"chebyshev1": {
		"small": preset("chebyshev1", 5, 0, 0, nil, ""),
		"large": preset("chebyshev1", 128, 0, 0, nil, ""),
	},
	"chebyshev2": {
		"small": preset("chebyshev2", 5, 0, 0, nil, ""),
	},
	"hermite": {
		"small":  preset("hermite", 6, 0, 0, nil, ""),
		"lapack": preset("hermite", 40, 0, 0, nil, "lapack"),
	},
	"jacobi": {
		"arcsine": preset("jacobi", 8, -0.5, -0.5, nil, ""),
		"beta22":  preset("jacobi", 8, 1, 1, nil, ""),
		"skewed":  preset("jacobi", 10, 2.5, -0.5, nil, ""),
	},
	"laguerre": {
		"exp":    preset("laguerre", 8, 0, 0, nil, ""),
		"gamma2": preset("laguerre", 12, 1, 0, nil, ""),
	},
}

func GetPreset(family, name string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
