package experiments

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Config selects which benchmark problems and objective counts an experiment
// batch covers. It is typically loaded from a YAML file; omitted fields keep
// the standard grid defaults.
type Config struct {
	// Problems lists benchmark names (DTLZ1..DTLZ4).
	Problems []string `json:"problems,omitempty"`
	// Objectives lists objective counts to run each problem at.
	Objectives []int `json:"objectives,omitempty"`
	// Runs per problem/objective cell.
	Runs int `json:"runs,omitempty"`
	// OutputDir receives the results JSON and any plots.
	OutputDir string `json:"outputDir,omitempty"`
	// Parallel enables parallel offspring evaluation inside each run.
	Parallel bool `json:"parallel,omitempty"`
	// Seed makes the per-run seeds reproducible; 0 derives them from the
	// clock.
	Seed uint64 `json:"seed,omitempty"`
	// Plots renders the final front of each cell's first run for 3-objective
	// cells.
	Plots bool `json:"plots,omitempty"`
}

// DefaultConfig returns the full standard experiment grid: DTLZ1-4 at 3, 5,
// 8, 10 and 15 objectives, 20 runs per cell.
func DefaultConfig() Config {
	return Config{
		Problems:   []string{"DTLZ1", "DTLZ2", "DTLZ3", "DTLZ4"},
		Objectives: []int{3, 5, 8, 10, 15},
		Runs:       20,
		OutputDir:  "results",
	}
}

// LoadConfig reads a YAML experiment configuration, filling unset fields from
// the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading experiment config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing experiment config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("experiment config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks that every requested cell has a known generation budget.
func (c Config) Validate() error {
	if len(c.Problems) == 0 {
		return fmt.Errorf("no problems configured")
	}
	if len(c.Objectives) == 0 {
		return fmt.Errorf("no objective counts configured")
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	for _, name := range c.Problems {
		budgets, ok := generationTable[name]
		if !ok {
			return fmt.Errorf("unknown problem %q", name)
		}
		for _, m := range c.Objectives {
			if _, ok := budgets[m]; !ok {
				return fmt.Errorf("no generation budget for %s with %d objectives", name, m)
			}
		}
	}
	return nil
}
