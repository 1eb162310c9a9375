package latency

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TimingConfig holds the cycle cost of each instruction class. Values are
// rough estimates for a modern out-of-order core.
type TimingConfig struct {
	// OtherLatency prices instructions outside every other class, including
	// hints and encodings the decoders do not implement. Default: 1 cycle.
	OtherLatency uint64 `json:"other_latency" yaml:"other_latency"`

	// ALULatency is the execution latency for basic ALU operations
	// (ADD, SUB, AND, OR, XOR, shifts and moves). Default: 1 cycle.
	ALULatency uint64 `json:"alu_latency" yaml:"alu_latency"`

	// MultiplyLatency is the latency for integer multiply operations.
	// Default: 3 cycles.
	MultiplyLatency uint64 `json:"multiply_latency" yaml:"multiply_latency"`

	// DivideLatency is the typical latency for integer divide operations.
	// Default: 12 cycles.
	DivideLatency uint64 `json:"divide_latency" yaml:"divide_latency"`

	// BranchLatency is the base execution latency for branch instructions.
	// This does not include misprediction penalty. Default: 1 cycle.
	BranchLatency uint64 `json:"branch_latency" yaml:"branch_latency"`

	// BranchMispredictPenalty is the additional cycles lost on a branch
	// misprediction. Zero disables the penalty. Default: 12 cycles.
	BranchMispredictPenalty uint64 `json:"branch_mispredict_penalty" yaml:"branch_mispredict_penalty"`

	// LoadLatency is the latency for load operations assuming L1 cache hit.
	// Default: 4 cycles.
	LoadLatency uint64 `json:"load_latency" yaml:"load_latency"`

	// StoreLatency is the latency for store operations. Default: 1 cycle.
	StoreLatency uint64 `json:"store_latency" yaml:"store_latency"`

	// SystemLatency prices system calls, breakpoints, barriers and CSR
	// accesses. Default: 1 cycle (handling is external).
	SystemLatency uint64 `json:"system_latency" yaml:"system_latency"`

	// FloatLatency covers floating-point arithmetic, conversion and moves.
	// Default: 3 cycles.
	FloatLatency uint64 `json:"float_latency" yaml:"float_latency"`

	// FloatDivideLatency covers floating-point divide and square root.
	// Default: 10 cycles.
	FloatDivideLatency uint64 `json:"float_divide_latency" yaml:"float_divide_latency"`
}

// DefaultTimingConfig returns a TimingConfig with the default values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		OtherLatency:            1,
		ALULatency:              1,
		MultiplyLatency:         3,
		DivideLatency:           12,
		BranchLatency:           1,
		BranchMispredictPenalty: 12,
		LoadLatency:             4,
		StoreLatency:            1,
		SystemLatency:           1,
		FloatLatency:            3,
		FloatDivideLatency:      10,
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig loads a TimingConfig from a JSON file, or from YAML when the
// file name ends in .yaml or .yml. Fields the file omits keep their
// defaults.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to path, as YAML or JSON by extension.
func (c *TimingConfig) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values are valid (> 0). The
// misprediction penalty may be zero.
func (c *TimingConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value uint64
	}{
		{"other_latency", c.OtherLatency},
		{"alu_latency", c.ALULatency},
		{"multiply_latency", c.MultiplyLatency},
		{"divide_latency", c.DivideLatency},
		{"branch_latency", c.BranchLatency},
		{"load_latency", c.LoadLatency},
		{"store_latency", c.StoreLatency},
		{"system_latency", c.SystemLatency},
		{"float_latency", c.FloatLatency},
		{"float_divide_latency", c.FloatDivideLatency},
	} {
		if f.value == 0 {
			return fmt.Errorf("%s must be > 0", f.name)
		}
	}
	return nil
}

// Clone returns a copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
