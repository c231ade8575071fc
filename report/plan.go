package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan is the YAML-driven configuration for the `report` subcommand:
// one input graph plus a list of analyses to run against it, each with
// its own grouping/subsetting/threshold parameters. This is the Go
// counterpart of the Rust original's AnalysisParameter list read from
// a YAML config file rather than repeated CLI flags.
type Plan struct {
	Graph     string         `yaml:"graph"`
	OutputDir string         `yaml:"output_dir"`
	Analyses  []AnalysisSpec `yaml:"analyses"`
}

// AnalysisSpec names one analysis to run (matching a cmd/pangaea
// subcommand name: hist, growth, histgrowth, table, similarity,
// node-distribution) and its parameters. ordered-histgrowth is not
// accepted as a report analysis type.
type AnalysisSpec struct {
	Type     string            `yaml:"type"`
	Name     string            `yaml:"name,omitempty"`
	Count    string            `yaml:"count,omitempty"` // "node" (default), "edge", or "bp"
	Grouping string            `yaml:"grouping,omitempty"`
	Subset   string            `yaml:"subset,omitempty"`
	Exclude  string            `yaml:"exclude,omitempty"`
	Coverage string            `yaml:"coverage,omitempty"`
	Quorum   string            `yaml:"quorum,omitempty"`
	Extra    map[string]string `yaml:"extra,omitempty"`
}

// LoadPlan parses a YAML report plan from path.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlan, err)
	}
	if p.Graph == "" {
		return nil, fmt.Errorf("%w: plan has no graph", ErrMalformedPlan)
	}

	return &p, nil
}
