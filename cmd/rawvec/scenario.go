package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Element types the CLI knows how to generate.
const (
	ElemInt64   = "int64"
	ElemFloat64 = "float64"
	ElemSample  = "sample"
)

// Run describes a single trace.
type Run struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
	Elem  string `yaml:"elem"`
}

// Scenario is a list of runs loaded from YAML.
type Scenario struct {
	Runs []Run `yaml:"runs"`
}

func (r Run) validate() error {
	if r.Count < 0 {
		return fmt.Errorf("run %s: count must be >= 0, got %d", r.Name, r.Count)
	}
	switch r.Elem {
	case ElemInt64, ElemFloat64, ElemSample:
		return nil
	default:
		return fmt.Errorf("run %s: unknown element type %q", r.Name, r.Elem)
	}
}

// LoadScenario reads and validates a scenario file. Runs without a name
// are numbered, runs without an element type push int64.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Scenario{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(s.Runs) == 0 {
		return nil, errors.New("scenario has no runs")
	}

	for i := range s.Runs {
		r := &s.Runs[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("run-%d", i+1)
		}
		if r.Elem == "" {
			r.Elem = ElemInt64
		}
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newScenarioCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every trace listed in a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			a.logger.Info("loaded scenario", zap.String("file", args[0]), zap.Int("runs", len(s.Runs)))

			reps := make([]Report, 0, len(s.Runs))
			for _, r := range s.Runs {
				rep, err := runTrace(a.logger, r)
				if err != nil {
					return err
				}
				reps = append(reps, rep)
			}
			return writeReports(cmd.OutOrStdout(), reps)
		},
	}
}
