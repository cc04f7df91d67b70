package test

import (
	"bytes"
	"fmt"
	"github.com/tarcisiozf/tkv/engine"
	"github.com/tarcisiozf/tkv/internal/faults"
	"github.com/tarcisiozf/tkv/repl"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// Scenario is one scripted session: input lines fed to a fresh engine,
// compared line for line against the expected output.
type Scenario struct {
	Name   string   `yaml:"name"`
	Input  []string `yaml:"input"`
	Output []string `yaml:"output"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios in %s", path)
	}
	return file.Scenarios, nil
}

func RunScenario(scenario Scenario, options ...repl.Option) ([]string, error) {
	input := strings.NewReader(strings.Join(scenario.Input, "\n") + "\n")
	var output bytes.Buffer

	defaultOptions := []repl.Option{
		repl.WithInput(input),
		repl.WithOutput(&output),
	}

	r, err := repl.NewRepl(engine.NewDbEngine(), append(defaultOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create repl: %w", err)
	}
	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("failed to run session: %w", err)
	}

	return splitLines(output.String()), nil
}

func RunLines(lines []string, options ...repl.Option) ([]string, error) {
	return RunScenario(Scenario{Input: lines}, options...)
}

func (s Scenario) Check(got []string) error {
	if len(got) != len(s.Output) {
		return fmt.Errorf("expected %d output lines, got %d: %q", len(s.Output), len(got), got)
	}
	for i, line := range s.Output {
		if got[i] != line {
			return fmt.Errorf("output line %d mismatch: expected %q, got %q", i, line, got[i])
		}
	}
	return nil
}

// RunAll executes every scenario on its own engine, in parallel, and
// reports all failures rather than the first one.
func RunAll(scenarios []Scenario) error {
	failures := make(chan error, len(scenarios))

	eg := errgroup.Group{}
	for _, scenario := range scenarios {
		eg.Go(func() error {
			got, err := RunScenario(scenario)
			if err != nil {
				failures <- fmt.Errorf("scenario %q: %w", scenario.Name, err)
				return nil
			}
			if err := scenario.Check(got); err != nil {
				failures <- fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			return nil
		})
	}
	_ = eg.Wait()
	close(failures)

	el := faults.ErrList{}
	for err := range failures {
		el.Add(err)
	}
	return el.Err()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
