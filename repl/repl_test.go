package repl_test

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarcisiozf/tkv/engine"
	"github.com/tarcisiozf/tkv/repl"
	"github.com/tarcisiozf/tkv/repl/test"
	"strings"
	"testing"
	"testing/iotest"
)

func TestRepl_Scenarios(t *testing.T) {
	t.Parallel()

	scenarios, err := test.LoadScenarios("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("Error loading scenarios: %v", err)
	}

	for _, scenario := range scenarios {
		t.Run(scenario.Name, func(t *testing.T) {
			t.Parallel()

			got, err := test.RunScenario(scenario)
			if err != nil {
				t.Fatalf("Error running scenario: %v", err)
			}
			if err := scenario.Check(got); err != nil {
				t.Fatalf("Error checking output: %v", err)
			}
		})
	}
}

func TestRepl_ScenariosInParallel(t *testing.T) {
	t.Parallel()

	scenarios, err := test.LoadScenarios("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("Error loading scenarios: %v", err)
	}

	if err := test.RunAll(scenarios); err != nil {
		t.Fatalf("Error running scenarios in parallel: %v", err)
	}
}

func TestRepl_EndOfInputWithoutEnd(t *testing.T) {
	t.Parallel()

	got, err := test.RunLines([]string{"SET a 1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"SET a 1"}, got)
}

func TestRepl_Prompt(t *testing.T) {
	t.Parallel()

	input := strings.NewReader("SET a 1\nEND\n")
	var output bytes.Buffer

	r, err := repl.NewRepl(
		engine.NewDbEngine(),
		repl.WithInput(input),
		repl.WithOutput(&output),
		repl.WithPrompt("tkv> "),
	)
	require.NoError(t, err)
	require.NoError(t, r.Run())

	assert.Equal(t, "tkv> SET a 1\ntkv> END\n", output.String())
}

func TestRepl_InputFailure(t *testing.T) {
	t.Parallel()

	readErr := errors.New("broken pipe")
	r, err := repl.NewRepl(
		engine.NewDbEngine(),
		repl.WithInput(iotest.ErrReader(readErr)),
		repl.WithOutput(&bytes.Buffer{}),
	)
	require.NoError(t, err)

	err = r.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestRepl_Counters(t *testing.T) {
	t.Parallel()

	input := strings.NewReader("SET a 1\nBOGUS\nGET a\nSET b\n")
	var output bytes.Buffer

	r, err := repl.NewRepl(engine.NewDbEngine(), repl.WithInput(input), repl.WithOutput(&output))
	require.NoError(t, err)
	require.NoError(t, r.Run())

	assert.Equal(t, 2, r.Processed())
	assert.Equal(t, 2, r.Rejected())
}

func TestNewRepl_Validation(t *testing.T) {
	t.Parallel()

	_, err := repl.NewRepl(nil)
	assert.EqualError(t, err, "engine is required")

	_, err = repl.NewRepl(engine.NewDbEngine(), repl.WithInput(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input cannot be nil")

	_, err = repl.NewRepl(engine.NewDbEngine(), repl.WithOutput(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output cannot be nil")
}
