package repl

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/tarcisiozf/tkv/engine"
	"github.com/tarcisiozf/tkv/engine/command"
	"github.com/tarcisiozf/tkv/repl/internal/conf"
	"log"
)

const outputPrefix = "> "

// Repl runs the line protocol over one engine: read a line, parse it,
// apply it, print per the output contract. Valid lines are echoed back
// verbatim before their output; rejected lines print only the error.
type Repl struct {
	engine    *engine.DbEngine
	config    conf.Config
	scanner   *bufio.Scanner
	out       *bufio.Writer
	processed int
	rejected  int
}

func NewRepl(db *engine.DbEngine, options ...Option) (r *Repl, err error) {
	if db == nil {
		return nil, errors.New("engine is required")
	}

	config := defaultConfig
	for _, option := range options {
		config, err = option(config)
		if err != nil {
			return nil, fmt.Errorf("failed to apply config option: %w", err)
		}
	}

	config, err = validateConfig(config)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Repl{
		engine:  db,
		config:  config,
		scanner: bufio.NewScanner(config.Input),
		out:     bufio.NewWriter(config.Output),
	}, nil
}

// Run consumes the input until END, end of input, or a read failure.
// Only the read failure is an error; END and exhaustion are the two
// normal ways for a session to finish.
func (r *Repl) Run() error {
	for {
		if r.config.Prompt != "" {
			_, _ = r.out.WriteString(r.config.Prompt)
		}
		if err := r.out.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
		if !r.scanner.Scan() {
			break
		}

		r.process(r.scanner.Text())

		if r.engine.State().IsTerminated() {
			return r.finish()
		}
	}

	if err := r.scanner.Err(); err != nil {
		_ = r.out.Flush()
		return fmt.Errorf("failed to read input: %w", err)
	}
	return r.finish()
}

func (r *Repl) process(line string) {
	cmd, err := command.Parse(line)
	if err != nil {
		r.rejected++
		r.writeLine(outputPrefix + err.Error())
		if r.config.Trace {
			log.Printf("[DEBUG] rejected input %q: %v", line, err)
		}
		return
	}

	// echo precedes dispatch, so END still echoes its own line
	r.writeLine(line)

	output, ok := r.engine.Apply(cmd)
	if ok {
		r.writeLine(outputPrefix + output)
	}

	r.processed++
	if r.config.Trace {
		log.Printf("[DEBUG] applied %s (depth=%d, state=%s)", cmd, r.engine.Depth(), r.engine.State())
	}
}

func (r *Repl) finish() error {
	if r.config.Trace {
		log.Printf("[INFO] session finished: %d commands applied, %d lines rejected", r.processed, r.rejected)
	}
	return r.out.Flush()
}

func (r *Repl) writeLine(line string) {
	_, _ = r.out.WriteString(line)
	_ = r.out.WriteByte('\n')
}

func (r *Repl) Processed() int {
	return r.processed
}

func (r *Repl) Rejected() int {
	return r.rejected
}
