package main

import (
	"fmt"
	"github.com/tarcisiozf/tkv/engine"
	"github.com/tarcisiozf/tkv/internal/env"
	"github.com/tarcisiozf/tkv/internal/flows"
	"github.com/tarcisiozf/tkv/repl"
	"golang.org/x/term"
	"io"
	"log"
	"os"
)

type app struct {
	scriptPath string
	input      io.Reader
	inputFile  *os.File
	options    []repl.Option
	session    *repl.Repl
}

func main() {
	a := &app{}
	err := flows.Pipeline(
		a.parseArgs,
		a.resolveInput,
		a.buildSession,
		a.run,
	)
	a.cleanup()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

func (a *app) parseArgs() error {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: tkv [script]")
		return fmt.Errorf("expected at most one argument, got %d", len(args))
	}
	if len(args) == 1 {
		a.scriptPath = args[0]
	}
	return nil
}

func (a *app) resolveInput() error {
	if a.scriptPath != "" {
		file, err := os.Open(a.scriptPath)
		if err != nil {
			return fmt.Errorf("failed to open script %s: %w", a.scriptPath, err)
		}
		a.inputFile = file
		a.input = file
		return nil
	}

	a.input = os.Stdin
	if term.IsTerminal(int(os.Stdin.Fd())) {
		a.options = append(a.options, repl.WithPrompt(env.Env("TKV_PROMPT", "tkv> ")))
	}
	return nil
}

func (a *app) buildSession() error {
	if env.Bool("TKV_TRACE", false) {
		a.options = append(a.options, repl.WithTrace())
	}
	a.options = append(a.options, repl.WithInput(a.input))

	session, err := repl.NewRepl(engine.NewDbEngine(), a.options...)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	a.session = session
	return nil
}

func (a *app) run() error {
	return a.session.Run()
}

func (a *app) cleanup() {
	if a.inputFile == nil {
		return
	}
	if err := a.inputFile.Close(); err != nil {
		log.Printf("[ERROR] Failed to close script file: %v", err)
	}
}
