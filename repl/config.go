package repl

import (
	"errors"
	"github.com/tarcisiozf/tkv/repl/internal/conf"
	"io"
	"os"
)

type Option func(conf.Config) (conf.Config, error)

var defaultConfig = conf.Config{
	Input:  os.Stdin,
	Output: os.Stdout,
}

func WithInput(input io.Reader) Option {
	return func(config conf.Config) (conf.Config, error) {
		if input == nil {
			return config, errors.New("input cannot be nil")
		}
		config.Input = input
		return config, nil
	}
}

func WithOutput(output io.Writer) Option {
	return func(config conf.Config) (conf.Config, error) {
		if output == nil {
			return config, errors.New("output cannot be nil")
		}
		config.Output = output
		return config, nil
	}
}

// WithPrompt writes the given prompt before every read. Meant for
// interactive sessions only; piped input stays prompt free.
func WithPrompt(prompt string) Option {
	return func(config conf.Config) (conf.Config, error) {
		config.Prompt = prompt
		return config, nil
	}
}

func WithTrace() Option {
	return func(config conf.Config) (conf.Config, error) {
		config.Trace = true
		return config, nil
	}
}

func validateConfig(config conf.Config) (conf.Config, error) {
	if config.Input == nil {
		return config, errors.New("input is required")
	}
	if config.Output == nil {
		return config, errors.New("output is required")
	}
	return config, nil
}
