package conf

import "io"

type Config struct {
	Input  io.Reader
	Output io.Writer
	Prompt string
	Trace  bool
}
