package interpreter

import (
	"io"
	"os"
)

type interpreterOpts struct {
	env    *environment
	stdout io.Writer
}

var defaultInterpreterOpts = interpreterOpts{
	stdout: os.Stdout,
}

type InterpreterOption func(*interpreterOpts)

func WithEnvironment(env *environment) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.env = env
	}
}

func WithStdout(stdout io.Writer) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.stdout = stdout
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := defaultInterpreterOpts
	for _, opt := range options {
		opt(&opts)
	}

	if opts.env == nil {
		opts.env = NewEnvironment()
	}

	return &opts
}
