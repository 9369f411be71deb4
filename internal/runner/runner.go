// Package runner wires the pipeline: scanner → parser → evaluator. Parse
// failures keep the evaluator from running; runtime failures halt at the
// offending statement. Diagnostics go to the configured stderr, program
// output to the configured stdout.
package runner

import (
	"io"
	"os"

	"github.com/lox-lang/lox/internal/interpreter"
	"github.com/lox-lang/lox/internal/loxerrors"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/scanner"
)

// Status is the outcome of a Run invocation.
type Status int

const (
	StatusOK Status = iota
	StatusCompileError
	StatusRuntimeError
)

// ExitCode maps a status to the conventional interpreter exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusCompileError:
		return 65
	case StatusRuntimeError:
		return 70
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCompileError:
		return "compile_error"
	case StatusRuntimeError:
		return "runtime_error"
	}
	return "unknown"
}

type runnerOpts struct {
	stdout io.Writer
	stderr io.Writer
}

type Option func(*runnerOpts)

func WithStdout(stdout io.Writer) Option {
	return func(opts *runnerOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) Option {
	return func(opts *runnerOpts) {
		opts.stderr = stderr
	}
}

// Run executes a source string end to end and reports its status.
func Run(source string, options ...Option) Status {
	opts := &runnerOpts{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range options {
		opt(opts)
	}
	reporter := loxerrors.NewErrReporter(opts.stderr)

	tokens, err := scanner.NewScanner(source).Scan()
	if err != nil {
		reporter.ReportError(err)
		return StatusCompileError
	}

	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		reporter.ReportError(err)
		return StatusCompileError
	}

	eval := interpreter.NewInterpreter(interpreter.WithStdout(opts.stdout))
	if _, err := eval.Interpret(statements); err != nil {
		reporter.ReportError(err)
		return StatusRuntimeError
	}

	return StatusOK
}
