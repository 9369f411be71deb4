package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/lox-lang/lox/internal/interpreter"
	"github.com/lox-lang/lox/internal/loxerrors"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/runner"
	"github.com/lox-lang/lox/internal/scanner"
)

const exitUsage = 64

type LoxApp struct {
	interpreter interpreter.Interpreter
	reporter    loxerrors.ErrReporter
}

func NewLoxApp() *LoxApp {
	return &LoxApp{
		interpreter: interpreter.NewInterpreter(),
		reporter:    loxerrors.NewErrReporter(os.Stderr),
	}
}

func (app *LoxApp) Main(args []string) int {
	switch {
	case len(args) == 0:
		if err := app.runPrompt(); err != nil {
			app.reporter.ReportPanic(err)
			return exitUsage
		}
		return 0
	case len(args) == 2 && args[0] == "-e":
		return runner.Run(args[1]).ExitCode()
	case len(args) == 1:
		return app.runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [-e source | script]")
		return exitUsage
	}
}

func (app *LoxApp) runFile(scriptPath string) int {
	bytes, err := os.ReadFile(scriptPath)
	if err != nil {
		app.reporter.ReportPanic(err)
		return exitUsage
	}

	return runner.Run(string(bytes)).ExitCode()
}

// runPrompt reads lines until EOF. The interpreter and its environment
// persist across lines; each line's last value is echoed back.
func (app *LoxApp) runPrompt() error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}

		if out, err := app.run(line); err != nil {
			app.reporter.ReportError(err)
		} else {
			fmt.Println(out)
		}
	}
}

func (app *LoxApp) run(input string) (string, error) {
	tokens, err := scanner.NewScanner(input).Scan()
	if err != nil {
		return "", err
	}

	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return "", err
	}

	return app.interpreter.Interpret(statements)
}
