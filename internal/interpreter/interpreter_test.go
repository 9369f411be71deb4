package interpreter_test

import (
	"strings"
	"testing"

	"github.com/lox-lang/lox/internal/interpreter"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/scanner"
	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name string
		in   string // Input
		eval string // Expected eval
		out  string // Expected output
		err  string // Expected error
	}{
		{name: `simple expression`, in: `1 + 2;`, eval: `3`},
		{name: `grouped`, in: `(1 + 2);`, eval: `3`},
		{name: `nested`, in: `(1 + (2 + 3));`, eval: `6`},
		{name: `precedence asterix`, in: `1 + 2 * 3;`, eval: `7`},
		{name: `precedence slash`, in: `1 + 9 / 3;`, eval: `4`},
		{name: `grouping nested precedence`, in: `((1 + 2) * 3)/2;`, eval: `4.5`},
		{name: `left to right minus`, in: `1 - 2 - 3;`, eval: `-4`},
		{name: `unary minus`, in: `-3;`, eval: `-3`},
		{name: `unary minus grouped`, in: `(1 + 2) * -3;`, eval: `-9`},
		{name: `division by zero`, in: `1 / 0;`, eval: `+Inf`},
		{name: `strings`, in: `"a" + "b";`, eval: `ab`},
		{name: `string number coercion`, in: `"a = " + 1;`, eval: `a = 1`},
		{name: `number string coercion`, in: `1 + "a";`, eval: `1a`},
		{name: `string nil coercion`, in: `"v:" + nil;`, eval: `v:nil`},
		{name: `string bool coercion`, in: `"v:" + true;`, eval: `v:true`},
		{name: `boolean t`, in: `true;`, eval: `true`},
		{name: `boolean f`, in: `false;`, eval: `false`},
		{name: `nil`, in: `nil;`, eval: `nil`},
		{name: `bang`, in: `!false;`, eval: `true`},
		{name: `bang bang`, in: `!!false;`, eval: `false`},
		{name: `bang nil`, in: `!nil;`, eval: `true`},
		{name: `bang zero`, in: `!0;`, eval: `false`},
		{name: `bang empty string`, in: `!"";`, eval: `false`},
		{name: `eqeq number`, in: `1 == 1;`, eval: `true`},
		{name: `eqeq number unequal`, in: `1 == 2;`, eval: `false`},
		{name: `eqeq string`, in: `"a" == "a";`, eval: `true`},
		{name: `eqeq concatenated`, in: `"ab" == "a" + "b";`, eval: `true`},
		{name: `eqeq mixed types`, in: `1 == "1";`, eval: `false`},
		{name: `eqeq nil false`, in: `nil == false;`, eval: `false`},
		{name: `eqeq nil nil`, in: `nil == nil;`, eval: `true`},
		{name: `bangeq number`, in: `1 != 2;`, eval: `true`},
		{name: `bangeq string`, in: `"a" != "a";`, eval: `false`},
		{name: `lt number`, in: `1 < 2;`, eval: `true`},
		{name: `lte number`, in: `1 <= 1;`, eval: `true`},
		{name: `gt number`, in: `2 > 1;`, eval: `true`},
		{name: `gte number`, in: `1 >= 2;`, eval: `false`},
		{name: `print`, in: `print 1 + 2 * 3;`, eval: `nil`, out: "7\n"},
		{name: `print string`, in: `print "a" + "b";`, eval: `nil`, out: "ab\n"},
		{name: `print nil default`, in: `var a; print a;`, eval: `nil`, out: "nil\n"},
		{name: `empty var`, in: `var a;`, eval: `nil`},
		{name: `empty var eval`, in: `var a;a;`, eval: `nil`},
		{name: `var init`, in: `var a = 1;a;`, eval: `1`},
		{name: `var redeclare overwrites`, in: `var a = 1;var a = 2;a;`, eval: `2`},
		{name: `var multiple var math`, in: `var a = 1;var b = 2;a + b;`, eval: `3`},
		{name: `var string concat`, in: "var a = \"Jake\";\nprint \"a = \" + a;", eval: `nil`, out: "a = Jake\n"},
		{name: `program order`, in: `print 1;print 2;print 3;`, eval: `nil`, out: "1\n2\n3\n"},
		{name: `partial output before failure`, in: `print 1;print x;print 2;`, out: "1\n", err: `Undefined variable 'x' at (1:15)`},
		{name: `undefined variable`, in: `print a;`, err: `Undefined variable 'a' at (1:7)`},
		{name: `undefined variable in expr`, in: `1 + b;`, err: `Undefined variable 'b' at (1:5)`},
		{name: `minus string operand`, in: `-"a";`, err: `Operand must be a number at (1:1)`},
		{name: `minus nil operand`, in: `-nil;`, err: `Operand must be a number at (1:1)`},
		{name: `sum bool operands`, in: `true + nil;`, err: `Operands must be numbers at (1:6)`},
		{name: `sub string operand`, in: `0 - "";`, err: `Operands must be numbers at (1:3)`},
		{name: `compare string operand`, in: `"a" < 1;`, err: `Operands must be numbers at (1:5)`},
		{name: `compare nil operand`, in: `nil > nil;`, err: `Operands must be numbers at (1:5)`},
		{name: `nan arithmetic operand`, in: `var x = 0 / 0;x + 1;`, err: `Operands must be numbers at (1:17)`},
		{name: `nan comparison operand`, in: `var x = 0 / 0;x < 1;`, err: `Operands must be numbers at (1:17)`},
		{name: `nan unary operand`, in: `var x = 0 / 0;-x;`, err: `Operand must be a number at (1:15)`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			evalout, stdout, err := evaluate(tt, tc.in)
			if tc.err != "" {
				assert.ErrorContains(tt, err, tc.err)
			} else {
				assert.NoError(tt, err)
				assert.Equal(tt, tc.eval, evalout)
			}
			assert.Equal(tt, tc.out, stdout)
		})
	}
}

func TestInterpretKeepsEnvironmentAcrossCalls(t *testing.T) {
	t.Parallel()

	stdout := strings.Builder{}
	eval := interpreter.NewInterpreter(interpreter.WithStdout(&stdout))

	lines := []string{`var a;`, `a;`, `var a = 5;`, `print a;`}
	expected := []string{`nil`, `nil`, `nil`, `nil`}

	for n, line := range lines {
		out, err := interpretLine(t, eval, line)
		assert.NoError(t, err)
		assert.Equal(t, expected[n], out)
	}
	assert.Equal(t, "5\n", stdout.String())
}

func TestInterpretSharedEnvironment(t *testing.T) {
	t.Parallel()

	env := interpreter.NewEnvironment()
	stdout := strings.Builder{}

	writer := interpreter.NewInterpreter(interpreter.WithEnvironment(env), interpreter.WithStdout(&stdout))
	reader := interpreter.NewInterpreter(interpreter.WithEnvironment(env), interpreter.WithStdout(&stdout))

	_, err := interpretLine(t, writer, `var shared = 42;`)
	assert.NoError(t, err)

	out, err := interpretLine(t, reader, `shared;`)
	assert.NoError(t, err)
	assert.Equal(t, `42`, out)
}

func TestInterpretResetsErrorState(t *testing.T) {
	t.Parallel()

	eval := interpreter.NewInterpreter(interpreter.WithStdout(&strings.Builder{}))

	_, err := interpretLine(t, eval, `print nope;`)
	assert.ErrorContains(t, err, `Undefined variable 'nope'`)

	out, err := interpretLine(t, eval, `1 + 2;`)
	assert.NoError(t, err)
	assert.Equal(t, `3`, out)
}

func evaluate(t *testing.T, script string) (string, string, error) {
	t.Helper()

	stdout := strings.Builder{}
	eval := interpreter.NewInterpreter(interpreter.WithStdout(&stdout))

	svalue, err := interpretLine(t, eval, script)
	return svalue, stdout.String(), err
}

func interpretLine(t *testing.T, eval interpreter.Interpreter, script string) (string, error) {
	t.Helper()

	tokens, err := scanner.NewScanner(script).Scan()
	if err != nil {
		return "", err
	}

	statements, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return "", err
	}

	return eval.Interpret(statements)
}
