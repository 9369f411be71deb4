package interpreter

import (
	"fmt"
	"math"

	"github.com/lox-lang/lox/internal/loxerrors"
	"github.com/lox-lang/lox/internal/parser"
	"github.com/lox-lang/lox/internal/token"
)

type Interpreter interface {
	// Interpret executes the given statements in program order against the
	// interpreter's environment. Returns the printed form of the last
	// statement's value (the REPL echo) and an error if any.
	//
	// Not thread safe.
	// Resets the error state on each call; the environment persists across
	// calls so a REPL can keep its bindings.
	Interpret(statements []parser.Stmt) (string, error)
}

type interpreter struct {
	opts *interpreterOpts
	env  *environment
	err  error

	// at is the most recently visited token, used to give wrapped host
	// panics a coordinate.
	at *token.Token
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{opts: opts, env: opts.env}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(statements []parser.Stmt) (value string, err error) {
	i.reset()
	defer func() {
		if r := recover(); r != nil {
			value, err = "", loxerrors.NewRuntimeError(i.at, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	var last any
	for _, stmt := range statements {
		last = i.execute(stmt)
		if i.hasErr() {
			return "", i.err
		}
	}

	return stringify(last), nil
}

// VisitStmtExpression implements parser.StmtVisitor.
func (i *interpreter) VisitStmtExpression(stmt *parser.StmtExpression) any {
	return i.evaluate(stmt.Expression)
}

// VisitStmtPrint implements parser.StmtVisitor.
func (i *interpreter) VisitStmtPrint(stmt *parser.StmtPrint) any {
	value := i.evaluate(stmt.Expression)
	if i.hasErr() {
		return nil
	}

	fmt.Fprintln(i.opts.stdout, stringify(value))
	return nil
}

// VisitStmtVar implements parser.StmtVisitor.
func (i *interpreter) VisitStmtVar(stmt *parser.StmtVar) any {
	i.at = stmt.Name

	var value any
	if stmt.Initializer != nil {
		value = i.evaluate(stmt.Initializer)
		if i.hasErr() {
			return nil
		}
	}

	i.env.Define(stmt.Name.Lexeme, value)
	return nil
}

// VisitExprLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitExprLiteral(expr *parser.ExprLiteral) any {
	return expr.Value.Literal
}

// VisitExprGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitExprGrouping(expr *parser.ExprGrouping) any {
	return i.evaluate(expr.Expression)
}

// VisitExprUnary implements parser.ExprVisitor.
func (i *interpreter) VisitExprUnary(expr *parser.ExprUnary) any {
	right := i.evaluate(expr.Right)
	if i.hasErr() {
		return nil
	}

	i.at = expr.Operator
	switch expr.Operator.Type {
	case token.MINUS:
		if ok := i.checkNumberOperand(expr.Operator, right); !ok {
			return nil
		}
		return -right.(float64)
	case token.BANG:
		return !isTruthy(right)
	}

	return i.unreachable()
}

// VisitExprBinary implements parser.ExprVisitor. The left operand is
// evaluated before the right.
func (i *interpreter) VisitExprBinary(expr *parser.ExprBinary) any {
	left := i.evaluate(expr.Left)
	if i.hasErr() {
		return nil
	}
	right := i.evaluate(expr.Right)
	if i.hasErr() {
		return nil
	}

	i.at = expr.Operator
	switch expr.Operator.Type {
	case token.PLUS:
		if isString(left) || isString(right) {
			return stringify(left) + stringify(right)
		}
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) + right.(float64)
	case token.MINUS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) - right.(float64)
	case token.STAR:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) * right.(float64)
	case token.SLASH:
		// IEEE-754 division: zero divisors produce ±Inf or NaN.
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) / right.(float64)
	case token.GREATER:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) > right.(float64)
	case token.GREATER_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) >= right.(float64)
	case token.LESS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) < right.(float64)
	case token.LESS_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(float64) <= right.(float64)
	case token.EQUAL_EQUAL:
		return isEqual(left, right)
	case token.BANG_EQUAL:
		return !isEqual(left, right)
	}

	return i.unreachable()
}

// VisitExprVariable implements parser.ExprVisitor.
func (i *interpreter) VisitExprVariable(expr *parser.ExprVariable) any {
	i.at = expr.Name

	value, err := i.env.Get(expr.Name)
	if err != nil {
		i.err = err
		return nil
	}
	return value
}

func (i *interpreter) execute(stmt parser.Stmt) any {
	if i.hasErr() {
		return nil
	}

	return stmt.Accept(i)
}

func (i *interpreter) evaluate(expr parser.Expr) any {
	if i.hasErr() {
		return nil
	}

	return expr.Accept(i)
}

// checkNumberOperand rejects non-numbers and NaN inputs.
func (i *interpreter) checkNumberOperand(tok *token.Token, val any) bool {
	if !isNumber(val) {
		i.reportError(tok, loxerrors.ErrRuntimeOperandMustBeNumber)
	}

	return !i.hasErr()
}

// checkNumberOperands rejects non-numbers and NaN inputs.
func (i *interpreter) checkNumberOperands(tok *token.Token, left, right any) bool {
	if !isNumber(left) || !isNumber(right) {
		i.reportError(tok, loxerrors.ErrRuntimeOperandsMustBeNumbers)
	}

	return !i.hasErr()
}

func isNumber(val any) bool {
	n, ok := val.(float64)
	return ok && !math.IsNaN(n)
}

func isString(val any) bool {
	_, ok := val.(string)
	return ok
}

func (i *interpreter) reportError(tok *token.Token, cause error) any {
	i.err = loxerrors.NewRuntimeError(tok, cause)
	return nil
}

func (i *interpreter) hasErr() bool {
	return i.err != nil
}

func (i *interpreter) reset() {
	i.err = nil
	i.at = nil
}

func (i *interpreter) unreachable() any {
	panic("unreachable")
}

var _ parser.ExprVisitor = (*interpreter)(nil)
var _ parser.StmtVisitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
