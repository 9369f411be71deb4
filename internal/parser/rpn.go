package parser

import (
	"fmt"
	"strings"

	"github.com/lox-lang/lox/internal/token"
)

// RPNPrinter renders expressions in reverse polish notation. Unary minus
// prints as "~" to keep it distinct from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *RPNPrinter) VisitExprBinary(expr *ExprBinary) any {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprGrouping implements ExprVisitor.
func (p *RPNPrinter) VisitExprGrouping(expr *ExprGrouping) any {
	return p.reverse("", expr.Expression)
}

// VisitExprLiteral implements ExprVisitor.
func (p *RPNPrinter) VisitExprLiteral(expr *ExprLiteral) any {
	if expr.Value.Literal == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value.Literal)
}

// VisitExprUnary implements ExprVisitor.
func (p *RPNPrinter) VisitExprUnary(expr *ExprUnary) any {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

// VisitExprVariable implements ExprVisitor.
func (p *RPNPrinter) VisitExprVariable(expr *ExprVariable) any {
	return expr.Name.Lexeme
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(p))
}

var _ ExprVisitor = (*RPNPrinter)(nil)
