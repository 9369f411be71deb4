package parser

import (
	"fmt"
	"strings"
)

// AstPrinter renders expressions and statements as parenthesized
// s-expressions, mostly for tests and debugging.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *AstPrinter) VisitExprBinary(expr *ExprBinary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitExprGrouping implements ExprVisitor.
func (p *AstPrinter) VisitExprGrouping(expr *ExprGrouping) any {
	return p.parenthesize("group", expr.Expression)
}

// VisitExprLiteral implements ExprVisitor.
func (p *AstPrinter) VisitExprLiteral(expr *ExprLiteral) any {
	if expr.Value.Literal == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value.Literal)
}

// VisitExprUnary implements ExprVisitor.
func (p *AstPrinter) VisitExprUnary(expr *ExprUnary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

// VisitExprVariable implements ExprVisitor.
func (p *AstPrinter) VisitExprVariable(expr *ExprVariable) any {
	return expr.Name.Lexeme
}

// VisitStmtExpression implements StmtVisitor.
func (p *AstPrinter) VisitStmtExpression(stmt *StmtExpression) any {
	return p.parenthesize(";", stmt.Expression)
}

// VisitStmtPrint implements StmtVisitor.
func (p *AstPrinter) VisitStmtPrint(stmt *StmtPrint) any {
	return p.parenthesize("print", stmt.Expression)
}

// VisitStmtVar implements StmtVisitor.
func (p *AstPrinter) VisitStmtVar(stmt *StmtVar) any {
	if stmt.Initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.Name.Lexeme)
	}
	return fmt.Sprintf("(var %s %s)", stmt.Name.Lexeme, p.Print(stmt.Initializer))
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	return p.asStr(stmt.Accept(p))
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ ExprVisitor = (*AstPrinter)(nil)
var _ StmtVisitor = (*AstPrinter)(nil)
