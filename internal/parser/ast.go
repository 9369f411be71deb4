package parser

import "github.com/lox-lang/lox/internal/token"

// ExprVisitor is called back once per expression node kind.
type ExprVisitor interface {
	VisitExprLiteral(expr *ExprLiteral) any
	VisitExprGrouping(expr *ExprGrouping) any
	VisitExprUnary(expr *ExprUnary) any
	VisitExprBinary(expr *ExprBinary) any
	VisitExprVariable(expr *ExprVariable) any
}

// StmtVisitor is called back once per statement node kind.
type StmtVisitor interface {
	VisitStmtExpression(stmt *StmtExpression) any
	VisitStmtPrint(stmt *StmtPrint) any
	VisitStmtVar(stmt *StmtVar) any
}

type Expr interface {
	Accept(v ExprVisitor) any
}

type Stmt interface {
	Accept(v StmtVisitor) any
}

// ExprLiteral carries the token whose literal slot holds the value.
type ExprLiteral struct {
	Value *token.Token
}

func (e *ExprLiteral) Accept(v ExprVisitor) any {
	return v.VisitExprLiteral(e)
}

type ExprGrouping struct {
	Expression Expr
}

func (e *ExprGrouping) Accept(v ExprVisitor) any {
	return v.VisitExprGrouping(e)
}

// ExprUnary holds its operator token for runtime diagnostics.
// Operator is one of MINUS, BANG.
type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

func (e *ExprUnary) Accept(v ExprVisitor) any {
	return v.VisitExprUnary(e)
}

// ExprBinary holds its operator token for runtime diagnostics. Operator is
// one of PLUS, MINUS, STAR, SLASH, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL,
// EQUAL_EQUAL, BANG_EQUAL.
type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func (e *ExprBinary) Accept(v ExprVisitor) any {
	return v.VisitExprBinary(e)
}

// ExprVariable holds the IDENTIFIER token naming the variable.
type ExprVariable struct {
	Name *token.Token
}

func (e *ExprVariable) Accept(v ExprVisitor) any {
	return v.VisitExprVariable(e)
}

type StmtExpression struct {
	Expression Expr
}

func (s *StmtExpression) Accept(v StmtVisitor) any {
	return v.VisitStmtExpression(s)
}

type StmtPrint struct {
	Expression Expr
}

func (s *StmtPrint) Accept(v StmtVisitor) any {
	return v.VisitStmtPrint(s)
}

// StmtVar declares a variable. Initializer is nil when the declaration has
// no "=" clause; the binding then becomes nil at runtime.
type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

func (s *StmtVar) Accept(v StmtVisitor) any {
	return v.VisitStmtVar(s)
}

var _ Expr = (*ExprLiteral)(nil)
var _ Expr = (*ExprGrouping)(nil)
var _ Expr = (*ExprUnary)(nil)
var _ Expr = (*ExprBinary)(nil)
var _ Expr = (*ExprVariable)(nil)
var _ Stmt = (*StmtExpression)(nil)
var _ Stmt = (*StmtPrint)(nil)
var _ Stmt = (*StmtVar)(nil)
