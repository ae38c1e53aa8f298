package internal

type stmt interface {
	accept(stmtVisitor) R
}

type stmtVisitor interface {
	visitExprStmt(stmt *exprStmt) R
	visitPrintStmt(stmt *printStmt) R
	visitVarStmt(stmt *varStmt) R
}

type exprStmt struct {
	expression expr
}

func (s *exprStmt) accept(visitor stmtVisitor) R {
	return visitor.visitExprStmt(s)
}

type printStmt struct {
	keyword    *token
	expression expr
}

func (s *printStmt) accept(visitor stmtVisitor) R {
	return visitor.visitPrintStmt(s)
}

type varStmt struct {
	name        *token
	initializer expr
}

func (s *varStmt) accept(visitor stmtVisitor) R {
	return visitor.visitVarStmt(s)
}
