package internal

import (
	"fmt"
	"os"
)

// PrintTree prints the parsed program in parenthesized prefix form,
// one statement per line. Debugging aid behind the -ast flag.
func (s *interpreterState) PrintTree() {
	out := ""
	for _, stmt := range s.stmts {
		out += stmt.accept(stringVisitor{}).(string) + "\n"
	}
	s.logger.Fprintf(os.Stdout, "%s", out)
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.expression.accept(v))
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if str, isString := expr.value.(slateString); isString {
		return "\"" + string(str) + "\""
	}
	if expr.value == nil {
		return "nil"
	}
	return printString(expr.value)
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}
