package internal

import (
	"os"
)

// execute walks the statement list in order. The first runtime error
// aborts the rest of the run, there is no statement level recovery.
type execute struct {
	state *interpreterState

	env *env
}

func (e *execute) interpret() bool {
	defer func() {
		if r := recover(); r != nil {
			runErr := e.state.runtimeError
			if runErr == nil {
				panic(r)
			}
			e.state.logger.Fprintf(
				os.Stderr,
				"Runtime Error on line %d\n\t%s: '%s'\n",
				runErr.token.line,
				runErr.err.Error(),
				runErr.token.lexeme,
			)
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
	return e.state.runtimeError == nil
}

func (e *execute) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(e)
}

func (e *execute) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	e.state.logger.Println(printString(value))
	return nil
}

func (e *execute) visitVarStmt(stmt *varStmt) R {
	val := stmt.initializer.accept(e)
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *execute) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *execute) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *execute) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

func (e *execute) visitUnaryExpr(expr *unaryExpr) R {
	right := expr.right.accept(e)
	switch expr.operator.token {
	case tkBang:
		return slateBool(!truthy(right))
	case tkMinus:
		number := e.operandNumber(expr.operator, right)
		return -number
	}
	return nil
}

func (e *execute) visitBinaryExpr(expr *binaryExpr) R {
	// Both sides always evaluate, left before right
	left := expr.left.accept(e)
	right := expr.right.accept(e)

	switch expr.operator.token {
	case tkEqualEqual:
		return valueEquals(left, right)
	case tkBangEqual:
		return !valueEquals(left, right)
	case tkPlus:
		leftNum, leftIsNum := left.(slateNumber)
		rightNum, rightIsNum := right.(slateNumber)
		if leftIsNum && rightIsNum {
			return leftNum + rightNum
		}
		leftStr, leftIsStr := left.(slateString)
		rightStr, rightIsStr := right.(slateString)
		if leftIsStr && rightIsStr {
			return leftStr + rightStr
		}
		e.state.runtimeErr(errNumbersOrStrings, expr.operator)
	case tkMinus:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return leftNum - rightNum
	case tkStar:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return leftNum * rightNum
	case tkSlash:
		// Division follows float64 semantics, x/0 yields ±Inf or NaN
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return leftNum / rightNum
	case tkGreater:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return slateBool(leftNum > rightNum)
	case tkGreaterEqual:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return slateBool(leftNum >= rightNum)
	case tkLess:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return slateBool(leftNum < rightNum)
	case tkLessEqual:
		leftNum, rightNum := e.operandNumbers(expr.operator, left, right)
		return slateBool(leftNum <= rightNum)
	}
	return nil
}

func (e *execute) operandNumber(operator *token, value interface{}) slateNumber {
	number, ok := value.(slateNumber)
	if !ok {
		e.state.runtimeErr(errOnlyNumber, operator)
	}
	return number
}

func (e *execute) operandNumbers(operator *token, left, right interface{}) (slateNumber, slateNumber) {
	leftNum, leftOk := left.(slateNumber)
	rightNum, rightOk := right.(slateNumber)
	if !leftOk || !rightOk {
		e.state.runtimeErr(errOnlyNumbers, operator)
	}
	return leftNum, rightNum
}
