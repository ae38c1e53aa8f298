package internal

import (
	"fmt"
	"io"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func checkExpression(t *testing.T, exp string, result string) {
	t.Helper()
	source := "print " + exp + ";"
	tp := &testPrinter{}
	RunSourceWithPrinter(source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %q instead of %q",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\nprint " + resultVar + ";"
	tp := &testPrinter{}
	RunSourceWithPrinter(source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %q instead of %q",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func checkRuntimeErrorMsg(t *testing.T, source string, errorMsg string, lexeme string, line int) {
	t.Helper()
	result := fmt.Sprintf("Runtime Error on line %d\n\t%s: '%s'\n", line, errorMsg, lexeme)

	tp := &testPrinter{}
	if RunSourceWithPrinter(source, tp) {
		t.Errorf("Source should have failed:\n%s", source)
	}
	if tp.printed != result {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----",
			source,
			result,
			tp.printed,
		)
	}
}

func TestArithmetic(t *testing.T) {
	// Number
	checkExpression(t, "1", "1")

	// Negative
	checkExpression(t, "-1", "-1")

	// Add numbers
	checkExpression(t, "1 + 2 + 3", "6")

	// Subtract numbers
	checkExpression(t, "8 - 2", "6")

	// Multiply numbers
	checkExpression(t, "2 * 3", "6")

	// Divide numbers
	checkExpression(t, "12 / 2", "6")

	// Fractions survive
	checkExpression(t, "5 / 2", "2.5")

	// Multiplication binds tighter than addition
	checkExpression(t, "1 + 2 * 3", "7")

	// Division binds tighter than subtraction
	checkExpression(t, "10 - 6 / 2", "7")

	// Subtraction is left-associative
	checkExpression(t, "8 - 4 - 2", "2")

	// Division is left-associative
	checkExpression(t, "16 / 4 / 2", "2")

	// Grouping overrides precedence
	checkExpression(t, "(1 + 2) * 3", "9")

	// Unary minus nests
	checkExpression(t, "--1", "1")

	// Unary minus against grouping
	checkExpression(t, "-(1 + 2)", "-3")
}

func TestDivisionByZero(t *testing.T) {
	// Float semantics, not a runtime error
	checkExpression(t, "1 / 0", "+Inf")
	checkExpression(t, "-1 / 0", "-Inf")
	checkExpression(t, "0 / 0", "NaN")
}

func TestComparison(t *testing.T) {
	checkExpression(t, "1 < 2", "true")
	checkExpression(t, "2 < 2", "false")
	checkExpression(t, "2 <= 2", "true")
	checkExpression(t, "3 > 2", "true")
	checkExpression(t, "2 >= 3", "false")

	// Term binds tighter than comparison
	checkExpression(t, "1 + 1 < 1 + 2", "true")
}

func TestEquality(t *testing.T) {
	checkExpression(t, "1 == 1", "true")
	checkExpression(t, "1 == 2", "false")
	checkExpression(t, "1 != 2", "true")
	checkExpression(t, "\"a\" == \"a\"", "true")
	checkExpression(t, "\"a\" == \"b\"", "false")
	checkExpression(t, "true == true", "true")
	checkExpression(t, "nil == nil", "true")

	// Comparison binds tighter than equality
	checkExpression(t, "1 < 2 == true", "true")

	// Mismatched shapes are unequal, never a type error
	checkExpression(t, "1 == \"1\"", "false")
	checkExpression(t, "nil == false", "false")
	checkExpression(t, "0 == false", "false")
	checkExpression(t, "1 != \"1\"", "true")
}

func TestTruthiness(t *testing.T) {
	checkExpression(t, "!nil", "true")
	checkExpression(t, "!false", "true")
	checkExpression(t, "!true", "false")

	// Zero and the empty string are truthy
	checkExpression(t, "!0", "false")
	checkExpression(t, "!\"\"", "false")

	checkExpression(t, "!!nil", "false")
}

func TestStrings(t *testing.T) {
	checkExpression(t, "\"foo\"", "foo")

	// Concatenation
	checkExpression(t, "\"foo\" + \"bar\"", "foobar")
	checkExpression(t, "\"a\" + \"b\" + \"c\"", "abc")

	// No number/string coercion
	checkRuntimeErrorMsg(t, "print \"foo\" + 1;", "Operands must be two numbers or two strings", "+", 1)
	checkRuntimeErrorMsg(t, "print 1 + \"foo\";", "Operands must be two numbers or two strings", "+", 1)
}

func TestPrintForms(t *testing.T) {
	// Nil prints as the empty string
	checkExpression(t, "nil", "")

	checkExpression(t, "true", "true")
	checkExpression(t, "false", "false")

	// Integral numbers print without a trailing .0
	checkExpression(t, "3.0", "3")
	checkExpression(t, "2.5", "2.5")
}

func TestVariables(t *testing.T) {
	checkStatements(t, "var x = 10;", "x", "10")

	// Declaration without initializer leaves nil
	checkStatements(t, "var x;", "x", "")

	// Re-declaration overwrites
	checkStatements(t, "var x = 1; var x = 2;", "x", "2")

	// Initializer may reference earlier bindings
	checkStatements(t, "var a = 2; var b = a * 3;", "b", "6")

	checkStatements(t, "var msg = \"hi \" + \"there\";", "msg", "hi there")
}

func TestUndefinedVariable(t *testing.T) {
	checkRuntimeErrorMsg(t, "print y;", "Undefined variable", "y", 1)
	checkRuntimeErrorMsg(t, "var x = 1;\nprint x + y;", "Undefined variable", "y", 2)
}

func TestTypeMismatch(t *testing.T) {
	checkRuntimeErrorMsg(t, "print -\"foo\";", "Operand must be a number", "-", 1)
	checkRuntimeErrorMsg(t, "print -nil;", "Operand must be a number", "-", 1)
	checkRuntimeErrorMsg(t, "print true + 1;", "Operands must be two numbers or two strings", "+", 1)
	checkRuntimeErrorMsg(t, "print true * 1;", "Operands must be numbers", "*", 1)
	checkRuntimeErrorMsg(t, "print \"a\" < \"b\";", "Operands must be numbers", "<", 1)
	checkRuntimeErrorMsg(t, "print nil - 1;", "Operands must be numbers", "-", 1)
}

func TestRuntimeErrorAbortsRun(t *testing.T) {
	tp := &testPrinter{}
	ok := RunSourceWithPrinter("print 1;\nprint true + 1;\nprint 2;", tp)
	if ok {
		t.Error("run should have failed")
	}
	expected := "1\n" + "Runtime Error on line 2\n\tOperands must be two numbers or two strings: '+'\n"
	if tp.printed != expected {
		t.Errorf("printed %q, expected %q", tp.printed, expected)
	}
}

func TestBothOperandsEvaluate(t *testing.T) {
	// Left evaluates before right, and the right side always
	// evaluates: the undefined variable on the right is reached
	checkRuntimeErrorMsg(t, "print 1 == zzz;", "Undefined variable", "zzz", 1)
}

func TestEnvironmentPersistsAcrossRuns(t *testing.T) {
	tp := &testPrinter{}
	interp := NewInterpreter(tp)
	if !interp.Run("var x = 10;") {
		t.Fatal("declaration should succeed")
	}
	if !interp.Run("print x;") {
		t.Fatal("lookup should succeed")
	}
	if !tp.Equals("10") {
		t.Errorf("printed %q, expected %q", tp.printed, "10\n")
	}
}
