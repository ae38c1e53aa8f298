package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
)

type parseError struct {
	err  error
	line int
}

type runtimeError struct {
	err   error
	token *token
}

// interpreterState stores everything one run accumulates: the source,
// the token stream, the parsed statements and any diagnostics.
type interpreterState struct {
	errors       []parseError
	runtimeError *runtimeError
	source       string
	tokens       []token
	stmts        []stmt
	logger       IPrinter
}

func newInterpreterState(source string, logger IPrinter) *interpreterState {
	return &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: logger,
	}
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
	})
}

// fatalError records the error and aborts the current statement.
// The parser recovers at the declaration boundary and synchronizes.
func (s *interpreterState) fatalError(err error, line int) {
	s.setError(err, line)
	panic(err)
}

// runtimeErr records the error and aborts the run. Recovered once,
// in interpret.
func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &runtimeError{
		err:   err,
		token: tk,
	}
	panic(err)
}

// Valid returns true if no diagnostics were recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors prints all recorded diagnostics, one line attribution per
// error. Returns true if anything was printed.
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, color.Red(fmt.Sprintf("Error on line %d", e.line)))
		s.logger.Fprintln(os.Stderr, "\t"+e.err.Error())
	}
	return !s.Valid()
}

// Lexer errors
var errIllegalChar = errors.New("Unexpected character")
var errUnclosedString = errors.New("Unterminated string")
var errUnclosedComment = errors.New("Unterminated block comment")

// Parser errors
var errExpectedExpression = errors.New("Expect expression")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedIdentifier = errors.New("Expect variable name")
var errExpectedSemicolon = errors.New("Expect ';' after expression")
var errExpectedSemicolonVar = errors.New("Expect ';' after variable declaration")
var errExpectedSemicolonPrint = errors.New("Expect ';' after value")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyNumber = errors.New("Operand must be a number")
var errOnlyNumbers = errors.New("Operands must be numbers")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings")
