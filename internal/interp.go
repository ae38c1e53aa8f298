package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// EnableDebugLog turns on stage-level tracing of the pipeline
func EnableDebugLog() {
	log.SetLevel(logrus.DebugLevel)
}

// Interpreter holds the environment of a session. The environment
// survives across Run calls, so a REPL accumulates definitions.
type Interpreter struct {
	env     *env
	printer IPrinter

	// PrintAST makes Run print the parsed tree instead of executing it
	PrintAST bool
}

// NewInterpreter creates a session writing all output through p
func NewInterpreter(p IPrinter) *Interpreter {
	return &Interpreter{
		env:     newEnv(nil),
		printer: p,
	}
}

// Run scans, parses and executes source. Lexical and syntax
// diagnostics are reported and contained: the surviving statements
// still execute. The first runtime error aborts the rest of the run.
// Returns true when the run produced no diagnostics and no runtime
// error.
func (i *Interpreter) Run(source string) bool {
	state := newInterpreterState(source, i.printer)
	i.env.state = state

	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	log.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"errors": len(state.errors),
	}).Debug("scan complete")

	parser := &parser{
		state: state,
	}
	parser.parse()
	log.WithFields(logrus.Fields{
		"statements": len(state.stmts),
		"errors":     len(state.errors),
	}).Debug("parse complete")

	hadErrors := state.PrintErrors()

	if i.PrintAST {
		state.PrintTree()
		return !hadErrors
	}

	exec := &execute{
		state: state,
		env:   i.env,
	}
	ok := exec.interpret()
	if !ok {
		log.WithFields(logrus.Fields{
			"line": state.runtimeError.token.line,
		}).Debug("run aborted by runtime error")
	}

	return ok && !hadErrors
}

// HadRuntimeError reports whether the last Run aborted on a runtime
// error rather than on diagnostics.
func (i *Interpreter) HadRuntimeError() bool {
	return i.env.state != nil && i.env.state.runtimeError != nil
}

// RunSourceWithPrinter runs source on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	return NewInterpreter(p).Run(source)
}
