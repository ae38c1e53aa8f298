package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"

	"slate/internal"
)

const (
	historyFile = ".slate_history"
	prompt      = "> "
)

// sysexits-style codes: 65 for malformed input, 70 for a runtime error
const (
	exitDataErr  = 65
	exitSoftware = 70
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	printAST := flag.Bool("ast", false, "print the parsed tree instead of executing")
	debug := flag.Bool("debug", false, "trace pipeline stages")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: slate [flags] [/path/to/script.slt]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *debug {
		internal.EnableDebugLog()
	}

	interp := internal.NewInterpreter(stdPrinter{})
	interp.PrintAST = *printAST

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(exitDataErr)
	}

	if flag.NArg() == 1 {
		runFile(interp, flag.Arg(0))
		return
	}

	runPrompt(interp)
}

func runFile(interp *internal.Interpreter, path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !interp.Run(string(b)) {
		if interp.HadRuntimeError() {
			os.Exit(exitSoftware)
		}
		os.Exit(exitDataErr)
	}
}

func runPrompt(interp *internal.Interpreter) {
	fmt.Println(color.Cyan("slate"), "— Ctrl+C clears the line, Ctrl+D exits.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			return
		}
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		interp.Run(line)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
