package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			reportPanic(os.Stderr, r, debug.Stack())
			exit(2)
		}
	}()

	Execute()
}

func reportPanic(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "sortbench: internal error: %v\n\n%s\n", r, stack)
	fmt.Fprintln(w, "CSV reports in --out-dir may hold only the rows written before the failure.")
}
