// failskip prints the failing subtests of one test suite as a Go skip-list.
//
// Usage:
//
//	failskip <TestSuiteName> <ErrorLogFile>
//	go test ./... 2>&1 | failskip TestQueriesSimple -
//
// Every "--- FAIL: <TestSuiteName>/.../<leaf>" line in the log contributes
// its leaf segment, in order, to a []string literal printed on stdout:
//
//	[]string{
//		"case1",
//		"case3",
//	}
//
// Exit codes: 0 on success (including no matches), 1 when the log cannot be
// read, 2 on a usage error or a suite name that is not valid UTF-8.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/failskip/internal/version"
	"github.com/dkoosis/failskip/pkg/failscan"
	"github.com/dkoosis/failskip/pkg/render"
)

const progName = "failskip"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	noColor := os.Getenv("NO_COLOR")
	if len(args) != 2 {
		printUsage(stdout, render.ThemeFor(isTTYWriter(stdout), noColor))
		return 2
	}
	suite, path := args[0], args[1]

	names, err := failscan.ExtractFile(suite, path, stdin)
	if err != nil {
		theme := render.ThemeFor(isTTYWriter(stderr), noColor)
		fmt.Fprintln(stderr, theme.Error.Render(fmt.Sprintf("%s: %s %v", progName, theme.Icons.Fail, err)))
		if errors.Is(err, failscan.ErrInvalidSuite) {
			return 2
		}
		return 1
	}

	r := render.NewLiteral(render.ThemeFor(isTTYWriter(stdout), noColor))
	fmt.Fprintln(stdout, r.Render(suite, names))
	return 0
}

func printUsage(w io.Writer, theme render.Theme) {
	fmt.Fprintln(w, theme.Bold.Render(fmt.Sprintf("%s %s", progName, version.String())))
	fmt.Fprintf(w, "Usage: %s <TestSuiteName> <ErrorLogFile>\n", progName)
	fmt.Fprintf(w, "\nExample: %s TestQueriesSimple ./errors.txt\n", progName)
	fmt.Fprintln(w, theme.Muted.Render(fmt.Sprintf("Use %q as ErrorLogFile to read the log from stdin.", failscan.StdinPath)))
}

// isTTYWriter reports whether w is a terminal. Tests replace it to exercise
// the styled path.
var isTTYWriter = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
