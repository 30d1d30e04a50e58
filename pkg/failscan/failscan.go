// Package failscan extracts failing subtest names from go test output.
//
// A failure marker is the "--- FAIL: " prefix go test prints in front of a
// failing test's full path. Only markers below the requested suite are
// collected, and only the leaf segment of each path is kept:
//
//	--- FAIL: TestQueriesSimple/groupA/case1 (0.00s)  ->  case1
package failscan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"
)

// FailMarker prefixes every failing test line in go test output.
const FailMarker = "--- FAIL: "

// StdinPath makes ReadLog read the log from stdin instead of a file.
const StdinPath = "-"

// FileAccessError reports a log file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("reading error log %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// segment matches one path segment: no slash and no whitespace, counting \v,
// the ASCII separators \x1c-\x1f, NEL and Unicode separators as whitespace.
const segment = `[^\s\v\x{1c}-\x{1f}\x{85}\p{Z}/]`

// ErrInvalidSuite reports a suite name that cannot be turned into a pattern.
var ErrInvalidSuite = errors.New("invalid test suite name")

// Pattern compiles the failure pattern for suite. The suite name is matched
// literally; capture group 1 holds the leaf segment. Suite names that are not
// valid UTF-8 return ErrInvalidSuite.
func Pattern(suite string) (*regexp.Regexp, error) {
	if !utf8.ValidString(suite) {
		return nil, fmt.Errorf("%w %q: not valid UTF-8", ErrInvalidSuite, suite)
	}
	re, err := regexp.Compile(regexp.QuoteMeta(FailMarker+suite+"/") + `(?:` + segment + `*/)*(` + segment + `+)`)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSuite, suite, err)
	}
	return re, nil
}

// Extract returns the leaf segment of every failure marker under suite, in
// order of appearance. Duplicates are kept. Returns nil when nothing matches.
func Extract(suite, log string) ([]string, error) {
	re, err := Pattern(suite)
	if err != nil {
		return nil, err
	}
	found := re.FindAllStringSubmatch(log, -1)
	if len(found) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(found))
	for _, m := range found {
		names = append(names, m[1])
	}
	return names, nil
}

// ReadLog loads the whole log at path. StdinPath reads from stdin.
func ReadLog(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &FileAccessError{Path: path, Err: err}
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	return string(data), nil
}

// ExtractFile reads the log at path and extracts the failing subtests of
// suite. The suite name is checked before the log is opened. On error no
// names are returned.
func ExtractFile(suite, path string, stdin io.Reader) ([]string, error) {
	if _, err := Pattern(suite); err != nil {
		return nil, err
	}
	log, err := ReadLog(path, stdin)
	if err != nil {
		return nil, err
	}
	return Extract(suite, log)
}
