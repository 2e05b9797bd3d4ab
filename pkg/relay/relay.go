package relay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound reports that no usable netcat binary could be located.
var ErrNotFound = errors.New("netcat binary not found")

// candidatePaths are the well-known locations checked before falling back
// to a PATH lookup.
var candidatePaths = []string{
	"/usr/bin/nc",
	"/bin/nc",
	"/usr/local/bin/nc",
	"/sbin/nc",
}

// Locate resolves the real netcat binary. A non-empty configured path must
// point to an executable file; there is no fallback past an explicit
// setting. With no configured path, the well-known locations are tried in
// order, then PATH.
func Locate(configured string) (string, error) {
	if configured != "" {
		info, err := os.Stat(configured)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		if !isExecutable(info) {
			return "", fmt.Errorf("%w: %s is not an executable file", ErrNotFound, configured)
		}
		return configured, nil
	}

	for _, candidate := range candidatePaths {
		if info, err := os.Stat(candidate); err == nil && isExecutable(info) {
			return candidate, nil
		}
	}

	if path, err := exec.LookPath("nc"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: tried %s and PATH (set NC_REAL to your nc binary)",
		ErrNotFound, strings.Join(candidatePaths, ", "))
}

func isExecutable(info os.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}

// Result is the captured outcome of one netcat run: stdout and stderr
// concatenated in the order produced, plus the exit status.
type Result struct {
	Output   string
	ExitCode int
}

// Runner executes the real netcat binary.
type Runner struct {
	Path  string
	Stdin io.Reader
}

// NewRunner wires a runner to the resolved binary. The child inherits the
// wrapper's stdin so piped data reaches netcat.
func NewRunner(path string) *Runner {
	return &Runner{
		Path:  path,
		Stdin: os.Stdin,
	}
}

// Run executes netcat with the arguments unmodified and in order, blocking
// without a timeout until the child exits. A non-zero exit from netcat is
// not an error; only a failure to start the process is.
func (r *Runner) Run(args []string) (Result, error) {
	cmd := exec.Command(r.Path, args...)
	cmd.Stdin = r.Stdin

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Output: string(output), ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, fmt.Errorf("failed to run %s: %w", r.Path, err)
	}

	return Result{Output: string(output)}, nil
}

// CommandLine renders the full command line that Run executes, for display
// and prompting. Tokens containing whitespace are single-quoted so argument
// boundaries survive the join.
func (r *Runner) CommandLine(args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteToken(r.Path))
	for _, arg := range args {
		parts = append(parts, quoteToken(arg))
	}
	return strings.Join(parts, " ")
}

func quoteToken(tok string) string {
	if tok == "" {
		return "''"
	}
	if !strings.ContainsAny(tok, " \t\n") {
		return tok
	}
	return "'" + strings.ReplaceAll(tok, "'", `'\''`) + "'"
}
