package login

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aryankumar/oclogin/internal/util"
)

// DefaultBinary is the login tool used when none is configured
const DefaultBinary = "oc"

// Invoker establishes a session against a cluster by delegating to a login tool
type Invoker interface {
	// Invoke logs in to url as username. Control does not meaningfully return
	// to the caller on success.
	Invoke(ctx context.Context, url, username string) error
}

// Args returns the login tool arguments for a cluster, without the program name
func Args(url, username string) []string {
	return []string{"login", url, "-u", username}
}

// ExitError reports that the login tool ran but exited with a non-zero status
type ExitError struct {
	Command string
	Code    int
}

// Error implements the error interface
func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// SpawnInvoker runs the login tool as a child process and waits for it
type SpawnInvoker struct {
	binary string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewSpawnInvoker creates an invoker wired to the process's own stdio
func NewSpawnInvoker(binary string) *SpawnInvoker {
	if binary == "" {
		binary = DefaultBinary
	}
	return &SpawnInvoker{
		binary: binary,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithIO overrides the streams handed to the login tool
func (s *SpawnInvoker) WithIO(stdin io.Reader, stdout, stderr io.Writer) *SpawnInvoker {
	s.stdin = stdin
	s.stdout = stdout
	s.stderr = stderr
	return s
}

// Invoke runs the login tool to completion
func (s *SpawnInvoker) Invoke(ctx context.Context, url, username string) error {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		return util.NewInvocationError(s.binary, err)
	}

	cmd := exec.CommandContext(ctx, path, Args(url, username)...)
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	if err := cmd.Start(); err != nil {
		return util.NewInvocationError(s.binary, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: s.binary, Code: exitErr.ExitCode()}
		}
		return err
	}

	return nil
}
