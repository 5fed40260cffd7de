//go:build unix

package login

import (
	"context"
	"os"
	"os/exec"

	"github.com/aryankumar/oclogin/internal/util"
	"golang.org/x/sys/unix"
)

// ExecInvoker replaces the current process with the login tool
type ExecInvoker struct {
	binary   string
	lookPath func(file string) (string, error)
	exec     func(argv0 string, argv []string, envv []string) error
	environ  func() []string
}

// NewExecInvoker creates an invoker that execs the login tool
func NewExecInvoker(binary string) *ExecInvoker {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecInvoker{
		binary:   binary,
		lookPath: exec.LookPath,
		exec:     unix.Exec,
		environ:  os.Environ,
	}
}

// Invoke execs the login tool. It only returns if the exec itself fails.
func (e *ExecInvoker) Invoke(ctx context.Context, url, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := e.lookPath(e.binary)
	if err != nil {
		return util.NewInvocationError(e.binary, err)
	}

	argv := append([]string{e.binary}, Args(url, username)...)
	if err := e.exec(path, argv, e.environ()); err != nil {
		return util.NewInvocationError(e.binary, err)
	}

	return nil
}

// NewInvoker returns the process-replacing invoker
func NewInvoker(binary string) Invoker {
	return NewExecInvoker(binary)
}
