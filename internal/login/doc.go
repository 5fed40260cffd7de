// Package login hands the terminal over to an external login tool.
//
// The tool is invoked as `<binary> login <url> -u <username>`. Two strategies
// satisfy the Invoker contract:
//
//   - ExecInvoker replaces the current process image (unix only). On success
//     Invoke never returns.
//   - SpawnInvoker runs the tool as a child with inherited stdio, waits for it,
//     and reports a non-zero exit status as *ExitError so the caller can exit
//     with the same code.
//
// NewInvoker picks ExecInvoker where process replacement is available and
// SpawnInvoker elsewhere. Failures to start the tool at all are reported as
// *util.InvocationError.
package login
