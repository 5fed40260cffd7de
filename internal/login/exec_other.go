//go:build !unix

package login

// NewInvoker returns the spawn-and-wait invoker where exec is unavailable
func NewInvoker(binary string) Invoker {
	return NewSpawnInvoker(binary)
}
