// Package engine abstracts the container runtime the compatibility test
// uses to pull the Ray image and to run the throwaway client container.
package engine

import "context"

// ContainerOptions describes the container StartContainer creates.
type ContainerOptions struct {
	Image   string
	Name    string
	Command []string
	// HostNetwork attaches the container to the host network so the Ray
	// client can reach the port kind maps onto the host.
	HostNetwork bool
	TTY         bool
	// AutoRemove asks the runtime to remove the container once stopped.
	AutoRemove bool
}

// ExecResult is the outcome of one exec session.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
}

// Engine is the container runtime client.
type Engine interface {
	PullImage(ctx context.Context, ref string) error
	StartContainer(ctx context.Context, opts ContainerOptions) (string, error)
	// Exec runs command inside the container and captures stdout only;
	// stderr is left unattached because assertions are on stdout bytes.
	Exec(ctx context.Context, containerID string, command []string) (ExecResult, error)
	StopContainer(ctx context.Context, containerID string) error
}
