package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/containers/podman/v5/pkg/api/handlers"
	"github.com/containers/podman/v5/pkg/bindings"
	"github.com/containers/podman/v5/pkg/bindings/containers"
	"github.com/containers/podman/v5/pkg/bindings/images"
	"github.com/containers/podman/v5/pkg/specgen"
	"go.uber.org/zap"
)

const stopTimeoutSeconds = uint(10)

// Podman talks to a Podman service over its REST API.
type Podman struct {
	// conn is the connection-carrying context the bindings operate on.
	conn context.Context
}

// NewPodman connects to the Podman service at socket, e.g.
// unix:///run/podman/podman.sock.
func NewPodman(ctx context.Context, socket string) (*Podman, error) {
	conn, err := bindings.NewConnection(ctx, socket)
	if err != nil {
		return nil, fmt.Errorf("connecting to podman at %s: %w", socket, err)
	}
	return &Podman{conn: conn}, nil
}

func (p *Podman) PullImage(_ context.Context, ref string) error {
	zap.S().Infof("pulling image %s", ref)
	if _, err := images.Pull(p.conn, ref, nil); err != nil {
		return fmt.Errorf("pulling %s: %w", ref, err)
	}
	return nil
}

func (p *Podman) StartContainer(_ context.Context, opts ContainerOptions) (string, error) {
	s := specgen.NewSpecGenerator(opts.Image, false)
	s.Name = opts.Name
	s.Command = opts.Command
	s.Terminal = &opts.TTY
	s.Remove = &opts.AutoRemove
	if opts.HostNetwork {
		s.NetNS = specgen.Namespace{NSMode: specgen.Host}
	}

	created, err := containers.CreateWithSpec(p.conn, s, nil)
	if err != nil {
		return "", fmt.Errorf("creating container from %s: %w", opts.Image, err)
	}
	if err := containers.Start(p.conn, created.ID, nil); err != nil {
		return "", fmt.Errorf("starting container %s: %w", created.ID, err)
	}
	zap.S().Infof("started container %s (%s)", opts.Name, created.ID)
	return created.ID, nil
}

func (p *Podman) Exec(_ context.Context, containerID string, command []string) (ExecResult, error) {
	cfg := new(handlers.ExecCreateConfig)
	cfg.Cmd = command
	cfg.AttachStdout = true

	sessionID, err := containers.ExecCreate(p.conn, containerID, cfg)
	if err != nil {
		return ExecResult{}, fmt.Errorf("creating exec session: %w", err)
	}

	var stdout bytes.Buffer
	attach := new(containers.ExecStartAndAttachOptions).
		WithOutputStream(nopWriteCloser{&stdout}).
		WithAttachOutput(true)
	if err := containers.ExecStartAndAttach(p.conn, sessionID, attach); err != nil {
		return ExecResult{}, fmt.Errorf("running exec session: %w", err)
	}

	inspect, err := containers.ExecInspect(p.conn, sessionID, nil)
	if err != nil {
		return ExecResult{}, fmt.Errorf("inspecting exec session: %w", err)
	}
	return ExecResult{ExitCode: inspect.ExitCode, Stdout: stdout.Bytes()}, nil
}

func (p *Podman) StopContainer(_ context.Context, containerID string) error {
	timeout := stopTimeoutSeconds
	opts := new(containers.StopOptions).WithTimeout(timeout)
	if err := containers.Stop(p.conn, containerID, opts); err != nil {
		return fmt.Errorf("stopping container %s: %w", containerID, err)
	}
	return nil
}

// nopWriteCloser adapts a bytes.Buffer to the WriteCloser the attach API
// expects.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
