// Package kind drives the kind CLI for the ephemeral test cluster.
package kind

import (
	"context"
	"fmt"

	"github.com/wilsonwang371/kuberay/internal/shell"
)

// Cluster manages the lifecycle of the single kind cluster a run owns.
// There is no support for concurrent runs against the same cluster name.
type Cluster struct {
	runner     shell.Runner
	configFile string
}

func NewCluster(runner shell.Runner, configFile string) *Cluster {
	return &Cluster{runner: runner, configFile: configFile}
}

// Create provisions the cluster from the configured kind config file.
// No retry: a failed create aborts the run.
func (c *Cluster) Create(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "kind", "create", "cluster", "--config", c.configFile); err != nil {
		return fmt.Errorf("creating kind cluster: %w", err)
	}
	return nil
}

// Delete tears the cluster down. Attempted once per run whenever Create
// succeeded, independent of the test body's outcome.
func (c *Cluster) Delete(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "kind", "delete", "cluster"); err != nil {
		return fmt.Errorf("deleting kind cluster: %w", err)
	}
	return nil
}

// LoadImage side-loads an already pulled image into the cluster nodes so
// the kubelet does not pull it a second time.
func (c *Cluster) LoadImage(ctx context.Context, ref string) error {
	if _, err := c.runner.Run(ctx, "kind", "load", "docker-image", ref); err != nil {
		return fmt.Errorf("loading image %s into kind: %w", ref, err)
	}
	return nil
}
