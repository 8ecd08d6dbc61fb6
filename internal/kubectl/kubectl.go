// Package kubectl applies manifests against the test cluster.
package kubectl

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/wilsonwang371/kuberay/internal/shell"
)

const defaultMaxTries = 5

// Client wraps kubectl apply. Applies are retried with exponential
// backoff: right after kind boots, the apiserver drops connections for a
// few seconds and a single-shot apply is flaky. A step that exhausts its
// retries or its timeout aborts the run.
type Client struct {
	runner        shell.Runner
	timeout       time.Duration
	maxTries      uint
	retryInterval time.Duration
}

// New returns a Client whose applies, retries included, are bounded by
// timeout. A zero timeout means the caller's context is the only bound.
func New(runner shell.Runner, timeout time.Duration) *Client {
	return &Client{
		runner:        runner,
		timeout:       timeout,
		maxTries:      defaultMaxTries,
		retryInterval: 2 * time.Second,
	}
}

// NewWithMaxTries returns a Client with a custom retry budget.
func NewWithMaxTries(runner shell.Runner, timeout time.Duration, maxTries uint) *Client {
	c := New(runner, timeout)
	c.maxTries = maxTries
	return c
}

// ApplyKustomize applies a kustomize ref, local directory or remote URL.
func (c *Client) ApplyKustomize(ctx context.Context, ref string) error {
	return c.apply(ctx, "-k", ref)
}

// ApplyFile applies a single manifest file.
func (c *Client) ApplyFile(ctx context.Context, path string) error {
	return c.apply(ctx, "-f", path)
}

func (c *Client) apply(ctx context.Context, flag, target string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	op := func() (struct{}, error) {
		_, err := c.runner.Run(ctx, "kubectl", "apply", flag, target)
		return struct{}{}, err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval

	if _, err := backoff.Retry(ctx, op,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(c.maxTries),
	); err != nil {
		return fmt.Errorf("kubectl apply %s %s: %w", flag, target, err)
	}
	return nil
}
