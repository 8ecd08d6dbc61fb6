package kubectl_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wilsonwang371/kuberay/internal/kubectl"
	"github.com/wilsonwang371/kuberay/internal/shell"
)

var _ = Describe("Client", func() {
	var (
		ctx  context.Context
		fake *shell.FakeRunner
	)

	newClient := func(maxTries uint) *kubectl.Client {
		c := kubectl.NewWithMaxTries(fake, time.Minute, maxTries)
		c.SetRetryInterval(time.Millisecond)
		return c
	}

	BeforeEach(func() {
		ctx = context.Background()
		fake = &shell.FakeRunner{}
	})

	Describe("ApplyKustomize", func() {
		It("should apply the kustomize ref", func() {
			c := newClient(1)
			ref := "github.com/ray-project/kuberay/manifests/base"
			Expect(c.ApplyKustomize(ctx, ref)).To(Succeed())
			Expect(fake.Calls).To(Equal([][]string{
				{"kubectl", "apply", "-k", ref},
			}))
		})
	})

	Describe("ApplyFile", func() {
		It("should apply the manifest file", func() {
			c := newClient(1)
			Expect(c.ApplyFile(ctx, "/tmp/raycluster.yaml")).To(Succeed())
			Expect(fake.Calls).To(Equal([][]string{
				{"kubectl", "apply", "-f", "/tmp/raycluster.yaml"},
			}))
		})
	})

	Describe("retry behavior", func() {
		It("should retry a transient failure and succeed", func() {
			fake.Errs = []error{errors.New("connection refused"), nil}

			c := newClient(3)
			Expect(c.ApplyFile(ctx, "svc.yaml")).To(Succeed())
			Expect(fake.Calls).To(HaveLen(2))
		})

		It("should give up after the retry budget is exhausted", func() {
			persistent := errors.New("no such host")
			fake.Errs = []error{persistent, persistent, persistent}

			c := newClient(3)
			err := c.ApplyFile(ctx, "svc.yaml")
			Expect(err).To(MatchError(persistent))
			Expect(fake.Calls).To(HaveLen(3))
		})
	})
})
