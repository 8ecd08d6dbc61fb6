package shell_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wilsonwang371/kuberay/internal/shell"
)

var _ = Describe("ExecRunner", func() {
	var (
		ctx    context.Context
		runner shell.ExecRunner
	)

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("should capture the output of a successful command", func() {
		out, err := runner.Run(ctx, "sh", "-c", "echo hello")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal("hello\n"))
	})

	It("should return an ExitError carrying the exit code", func() {
		_, err := runner.Run(ctx, "sh", "-c", "echo oops; exit 3")
		Expect(err).To(HaveOccurred())

		var exitErr *shell.ExitError
		Expect(errors.As(err, &exitErr)).To(BeTrue())
		Expect(exitErr.Code).To(Equal(3))
		Expect(string(exitErr.Output)).To(Equal("oops\n"))
	})

	It("should capture stderr together with stdout", func() {
		out, err := runner.Run(ctx, "sh", "-c", "echo to-stderr 1>&2")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(out)).To(Equal("to-stderr\n"))
	})

	It("should not return an ExitError when the command cannot start", func() {
		_, err := runner.Run(ctx, "definitely-not-a-real-binary")
		Expect(err).To(HaveOccurred())

		var exitErr *shell.ExitError
		Expect(errors.As(err, &exitErr)).To(BeFalse())
	})
})

var _ = Describe("FakeRunner", func() {
	It("should record calls and play back scripted results in order", func() {
		scripted := errors.New("scripted failure")
		fake := &shell.FakeRunner{
			Outputs: [][]byte{[]byte("first")},
			Errs:    []error{scripted, nil},
		}

		out, err := fake.Run(context.Background(), "kind", "create", "cluster")
		Expect(err).To(MatchError(scripted))
		Expect(string(out)).To(Equal("first"))

		out, err = fake.Run(context.Background(), "kind", "delete", "cluster")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(BeNil())

		Expect(fake.Calls).To(Equal([][]string{
			{"kind", "create", "cluster"},
			{"kind", "delete", "cluster"},
		}))
	})
})
