package main

import (
	"fmt"
	"log"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wilsonwang371/kuberay/internal/config"
)

// cfg is resolved once before RunSpecs; the suite only reads it.
var cfg config.Config

func bindFlags(flags *pflag.FlagSet, c *config.Config) {
	flags.StringVar(&c.RayVersion, "ray-version", c.RayVersion, "Ray release the RayCluster spec advertises")
	flags.StringVar(&c.RayImage, "ray-image", c.RayImage, "Container image for the cluster pods and the client")
	flags.StringVar(&c.KindConfigFile, "kind-config", c.KindConfigFile, "kind cluster config file")
	flags.StringVar(&c.RayClusterTemplate, "raycluster-template", c.RayClusterTemplate, "RayCluster spec template file")
	flags.StringVar(&c.RayClusterServiceFile, "raycluster-service", c.RayClusterServiceFile, "Head service manifest file")
	flags.StringVar(&c.ClientAddress, "client-address", c.ClientAddress, "Ray client endpoint the workload connects to")
	flags.StringVar(&c.PodmanSocket, "podman-socket", c.PodmanSocket, "Podman service socket")
	flags.StringVar(&c.Kubeconfig, "kubeconfig", c.Kubeconfig, "Kubeconfig path (empty for the standard loading rules)")
	flags.DurationVar(&c.ReadyTimeout, "ready-timeout", c.ReadyTimeout, "Overall bound on Ray pod readiness")
	flags.DurationVar(&c.ApplyTimeout, "apply-timeout", c.ApplyTimeout, "Bound on a single kubectl apply including retries")
	flags.BoolVar(&c.LoadImageIntoCluster, "load-image", c.LoadImageIntoCluster, "kind load the pulled image into the cluster nodes")
	flags.BoolVar(&c.KeepCluster, "keep-cluster", c.KeepCluster, "Keep the kind cluster after the run (useful for debugging)")
}

func newRootCommand(defaults config.Config) *cobra.Command {
	c := defaults
	cmd := &cobra.Command{
		Use:          "compatibility-test",
		Short:        "End-to-end KubeRay compatibility test against an ephemeral kind cluster",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment wins over flags; configuration is frozen here,
			// before any setup step runs.
			c.ApplyEnvironment()
			if err := c.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg = c

			RegisterFailHandler(Fail)
			if !RunSpecs(&testing.T{}, "KubeRay Compatibility Suite") {
				os.Exit(1)
			}
			return nil
		},
	}
	bindFlags(cmd.Flags(), &c)
	return cmd
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	defaults, err := config.New()
	if err != nil {
		log.Fatalf("failed to build default configuration: %v", err)
	}

	if err := newRootCommand(defaults).Execute(); err != nil {
		log.Fatalf("compatibility test failed: %v", err)
	}
}
