package main

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/wilsonwang371/kuberay/internal/engine"
	"github.com/wilsonwang371/kuberay/internal/kind"
	"github.com/wilsonwang371/kuberay/internal/kubectl"
	"github.com/wilsonwang371/kuberay/internal/kubewait"
	"github.com/wilsonwang371/kuberay/internal/manifest"
	"github.com/wilsonwang371/kuberay/internal/shell"
	"github.com/wilsonwang371/kuberay/internal/workload"
)

const (
	// The KubeRay operator manifests, applied in order: base depends on
	// the cluster-scoped resources.
	clusterScopeManifests = "github.com/ray-project/kuberay/manifests/cluster-scope-resources"
	baseManifests         = "github.com/ray-project/kuberay/manifests/base"

	// headPodSelector matches the pods of the sample RayCluster deployed
	// from tests/config/ray-cluster.mini.yaml.template.
	headPodSelector = "rayCluster=raycluster-sample"
)

var _ = Describe("Ray cluster compatibility", Ordered, func() {
	var (
		ctx     context.Context
		cluster *kind.Cluster
		kctl    *kubectl.Client
		eng     engine.Engine
	)

	BeforeAll(func() {
		ctx = context.Background()
		runner := shell.ExecRunner{}
		cluster = kind.NewCluster(runner, cfg.KindConfigFile)
		kctl = kubectl.New(runner, cfg.ApplyTimeout)

		var err error
		eng, err = engine.NewPodman(ctx, cfg.PodmanSocket)
		Expect(err).NotTo(HaveOccurred())

		By("creating the kind cluster")
		Expect(cluster.Create(ctx)).To(Succeed())
		// Teardown is registered the moment create succeeds, so it runs
		// even when a later setup step fails.
		DeferCleanup(func() {
			if cfg.KeepCluster {
				zap.S().Warn("keep-cluster set; leaving the kind cluster behind")
				return
			}
			Expect(cluster.Delete(context.Background())).To(Succeed())
		})

		By("applying the KubeRay operator manifests")
		Expect(kctl.ApplyKustomize(ctx, clusterScopeManifests)).To(Succeed())
		Expect(kctl.ApplyKustomize(ctx, baseManifests)).To(Succeed())

		By("pulling the Ray image")
		Expect(eng.PullImage(ctx, cfg.RayImage)).To(Succeed())
		if cfg.LoadImageIntoCluster {
			Expect(cluster.LoadImage(ctx, cfg.RayImage)).To(Succeed())
		}

		By("deploying the sample RayCluster")
		spec, err := manifest.Render(cfg.RayClusterTemplate, manifest.Vars{
			RayImage:   cfg.RayImage,
			RayVersion: cfg.RayVersion,
		})
		Expect(err).NotTo(HaveOccurred())
		specFile, cleanup, err := manifest.WriteTemp(spec)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(cleanup)
		Expect(kctl.ApplyFile(ctx, specFile)).To(Succeed())

		By("waiting for the Ray pods to become ready")
		kube, err := kubewait.NewClientFromKubeconfig(cfg.Kubeconfig)
		Expect(err).NotTo(HaveOccurred())
		Expect(kube.PodsReady(ctx, metav1.NamespaceDefault, headPodSelector, cfg.ReadyTimeout)).To(Succeed())

		By("exposing the Ray client endpoint")
		Expect(kctl.ApplyFile(ctx, cfg.RayClusterServiceFile)).To(Succeed())
	})

	It("runs remote tasks and prints their results in order", func() {
		name := "kuberay-compat-" + uuid.NewString()[:8]
		id, err := eng.StartContainer(ctx, engine.ContainerOptions{
			Image:       cfg.RayImage,
			Name:        name,
			Command:     []string{"/bin/bash"},
			HostNetwork: true,
			TTY:         true,
			AutoRemove:  true,
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			Expect(eng.StopContainer(context.Background(), id)).To(Succeed())
		})

		res, err := eng.Exec(ctx, id, workload.Command(cfg.ClientAddress))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.ExitCode).To(BeZero())
		Expect(string(res.Stdout)).To(Equal(workload.ExpectedOutput))
	})
})
