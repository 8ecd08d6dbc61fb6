/*
Package main is the KubeRay compatibility suite: one invocation
provisions an ephemeral kind cluster, installs the KubeRay operator,
deploys a sample RayCluster, runs a Ray client workload in a throwaway
container on the host network, asserts its output byte for byte, and
tears the cluster down.

# Package Structure

	tests/e2e/
	├── main.go    Entry point: cobra flags, env override, zap, Ginkgo runner
	├── suite.go   Ginkgo specs (setup phases, test body, teardown)
	└── doc.go     This file

	tests/config/
	├── cluster-config.yaml              kind cluster config (maps port 10001)
	├── ray-cluster.mini.yaml.template   RayCluster spec ($ray_image, $ray_version)
	└── raycluster-service.yaml          NodePort service for the Ray client port

# Run Lifecycle

	create kind cluster ──▶ apply operator manifests ──▶ pull Ray image
	        │                                                  │
	        │                         render + apply RayCluster spec
	        │                                                  │
	        │                         poll pod readiness, apply service
	        │                                                  │
	        │                         exec Ray client, assert [0, 1, 4, 9]
	        ▼
	delete kind cluster (DeferCleanup: runs whenever create succeeded,
	whether or not later setup or the test body failed)

# Configuration

Defaults come from internal/config, every field has a flag, and the
KUBERAY_TEST_RAY_VERSION / KUBERAY_TEST_RAY_IMAGE environment variables
override both. Resolution happens once, before any setup step.

# Invocation

	go run ./tests/e2e
	go run ./tests/e2e --ray-image rayproject/ray:1.9.0 --ray-version 1.9.0
	KUBERAY_TEST_RAY_IMAGE=rayproject/ray:1.9.0 KUBERAY_TEST_RAY_VERSION=1.9.0 go run ./tests/e2e

Exit code is 0 when every assertion passes, non-zero otherwise.
*/
package main
