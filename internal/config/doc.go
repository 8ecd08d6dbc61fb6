// Package config defines the configuration for a compatibility run.
//
// A run is configured from three layers, lowest precedence first:
//
//  1. struct defaults (creasty/defaults tags)
//  2. command-line flags (tests/e2e)
//  3. the KUBERAY_TEST_RAY_VERSION and KUBERAY_TEST_RAY_IMAGE
//     environment variables
//
// Resolution happens once in the entry point, before any setup step, and
// the resolved Config is passed by value into the suite. Nothing mutates
// it afterwards.
//
// # Fields
//
//	┌───────────────────────┬─────────────────────────────────────────────┬────────────────────────────────────┐
//	│ Field                 │ Default                                     │ Description                        │
//	├───────────────────────┼─────────────────────────────────────────────┼────────────────────────────────────┤
//	│ RayVersion            │ "1.8.0"                                     │ Ray release in the RayCluster spec │
//	│ RayImage              │ "rayproject/ray:1.8.0"                      │ Image for cluster pods and client  │
//	│ KindConfigFile        │ tests/config/cluster-config.yaml            │ kind cluster config                │
//	│ RayClusterTemplate    │ tests/config/ray-cluster.mini.yaml.template │ RayCluster spec template           │
//	│ RayClusterServiceFile │ tests/config/raycluster-service.yaml        │ Head service manifest              │
//	│ ClientAddress         │ ray://127.0.0.1:10001                       │ Ray client endpoint                │
//	│ PodmanSocket          │ unix:///run/podman/podman.sock              │ Podman service socket              │
//	│ Kubeconfig            │ ""                                          │ Kubeconfig path ("" = standard)    │
//	│ ReadyTimeout          │ 30m                                         │ Overall pod readiness bound        │
//	│ ApplyTimeout          │ 5m                                          │ Per-apply bound including retries  │
//	│ LoadImageIntoCluster  │ false                                       │ kind load the pulled image         │
//	│ KeepCluster           │ false                                       │ Skip teardown (debugging only)     │
//	└───────────────────────┴─────────────────────────────────────────────┴────────────────────────────────────┘
package config
