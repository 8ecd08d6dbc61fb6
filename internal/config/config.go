package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

// Environment variable names recognized by ApplyEnvironment.
// Any other environment variables are ignored.
const (
	EnvRayVersion = "KUBERAY_TEST_RAY_VERSION"
	EnvRayImage   = "KUBERAY_TEST_RAY_IMAGE"
)

// Config holds every knob of a compatibility run. It is resolved exactly
// once, before any setup step, and passed by value from then on.
type Config struct {
	// RayVersion is the Ray release the RayCluster spec advertises.
	RayVersion string `default:"1.8.0"`
	// RayImage is the container image used both for the cluster pods and
	// for the throwaway client container.
	RayImage string `default:"rayproject/ray:1.8.0"`

	KindConfigFile        string `default:"tests/config/cluster-config.yaml"`
	RayClusterTemplate    string `default:"tests/config/ray-cluster.mini.yaml.template"`
	RayClusterServiceFile string `default:"tests/config/raycluster-service.yaml"`

	// ClientAddress is where the Ray client inside the test container
	// connects. The kind config maps the head service's node port to this
	// host port.
	ClientAddress string `default:"ray://127.0.0.1:10001"`
	PodmanSocket  string `default:"unix:///run/podman/podman.sock"`
	// Kubeconfig is the path readiness polling loads cluster credentials
	// from. Empty means the standard loading rules, which is where kind
	// writes its context.
	Kubeconfig string

	// ReadyTimeout bounds the whole wait for the Ray pods, from apply to
	// ready. There is no fixed pre-poll delay on top of it.
	ReadyTimeout time.Duration `default:"30m"`
	// ApplyTimeout bounds a single kubectl apply including its retries.
	ApplyTimeout time.Duration `default:"5m"`

	// LoadImageIntoCluster side-loads the pulled image into the kind nodes
	// so the kubelet does not pull it a second time.
	LoadImageIntoCluster bool
	// KeepCluster skips teardown. Debugging escape hatch only; a kept
	// cluster blocks the next run until deleted by hand.
	KeepCluster bool
}

// New returns a Config populated with defaults.
func New() (Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return Config{}, fmt.Errorf("setting config defaults: %w", err)
	}
	return c, nil
}

// ApplyEnvironment overrides the Ray version and image from the two
// recognized environment variables. A set variable strictly replaces
// whatever the config carried; an unset one leaves it untouched.
func (c *Config) ApplyEnvironment() {
	v := viper.New()
	// Bind the exact variable names; no prefix, no implicit keys.
	_ = v.BindEnv("ray-version", EnvRayVersion)
	_ = v.BindEnv("ray-image", EnvRayImage)

	if s := v.GetString("ray-version"); s != "" {
		c.RayVersion = s
	}
	if s := v.GetString("ray-image"); s != "" {
		c.RayImage = s
	}
}

// Validate checks the config before any setup step runs.
func (c Config) Validate() error {
	if c.RayVersion == "" {
		return errors.New("ray version is empty")
	}
	if c.RayImage == "" {
		return errors.New("ray image is empty")
	}
	if c.KindConfigFile == "" {
		return errors.New("kind config file path is empty")
	}
	if c.RayClusterTemplate == "" {
		return errors.New("raycluster template path is empty")
	}
	if c.RayClusterServiceFile == "" {
		return errors.New("raycluster service file path is empty")
	}
	if _, err := url.Parse(c.ClientAddress); err != nil {
		return fmt.Errorf("failed to parse client address: %v", err)
	}
	if c.ReadyTimeout <= 0 {
		return errors.New("ready timeout must be positive")
	}
	return nil
}
