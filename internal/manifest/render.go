// Package manifest renders the RayCluster spec template and manages the
// temporary file the rendered spec is applied from.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// Vars holds the named substitution values for the RayCluster template.
type Vars struct {
	RayImage   string
	RayVersion string
}

// Render reads the template file and substitutes the two named
// placeholders $ray_image and $ray_version. Rendering is deterministic
// and strict: any other placeholder is an error, and the output must
// parse as YAML before it is worth handing to kubectl.
func Render(templatePath string, vars Vars) ([]byte, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	var unknown []string
	rendered := os.Expand(string(raw), func(name string) string {
		switch name {
		case "ray_image":
			return vars.RayImage
		case "ray_version":
			return vars.RayVersion
		default:
			unknown = append(unknown, name)
			return ""
		}
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("template %s references unknown placeholders: %s",
			templatePath, strings.Join(unknown, ", "))
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(rendered), &doc); err != nil {
		return nil, fmt.Errorf("rendered spec is not valid YAML: %w", err)
	}
	return []byte(rendered), nil
}

// WriteTemp writes data to a fresh temporary file and returns its path
// together with a cleanup function. Callers must run the cleanup on every
// exit path so rendered specs do not pile up across runs.
func WriteTemp(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "raycluster-spec-*.yaml")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp spec file: %w", err)
	}
	path := f.Name()
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			zap.S().Warnf("removing temp spec file %s: %v", path, err)
		}
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp spec file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp spec file: %w", err)
	}
	return path, cleanup, nil
}
