package manifest_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wilsonwang371/kuberay/internal/manifest"
)

const miniTemplate = `apiVersion: ray.io/v1alpha1
kind: RayCluster
metadata:
  name: raycluster-sample
spec:
  rayVersion: '$ray_version'
  headGroupSpec:
    template:
      spec:
        containers:
          - name: ray-head
            image: $ray_image
`

func writeTemplate(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "spec.yaml.template")
	Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	return path
}

var _ = Describe("Render", func() {
	vars := manifest.Vars{
		RayImage:   "rayproject/ray:1.8.0",
		RayVersion: "1.8.0",
	}

	It("should substitute both placeholders", func() {
		out, err := manifest.Render(writeTemplate(miniTemplate), vars)
		Expect(err).NotTo(HaveOccurred())

		rendered := string(out)
		Expect(rendered).To(ContainSubstring("rayVersion: '1.8.0'"))
		Expect(rendered).To(ContainSubstring("image: rayproject/ray:1.8.0"))
		Expect(rendered).NotTo(ContainSubstring("$ray_"))
	})

	It("should be deterministic", func() {
		path := writeTemplate(miniTemplate)
		first, err := manifest.Render(path, vars)
		Expect(err).NotTo(HaveOccurred())
		second, err := manifest.Render(path, vars)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should round-trip the substituted values", func() {
		out, err := manifest.Render(writeTemplate(miniTemplate), manifest.Vars{
			RayImage:   "rayproject/ray:9.9.9",
			RayVersion: "9.9.9",
		})
		Expect(err).NotTo(HaveOccurred())

		// Recover the inputs from the rendered text at the placeholder sites.
		var version, image string
		for _, line := range strings.Split(string(out), "\n") {
			line = strings.TrimSpace(line)
			if v, ok := strings.CutPrefix(line, "rayVersion: '"); ok {
				version = strings.TrimSuffix(v, "'")
			}
			if v, ok := strings.CutPrefix(line, "image: "); ok {
				image = v
			}
		}
		Expect(version).To(Equal("9.9.9"))
		Expect(image).To(Equal("rayproject/ray:9.9.9"))
	})

	It("should reject a template with unknown placeholders", func() {
		_, err := manifest.Render(writeTemplate("image: $ray_image\nextra: $mystery\n"), vars)
		Expect(err).To(MatchError(ContainSubstring("mystery")))
	})

	It("should reject a template that renders to invalid YAML", func() {
		_, err := manifest.Render(writeTemplate("{not yaml: [\n"), vars)
		Expect(err).To(MatchError(ContainSubstring("not valid YAML")))
	})

	It("should fail when the template file is missing", func() {
		_, err := manifest.Render(filepath.Join(GinkgoT().TempDir(), "missing.template"), vars)
		Expect(err).To(MatchError(ContainSubstring("reading template")))
	})
})

var _ = Describe("WriteTemp", func() {
	It("should write the data and remove the file on cleanup", func() {
		path, cleanup, err := manifest.WriteTemp([]byte("kind: RayCluster\n"))
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("kind: RayCluster\n"))

		cleanup()
		_, err = os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should tolerate cleanup running twice", func() {
		path, cleanup, err := manifest.WriteTemp([]byte("x: y\n"))
		Expect(err).NotTo(HaveOccurred())
		cleanup()
		cleanup()
		_, err = os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
