// internal/adapters/pixi/manifest.go
package pixi

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"biorules/internal/platform/errors"
)

// ManifestFileName is the manifest file pixi reads.
const ManifestFileName = "pixi.toml"

// DefaultChannels are searched in order when installing a package.
var DefaultChannels = []string{"conda-forge", "bioconda"}

// Manifest is the subset of a pixi workspace manifest written for a probe
// environment.
type Manifest struct {
	Project      Project           `toml:"project"`
	Dependencies map[string]string `toml:"dependencies"`
}

// Project is the [project] table.
type Project struct {
	Name      string   `toml:"name"`
	Channels  []string `toml:"channels"`
	Platforms []string `toml:"platforms"`
}

// NewManifest creates a manifest with no dependencies. Empty channels fall
// back to DefaultChannels.
func NewManifest(name string, channels []string, platform string) Manifest {
	if len(channels) == 0 {
		channels = DefaultChannels
	}
	if platform == "" {
		platform = DetectPlatform()
	}
	return Manifest{
		Project: Project{
			Name:      name,
			Channels:  append([]string(nil), channels...),
			Platforms: []string{platform},
		},
		Dependencies: map[string]string{},
	}
}

// WriteManifest encodes m as TOML at path.
func WriteManifest(path string, m Manifest) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "encoding pixi manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// ReadManifest decodes the manifest at path.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, errors.Wrapf(err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &m); err != nil {
		return m, errors.Wrapf(err, "decoding %s", path)
	}
	return m, nil
}
