// Package manifest provides loading and validation of pipeline manifest files.
//
// A manifest is a declarative YAML description of the provisioning
// parameters: which OS packages to install, which Python packages, which
// repository to clone and where, and how to verify the result. It overrides
// the built-in defaults without changing the stage ordering, which is fixed.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// Manifest describes the provisioning parameters for a pipeline run.
//
// Example:
//
//	system_packages: [git, ffmpeg, libsm6, libxext6]
//	python:
//	  vcs_ref: git+https://github.com/colmap/pycolmap
//	  package: pytest
//	source:
//	  repo_url: https://github.com/3DOM-FBK/deep-image-matching.git
//	  target_path: /workspace/deep-image-matching
//	verify:
//	  command: [pytest]
type Manifest struct {
	// SystemPackages are the OS packages to install. Replaces the default
	// set when non-empty.
	SystemPackages []string `yaml:"system_packages"`

	// Python configures the two Python package installs.
	Python PythonSpec `yaml:"python"`

	// Source configures the toolkit checkout.
	Source SourceSpec `yaml:"source"`

	// Verify configures the verification gate.
	Verify VerifySpec `yaml:"verify"`
}

// PythonSpec configures the language package installer stage.
type PythonSpec struct {
	// VCSRef is the source-control reference built and installed first.
	VCSRef string `yaml:"vcs_ref"`

	// Package is the registry package installed second.
	Package string `yaml:"package"`
}

// SourceSpec configures the source fetcher stage.
type SourceSpec struct {
	// RepoURL is the remote repository to clone.
	RepoURL string `yaml:"repo_url"`

	// TargetPath is the local clone destination, also selected as the
	// workspace afterwards.
	TargetPath string `yaml:"target_path"`
}

// VerifySpec configures the verification gate.
type VerifySpec struct {
	// Command is the test runner invocation.
	Command []string `yaml:"command"`
}

// Load reads and validates a manifest file. Unknown fields are rejected so
// typos in provisioning definitions fail loudly instead of being ignored.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from a CLI flag, trusted input
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", envgateerrors.ErrManifestNotFound, path)
	}
	if err != nil {
		return nil, envgateerrors.Wrapf(err, "failed to read manifest %s", path)
	}

	var m Manifest
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", envgateerrors.ErrManifestParse, path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks internal consistency of the manifest. Empty fields are
// acceptable (defaults fill them in); partially specified sections are not.
func (m *Manifest) Validate() error {
	if (m.Source.RepoURL == "") != (m.Source.TargetPath == "") {
		return fmt.Errorf("%w: source.repo_url and source.target_path must be set together", envgateerrors.ErrManifestInvalid)
	}
	for _, pkg := range m.SystemPackages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf("%w: system_packages contains an empty name", envgateerrors.ErrManifestInvalid)
		}
	}
	for _, arg := range m.Verify.Command {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("%w: verify.command contains an empty argument", envgateerrors.ErrManifestInvalid)
		}
	}
	return nil
}
