package config

import "github.com/envgate/envgate/internal/constants"

// Built-in defaults reproduce the reference provisioning definition for the
// deep-image-matching toolkit: the version-control client plus the media and
// codec shared libraries its image processing needs, pycolmap built from
// source, pytest from the registry, and the toolkit checkout verified by its
// own test suite.
const (
	// DefaultPythonVCSRef is the source-built Python package.
	DefaultPythonVCSRef = "git+https://github.com/colmap/pycolmap"

	// DefaultPythonPackage is the registry-resolved Python package.
	DefaultPythonPackage = "pytest"

	// DefaultRepoURL is the toolkit repository cloned into the image.
	DefaultRepoURL = "https://github.com/3DOM-FBK/deep-image-matching.git"

	// DefaultTargetPath is the clone destination and workspace.
	DefaultTargetPath = "/workspace/deep-image-matching"
)

// DefaultSystemPackages returns the default OS package set.
func DefaultSystemPackages() []string {
	return []string{"git", "ffmpeg", "libsm6", "libxext6"}
}

// DefaultVerifyCommand returns the default test runner invocation.
func DefaultVerifyCommand() []string {
	return []string{"pytest"}
}

// DefaultConfig returns a Config populated with all built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Provision: ProvisionConfig{
			SystemPackages:    DefaultSystemPackages(),
			NonInteractiveEnv: constants.DefaultNonInteractiveEnv,
			PythonVCSRef:      DefaultPythonVCSRef,
			PythonPackage:     DefaultPythonPackage,
			RepoURL:           DefaultRepoURL,
			TargetPath:        DefaultTargetPath,
		},
		Verify: VerifyConfig{
			Command: DefaultVerifyCommand(),
		},
	}
}
