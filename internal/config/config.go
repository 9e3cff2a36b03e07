// Package config provides configuration management for envgate.
//
// Configuration is loaded from YAML files and environment variables via
// Viper, with CLI flags applied as the highest-precedence overrides. The
// provisioning parameters carried here are the same values a pipeline
// manifest can set; the manifest, when given, wins over config files.
package config

// Config is the root configuration structure for envgate.
type Config struct {
	// Provision holds the provisioning pipeline parameters.
	Provision ProvisionConfig `mapstructure:"provision"`

	// Verify holds the verification gate parameters.
	Verify VerifyConfig `mapstructure:"verify"`
}

// ProvisionConfig holds the parameters of the provisioning stages.
type ProvisionConfig struct {
	// SystemPackages are the OS packages installed by the system package
	// installer stage.
	SystemPackages []string `mapstructure:"system_packages"`

	// NonInteractiveEnv is the KEY=value assignment that disables OS
	// package manager prompts. This is the pipeline's only externally
	// observable configuration knob on the package manager itself.
	NonInteractiveEnv string `mapstructure:"non_interactive_env"`

	// PythonVCSRef is the source-control reference pip builds and installs
	// first.
	PythonVCSRef string `mapstructure:"python_vcs_ref"`

	// PythonPackage is the registry package pip installs second.
	PythonPackage string `mapstructure:"python_package"`

	// RepoURL is the toolkit repository to clone.
	RepoURL string `mapstructure:"repo_url"`

	// TargetPath is the clone destination and subsequent workspace.
	TargetPath string `mapstructure:"target_path"`
}

// VerifyConfig holds the verification gate parameters.
type VerifyConfig struct {
	// Command is the test runner invocation, run with the workspace as the
	// working directory. The default is ["pytest"]: no arguments, letting
	// the runner discover the toolkit's own suite.
	Command []string `mapstructure:"command"`
}
