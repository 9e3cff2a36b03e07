// Package domain provides shared domain types for the envgate provisioning pipeline.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

// StageType categorizes the kind of provisioning work a stage performs.
// This determines which executor handles the stage.
type StageType string

// Stage type constants define the valid execution types for stages.
const (
	// StageTypeSystemPackages indicates the stage refreshes the OS package
	// index and installs named system packages.
	StageTypeSystemPackages StageType = "system_packages"

	// StageTypePythonPackages indicates the stage installs Python packages
	// into the active runtime.
	StageTypePythonPackages StageType = "python_packages"

	// StageTypeFetchSource indicates the stage clones a source repository
	// into the image filesystem.
	StageTypeFetchSource StageType = "fetch_source"

	// StageTypeSelectWorkspace indicates the stage moves the persistent
	// working-directory pointer.
	StageTypeSelectWorkspace StageType = "select_workspace"

	// StageTypeVerify indicates the stage runs the cloned toolkit's own
	// test suite as the final correctness gate.
	StageTypeVerify StageType = "verify"
)

// String returns the string representation of the StageType.
// This implements fmt.Stringer for convenient logging and debugging.
func (s StageType) String() string {
	return string(s)
}

// Stage is one ordered unit of provisioning work. Stages are defined
// statically at pipeline-definition time, executed exactly once per run,
// and never retried or mutated after definition.
//
// A stage declares both the command parameters its executor needs (Spec)
// and the environment-state delta the sequencer applies on success (Delta).
// Keeping the delta on the definition, rather than computing it inside the
// executor, makes every stage's effect explicit and inspectable.
type Stage struct {
	// ID uniquely identifies the stage within the pipeline (e.g. "fetch-source").
	ID string `json:"id"`

	// Type selects the executor that runs this stage.
	Type StageType `json:"type"`

	// Description explains what this stage does.
	Description string `json:"description,omitempty"`

	// Spec carries the per-stage command parameters. Only the fields
	// relevant to the stage's type are set.
	Spec StageSpec `json:"spec"`

	// Delta is the declared environment-state change applied by the
	// sequencer when the stage succeeds.
	Delta StateDelta `json:"delta"`
}

// StageSpec holds the command parameters for a stage. It is a union across
// stage types; which fields apply is determined by the owning stage's Type.
type StageSpec struct {
	// Packages names the OS packages to install (system_packages).
	Packages []string `json:"packages,omitempty"`

	// VCSRef is a remote source-control reference the Python installer
	// builds from (python_packages).
	VCSRef string `json:"vcs_ref,omitempty"`

	// RegistryPackage is a Python package name resolved from the public
	// registry (python_packages). Installed after VCSRef.
	RegistryPackage string `json:"registry_package,omitempty"`

	// RepoURL is the remote repository to clone (fetch_source).
	RepoURL string `json:"repo_url,omitempty"`

	// TargetPath is the local clone destination (fetch_source).
	TargetPath string `json:"target_path,omitempty"`

	// WorkDir is the directory to select (select_workspace).
	WorkDir string `json:"work_dir,omitempty"`

	// Command is the test runner invocation (verify). The first element is
	// the executable, the rest are arguments.
	Command []string `json:"command,omitempty"`
}
