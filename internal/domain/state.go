package domain

import "sort"

// StateDelta is a declared, additive change to the environment state.
// Deltas only ever add packages and filesystem paths or move the
// working-directory pointer; nothing is removed or downgraded.
type StateDelta struct {
	// SystemPackages are OS package names added to the installed set.
	SystemPackages []string `json:"system_packages,omitempty"`

	// PythonPackages are Python package identifiers (registry names or VCS
	// references) added to the installed set.
	PythonPackages []string `json:"python_packages,omitempty"`

	// Paths are filesystem nodes created by the stage.
	Paths []string `json:"paths,omitempty"`

	// WorkDir, when non-empty, replaces the working-directory pointer.
	WorkDir string `json:"work_dir,omitempty"`
}

// IsZero reports whether the delta declares no change at all.
func (d StateDelta) IsZero() bool {
	return len(d.SystemPackages) == 0 && len(d.PythonPackages) == 0 &&
		len(d.Paths) == 0 && d.WorkDir == ""
}

// EnvState is the mutable shared record of installed packages, filesystem
// contents, and the current working directory, built up incrementally by
// stages. It is owned exclusively by the pipeline sequencer: stages read it
// but only the sequencer applies deltas, so no locking is needed.
type EnvState struct {
	systemPackages map[string]struct{}
	pythonPackages map[string]struct{}
	paths          map[string]struct{}
	workDir        string
}

// NewEnvState returns an empty environment state representing the base image.
func NewEnvState() *EnvState {
	return &EnvState{
		systemPackages: make(map[string]struct{}),
		pythonPackages: make(map[string]struct{}),
		paths:          make(map[string]struct{}),
	}
}

// Apply merges a stage's declared delta into the state. Package and path
// additions are idempotent; re-applying an already-satisfied delta leaves
// the state unchanged.
func (s *EnvState) Apply(d StateDelta) {
	for _, pkg := range d.SystemPackages {
		s.systemPackages[pkg] = struct{}{}
	}
	for _, pkg := range d.PythonPackages {
		s.pythonPackages[pkg] = struct{}{}
	}
	for _, p := range d.Paths {
		s.paths[p] = struct{}{}
	}
	if d.WorkDir != "" {
		s.workDir = d.WorkDir
	}
}

// HasSystemPackage reports whether the named OS package is installed.
func (s *EnvState) HasSystemPackage(name string) bool {
	_, ok := s.systemPackages[name]
	return ok
}

// HasPythonPackage reports whether the named Python package is installed.
func (s *EnvState) HasPythonPackage(name string) bool {
	_, ok := s.pythonPackages[name]
	return ok
}

// HasPath reports whether the filesystem node has been recorded.
func (s *EnvState) HasPath(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// WorkDir returns the current working-directory pointer. Empty until a
// select_workspace stage has run.
func (s *EnvState) WorkDir() string {
	return s.workDir
}

// Clone returns an independent deep copy of the state. Used by tests to
// compare states across repeated runs; the sequencer itself never copies.
func (s *EnvState) Clone() *EnvState {
	clone := NewEnvState()
	for pkg := range s.systemPackages {
		clone.systemPackages[pkg] = struct{}{}
	}
	for pkg := range s.pythonPackages {
		clone.pythonPackages[pkg] = struct{}{}
	}
	for p := range s.paths {
		clone.paths[p] = struct{}{}
	}
	clone.workDir = s.workDir
	return clone
}

// Snapshot renders the state as sorted slices for serialization and
// comparison. The snapshot is a value copy; mutating it does not affect
// the live state.
func (s *EnvState) Snapshot() EnvSnapshot {
	return EnvSnapshot{
		SystemPackages: sortedKeys(s.systemPackages),
		PythonPackages: sortedKeys(s.pythonPackages),
		Paths:          sortedKeys(s.paths),
		WorkDir:        s.workDir,
	}
}

// EnvSnapshot is an immutable, serializable view of an EnvState.
type EnvSnapshot struct {
	SystemPackages []string `json:"system_packages"`
	PythonPackages []string `json:"python_packages"`
	Paths          []string `json:"paths"`
	WorkDir        string   `json:"work_dir,omitempty"`
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
