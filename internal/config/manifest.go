package config

import "github.com/envgate/envgate/internal/manifest"

// ApplyManifest overlays a pipeline manifest onto the configuration.
// Manifests have the highest precedence of all parameter sources; only
// fields the manifest actually sets are applied. The merged config is
// re-validated by the caller before plan construction.
func ApplyManifest(cfg *Config, m *manifest.Manifest) {
	if cfg == nil || m == nil {
		return
	}

	if len(m.SystemPackages) > 0 {
		cfg.Provision.SystemPackages = m.SystemPackages
	}
	if m.Python.VCSRef != "" {
		cfg.Provision.PythonVCSRef = m.Python.VCSRef
	}
	if m.Python.Package != "" {
		cfg.Provision.PythonPackage = m.Python.Package
	}
	if m.Source.RepoURL != "" {
		cfg.Provision.RepoURL = m.Source.RepoURL
	}
	if m.Source.TargetPath != "" {
		cfg.Provision.TargetPath = m.Source.TargetPath
	}
	if len(m.Verify.Command) > 0 {
		cfg.Verify.Command = m.Verify.Command
	}
}
