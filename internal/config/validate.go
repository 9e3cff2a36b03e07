package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/envgate/envgate/internal/errors"
)

// Validate checks a Config for structural problems. Every provisioning
// parameter is required: a pipeline with a hole in its definition cannot
// produce a deterministic environment.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateProvision(&cfg.Provision); err != nil {
		return err
	}
	return validateVerify(&cfg.Verify)
}

func validateProvision(p *ProvisionConfig) error {
	if len(p.SystemPackages) == 0 {
		return fmt.Errorf("%w: provision.system_packages must not be empty", errors.ErrConfigInvalid)
	}
	for _, pkg := range p.SystemPackages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf("%w: provision.system_packages contains an empty name", errors.ErrConfigInvalid)
		}
	}

	if p.NonInteractiveEnv != "" && !strings.Contains(p.NonInteractiveEnv, "=") {
		return fmt.Errorf("%w: provision.non_interactive_env must be a KEY=value assignment", errors.ErrConfigInvalid)
	}

	if p.PythonVCSRef == "" {
		return fmt.Errorf("%w: provision.python_vcs_ref is required", errors.ErrConfigInvalid)
	}
	if p.PythonPackage == "" {
		return fmt.Errorf("%w: provision.python_package is required", errors.ErrConfigInvalid)
	}

	if p.RepoURL == "" {
		return fmt.Errorf("%w: provision.repo_url is required", errors.ErrConfigInvalid)
	}
	if p.TargetPath == "" {
		return fmt.Errorf("%w: provision.target_path is required", errors.ErrConfigInvalid)
	}
	if !filepath.IsAbs(p.TargetPath) {
		return fmt.Errorf("%w: provision.target_path must be absolute", errors.ErrConfigInvalid)
	}

	return nil
}

func validateVerify(v *VerifyConfig) error {
	if len(v.Command) == 0 {
		return fmt.Errorf("%w: verify.command must not be empty", errors.ErrConfigInvalid)
	}
	for _, arg := range v.Command {
		if strings.TrimSpace(arg) == "" {
			return fmt.Errorf("%w: verify.command contains an empty argument", errors.ErrConfigInvalid)
		}
	}
	return nil
}
