package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate/internal/errors"
)

func TestValidate_NilConfig(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigNil)
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(DefaultConfig()))
}

func TestValidate_Provision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		detail string
	}{
		{
			"empty system packages",
			func(c *Config) { c.Provision.SystemPackages = nil },
			"system_packages",
		},
		{
			"blank system package name",
			func(c *Config) { c.Provision.SystemPackages = []string{"git", " "} },
			"empty name",
		},
		{
			"malformed non-interactive env",
			func(c *Config) { c.Provision.NonInteractiveEnv = "NOTANASSIGNMENT" },
			"KEY=value",
		},
		{
			"missing python vcs ref",
			func(c *Config) { c.Provision.PythonVCSRef = "" },
			"python_vcs_ref",
		},
		{
			"missing python package",
			func(c *Config) { c.Provision.PythonPackage = "" },
			"python_package",
		},
		{
			"missing repo url",
			func(c *Config) { c.Provision.RepoURL = "" },
			"repo_url",
		},
		{
			"missing target path",
			func(c *Config) { c.Provision.TargetPath = "" },
			"target_path",
		},
		{
			"relative target path",
			func(c *Config) { c.Provision.TargetPath = "workspace/toolkit" },
			"absolute",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrConfigInvalid)
			assert.Contains(t, err.Error(), tc.detail)
		})
	}
}

func TestValidate_Verify(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Verify.Command = nil
	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)

	cfg = DefaultConfig()
	cfg.Verify.Command = []string{"pytest", "  "}
	err = Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestValidate_EmptyNonInteractiveEnvAllowed(t *testing.T) {
	t.Parallel()

	// Empty means "use the built-in default"; only malformed values fail.
	cfg := DefaultConfig()
	cfg.Provision.NonInteractiveEnv = ""
	assert.NoError(t, Validate(cfg))
}
