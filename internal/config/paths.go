package config

import (
	"os"
	"path/filepath"

	"github.com/envgate/envgate/internal/constants"
	envgateerrors "github.com/envgate/envgate/internal/errors"
)

// GlobalConfigDir returns the global envgate configuration directory.
// If ENVGATE_HOME is set, it is used directly; otherwise ~/.envgate.
func GlobalConfigDir() (string, error) {
	if home := os.Getenv("ENVGATE_HOME"); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", envgateerrors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, constants.EnvgateHome), nil
}

// ProjectConfigPath returns the path of the project-level config file
// relative to the current working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.EnvgateHome, "config.yaml")
}
