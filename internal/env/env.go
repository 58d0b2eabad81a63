// Package env resolves the runtime environment the process runs in.
package env

import (
	"os"
	"strings"

	"github.com/transly-team/transly/internal/envvar"
)

// Environment is the runtime environment identifier.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// FromEnv reads the environment from TRANSLY_ENV, defaulting to development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.TranslyEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}
