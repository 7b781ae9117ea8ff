// Package config loads service configuration from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// FromEnv fills target from the environment variables named by its env tags.
// Fields with an envDefault tag keep that value when the variable is unset.
func FromEnv(target any) error {
	if target == nil {
		return fmt.Errorf("config target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("load env config: %w", err)
	}
	return nil
}
