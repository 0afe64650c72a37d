// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
//
// Application settings (logging, default engine, output directory) live in the global viper
// instance and can be set through MAKEDOT_* environment variables or command line flags.
// The palette configuration file is handled separately by the theme package.
package config

import (
	"strings"

	"github.com/makedot/makedot/constant"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults and environment bindings.
func Setup() error {
	viper.SetEnvPrefix(constant.Makedot)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		if err := viper.BindEnv(env); err != nil {
			return err
		}
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	return nil
}
