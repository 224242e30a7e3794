// Package config wires viper to clipdeck's defaults, environment and config file.
package config

import (
	"errors"
	"strings"

	"github.com/clipdeck/clipdeck/constant"
	"github.com/clipdeck/clipdeck/filesystem"
	"github.com/clipdeck/clipdeck/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds CLIPDECK_* variables and reads clipdeck.toml if present.
func Setup() error {
	viper.SetConfigName(constant.Clipdeck)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Clipdeck)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}
