package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/makedot/makedot/filesystem"
	"github.com/makedot/makedot/where"
	"github.com/pelletier/go-toml/v2"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// ErrNoConfig is returned when no explicit configuration was given and the default one is missing.
var ErrNoConfig = errors.New("no configuration file found, please provide a valid file with --config")

// File is the palette configuration as written by the user.
type File struct {
	Base       map[string]string `mapstructure:"base" json:"base,omitempty" jsonschema_description:"Structural colors (white, black, light, dark) as hex strings."`
	Colors     map[string]string `mapstructure:"colors" json:"colors,omitempty" jsonschema_description:"Accent colors as hex strings. A <name>_light entry fills the bright terminal slot of <name>."`
	XtermNames []string          `mapstructure:"xterm_names" json:"xterm_names,omitempty" jsonschema:"minItems=6,maxItems=6" jsonschema_description:"Accent names filling terminal slots 1 to 6 (and 9 to 14), in order."`
	XtermDark  map[string]string `mapstructure:"xterm_dark" json:"xterm_dark,omitempty" jsonschema_description:"Explicit 16 color table for dark themes, keyed 0 to 15."`
	XtermLight map[string]string `mapstructure:"xterm_light" json:"xterm_light,omitempty" jsonschema_description:"Explicit 16 color table for light themes, keyed 0 to 15."`

	// Extra holds every other key. These are handed to templates untouched.
	Extra map[string]any `mapstructure:",remain" json:"-"`
}

// Locate picks the configuration file: the explicit path when given, the default one otherwise.
func Locate(explicit mo.Option[string]) (string, error) {
	if path, ok := explicit.Get(); ok {
		if !isFile(path) {
			return "", fmt.Errorf("configuration file %s does not exist", path)
		}
		return path, nil
	}

	path := where.Config()
	if !isFile(path) {
		return "", ErrNoConfig
	}

	return path, nil
}

func isFile(path string) bool {
	info, err := filesystem.API().Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads a TOML palette configuration.
func Load(path string) (*File, error) {
	if err := checkKeys(path); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetFs(filesystem.API())
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read configuration %s: %w", path, err)
	}

	var file File
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode configuration %s: %w", path, err)
	}

	return &file, nil
}

// checkKeys rejects keys with uppercase letters. Viper folds keys to lowercase,
// so "Red" would otherwise replace "red" without notice.
func checkKeys(path string) error {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return fmt.Errorf("read configuration %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("read configuration %s: %w", path, err)
	}

	for name, value := range raw {
		if name != strings.ToLower(name) {
			return fmt.Errorf("%s: key %q must be lowercase", path, name)
		}

		table, ok := value.(map[string]any)
		if !ok {
			continue
		}

		for inner := range table {
			if inner != strings.ToLower(inner) {
				return fmt.Errorf("%s: key %s.%s must be lowercase", path, name, inner)
			}
		}
	}

	return nil
}

// Schema describes the configuration file as JSON schema, usable by TOML-aware editors.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}

	schema := reflector.Reflect(&File{})
	schema.Title = "makedot palette configuration"
	return schema
}
