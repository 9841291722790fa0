// Package config loads the declarative splash-screen configuration.
//
// The configuration is read once per run and treated as read-only. Missing
// optional fields resolve to defaults; the primary image is checked only at
// generation time through RequireImage.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	splasherrors "github.com/provide-io/splashgen/pkg/splash/errors"
)

// Config is the splash-screen configuration.
type Config struct {
	Color              string `yaml:"color" json:"color" toml:"color" validate:"omitempty,hexcolor6"`
	ColorDark          string `yaml:"color_dark" json:"color_dark" toml:"color_dark" validate:"omitempty,hexcolor6"`
	Image              string `yaml:"image" json:"image" toml:"image"`
	IconBackground     string `yaml:"splash_icon_background" json:"splash_icon_background" toml:"splash_icon_background" validate:"omitempty,hexcolor6"`
	IconBackgroundDark string `yaml:"splash_icon_background_dark" json:"splash_icon_background_dark" toml:"splash_icon_background_dark" validate:"omitempty,hexcolor6"`
	BrandingImage      string `yaml:"branding_image" json:"branding_image" toml:"branding_image"`

	Animation AnimationConfig `yaml:"animation" json:"animation" toml:"animation"`
	Android   AndroidConfig   `yaml:"android" json:"android" toml:"android"`
	IOS       IOSConfig       `yaml:"ios" json:"ios" toml:"ios"`
}

// AnimationConfig holds the per-platform animation files.
type AnimationConfig struct {
	Android string `yaml:"android" json:"android" toml:"android"`
	IOS     string `yaml:"ios" json:"ios" toml:"ios"`
}

// AndroidConfig locates the Android project.
type AndroidConfig struct {
	Enabled         *bool  `yaml:"enabled" json:"enabled" toml:"enabled"`
	ProjectDir      string `yaml:"project_dir" json:"project_dir" toml:"project_dir"`
	MainActivity    string `yaml:"main_activity" json:"main_activity" toml:"main_activity"`
	PostSplashTheme string `yaml:"post_splash_theme" json:"post_splash_theme" toml:"post_splash_theme"`
}

// IOSConfig locates the iOS project.
type IOSConfig struct {
	Enabled    *bool  `yaml:"enabled" json:"enabled" toml:"enabled"`
	ProjectDir string `yaml:"project_dir" json:"project_dir" toml:"project_dir"`
	Storyboard string `yaml:"storyboard" json:"storyboard" toml:"storyboard"`
	InfoPlist  string `yaml:"info_plist" json:"info_plist" toml:"info_plist"`
}

// Load reads and parses the configuration file at path. The format is
// chosen by extension: .json, .toml, anything else is read as YAML.
func Load(fsys afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to read config file: %w", splasherrors.ErrConfig, err)
	}

	cfg, err := Parse(data, formatFor(path))
	if err != nil {
		return Config{}, fmt.Errorf("%w (%s)", err, path)
	}
	return cfg, nil
}

// Format names a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Parse decodes data in the given format, applies defaults and validates
// the result.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	var err error

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		// An empty document is a valid, all-defaults configuration.
		if len(bytes.TrimSpace(data)) > 0 {
			err = yaml.Unmarshal(data, &cfg)
		}
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse %s: %w", splasherrors.ErrConfig, format, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RequireImage reports ErrConfig when no primary image is configured.
func (c Config) RequireImage() error {
	if strings.TrimSpace(c.Image) == "" {
		return fmt.Errorf("%w: image is required", splasherrors.ErrConfig)
	}
	return nil
}

// HasBranding reports whether a branding image is configured.
func (c Config) HasBranding() bool { return c.BrandingImage != "" }

// AndroidEnabled reports whether Android resources should be generated.
func (c Config) AndroidEnabled() bool { return c.Android.Enabled == nil || *c.Android.Enabled }

// IOSEnabled reports whether iOS resources should be generated.
func (c Config) IOSEnabled() bool { return c.IOS.Enabled == nil || *c.IOS.Enabled }
