package config

import (
	"sort"

	"github.com/madergk/biods/internal/validation"
)

// Output formats understood by the build.
const (
	FormatCSSVariables   = "css/variables"
	FormatTSDeclarations = "typescript/es6-declarations"
	FormatJSONNested     = "json/nested"
)

// Config represents a biods project file (biods.yaml or biods.toml).
type Config struct {
	Source     []string            `yaml:"source" toml:"source" validate:"required,min=1,dive,required"`
	Prefix     string              `yaml:"prefix,omitempty" toml:"prefix" validate:"omitempty,css_ident"`
	Categories Categories          `yaml:"categories,omitempty" toml:"categories"`
	Platforms  map[string]Platform `yaml:"platforms" toml:"platforms" validate:"required,min=1,dive"`

	// BaseDir is the directory relative paths are resolved against.
	BaseDir string `yaml:"-" toml:"-"`
}

// Categories lists the token categories a document must or should define.
type Categories struct {
	Required []string `yaml:"required,omitempty" toml:"required" validate:"dive,required"`
	Optional []string `yaml:"optional,omitempty" toml:"optional" validate:"dive,required"`
}

// Platform is one output target with its build directory.
type Platform struct {
	BuildPath string `yaml:"build_path" toml:"build_path" validate:"required"`
	Files     []File `yaml:"files" toml:"files" validate:"required,min=1,dive"`
}

// File is one generated artifact.
type File struct {
	Destination      string `yaml:"destination" toml:"destination" validate:"required"`
	Format           string `yaml:"format" toml:"format" validate:"required,oneof=css/variables typescript/es6-declarations json/nested"`
	OutputReferences bool   `yaml:"output_references,omitempty" toml:"output_references"`
}

// DefaultConfig mirrors the layout the design system has always used.
func DefaultConfig() *Config {
	schema := validation.DefaultSchema()
	return &Config{
		Source: []string{"tokens/tokens.json"},
		Categories: Categories{
			Required: schema.Required,
			Optional: schema.Optional,
		},
		Platforms: defaultPlatforms(),
		BaseDir:   ".",
	}
}

func defaultPlatforms() map[string]Platform {
	const buildPath = "src/tokens/generated/"
	return map[string]Platform{
		"css": {
			BuildPath: buildPath,
			Files:     []File{{Destination: "variables.css", Format: FormatCSSVariables, OutputReferences: true}},
		},
		"typescript": {
			BuildPath: buildPath,
			Files:     []File{{Destination: "tokens.ts", Format: FormatTSDeclarations}},
		},
		"json": {
			BuildPath: buildPath,
			Files:     []File{{Destination: "tokens.json", Format: FormatJSONNested}},
		},
	}
}

// Schema returns the validation schema described by the categories section.
func (c *Config) Schema() validation.Schema {
	return validation.Schema{
		Required: append([]string(nil), c.Categories.Required...),
		Optional: append([]string(nil), c.Categories.Optional...),
	}
}

// PlatformNames returns the configured platforms in a stable order.
func (c *Config) PlatformNames() []string {
	names := make([]string, 0, len(c.Platforms))
	for name := range c.Platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if len(c.Source) == 0 {
		c.Source = defaults.Source
	}
	if len(c.Categories.Required) == 0 && len(c.Categories.Optional) == 0 {
		c.Categories = defaults.Categories
	}
	if len(c.Platforms) == 0 {
		c.Platforms = defaults.Platforms
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
}
