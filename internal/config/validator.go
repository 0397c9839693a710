package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	bioerrors "github.com/madergk/biods/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	cssIdentPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return bioerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for i, pattern := range cfg.Source {
		if !doublestar.ValidatePattern(pattern) {
			return bioerrors.NewValidationError(fmt.Sprintf("source[%d]", i), fmt.Sprintf("invalid glob pattern %q", pattern), nil)
		}
	}

	seen := make(map[string]string)
	for _, name := range cfg.PlatformNames() {
		platform := cfg.Platforms[name]
		for i, file := range platform.Files {
			target := strings.TrimSuffix(platform.BuildPath, "/") + "/" + file.Destination
			if other, ok := seen[target]; ok {
				return bioerrors.NewValidationError(
					fmt.Sprintf("platforms.%s.files[%d].destination", name, i),
					fmt.Sprintf("%s is also written by platform %q", target, other),
					nil,
				)
			}
			seen[target] = name
		}
	}

	both := make(map[string]struct{}, len(cfg.Categories.Required))
	for _, c := range cfg.Categories.Required {
		both[c] = struct{}{}
	}
	for _, c := range cfg.Categories.Optional {
		if _, ok := both[c]; ok {
			return bioerrors.NewValidationError("categories.optional", fmt.Sprintf("category %q is already required", c), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return bioerrors.NewValidationError(field, msg, err)
	}

	return bioerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
