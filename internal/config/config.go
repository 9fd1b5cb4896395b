// Package config loads the TOML tool configuration: validation policy,
// encoder offset behavior, and jurisdiction-specific data-element
// extensions merged into the registry at startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/drennick/aamvactl/internal/aamva/registry"
)

type CodecConfig struct {
	Policy     PolicyConfig     `toml:"policy"`
	Encoder    EncoderConfig    `toml:"encoder"`
	Extensions []ExtensionField `toml:"extension"`
}

type PolicyConfig struct {
	MaxValidityYears int  `toml:"max_validity_years"`
	Strict           bool `toml:"strict"`
}

type EncoderConfig struct {
	// CompensatedOffsets defaults to true; the pointer keeps an absent
	// key distinguishable from an explicit false.
	CompensatedOffsets *bool `toml:"compensated_offsets"`
}

// ExtensionField declares one jurisdiction-specific data element, e.g.
// the ZC-subfile codes a state adds on top of the standard catalog.
type ExtensionField struct {
	Code   string   `toml:"code"`
	Name   string   `toml:"name"`
	Kind   string   `toml:"kind"`
	MinLen int      `toml:"min_len"`
	MaxLen int      `toml:"max_len"`
	Enum   []string `toml:"enum"`
}

// LoadCodecConfig reads and validates a config file, applying defaults
// for absent keys.
func LoadCodecConfig(path string) (CodecConfig, error) {
	var cfg CodecConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return CodecConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return CodecConfig{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if cfg.Policy.MaxValidityYears == 0 {
		cfg.Policy.MaxValidityYears = 8
	}
	if err := ValidateCodecConfig(cfg); err != nil {
		return CodecConfig{}, err
	}
	return cfg, nil
}

func ValidateCodecConfig(cfg CodecConfig) error {
	if cfg.Policy.MaxValidityYears < 0 {
		return fmt.Errorf("policy max_validity_years must not be negative")
	}
	for i, ext := range cfg.Extensions {
		if _, err := ext.Definition(); err != nil {
			return fmt.Errorf("extension[%d] invalid: %w", i, err)
		}
	}
	return nil
}

// CompensatedOffsetsOrDefault resolves the encoder toggle, defaulting
// to the legacy arithmetic.
func (c EncoderConfig) CompensatedOffsetsOrDefault() bool {
	if c.CompensatedOffsets == nil {
		return true
	}
	return *c.CompensatedOffsets
}

// Definition converts the extension declaration into a registry
// definition, rejecting shapes the registry would refuse.
func (e ExtensionField) Definition() (registry.Definition, error) {
	code := strings.TrimSpace(e.Code)
	if len(code) < 2 || len(code) > 4 {
		return registry.Definition{}, fmt.Errorf("code %q must be 2-4 characters", e.Code)
	}
	if strings.TrimSpace(e.Name) == "" {
		return registry.Definition{}, fmt.Errorf("code %q missing name", code)
	}
	var kind registry.Kind
	switch strings.ToLower(strings.TrimSpace(e.Kind)) {
	case "text", "":
		kind = registry.KindText
	case "enum":
		kind = registry.KindEnum
	case "date":
		kind = registry.KindDate
	case "numeric":
		kind = registry.KindNumeric
	default:
		return registry.Definition{}, fmt.Errorf("code %q has unknown kind %q", code, e.Kind)
	}
	if kind == registry.KindEnum && len(e.Enum) == 0 {
		return registry.Definition{}, fmt.Errorf("code %q is enum kind without values", code)
	}
	if e.MinLen < 0 || e.MaxLen < e.MinLen {
		return registry.Definition{}, fmt.Errorf("code %q has bad length bounds %d..%d", code, e.MinLen, e.MaxLen)
	}
	return registry.Definition{
		Code:     code,
		Name:     strings.TrimSpace(e.Name),
		Kind:     kind,
		MinLen:   e.MinLen,
		MaxLen:   e.MaxLen,
		Enum:     e.Enum,
		Category: registry.CategoryCompliance,
	}, nil
}

// Registry builds the effective registry: the standard catalog plus
// any configured extensions.
func (c CodecConfig) Registry() (*registry.Registry, error) {
	reg := registry.Default()
	if len(c.Extensions) == 0 {
		return reg, nil
	}
	defs := make([]registry.Definition, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		d, err := ext.Definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return reg.WithDefinitions(defs...)
}
