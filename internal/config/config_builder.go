package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources in precedence order. The
// first source that fails is recorded in err and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected sources on top of [defaultConfig]. Later
// sources override earlier ones for every non-zero field.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("collecting configuration sources: %w", b.err)
	}

	config := defaultConfig()
	for _, src := range b.configs {
		if err := mergo.Merge(config, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging configuration sources: %w", err)
		}
	}
	config.normalize()

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) with(cfg *StructuredConfig) *configBuilder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// withJSON loads the file named by the last source that set JSONFilePath,
// so a -c flag beats the CONFIG variable.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, src := range b.configs {
		if src.JSONFilePath != "" {
			jsonPath = src.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
