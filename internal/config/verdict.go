package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// LoadVerdictConfig reads thresholds and templates from path. An empty path
// means DefaultVerdictConfigPath, and a missing default file yields Default().
func LoadVerdictConfig(path string) (*VerdictConfig, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultVerdictConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Decode over the defaults so keys absent from the file keep their
	// default value and an explicit 0 threshold is kept.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyTemplateDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyTemplateDefaults(cfg *VerdictConfig) {
	t := &cfg.Verdict.Templates
	defaultString(&t.Tie, DefaultTemplates.Tie)
	defaultString(&t.MoreDetailed, DefaultTemplates.MoreDetailed)
	defaultString(&t.MoreConcise, DefaultTemplates.MoreConcise)
	defaultString(&t.Success, DefaultTemplates.Success)
	defaultString(&t.Warning, DefaultTemplates.Warning)
	defaultString(&t.Concise, DefaultTemplates.Concise)
	defaultString(&t.Comparable, DefaultTemplates.Comparable)
	defaultString(&t.Failed, DefaultTemplates.Failed)
	defaultString(&t.NoSystem, DefaultTemplates.NoSystem)
}

func defaultString(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func (c *VerdictConfig) Validate() error {
	if c.Verdict.Thresholds.DetailPct < 0 {
		return fmt.Errorf("invalid detail_pct %.2f: must not be negative", c.Verdict.Thresholds.DetailPct)
	}
	if c.Verdict.Thresholds.CostPct < 0 {
		return fmt.Errorf("invalid cost_pct %.2f: must not be negative", c.Verdict.Thresholds.CostPct)
	}

	for name, source := range c.Verdict.Templates.Named() {
		if source == "" {
			return fmt.Errorf("template %s is missing", name)
		}
		if _, err := template.New(name).Parse(source); err != nil {
			return fmt.Errorf("invalid template %s: %w", name, err)
		}
	}

	return nil
}
