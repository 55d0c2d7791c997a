package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verdict.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadVerdictConfig_Success(t *testing.T) {
	path := writeConfig(t, `verdict:
  thresholds:
    detail_pct: 10
  templates:
    tie: "Tie at {{.Tokens}}"
`)

	cfg, err := LoadVerdictConfig(path)
	if err != nil {
		t.Fatalf("LoadVerdictConfig() failed: %v", err)
	}

	if cfg.Verdict.Thresholds.DetailPct != 10 {
		t.Errorf("Expected detail_pct=10, got %.1f", cfg.Verdict.Thresholds.DetailPct)
	}
	// Unset values are merged from the defaults
	if cfg.Verdict.Thresholds.CostPct != DefaultCostPct {
		t.Errorf("Expected cost_pct=%.1f (default), got %.1f", DefaultCostPct, cfg.Verdict.Thresholds.CostPct)
	}
	if cfg.Verdict.Templates.Tie != "Tie at {{.Tokens}}" {
		t.Errorf("Expected tie override, got %q", cfg.Verdict.Templates.Tie)
	}
	if cfg.Verdict.Templates.Warning != DefaultTemplates.Warning {
		t.Errorf("Expected default warning template, got %q", cfg.Verdict.Templates.Warning)
	}
}

func TestLoadVerdictConfig_ExplicitZeroThresholds(t *testing.T) {
	path := writeConfig(t, `verdict:
  thresholds:
    detail_pct: 0
    cost_pct: 0
`)

	cfg, err := LoadVerdictConfig(path)
	if err != nil {
		t.Fatalf("LoadVerdictConfig() failed: %v", err)
	}

	if cfg.Verdict.Thresholds.DetailPct != 0 {
		t.Errorf("Expected detail_pct=0, got %.1f", cfg.Verdict.Thresholds.DetailPct)
	}
	if cfg.Verdict.Thresholds.CostPct != 0 {
		t.Errorf("Expected cost_pct=0, got %.1f", cfg.Verdict.Thresholds.CostPct)
	}
	if cfg.Verdict.Templates.Tie != DefaultTemplates.Tie {
		t.Errorf("Expected default tie template, got %q", cfg.Verdict.Templates.Tie)
	}
}

func TestLoadVerdictConfig_DefaultPathMissingFallsBack(t *testing.T) {
	wd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadVerdictConfig("")
	if err != nil {
		t.Fatalf("Expected defaults when %s is missing, got %v", DefaultVerdictConfigPath, err)
	}
	if cfg.Verdict.Thresholds.DetailPct != DefaultDetailPct {
		t.Errorf("Expected default detail_pct, got %.1f", cfg.Verdict.Thresholds.DetailPct)
	}
}

func TestLoadVerdictConfig_FileNotFound(t *testing.T) {
	_, err := LoadVerdictConfig("/nonexistent/path/verdict.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadVerdictConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `verdict:
  thresholds:
    detail_pct: [1, 2
`)

	_, err := LoadVerdictConfig(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate_NegativeThresholds(t *testing.T) {
	tests := []struct {
		name       string
		thresholds Thresholds
		want       string
	}{
		{"detail", Thresholds{DetailPct: -1, CostPct: 15}, "invalid detail_pct"},
		{"cost", Thresholds{DetailPct: 5, CostPct: -3}, "invalid cost_pct"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Verdict.Thresholds = tt.thresholds

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected %q error, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_InvalidTemplate(t *testing.T) {
	cfg := Default()
	cfg.Verdict.Templates.Warning = "{{.TokenChangePct"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for invalid template syntax")
	}
	if !strings.Contains(err.Error(), "invalid template warning") {
		t.Errorf("Expected 'invalid template warning' error, got: %v", err)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config must validate: %v", err)
	}
}
