package bedrock

import (
	"context"
	"path/filepath"
	"testing"
)

func isolateAWSEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_MAX_ATTEMPTS", "")
	t.Setenv("AWS_RETRY_MODE", "")
}

func TestLoadAWSConfig_SingleAttempt(t *testing.T) {
	isolateAWSEnv(t)

	cfg, err := loadAWSConfig(context.Background(), "us-east-1")
	if err != nil {
		t.Fatalf("loadAWSConfig failed: %v", err)
	}
	if cfg.RetryMaxAttempts != 1 {
		t.Errorf("Expected RetryMaxAttempts=1, got %d", cfg.RetryMaxAttempts)
	}
	if cfg.Region != "us-east-1" {
		t.Errorf("Expected region us-east-1, got %s", cfg.Region)
	}
}

func TestNewClient_RequiresModelID(t *testing.T) {
	isolateAWSEnv(t)

	if _, err := NewClient(context.Background(), "us-east-1", ""); err == nil {
		t.Fatal("Expected error for empty model ID")
	}
}
