package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Device.Simulated {
		t.Error("default device should be simulated")
	}
	if cfg.Capture.SampleRate != 14e6 {
		t.Errorf("default sample rate = %g, want 14e6", cfg.Capture.SampleRate)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rsacap.hcl")
	body := `
device {
  simulated = false
  id        = 1
}
capture {
  frequency       = 2.4e9
  reference_level = -30
  samples         = 4096
}
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Simulated {
		t.Error("file should have switched the device to hardware")
	}
	if cfg.Device.ID != 1 {
		t.Errorf("device id = %d, want 1", cfg.Device.ID)
	}
	if cfg.Capture.Frequency != 2.4e9 {
		t.Errorf("frequency = %g, want 2.4e9", cfg.Capture.Frequency)
	}
	if cfg.Capture.ReferenceLevel != -30 {
		t.Errorf("reference level = %g, want -30", cfg.Capture.ReferenceLevel)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Capture.SampleRate != 14e6 {
		t.Errorf("sample rate = %g, want the default 14e6", cfg.Capture.SampleRate)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("RSACAP_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want env override debug", cfg.Log.Level)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.hcl")); err == nil {
		t.Error("loading a missing config file should fail")
	}
}
