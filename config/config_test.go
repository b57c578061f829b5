package config

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.ServerPort)
	}
	if cfg.DataFile != "data/demobank.json" {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.AutopaySchedule != "0 6 * * *" {
		t.Errorf("expected default autopay schedule, got %q", cfg.AutopaySchedule)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("DATA_FILE", "/tmp/alt-state.json")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ServerPort != "9191" {
		t.Errorf("expected env port override, got %q", cfg.ServerPort)
	}
	if cfg.DataFile != "/tmp/alt-state.json" {
		t.Errorf("expected env data file override, got %q", cfg.DataFile)
	}
}

func TestCORSOriginList(t *testing.T) {
	cfg := &Config{CORSOrigins: "http://a.test, http://b.test ,"}
	origins := cfg.CORSOriginList()
	if len(origins) != 2 || origins[0] != "http://a.test" || origins[1] != "http://b.test" {
		t.Errorf("unexpected origin list: %v", origins)
	}
}
