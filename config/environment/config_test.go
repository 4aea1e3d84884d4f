package environment

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "DATA_DIRS", "CORS_ALLOW_ORIGINS", "PRELOAD_DATASETS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.GinMode != "debug" || cfg.PreloadDatasets {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DataDirs, []string{"./app/data", ".", "./data"}) {
		t.Errorf("DataDirs = %v", cfg.DataDirs)
	}
	if !reflect.DeepEqual(cfg.AllowOrigins, []string{"*"}) {
		t.Errorf("AllowOrigins = %v", cfg.AllowOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATA_DIRS", " /srv/data , ,/opt/csv")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://budgetpilot.app")
	t.Setenv("PRELOAD_DATASETS", "true")

	cfg := Load()
	if cfg.Port != "9000" || !cfg.PreloadDatasets {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.DataDirs, []string{"/srv/data", "/opt/csv"}) {
		t.Errorf("DataDirs = %v", cfg.DataDirs)
	}
	if !reflect.DeepEqual(cfg.AllowOrigins, []string{"https://budgetpilot.app"}) {
		t.Errorf("AllowOrigins = %v", cfg.AllowOrigins)
	}
}

func TestGetEnvBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("PRELOAD_DATASETS", "sometimes")
	if getEnvBool("PRELOAD_DATASETS", true) != true {
		t.Error("invalid bool should fall back")
	}
}
