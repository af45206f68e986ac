package doctor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigFileCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("explicit path missing", func(t *testing.T) {
		check := &ConfigFileCheck{ConfigPath: filepath.Join(tmpDir, "nonexistent.yaml")}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail, got %v", result.Status)
		}
	})

	t.Run("config found", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, ".tandem.yaml", "version: 1\nsession: work\n")

		check := &ConfigFileCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigFileCheck{}
		if check.Name() != "config_file" {
			t.Errorf("expected name 'config_file', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestConfigSchemaCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid schema", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "valid.yaml", "version: 1\nsession: work\n")

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "invalid.yaml", "this is not valid yaml: [unclosed")

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail for broken yaml, got %v", result.Status)
		}
	})

	t.Run("schema violation", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "badsplit.yaml", "version: 1\nsplit: diagonal\n")

		check := &ConfigSchemaCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusFail {
			t.Errorf("expected StatusFail for bad split mode, got %v", result.Status)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &ConfigSchemaCheck{}
		if check.Name() != "config_schema" {
			t.Errorf("expected name 'config_schema', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestDiskPathCheck(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("path exists", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "ok.yaml",
			"version: 1\nmonitor:\n  disk_path: /\n")

		check := &DiskPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusPass {
			t.Errorf("expected StatusPass, got %v: %s", result.Status, result.Message)
		}
	})

	t.Run("path missing", func(t *testing.T) {
		cfgPath := writeConfig(t, tmpDir, "gone.yaml",
			"version: 1\nmonitor:\n  disk_path: /definitely/not/mounted/here\n")

		check := &DiskPathCheck{ConfigPath: cfgPath}
		result := check.Run()

		if result.Status != StatusWarn {
			t.Errorf("expected StatusWarn for unmounted path, got %v", result.Status)
		}
	})

	t.Run("name and category", func(t *testing.T) {
		check := &DiskPathCheck{}
		if check.Name() != "disk_path" {
			t.Errorf("expected name 'disk_path', got %s", check.Name())
		}
		if check.Category() != "CONFIG" {
			t.Errorf("expected category 'CONFIG', got %s", check.Category())
		}
	})
}

func TestNewConfigChecks(t *testing.T) {
	checks := NewConfigChecks("")

	if len(checks) != 3 {
		t.Fatalf("expected 3 config checks, got %d", len(checks))
	}

	for _, c := range checks {
		if c.Category() != "CONFIG" {
			t.Errorf("expected CONFIG category, got %s", c.Category())
		}
	}
}
