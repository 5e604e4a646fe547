package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

func TestDefaultAndSave(t *testing.T) {
	path := blippath.AbsolutePath(filepath.Join(t.TempDir(), "config"))

	cfg := Default(path)
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path.String())
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[core]") {
		t.Errorf("config missing [core] section: %q", content)
	}
	if !strings.Contains(content, "repositoryformatversion") {
		t.Errorf("config missing format version: %q", content)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := blippath.AbsolutePath(filepath.Join(t.TempDir(), "config"))

	cfg := Default(path)
	cfg.Set("core", "defaultbranch", "trunk")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := loaded.DefaultBranch(); got != "trunk" {
		t.Errorf("DefaultBranch = %q, want %q", got, "trunk")
	}
	if got := loaded.FormatVersion(); got != 0 {
		t.Errorf("FormatVersion = %d, want 0", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := blippath.AbsolutePath(filepath.Join(t.TempDir(), "config"))
	if _, err := Load(path); err == nil {
		t.Error("expected error loading missing config")
	}
}

func TestDefaultBranchFallback(t *testing.T) {
	path := blippath.AbsolutePath(filepath.Join(t.TempDir(), "config"))
	if err := os.WriteFile(path.String(), []byte("[core]\nrepositoryformatversion = 0\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.DefaultBranch(); got != blippath.DefaultBranch {
		t.Errorf("DefaultBranch = %q, want %q", got, blippath.DefaultBranch)
	}
}
