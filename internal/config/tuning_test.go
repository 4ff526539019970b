package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Default() {
		t.Errorf("missing file changed tuning: %+v", got)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := "fastBasePrice: 20\nbiteChance: 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.FastBasePrice != 20 {
		t.Errorf("FastBasePrice = %v, want 20", got.FastBasePrice)
	}
	if got.BiteChance != 0.9 {
		t.Errorf("BiteChance = %v, want 0.9", got.BiteChance)
	}
	if got.FastGrowth != Default().FastGrowth {
		t.Errorf("FastGrowth = %v, want default %v", got.FastGrowth, Default().FastGrowth)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("fastBasePrice: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
