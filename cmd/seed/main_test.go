package main

import (
	"path/filepath"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog(filepath.Join("testdata", "templates.yaml"))
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}
	if len(cat.Templates) != 2 {
		t.Fatalf("templates = %d, want 2", len(cat.Templates))
	}

	first := cat.Templates[0]
	if first.Code != "RM-HR-COIL" || first.ProductSKU != "HR-COIL-2MM" {
		t.Errorf("first template = %+v", first)
	}
	if len(first.Steps) != 3 {
		t.Fatalf("first template steps = %d, want 3", len(first.Steps))
	}
	if first.Steps[0].TargetQty == nil || *first.Steps[0].TargetQty != 120.5 {
		t.Errorf("steps[0].TargetQty = %v, want 120.5", first.Steps[0].TargetQty)
	}
	if !first.Steps[2].Optional {
		t.Error("steps[2] should be optional")
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := loadCatalog(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("loadCatalog() should fail on missing file")
	}
}

func TestSpecFromCatalog(t *testing.T) {
	cat, err := loadCatalog(filepath.Join("testdata", "templates.yaml"))
	if err != nil {
		t.Fatalf("loadCatalog() error = %v", err)
	}

	spec := specFromCatalog(cat.Templates[0])
	if spec.Version != "1.0" {
		t.Errorf("Version = %s", spec.Version)
	}
	for i, step := range spec.Steps {
		if step.SequenceNumber != i+1 {
			t.Errorf("steps[%d].SequenceNumber = %d, want %d", i, step.SequenceNumber, i+1)
		}
	}
	if spec.Steps[2].Mandatory {
		t.Error("optional catalog step must map to Mandatory=false")
	}

	// Missing version falls back to the default label.
	spec2 := specFromCatalog(cat.Templates[1])
	if spec2.Version != "1.0" {
		t.Errorf("default version = %s, want 1.0", spec2.Version)
	}
}
