package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteVariables(t *testing.T) {
	var buf bytes.Buffer
	if err := writeVariables(&buf); err != nil {
		t.Fatalf("writeVariables failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("Expected header plus 6 variables, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "gp") || !strings.Contains(lines[1], "linear") {
		t.Errorf("Unexpected gp line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "500000") {
		t.Errorf("Expected cellA threshold in %q", lines[2])
	}
}

func TestRootCommand(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "fig")

	csv := "ymd,time,gp,cellA,bioA,cellV,bioV,ocV\n" +
		"2012030100,0,0,0,0,0,0,0\n" +
		"2012030101,1,1,10,0.1,1,0.01,0.5\n" +
		"2012030102,2,2,20,0.2,2,0.02,0.6\n"
	if err := os.WriteFile(filepath.Join(inputDir, "snowalgae_2012_test_o_mal.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var stderr bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"--input-dir", inputDir,
		"--output-dir", outputDir,
		"--variables", "gp,ocV",
		"--stride", "1",
		"snowalgae_2012_test",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v\n%s", err, stderr.String())
	}

	for _, name := range []string{"gp_snowalgae_2012_test.png", "ocV_snowalgae_2012_test.png"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("Expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outputDir, "cellA_snowalgae_2012_test.png")); !os.IsNotExist(err) {
		t.Error("Expected only the selected variables to be plotted")
	}
	if !strings.Contains(stderr.String(), "does not exist") {
		t.Errorf("Expected missing model files to be logged, got:\n%s", stderr.String())
	}
}

func TestRootCommandInvalidConfig(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "fig")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--input-dir", t.TempDir(),
		"--output-dir", outputDir,
		"--stride", "0",
		"snowalgae_2012_test",
	})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Expected error for invalid stride")
	}
	if !strings.Contains(err.Error(), "plot.stride") {
		t.Errorf("Expected stride validation error, got: %v", err)
	}
	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("Expected no output for an invalid configuration")
	}
}

func TestRootCommandAcceptsDatasetArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--input-dir", t.TempDir(),
		"--output-dir", t.TempDir(),
		"snowalgae_1998_Philistine_wfdei", "snowalgae_2012_test",
	})

	// Both datasets have no model output, so they are skipped without failing.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
}

func TestRootCommandConfigFlagIsPerCommand(t *testing.T) {
	first := newRootCmd()
	if err := first.PersistentFlags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatal(err)
	}

	second := newRootCmd()
	second.SetOut(&bytes.Buffer{})
	second.SetErr(&bytes.Buffer{})
	second.SetArgs([]string{"--input-dir", t.TempDir(), "--output-dir", t.TempDir(), "snowalgae_2012_test"})
	if err := second.Execute(); err != nil {
		t.Fatalf("Expected a fresh command to ignore another command's --config, got: %v", err)
	}
}
