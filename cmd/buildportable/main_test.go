package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stageCrate(t *testing.T) (crateDir, stub string) {
	t.Helper()
	crateDir = t.TempDir()

	pkg := filepath.Join(crateDir, "pkg")
	if err := os.MkdirAll(pkg, 0o755); err != nil {
		t.Fatal(err)
	}
	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	if err := os.WriteFile(filepath.Join(pkg, "vaporetto_wasm_bg.wasm"), wasm, 0o644); err != nil {
		t.Fatal(err)
	}
	loader := "let wasm_bindgen;\nwasm_bindgen = init;\n"
	if err := os.WriteFile(filepath.Join(pkg, "vaporetto_wasm.js"), []byte(loader), 0o644); err != nil {
		t.Fatal(err)
	}

	stub = filepath.Join(t.TempDir(), "stub-wasm-pack")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return crateDir, stub
}

func TestRootCmd_BuildsBundle(t *testing.T) {
	crateDir, stub := stageCrate(t)
	out := filepath.Join(t.TempDir(), "bundle.js")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--model", "model.zst",
		"--identifier", "jp",
		"--output", out,
		"--crate-dir", crateDir,
		"--wasm-pack", stub,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "async function vaporetto_jp(){") {
		t.Error("bundle lacks the generated factory")
	}
}

func TestRootCmd_RequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--model", "model.zst"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute should fail without --identifier and --output")
	}
}

func TestRootCmd_EnvOverridesCrateDir(t *testing.T) {
	crateDir, stub := stageCrate(t)
	out := filepath.Join(t.TempDir(), "bundle.js")

	t.Setenv("VAPORETTO_CRATE_DIR", crateDir)
	t.Setenv("VAPORETTO_WASM_PACK", stub)

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--model", "model.zst",
		"--identifier", "jp",
		"--output", out,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("bundle not written: %v", err)
	}
}
