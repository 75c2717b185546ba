package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestBinaryVersionDefault(t *testing.T) {
	// Release builds override this via -ldflags
	if BinaryVersion != "dev" {
		t.Errorf("Expected default BinaryVersion 'dev', got %q", BinaryVersion)
	}
}

func TestModuleVersion(t *testing.T) {
	// Test binaries may not carry a main module version; the function
	// must mirror whatever debug.ReadBuildInfo reports.
	want := ""
	if info, ok := debug.ReadBuildInfo(); ok {
		want = info.Main.Version
	}
	if got := ModuleVersion(); got != want {
		t.Errorf("ModuleVersion() = %q, want %q", got, want)
	}
}
