//go:build !tinygo

package led

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSysfs(t *testing.T) (*SysfsLine, string) {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "ACT"), 0755); err != nil {
		t.Fatal(err)
	}
	line := NewSysfsLine("ACT")
	line.root = root
	return line, root
}

func readAttr(t *testing.T, root, attr string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, "ACT", attr))
	if err != nil {
		t.Fatalf("read %s: %v", attr, err)
	}
	return string(b)
}

func TestSysfsLine(t *testing.T) {
	line, root := newTestSysfs(t)

	if err := line.Configure(); err != nil {
		t.Fatalf("Configure returned error: %v", err)
	}
	if got := readAttr(t, root, "trigger"); got != "none" {
		t.Errorf("trigger: got %q, want none", got)
	}

	if err := line.Write(true); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if got := readAttr(t, root, "brightness"); got != "1" {
		t.Errorf("brightness: got %q, want 1", got)
	}

	if err := line.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if got := readAttr(t, root, "brightness"); got != "0" {
		t.Errorf("brightness after close: got %q, want 0", got)
	}
}

func TestSysfsLineMissingLED(t *testing.T) {
	line := NewSysfsLine("NOPE")
	line.root = t.TempDir()

	if err := line.Configure(); err == nil {
		t.Fatal("expected error for missing led directory")
	}
}
