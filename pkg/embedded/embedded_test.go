package embedded

import (
	"os"
	"path/filepath"
	"testing"
)

// 未初始化时所有路径都应回退到操作系统文件系统
func TestReadFileFallsBackToOS(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(path, []byte("key: value"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "key: value" {
		t.Errorf("unexpected content: %q", string(data))
	}
}

func TestExists(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "present.yaml")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if !Exists(path) {
		t.Error("Exists should report true for an existing file")
	}
	if Exists(filepath.Join(tempDir, "missing.yaml")) {
		t.Error("Exists should report false for a missing file")
	}
}
