package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestReplaceFile(t *testing.T) {
	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "App.tsx")

		if err := os.WriteFile(filename, []byte("initial"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		if err := replaceFile(filename, []byte("rewritten"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != "rewritten" {
			t.Errorf("Expected content 'rewritten', got '%s'", string(got))
		}
	})

	t.Run("Applies Permissions", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits only")
		}
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "perm.tsx")

		if err := replaceFile(filename, []byte("x"), 0640); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		info, err := os.Stat(filename)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0640 {
			t.Errorf("Expected mode 0640, got %v", info.Mode().Perm())
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "App.tsx")

		if err := replaceFile(filename, []byte("x"), 0644); err != nil {
			t.Fatalf("replaceFile failed: %v", err)
		}

		assertNoTempFiles(t, tmpDir)
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "missing_folder", "App.tsx")

		if err := replaceFile(filename, []byte("fail"), 0644); err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})

	t.Run("Failed Rename Keeps Target Intact", func(t *testing.T) {
		tmpDir := t.TempDir()
		target := filepath.Join(tmpDir, "App.tsx")
		inner := filepath.Join(target, "keep.txt")

		// A non-empty directory cannot be replaced by rename.
		if err := os.MkdirAll(target, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(inner, []byte("original"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := replaceFile(target, []byte("new"), 0644); err == nil {
			t.Fatal("Expected rename over a non-empty directory to fail")
		}

		got, err := os.ReadFile(inner)
		if err != nil || string(got) != "original" {
			t.Errorf("Target contents changed: %q, %v", string(got), err)
		}
		assertNoTempFiles(t, tmpDir)
	})

	t.Run("Failed Temp Create Keeps Target Intact", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("unix permission bits only")
		}
		if os.Geteuid() == 0 {
			t.Skip("root ignores directory permissions")
		}
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "App.tsx")
		if err := os.WriteFile(filename, []byte("original"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Chmod(tmpDir, 0555); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { os.Chmod(tmpDir, 0755) })

		if err := replaceFile(filename, []byte("new"), 0644); err == nil {
			t.Fatal("Expected error in read only directory, got nil")
		}

		got, err := os.ReadFile(filename)
		if err != nil || string(got) != "original" {
			t.Errorf("Target contents changed: %q, %v", string(got), err)
		}
		assertNoTempFiles(t, tmpDir)
	})
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), TempFilePrefix) {
			t.Errorf("Temp file left behind: %s", e.Name())
		}
	}
}
