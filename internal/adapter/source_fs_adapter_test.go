package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "recase.dev/pkg/recase/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "index.ts"), "export {};\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.ts"), "export {};\n")

		visited := walkAll(t, adapter, root, false)

		if !containsPath(visited, filepath.Join(root, "index.ts")) {
			t.Fatalf("Walk() did not visit root file, visited %v", visited)
		}

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.ts")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}
	})

	t.Run("recursive descends but skips vendored trees", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.ts"), "export {};\n")

		modules := filepath.Join(root, "node_modules")
		mustMkdir(t, modules)
		writeTestFile(t, filepath.Join(modules, "dep.ts"), "export {};\n")

		visited := walkAll(t, adapter, root, true)

		if !containsPath(visited, filepath.Join(nestedDir, "child.ts")) {
			t.Fatalf("Walk() did not visit nested file, visited %v", visited)
		}

		if containsPath(visited, filepath.Join(modules, "dep.ts")) {
			t.Fatalf("Walk() descended into node_modules")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), true, func(string, os.FileInfo, error) error { return nil })
		if err == nil {
			t.Fatalf("Walk() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "a.test.ts"), "")
	writeTestFile(t, filepath.Join(root, "b.ts"), "")
	mustMkdir(t, filepath.Join(root, "dir.test.ts"))

	got, err := adapter.Glob(context.Background(), filepath.Join(root, "*.test.ts"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}

	if len(got) != 1 || got[0] != m.Path(filepath.Join(root, "a.test.ts")) {
		t.Fatalf("Glob() = %v, want only a.test.ts", got)
	}

	if _, err := adapter.Glob(context.Background(), "[unclosed"); err == nil {
		t.Fatalf("Glob() expected error for malformed pattern")
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "mod.ts")
	writeTestFile(t, path, "const a = 1;\n")

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "const a = 1;\n" {
		t.Fatalf("ReadFile() = %q", got)
	}

	if _, err := adapter.ReadFile(context.Background(), m.Path(path+".missing")); !os.IsNotExist(err) {
		t.Fatalf("ReadFile() error = %v, want not-exist", err)
	}
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "mod.ts")
	writeTestFile(t, path, "old\n")

	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	if err := adapter.WriteFile(context.Background(), m.Path(path), []byte("new\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "new\n" {
		t.Fatalf("WriteFile() left %q", got)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if info.Mode().Perm() != 0o600 {
		t.Fatalf("WriteFile() mode = %v, want 0600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFile() left temporary files behind: %v", entries)
	}

	if err := adapter.WriteFile(context.Background(), m.Path(filepath.Join(root, "absent.ts")), []byte("x")); err == nil {
		t.Fatalf("WriteFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "mod.ts")
	writeTestFile(t, path, "export {};\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func walkAll(t *testing.T, adapter *LocalSourceFSAdapter, root string, recursive bool) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(context.Background(), m.Path(root), recursive, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		visited = append(visited, path)

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	return visited
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
