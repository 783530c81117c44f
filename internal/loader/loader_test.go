package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadRepositoryPythonOnly(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.py"), "X = 1\n")
	writeFile(t, filepath.Join(root, "pkg", "mod.py"), "def f():\n    pass\n")
	writeFile(t, filepath.Join(root, "main.go"), "package main\n")
	writeFile(t, filepath.Join(root, "README.md"), "# readme\n")
	writeFile(t, filepath.Join(root, "__pycache__", "app.cpython-312.pyc"), "x")

	repo, err := LoadRepository(root, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadRepository: %v", err)
	}
	if len(repo.Files) != 2 {
		t.Fatalf("got %d files %v, want 2 python files", len(repo.Files), repo.Files)
	}
	for _, f := range repo.Files {
		if filepath.Ext(f.Path) != ".py" {
			t.Errorf("unexpected file %s", f.Path)
		}
	}
}

func TestLoadRepositoryGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "generated/\nscratch.py\n# comment\n\n")
	writeFile(t, filepath.Join(root, "kept.py"), "X = 1\n")
	writeFile(t, filepath.Join(root, "scratch.py"), "Y = 2\n")
	writeFile(t, filepath.Join(root, "generated", "auto.py"), "Z = 3\n")

	repo, err := LoadRepository(root, DefaultConfig())
	if err != nil {
		t.Fatalf("LoadRepository: %v", err)
	}
	if len(repo.Files) != 1 {
		t.Fatalf("got %d files %v, want only kept.py", len(repo.Files), repo.Files)
	}
	if repo.Files[0].RelativePath != "kept.py" {
		t.Errorf("file = %s, want kept.py", repo.Files[0].RelativePath)
	}
}

func TestLoadRepositoryMaxFileSize(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "small.py"), "X = 1\n")
	writeFile(t, filepath.Join(root, "big.py"), string(make([]byte, 128)))

	cfg := DefaultConfig()
	cfg.MaxFileSize = 64
	repo, err := LoadRepository(root, cfg)
	if err != nil {
		t.Fatalf("LoadRepository: %v", err)
	}
	if len(repo.Files) != 1 || repo.Files[0].RelativePath != "small.py" {
		t.Errorf("files = %v, want only small.py", repo.Files)
	}
}

func TestLoadRepositoryNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "single.py")
	writeFile(t, file, "X = 1\n")

	if _, err := LoadRepository(file, DefaultConfig()); err == nil {
		t.Error("expected an error for a non-directory path")
	}
}
