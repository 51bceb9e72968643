package output

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- mockFS implements FileSystem for unit tests ---

type mockFS struct {
	mkdirErr error
	writeErr error

	madeDirs    []string
	writtenPath string
	writtenData []byte
	writtenPerm fs.FileMode
}

func (m *mockFS) MkdirAll(path string, _ fs.FileMode) error {
	m.madeDirs = append(m.madeDirs, path)
	return m.mkdirErr
}

func (m *mockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.writtenPath = name
	m.writtenData = data
	m.writtenPerm = perm
	return m.writeErr
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "__tests__", "utils", "dates.test.ts")

	if err := NewWriter().Write(path, []byte("test content")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "test content" {
		t.Errorf("expected verbatim content, got %q", got)
	}
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ts.review.md")
	if err := os.WriteFile(path, []byte("old report that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewWriter().Write(path, []byte("new")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("expected file to be replaced, got %q", got)
	}
}

func TestWrite_BareFileNameSkipsMkdir(t *testing.T) {
	m := &mockFS{}
	if err := (&Writer{FS: m}).Write("report.md", []byte("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.madeDirs) != 0 {
		t.Errorf("expected no directories to be created, got %v", m.madeDirs)
	}
	if m.writtenPath != "report.md" || m.writtenPerm != filePerm {
		t.Errorf("unexpected write %q with perm %v", m.writtenPath, m.writtenPerm)
	}
}

func TestWrite_MkdirError(t *testing.T) {
	m := &mockFS{mkdirErr: errors.New("permission denied")}

	err := (&Writer{FS: m}).Write("src/__tests__/utils/a.test.ts", []byte("x"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("expected wrapped mkdir error, got %v", err)
	}
	if m.writtenPath != "" {
		t.Error("file must not be written when the directory cannot be created")
	}
}

func TestWrite_WriteError(t *testing.T) {
	writeErr := errors.New("disk full")
	m := &mockFS{writeErr: writeErr}

	err := (&Writer{FS: m}).Write("out/a.md", []byte("x"))
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if len(m.madeDirs) != 1 || m.madeDirs[0] != "out" {
		t.Errorf("unexpected directories %v", m.madeDirs)
	}
}
