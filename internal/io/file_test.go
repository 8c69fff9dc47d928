package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.ogg", "a.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListFiles(context.Background(), dir)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	want := []string{"a.mp3", "b.ogg", "notes.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListFiles() = %v, want %v", got, want)
	}
}

func TestListFiles_MissingDir(t *testing.T) {
	_, err := ListFiles(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("ListFiles() should fail for a missing directory")
	}
	if !os.IsNotExist(err) {
		t.Errorf("ListFiles() error = %v, want not-exist", err)
	}
}

func TestListFiles_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := ListFiles(ctx, t.TempDir()); err == nil {
		t.Error("ListFiles() should fail on a cancelled context")
	}
}

func TestCreateFile_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yml")
	if err := os.WriteFile(path, []byte("old content that is long"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := CreateFile(context.Background(), path)
	if err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if _, err := f.WriteString("new"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("file content = %q, want %q", data, "new")
	}
}

func TestReadHead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.bin")
	if err := os.WriteFile(path, []byte("OggS"), 0644); err != nil {
		t.Fatal(err)
	}

	head, err := ReadHead(path, 262)
	if err != nil {
		t.Fatalf("ReadHead() error = %v", err)
	}
	if string(head) != "OggS" {
		t.Errorf("ReadHead() = %q, want %q", head, "OggS")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lobbygen.toml")
	if err := os.WriteFile(path, []byte("a much longer previous content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(context.Background(), path, []byte("short\n")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "short\n" {
		t.Errorf("content = %q, want %q", data, "short\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := WriteFile(ctx, path, []byte("late\n")); err == nil {
		t.Error("WriteFile() should fail with a cancelled context")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	for i := 0; i < 2; i++ {
		if err := EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() call %d error = %v", i+1, err)
		}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Stat(%s) = %v, %v, want directory", dir, info, err)
	}
}
