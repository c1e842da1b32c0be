package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	content := []byte("jpeg bytes")
	key := "0b6f1a2c/photo1_1.jpg"
	if err := s.Put(context.Background(), key, "image/jpeg", bytes.NewReader(content)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "0b6f1a2c", "photo1_1.jpg"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored bytes = %q, want %q", got, content)
	}
}

func TestLocalStorePutFlatKey(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	if err := s.Put(context.Background(), "docs_1", "", bytes.NewReader([]byte("x"))); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "docs_1")); err != nil {
		t.Errorf("flat key not written: %v", err)
	}
}
