// Copyright 2026 The mottools Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSecureWrite_SuccessfulWrite(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")

	testData := []byte("test content")
	if err := SecureWrite(testFile, testData, nil); err != nil {
		t.Fatalf("SecureWrite() failed: %v", err)
	}

	// Verify file exists and has correct content
	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(testData) {
		t.Errorf("Expected content %s, got %s", testData, content)
	}

	// Verify no temp files remain
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to read directory: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "test.txt" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestSecureWrite_CreatesParentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nested", "dir", "test.txt")

	if err := SecureWrite(testFile, []byte("data"), nil); err != nil {
		t.Fatalf("SecureWrite() failed: %v", err)
	}

	if _, err := os.Stat(testFile); err != nil {
		t.Errorf("Expected file to exist: %v", err)
	}
}

func TestSecureWrite_Overwrite(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")

	if err := SecureWrite(testFile, []byte("first"), nil); err != nil {
		t.Fatalf("First SecureWrite() failed: %v", err)
	}
	if err := SecureWrite(testFile, []byte("second"), nil); err != nil {
		t.Fatalf("Second SecureWrite() failed: %v", err)
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("Expected overwritten content, got %s", content)
	}
}

func TestSecureWrite_Backup(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.txt")

	if err := SecureWrite(testFile, []byte("original"), nil); err != nil {
		t.Fatalf("First SecureWrite() failed: %v", err)
	}

	opts := DefaultSecureWriteOptions()
	opts.CreateBackup = true
	if err := SecureWrite(testFile, []byte("updated"), opts); err != nil {
		t.Fatalf("Second SecureWrite() failed: %v", err)
	}

	backup, err := os.ReadFile(testFile + ".bak")
	if err != nil {
		t.Fatalf("Expected backup file: %v", err)
	}
	if string(backup) != "original" {
		t.Errorf("Expected backup to hold original content, got %s", backup)
	}
}
