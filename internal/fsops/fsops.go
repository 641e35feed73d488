// Package fsops provides the filesystem operations used by the sync pipeline.
//
// All mutations of the output tree go through this package: the top-level
// clean of prior vendored content and the metadata-preserving file copies
// from the upstream checkout.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const dirPerm = 0o755

// CleanDir ensures root exists, then removes every immediate child directory
// whose name is not in preserved. Top-level files and other non-directory
// entries are left untouched.
func CleanDir(root string, preserved []string) error {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return fmt.Errorf("failed to create output root: %w", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("failed to read output root: %w", err)
	}

	keep := make(map[string]bool, len(preserved))
	for _, name := range preserved {
		keep[name] = true
	}

	for _, entry := range entries {
		if !entry.IsDir() || keep[entry.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(root, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// CopyFile copies a single file from src to dst, creating parent directories
// as needed and preserving the permission bits and modification time of the
// source. Symlinks are followed, so the target content is copied.
func CopyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if srcInfo.IsDir() {
		return fmt.Errorf("source %q is a directory", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := dstFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	// The destination may pre-exist with different permissions; OpenFile
	// only applies the mode on create.
	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
		return fmt.Errorf("failed to set modification time: %w", err)
	}
	return nil
}

// Exists checks if a path exists.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
