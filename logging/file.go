package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// FileWriter appends log lines to a file and rotates it by size, keeping at
// most maxFiles rotated copies.
type FileWriter struct {
	mu          sync.Mutex
	path        string
	maxSize     int64
	maxFiles    int
	currentFile *os.File
	currentSize int64
	rotations   int
}

// NewFileWriter opens dir/filename for appending, creating dir if needed.
func NewFileWriter(dir, filename string, maxSizeMB, maxFiles int) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	fw := &FileWriter{
		path:     filepath.Join(dir, filename),
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
		maxFiles: maxFiles,
	}
	if err := fw.open(); err != nil {
		return nil, err
	}
	return fw, nil
}

func (fw *FileWriter) open() error {
	f, err := os.OpenFile(fw.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	fw.currentFile = f
	fw.currentSize = info.Size()
	return nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.currentSize > 0 && fw.currentSize+int64(len(p)) > fw.maxSize {
		if err := fw.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := fw.currentFile.Write(p)
	fw.currentSize += int64(n)
	return n, err
}

func (fw *FileWriter) rotate() error {
	if err := fw.currentFile.Close(); err != nil {
		return fmt.Errorf("close current file: %w", err)
	}
	fw.rotations++
	rotated := fmt.Sprintf("%s.%s-%04d", fw.path, time.Now().UTC().Format("20060102-150405"), fw.rotations)
	if err := os.Rename(fw.path, rotated); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("rename log file: %w", err)
	}
	fw.prune()
	return fw.open()
}

func (fw *FileWriter) prune() {
	if fw.maxFiles <= 0 {
		return
	}
	matches, err := filepath.Glob(fw.path + ".*")
	if err != nil || len(matches) <= fw.maxFiles {
		return
	}
	// Rotation suffixes are timestamps, so lexical order is age order.
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-fw.maxFiles] {
		os.Remove(path)
	}
}

// Close closes the file writer.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.currentFile != nil {
		return fw.currentFile.Close()
	}
	return nil
}
