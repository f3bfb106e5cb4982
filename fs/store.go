package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagegrade"
)

// Ensure FileStore implements pagegrade.ReportStore at compile time.
var _ pagegrade.ReportStore = (*FileStore)(nil)

// FileStore implements pagegrade.ReportStore with atomic update semantics.
// Reports are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

// NewFileStoreForDir creates a FileStore that publishes into dir.
func NewFileStoreForDir(dir string) *FileStore {
	clean := filepath.Clean(dir)
	return NewFileStore(filepath.Dir(clean), filepath.Base(clean))
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the directory reports are published to.
func (s *FileStore) Dir() string {
	return s.finalDir()
}

func (s *FileStore) Save(ctx context.Context, r *pagegrade.Report, format pagegrade.Format, data []byte) error {
	relPath, err := ReportPath(r.URL, format.Ext())
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, 0644)
}

func (s *FileStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
