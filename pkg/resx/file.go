package resx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// ReadFile loads and parses the document at path.
// A missing file yields an error matching fs.ErrNotExist.
func ReadFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(src)
}

// ReadFS is ReadFile for an fs.FS.
func ReadFS(fsys fs.FS, name string) (*Document, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(src)
}

// WriteFile replaces the file at path with the rendered document.
// The content is written to a temporary file in the same directory, synced and
// renamed over path; a failure leaves the previous file untouched.
func WriteFile(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(doc.Marshal()); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	return nil
}
