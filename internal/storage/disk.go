package storage

import (
	"io"            // Streaming the upload to disk
	"os"            // Filesystem operations
	"path/filepath" // Safe path joining
)

// ImageStore persists product images by filename. The disk implementation
// below is used by the server; tests substitute an in-memory store.
type ImageStore interface {
	Save(filename string, r io.Reader) error // Store the image bytes under filename
	Remove(filename string) error            // Delete the stored image
}

// DiskImageStore stores images as files under a single directory
type DiskImageStore struct {
	Dir string // Upload directory
}

// NewDiskImageStore creates the upload directory if needed
func NewDiskImageStore(dir string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err // Directory could not be created
	}
	return &DiskImageStore{Dir: dir}, nil
}

// Save writes the image bytes to a file named filename inside the directory
func (s *DiskImageStore) Save(filename string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.Dir, filename)) // Create the target file
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r) // Stream the upload to disk
	return err
}

// Remove deletes the stored file for filename
func (s *DiskImageStore) Remove(filename string) error {
	return os.Remove(filepath.Join(s.Dir, filename))
}
