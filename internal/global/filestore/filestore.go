// Package filestore writes uploaded certificate files to a local directory
// under sanitized names. Two uploads that sanitize to the same name overwrite
// each other on disk while keeping separate database records; that matches the
// system being replaced and is called out as a known gap.
package filestore

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips path components and unsafe characters, keeping only
// the base name with [A-Za-z0-9._-]. An empty or fully-stripped name yields "".
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "." || name == ".." {
		return ""
	}
	return name
}

// Save writes the uploaded file under its sanitized name and returns that name.
func (s *Store) Save(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return "", err
	}

	filename := SanitizeFilename(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return filename, nil
}

// Path resolves a stored filename inside the store directory. The name is
// sanitized again so a crafted database value cannot escape the directory.
func (s *Store) Path(filename string) string {
	return filepath.Join(s.Dir, SanitizeFilename(filename))
}

// Exists reports whether the named file is present on disk.
func (s *Store) Exists(filename string) bool {
	_, err := os.Stat(s.Path(filename))
	return err == nil
}
