// Package archive provides byte-level access to the entries of an EPUB
// container, a ZIP archive with a declared mimetype.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ContainerPath is the fixed location of the container descriptor.
const ContainerPath = "META-INF/container.xml"

var (
	ErrInvalidMimetype    = errors.New("invalid mimetype: must be 'application/epub+zip'")
	ErrMimetypeCompressed = errors.New("mimetype must not be compressed")
	ErrMimetypeNotFound   = errors.New("mimetype file not found")
	ErrEntryNotFound      = errors.New("entry not found in archive")
	ErrDecode             = errors.New("entry is not valid UTF-8 text")
)

// Archive provides repeated, independent reads of the entries inside
// an EPUB file.
type Archive struct {
	zipReader *zip.ReadCloser
	files     map[string]*zip.File
}

// Open opens the EPUB at path and validates its container structure.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open EPUB: %w", err)
	}

	a := &Archive{
		zipReader: zr,
		files:     make(map[string]*zip.File, len(zr.File)),
	}

	// Build file map with normalized paths
	for _, f := range zr.File {
		a.files[normalizePath(f.Name)] = f
	}

	if err := a.validateMimetype(); err != nil {
		zr.Close()
		return nil, err
	}

	return a, nil
}

// Close closes the underlying ZIP reader.
func (a *Archive) Close() error {
	return a.zipReader.Close()
}

// ContainerDescriptor returns the bytes of META-INF/container.xml.
func (a *Archive) ContainerDescriptor() ([]byte, error) {
	return a.Entry(ContainerPath)
}

// Entry returns the contents of the entry at path.
func (a *Archive) Entry(path string) ([]byte, error) {
	f, ok := a.files[normalizePath(path)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", path, ErrEntryNotFound)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", path, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// EntryText returns the entry at path decoded as UTF-8 text.
func (a *Archive) EntryText(path string) (string, error) {
	content, err := a.Entry(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%q: %w", path, ErrDecode)
	}
	return string(content), nil
}

// validateMimetype checks that the mimetype file exists and is valid
func (a *Archive) validateMimetype() error {
	f, ok := a.files["mimetype"]
	if !ok {
		return ErrMimetypeNotFound
	}

	// Check that mimetype is not compressed
	if f.Method != zip.Store {
		return ErrMimetypeCompressed
	}

	content, err := a.Entry("mimetype")
	if err != nil {
		return fmt.Errorf("failed to read mimetype: %w", err)
	}

	if string(content) != "application/epub+zip" {
		return ErrInvalidMimetype
	}

	return nil
}

// normalizePath normalizes entry paths (removes ./ prefix)
func normalizePath(path string) string {
	return strings.TrimPrefix(path, "./")
}
