package epub

import "fmt"

// ResourceByPath returns the raw bytes of the archive entry at path.
// Archive failures are propagated as-is.
func (d *Document) ResourceByPath(path string) ([]byte, error) {
	return d.store.Entry(path)
}

// ResourceStringByPath returns the archive entry at path as UTF-8 text.
func (d *Document) ResourceStringByPath(path string) (string, error) {
	return d.store.EntryText(path)
}

// Resource returns the bytes of the resource with the given manifest id.
func (d *Document) Resource(id string) ([]byte, error) {
	res, ok := d.Resources[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrResourceNotFound)
	}
	return d.ResourceByPath(res.Path)
}

// ResourceString returns the resource with the given manifest id as
// UTF-8 text.
func (d *Document) ResourceString(id string) (string, error) {
	res, ok := d.Resources[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, ErrResourceNotFound)
	}
	return d.ResourceStringByPath(res.Path)
}

// Mime returns the media type declared for the resource id.
func (d *Document) Mime(id string) (string, error) {
	res, ok := d.Resources[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, ErrResourceNotFound)
	}
	return res.MediaType, nil
}

// MimeByPath returns the media type declared for the resource stored
// at path. The scan is linear; manifests are small enough that an
// index is not worth carrying.
func (d *Document) MimeByPath(path string) (string, error) {
	for _, res := range d.Resources {
		if res.Path == path {
			return res.MediaType, nil
		}
	}
	return "", fmt.Errorf("%q: %w", path, ErrResourcePathNotFound)
}

// CoverID returns the manifest id recorded under the "cover" metadata
// key.
func (d *Document) CoverID() (string, error) {
	id, ok := d.Metadata["cover"]
	if !ok {
		return "", ErrNoCover
	}
	return id, nil
}
