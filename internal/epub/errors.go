package epub

import "errors"

// Sentinel errors returned by the epub package. Parameterized
// failures (resource id, path, page index) wrap these with the
// offending value in the message; discriminate with errors.Is.
var (
	// ErrResourceNotFound indicates a manifest id with no entry in the
	// resource table.
	ErrResourceNotFound = errors.New("epub: resource id not found")

	// ErrResourcePathNotFound indicates no resource is stored at the
	// given archive path.
	ErrResourcePathNotFound = errors.New("epub: resource path not found")

	// ErrNoCover indicates the metadata carries no "cover" key.
	ErrNoCover = errors.New("epub: no cover declared in metadata")

	// ErrLastPage indicates the cursor is already on the last spine item.
	ErrLastPage = errors.New("epub: already at the last page")

	// ErrFirstPage indicates the cursor is already on the first spine item.
	ErrFirstPage = errors.New("epub: already at the first page")

	// ErrInvalidPage indicates a seek outside the spine bounds.
	ErrInvalidPage = errors.New("epub: page index out of range")

	// ErrNavBroken indicates the cursor does not point into the spine,
	// which only happens when the spine is empty.
	ErrNavBroken = errors.New("epub: current page is not in the spine")
)
