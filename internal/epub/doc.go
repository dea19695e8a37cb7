// Package epub reads EPUB documents: it resolves the package file
// through the container descriptor, builds the resource table, spine,
// and metadata, and exposes a cursor for walking the reading order.
package epub

import (
	"strings"

	"epubdoc/internal/archive"
	"epubdoc/internal/xmltree"
)

// Storage is the archive surface a Document reads through.
// *archive.Archive implements it.
type Storage interface {
	ContainerDescriptor() ([]byte, error)
	Entry(path string) ([]byte, error)
	EntryText(path string) (string, error)
}

// Resource is a manifest entry: where a resource lives in the archive
// and its declared media type.
type Resource struct {
	Path      string
	MediaType string
}

// Document is an opened EPUB. Resources, Spine, and Metadata are
// filled once during construction and must not be mutated afterwards;
// the cursor is the only moving part and belongs exclusively to the
// Document.
type Document struct {
	store  Storage
	closer interface{ Close() error }

	// Resources maps manifest id to location and media type.
	// Duplicate ids in the manifest overwrite earlier entries.
	Resources map[string]Resource

	// Spine is the linear reading order, as manifest ids. Ids are not
	// checked against Resources here; a missing id surfaces at lookup
	// time.
	Spine []string

	// Metadata is the flattened package metadata. Duplicate keys keep
	// the last occurrence in document order.
	Metadata map[string]string

	rootFile string
	rootBase string
	current  int
}

// Open opens the EPUB file at path and builds the document over it.
// The document owns the archive; Close releases it.
func Open(path string) (*Document, error) {
	a, err := archive.Open(path)
	if err != nil {
		return nil, err
	}

	doc, err := New(a)
	if err != nil {
		a.Close()
		return nil, err
	}
	doc.closer = a
	return doc, nil
}

// New builds a document over an already-opened storage. The caller
// keeps ownership of the storage; Close on the document is a no-op.
//
// Construction is atomic: any failure while resolving the container,
// deriving the root base, or running the manifest, spine, and metadata
// passes returns an error and no document.
func New(store Storage) (*Document, error) {
	container, err := store.ContainerDescriptor()
	if err != nil {
		return nil, err
	}

	rootFile, err := resolveRootFile(container)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		store:     store,
		Resources: make(map[string]Resource),
		Metadata:  make(map[string]string),
		rootFile:  rootFile,
		rootBase:  rootBase(rootFile),
	}

	if err := doc.fillFromPackage(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Close releases the underlying archive when the document opened it.
func (d *Document) Close() error {
	if d.closer != nil {
		return d.closer.Close()
	}
	return nil
}

// RootFile returns the package-file path inside the archive.
func (d *Document) RootFile() string { return d.rootFile }

// RootBase returns the prefix prepended to every manifest href.
func (d *Document) RootBase() string { return d.rootBase }

// resolveRootFile extracts the package-file path from the container
// descriptor.
func resolveRootFile(container []byte) (string, error) {
	tree, err := xmltree.Parse(container)
	if err != nil {
		return "", err
	}

	el, err := tree.Find("rootfile")
	if err != nil {
		return "", err
	}

	return tree.Attr(el, "full-path")
}

// rootBase keeps only the immediate parent directory of the package
// file: "OEBPS/content.opf" yields "OEBPS/", a package file at the
// archive root yields "/". Outer directory segments of a more deeply
// nested package file are dropped; resource paths are built as
// rootBase + href, and real-world readers depend on this exact rule,
// so it must not be replaced with a general path join.
func rootBase(rootFile string) string {
	segments := strings.Split(rootFile, "/")
	base := ""
	if len(segments) >= 2 {
		base = segments[len(segments)-2]
	}
	return base + "/"
}
