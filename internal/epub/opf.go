package epub

import (
	"strings"

	"epubdoc/internal/xmltree"
)

// fillFromPackage parses the package file and runs the manifest,
// spine, and metadata passes, in that order. Any missing element or
// attribute aborts construction; no pass is skipped on success.
func (d *Document) fillFromPackage() error {
	raw, err := d.store.Entry(d.rootFile)
	if err != nil {
		return err
	}

	tree, err := xmltree.Parse(raw)
	if err != nil {
		return err
	}

	if err := d.fillResources(tree); err != nil {
		return err
	}
	if err := d.fillSpine(tree); err != nil {
		return err
	}
	return d.fillMetadata(tree)
}

func (d *Document) fillResources(tree *xmltree.Tree) error {
	manifest, err := tree.Find("manifest")
	if err != nil {
		return err
	}

	for _, item := range tree.Children(manifest) {
		id, err := tree.Attr(item, "id")
		if err != nil {
			return err
		}
		href, err := tree.Attr(item, "href")
		if err != nil {
			return err
		}
		mediaType, err := tree.Attr(item, "media-type")
		if err != nil {
			return err
		}

		// Duplicate ids: last entry wins. Producers rely on override
		// order, so this is not an error.
		d.Resources[id] = Resource{
			Path:      d.rootBase + href,
			MediaType: mediaType,
		}
	}

	return nil
}

func (d *Document) fillSpine(tree *xmltree.Tree) error {
	spine, err := tree.Find("spine")
	if err != nil {
		return err
	}

	for _, item := range tree.Children(spine) {
		idref, err := tree.Attr(item, "idref")
		if err != nil {
			return err
		}
		// No existence check against Resources; a dangling idref
		// fails at lookup time instead.
		d.Spine = append(d.Spine, idref)
	}

	return nil
}

func (d *Document) fillMetadata(tree *xmltree.Tree) error {
	metadata, err := tree.Find("metadata")
	if err != nil {
		return err
	}

	for _, item := range tree.Children(metadata) {
		if tree.Name(item) == "meta" {
			name, err := tree.Attr(item, "name")
			if err != nil {
				return err
			}
			content, err := tree.Attr(item, "content")
			if err != nil {
				return err
			}
			d.Metadata[name] = content
		} else {
			d.Metadata[tree.Name(item)] = strings.TrimSpace(tree.Text(item))
		}
	}

	return nil
}
