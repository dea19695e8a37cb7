package epub

import "fmt"

// Navigation moves the spine cursor. Every failing call below returns
// with the cursor exactly as it was; bounds are checked before any
// mutation.

// Next advances the cursor to the next spine item.
func (d *Document) Next() error {
	if d.current+1 >= len(d.Spine) {
		return ErrLastPage
	}
	d.current++
	return nil
}

// Prev moves the cursor back to the previous spine item.
func (d *Document) Prev() error {
	if d.current < 1 {
		return ErrFirstPage
	}
	d.current--
	return nil
}

// SetPage seeks the cursor to the zero-based page n.
func (d *Document) SetPage(n int) error {
	if n < 0 || n >= len(d.Spine) {
		return fmt.Errorf("page %d: %w", n, ErrInvalidPage)
	}
	d.current = n
	return nil
}

// NumPages returns the number of spine items.
func (d *Document) NumPages() int {
	return len(d.Spine)
}

// CurrentPage returns the zero-based cursor position.
func (d *Document) CurrentPage() int {
	return d.current
}

// CurrentID returns the spine id under the cursor. With an empty
// spine there is no current item and the call fails ErrNavBroken.
func (d *Document) CurrentID() (string, error) {
	if d.current < 0 || d.current >= len(d.Spine) {
		return "", ErrNavBroken
	}
	return d.Spine[d.current], nil
}

// CurrentPath returns the archive path of the current spine item.
func (d *Document) CurrentPath() (string, error) {
	id, err := d.CurrentID()
	if err != nil {
		return "", err
	}
	res, ok := d.Resources[id]
	if !ok {
		return "", fmt.Errorf("%q: %w", id, ErrResourceNotFound)
	}
	return res.Path, nil
}

// CurrentMime returns the media type of the current spine item.
func (d *Document) CurrentMime() (string, error) {
	id, err := d.CurrentID()
	if err != nil {
		return "", err
	}
	return d.Mime(id)
}

// Current returns the raw bytes of the current spine item.
func (d *Document) Current() ([]byte, error) {
	id, err := d.CurrentID()
	if err != nil {
		return nil, err
	}
	return d.Resource(id)
}

// CurrentString returns the current spine item as UTF-8 text.
func (d *Document) CurrentString() (string, error) {
	id, err := d.CurrentID()
	if err != nil {
		return "", err
	}
	return d.ResourceString(id)
}
