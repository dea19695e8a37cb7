package epub

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const coverJPEGQuality = 90

// Cover returns the raw bytes of the cover resource, located through
// the "cover" metadata key.
func (d *Document) Cover() ([]byte, error) {
	id, err := d.CoverID()
	if err != nil {
		return nil, err
	}
	return d.Resource(id)
}

// CoverThumbnail returns the cover downscaled to at most maxWidth
// pixels wide, preserving aspect ratio, encoded as JPEG. Covers
// already narrow enough are re-encoded without resizing.
func (d *Document) CoverThumbnail(maxWidth int) ([]byte, error) {
	raw, err := d.Cover()
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode cover: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(coverJPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}

	return buf.Bytes(), nil
}
