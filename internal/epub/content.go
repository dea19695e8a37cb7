package epub

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Content is a parsed chapter with its outbound references.
type Content struct {
	ID        string            // Manifest ID
	Path      string            // File path within the archive
	Document  *goquery.Document // Parsed HTML document
	CSSLinks  []string          // Referenced CSS file paths
	ImageRefs []string          // Referenced image paths
}

// CurrentContent loads and parses the chapter under the cursor.
func (d *Document) CurrentContent() (*Content, error) {
	id, err := d.CurrentID()
	if err != nil {
		return nil, err
	}

	res, ok := d.Resources[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrResourceNotFound)
	}

	raw, err := d.ResourceByPath(res.Path)
	if err != nil {
		return nil, err
	}

	return loadContent(id, res.Path, raw)
}

// loadContent parses an XHTML chapter and collects its stylesheet and
// image references, resolved against the chapter's directory.
func loadContent(id, path string, raw []byte) (*Content, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse chapter %s: %w", path, err)
	}

	c := &Content{
		ID:        id,
		Path:      path,
		Document:  doc,
		CSSLinks:  []string{},
		ImageRefs: []string{},
	}

	baseDir := filepath.Dir(path)

	doc.Find("link[rel='stylesheet']").Each(func(i int, s *goquery.Selection) {
		if href, exists := s.Attr("href"); exists {
			c.CSSLinks = append(c.CSSLinks, resolvePath(baseDir, href))
		}
	})

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		if src, exists := s.Attr("src"); exists {
			c.ImageRefs = append(c.ImageRefs, resolvePath(baseDir, src))
		}
	})

	return c, nil
}

// Text returns the chapter's visible text with whitespace collapsed
// to single spaces.
func (c *Content) Text() string {
	text := c.Document.Find("body").Text()
	if text == "" {
		text = c.Document.Text()
	}
	return strings.Join(strings.Fields(text), " ")
}

// resolvePath resolves a relative reference against a base directory
// and normalizes separators to forward slashes.
func resolvePath(baseDir, relPath string) string {
	joined := filepath.Join(baseDir, relPath)
	return filepath.ToSlash(filepath.Clean(joined))
}
