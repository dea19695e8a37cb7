package epub

import (
	"errors"
	"testing"
)

const chapterXHTML = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <title>Chapter 1</title>
  <link rel="stylesheet" type="text/css" href="css/style.css"/>
</head>
<body>
  <h1>Chapter 1</h1>
  <p>Hello,
     World!</p>
  <img src="../images/photo.jpg" alt="photo"/>
</body>
</html>`

func TestCurrentContent(t *testing.T) {
	store := newTestStore()
	store["OEBPS/000.xhtml"] = []byte(chapterXHTML)

	doc, err := New(store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := doc.SetPage(1); err != nil {
		t.Fatalf("SetPage(1) error = %v", err)
	}

	content, err := doc.CurrentContent()
	if err != nil {
		t.Fatalf("CurrentContent() error = %v", err)
	}

	if content.ID != "000.xhtml" {
		t.Fatalf("content.ID = %q, want 000.xhtml", content.ID)
	}
	if content.Path != "OEBPS/000.xhtml" {
		t.Fatalf("content.Path = %q, want OEBPS/000.xhtml", content.Path)
	}

	if len(content.CSSLinks) != 1 || content.CSSLinks[0] != "OEBPS/css/style.css" {
		t.Fatalf("CSSLinks = %v, want [OEBPS/css/style.css]", content.CSSLinks)
	}
	// "../" climbs out of the chapter directory.
	if len(content.ImageRefs) != 1 || content.ImageRefs[0] != "images/photo.jpg" {
		t.Fatalf("ImageRefs = %v, want [images/photo.jpg]", content.ImageRefs)
	}
}

func TestContentText(t *testing.T) {
	store := newTestStore()
	store["OEBPS/000.xhtml"] = []byte(chapterXHTML)

	doc, err := New(store)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := doc.SetPage(1); err != nil {
		t.Fatalf("SetPage(1) error = %v", err)
	}

	content, err := doc.CurrentContent()
	if err != nil {
		t.Fatalf("CurrentContent() error = %v", err)
	}

	if got := content.Text(); got != "Chapter 1 Hello, World!" {
		t.Fatalf("Text() = %q, want %q", got, "Chapter 1 Hello, World!")
	}
}

func TestCurrentContentFailures(t *testing.T) {
	t.Run("empty spine", func(t *testing.T) {
		store := newTestStore()
		store["OEBPS/content.opf"] = []byte(`<package>
  <metadata/><manifest/><spine/>
</package>`)

		doc, err := New(store)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := doc.CurrentContent(); !errors.Is(err, ErrNavBroken) {
			t.Fatalf("CurrentContent() error = %v, want ErrNavBroken", err)
		}
	})

	t.Run("dangling spine id", func(t *testing.T) {
		store := newTestStore()
		store["OEBPS/content.opf"] = []byte(`<package>
  <metadata/><manifest/>
  <spine><itemref idref="ghost"/></spine>
</package>`)

		doc, err := New(store)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := doc.CurrentContent(); !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("CurrentContent() error = %v, want ErrResourceNotFound", err)
		}
	})
}
