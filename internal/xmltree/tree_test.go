package xmltree

import (
	"errors"
	"testing"
)

func TestParseAndNavigate(t *testing.T) {
	tree, err := Parse([]byte(`<?xml version="1.0"?>
<package version="2.0">
  <metadata>
    <title>Test Book</title>
    <language>en</language>
  </metadata>
  <manifest>
    <item id="ch1" href="ch1.xhtml" media-type="application/xhtml+xml"/>
  </manifest>
</package>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	root := tree.Root()
	if got := tree.Name(root); got != "package" {
		t.Fatalf("root name = %q, want %q", got, "package")
	}

	if v, err := tree.Attr(root, "version"); err != nil || v != "2.0" {
		t.Fatalf("Attr(version) = %q, %v", v, err)
	}

	children := tree.Children(root)
	if len(children) != 2 {
		t.Fatalf("root children = %d, want 2", len(children))
	}
	if tree.Name(children[0]) != "metadata" || tree.Name(children[1]) != "manifest" {
		t.Fatalf("children = %q, %q, want metadata, manifest",
			tree.Name(children[0]), tree.Name(children[1]))
	}

	title, err := tree.Find("title")
	if err != nil {
		t.Fatalf("Find(title) error = %v", err)
	}
	if got := tree.Text(title); got != "Test Book" {
		t.Fatalf("title text = %q, want %q", got, "Test Book")
	}

	item, err := tree.Find("item")
	if err != nil {
		t.Fatalf("Find(item) error = %v", err)
	}
	if href, err := tree.Attr(item, "href"); err != nil || href != "ch1.xhtml" {
		t.Fatalf("Attr(href) = %q, %v", href, err)
	}
}

func TestFindDocumentOrder(t *testing.T) {
	// The first match in document order must win, even when it sits
	// deeper in the tree than a later sibling match.
	tree, err := Parse([]byte(`<a><b><c id="first"/></b><c id="second"/></a>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	c, err := tree.Find("c")
	if err != nil {
		t.Fatalf("Find(c) error = %v", err)
	}
	if id, _ := tree.Attr(c, "id"); id != "first" {
		t.Fatalf("Find(c) returned id=%q, want %q", id, "first")
	}
}

func TestFindNotFound(t *testing.T) {
	tree, err := Parse([]byte(`<a><b/></a>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, err := tree.Find("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Find(missing) error = %v, want ErrNotFound", err)
	}
}

func TestAttrMissing(t *testing.T) {
	tree, err := Parse([]byte(`<a href="x"/>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if _, err := tree.Attr(tree.Root(), "id"); !errors.Is(err, ErrNoAttribute) {
		t.Fatalf("Attr(id) error = %v, want ErrNoAttribute", err)
	}
}

func TestAttrNamespacedLocalName(t *testing.T) {
	tree, err := Parse([]byte(`<item opf:scheme="ISBN" xmlns:opf="http://www.idpf.org/2007/opf"/>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, err := tree.Attr(tree.Root(), "scheme"); err != nil || v != "ISBN" {
		t.Fatalf("Attr(scheme) = %q, %v, want ISBN", v, err)
	}
}

func TestTextExcludesNestedElements(t *testing.T) {
	tree, err := Parse([]byte(`<p>Hello <b>world</b>!</p>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := tree.Text(tree.Root()); got != "Hello !" {
		t.Fatalf("Text() = %q, want %q", got, "Hello !")
	}

	b, err := tree.Find("b")
	if err != nil {
		t.Fatalf("Find(b) error = %v", err)
	}
	if got := tree.Text(b); got != "world" {
		t.Fatalf("nested text = %q, want %q", got, "world")
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mismatched tags", `<a><b></a>`},
		{"unclosed root", `<a><b/>`},
		{"empty input", ``},
		{"no elements", `  `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("Parse(%q) error = %v, want ErrMalformed", tt.input, err)
			}
		})
	}
}
