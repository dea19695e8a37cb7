// Package xmltree parses an XML byte stream into a navigable element tree.
//
// Nodes live in a flat arena and are addressed by NodeID, so the same
// node can be referenced from its parent's child list and from search
// results without ownership cycles. Children are fully parsed before
// they are attached to their parent.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var (
	ErrMalformed   = errors.New("xmltree: malformed XML")
	ErrNotFound    = errors.New("xmltree: element not found")
	ErrNoAttribute = errors.New("xmltree: attribute not found")
)

// NodeID addresses an element in the tree arena.
type NodeID int

type node struct {
	name     string
	attrs    []xml.Attr
	text     []byte
	children []NodeID
}

// Tree is a parsed XML document.
type Tree struct {
	nodes []node
	root  NodeID
}

// Parse consumes the byte stream and returns the document tree.
// Returns ErrMalformed if the input is not well-formed XML.
func Parse(data []byte) (*Tree, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	t := &Tree{root: -1}

	// Open elements, outermost first. Nodes are appended to the arena
	// at their start tag, so arena order is document (pre-order) order.
	var stack []NodeID

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			id := NodeID(len(t.nodes))
			attrs := make([]xml.Attr, len(el.Attr))
			copy(attrs, el.Attr)
			t.nodes = append(t.nodes, node{name: el.Name.Local, attrs: attrs})
			stack = append(stack, id)

		case xml.EndElement:
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				if t.root < 0 {
					t.root = id
				}
			} else {
				parent := stack[len(stack)-1]
				t.nodes[parent].children = append(t.nodes[parent].children, id)
			}

		case xml.CharData:
			if len(stack) > 0 {
				id := stack[len(stack)-1]
				t.nodes[id].text = append(t.nodes[id].text, el...)
			}
		}
	}

	if t.root < 0 {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return t, nil
}

// Root returns the document's root element.
func (t *Tree) Root() NodeID { return t.root }

// Name returns the element's local name.
func (t *Tree) Name(id NodeID) string { return t.nodes[id].name }

// Text returns the concatenated character data directly inside the
// element, excluding text of nested elements.
func (t *Tree) Text(id NodeID) string { return string(t.nodes[id].text) }

// Children returns the element's direct children in document order.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// Attr returns the value of the named attribute, matching on the
// local name. Returns ErrNoAttribute if the element has no such
// attribute.
func (t *Tree) Attr(id NodeID, name string) (string, error) {
	for _, a := range t.nodes[id].attrs {
		if a.Name.Local == name {
			return a.Value, nil
		}
	}
	return "", fmt.Errorf("attribute %q: %w", name, ErrNoAttribute)
}

// Find returns the first element with the given local name in document
// order, starting at the root. The arena is filled in pre-order, so a
// linear scan is exactly document order. Returns ErrNotFound if no
// element matches.
func (t *Tree) Find(name string) (NodeID, error) {
	for i := range t.nodes {
		if t.nodes[i].name == name {
			return NodeID(i), nil
		}
	}
	return -1, fmt.Errorf("element %q: %w", name, ErrNotFound)
}
