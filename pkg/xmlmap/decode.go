package xmlmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

const (
	attrPrefix = "@"
	textKey    = "#text"
)

// ErrNoRoot is returned when the input holds no root element.
var ErrNoRoot = errors.New("xmlmap: document has no root element")

// ErrTrailingData is returned when the document holds more than one
// top-level element or text outside the root element.
var ErrTrailingData = errors.New("xmlmap: content outside root element")

// Decode parses an XML document from r into a Value. The result is an
// object with a single entry keyed by the root element name.
func Decode(r io.Reader) (*Value, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xmlmap: parse: %w", err)
	}
	return FromDocument(doc)
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(b []byte) (*Value, error) {
	return Decode(bytes.NewReader(b))
}

// FromDocument converts an already parsed document into a Value.
func FromDocument(doc *etree.Document) (*Value, error) {
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, fmt.Errorf("xmlmap: parse: %w", err)
	}
	top := Object()
	top.Set(root.FullTag(), fromElement(root))
	return top, nil
}

// checkTopLevel rejects anything but a single element surrounded by
// whitespace, comments and processing instructions.
func checkTopLevel(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
			if elements > 1 {
				return fmt.Errorf("%w: extra element <%s>", ErrTrailingData, t.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return fmt.Errorf("%w: text %q", ErrTrailingData, strings.TrimSpace(t.Data))
			}
		}
	}
	return nil
}

func fromElement(e *etree.Element) *Value {
	var text strings.Builder
	var children []*etree.Element
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			text.WriteString(t.Data)
		case *etree.Element:
			children = append(children, t)
		}
	}
	body := strings.TrimSpace(text.String())

	if len(e.Attr) == 0 && len(children) == 0 {
		return String(body)
	}

	obj := Object()
	for _, a := range e.Attr {
		obj.Set(attrPrefix+a.FullKey(), String(a.Value))
	}
	for _, child := range children {
		key := child.FullTag()
		val := fromElement(child)
		existing, ok := obj.Get(key)
		switch {
		case !ok:
			obj.Set(key, val)
		case existing.Kind() == KindArray:
			// fromElement never yields an array, so any array here was built
			// from earlier siblings.
			existing.Append(val)
		default:
			obj.Set(key, Array(existing, val))
		}
	}
	if body != "" {
		obj.Set(textKey, String(body))
	}
	return obj
}
