// Package xmlmap decodes XML documents into a schema-less, ordered tree.
//
// The USPS service replies with XML whose shape differs per API, so replies
// are not bound to Go structs. Instead every element becomes a Value, which
// is one of three kinds: an object with ordered keys, an array, or a string.
//
// The mapping follows the usual XML-to-dictionary conventions:
//
//   - the top-level object has one key, the root element name
//   - attributes become keys prefixed with "@"
//   - an element with neither attributes nor child elements is a string
//   - text of an element that also has attributes or children is stored
//     under "#text"
//   - repeated sibling elements with the same name become an array
//
// Callers that need typed data should layer accessors on top of Value.
package xmlmap
