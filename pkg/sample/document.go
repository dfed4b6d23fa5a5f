package sample

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is a single sample object with its keys preserved in document order.
// Field models must list fields in first-observed order, so samples cannot be
// decoded into plain Go maps.
type Object = orderedmap.OrderedMap[string, any]

// NewObject constructs an empty ordered sample object. Useful for tests and
// programmatic sample construction.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// Document wraps a parsed sample set and its origin. A document always holds
// at least one sample object; inputs that are not an object or an array of
// objects are rejected at parse time so the inference engine never sees them.
type Document struct {
	source  Source
	samples []*Object
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, samples []*Object) (Document, error) {
	if src == nil {
		return Document{}, errors.New("sample: source is required")
	}
	if len(samples) == 0 {
		return Document{}, errors.New("sample: document has no sample objects")
	}
	for i, obj := range samples {
		if obj == nil {
			return Document{}, fmt.Errorf("sample: sample %d is nil", i)
		}
	}

	cloned := append([]*Object(nil), samples...)
	return Document{source: src, samples: cloned}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, samples []*Object) Document {
	doc, err := NewDocument(src, samples)
	if err != nil {
		panic(err)
	}
	return doc
}

// ParseDocument decodes a raw JSON payload into a Document. A top-level object
// is treated as a one-element sample set; a top-level array must contain only
// objects. Anything else fails here, upholding the engine precondition that
// every sample is an object.
func ParseDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("sample: source is required")
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return Document{}, errors.New("sample: document is empty")
	}

	switch trimmed[0] {
	case '[':
		var samples []*Object
		if err := json.Unmarshal(trimmed, &samples); err != nil {
			return Document{}, fmt.Errorf("sample: parse sample array: %w", err)
		}
		return NewDocument(src, samples)
	case '{':
		obj := NewObject()
		if err := json.Unmarshal(trimmed, obj); err != nil {
			return Document{}, fmt.Errorf("sample: parse sample object: %w", err)
		}
		return NewDocument(src, []*Object{obj})
	default:
		return Document{}, errors.New("sample: document must be an object or an array of objects")
	}
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Samples returns the sample objects in document order. The slice is shared;
// callers must treat it as read-only.
func (d Document) Samples() []*Object {
	return d.samples
}

// Len returns the number of sample objects in the document.
func (d Document) Len() int {
	return len(d.samples)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
