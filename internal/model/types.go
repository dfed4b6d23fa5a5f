package model

import "strings"

// Kind enumerates the scalar leaves of the inferred type lattice. Storage
// kinds follow Mongoose schema type names, API kinds follow GraphQL scalar
// names; the two sets overlap where the projections agree.
type Kind string

const (
	KindString  Kind = "String"
	KindBoolean Kind = "Boolean"
	KindDate    Kind = "Date"

	// Storage-only kinds.
	KindNumber   Kind = "Number"
	KindObjectID Kind = "ObjectId"
	KindMixed    Kind = "Mixed"

	// API-only kinds.
	KindInt   Kind = "Int"
	KindFloat Kind = "Float"
	KindID    Kind = "ID"
	KindJSON  Kind = "JSON"
)

// Type is the tagged variant for inferred types: a scalar kind, or an array
// wrapping an element type. Opaque structures (nested objects) are the Mixed
// and JSON kinds; a future recursive-expansion mode can add a variant without
// changing existing call sites.
type Type struct {
	Kind Kind  `json:"kind"`
	Elem *Type `json:"elem,omitempty"`
}

// Scalar returns the scalar type for a kind.
func Scalar(kind Kind) Type {
	return Type{Kind: kind}
}

// ArrayOf wraps an element type in the array variant.
func ArrayOf(elem Type) Type {
	e := elem
	return Type{Kind: KindArray, Elem: &e}
}

// KindArray tags the array variant of Type.
const KindArray Kind = "Array"

// IsArray reports whether the type is the array variant.
func (t Type) IsArray() bool {
	return t.Kind == KindArray
}

// Equal reports structural equality of two types.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

// String renders the type for diagnostics, e.g. "Array<String>".
func (t Type) String() string {
	if t.IsArray() {
		var b strings.Builder
		b.WriteString("Array<")
		if t.Elem != nil {
			b.WriteString(t.Elem.String())
		}
		b.WriteString(">")
		return b.String()
	}
	return string(t.Kind)
}

// TypePair couples the storage and API projections inferred from one sampled
// value. Merge strategies operate on pairs so the two projections never drift
// apart.
type TypePair struct {
	Storage Type `json:"storage"`
	API     Type `json:"api"`
}

// FieldDescriptor captures everything inferred about one distinct field name
// observed across the sample set.
type FieldDescriptor struct {
	Name string `json:"name"`

	// Storage and API are the two projections of the inferred type.
	Storage Type `json:"storage"`
	API     Type `json:"api"`

	// Required is true when the field appeared in more than 80% of the
	// examined samples.
	Required bool `json:"required"`

	// SampleValues holds up to three raw example values for preview output.
	// Code generation never reads them.
	SampleValues []any `json:"sampleValues,omitempty"`

	// Occurrences counts how many examined samples contained the key,
	// regardless of the value (null included).
	Occurrences int `json:"occurrences"`
}

// FieldModel is the insertion-ordered result of one inference run. It is
// immutable after Analyze returns; renderers only read it.
type FieldModel struct {
	Fields []FieldDescriptor `json:"fields"`

	// SamplesExamined records how many samples the scan actually consumed
	// after the sampling cap was applied.
	SamplesExamined int `json:"samplesExamined"`
}

// Field looks up a descriptor by name.
func (m FieldModel) Field(name string) (FieldDescriptor, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}

// Len returns the number of fields in the model.
func (m FieldModel) Len() int {
	return len(m.Fields)
}

// Summary aggregates field counts for reporting.
type Summary struct {
	TotalFields    int `json:"totalFields"`
	RequiredFields int `json:"requiredFields"`
	OptionalFields int `json:"optionalFields"`
}

// Summarize computes the field count summary for the model.
func (m FieldModel) Summarize() Summary {
	s := Summary{TotalFields: len(m.Fields)}
	for _, field := range m.Fields {
		if field.Required {
			s.RequiredFields++
		} else {
			s.OptionalFields++
		}
	}
	return s
}
