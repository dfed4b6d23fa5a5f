package model

import internalmodel "github.com/goliatone/go-modelgen/internal/model"

// Kind re-exports the internal scalar kind enumeration.
type Kind = internalmodel.Kind

const (
	KindString  = internalmodel.KindString
	KindBoolean = internalmodel.KindBoolean
	KindDate    = internalmodel.KindDate

	KindNumber   = internalmodel.KindNumber
	KindObjectID = internalmodel.KindObjectID
	KindMixed    = internalmodel.KindMixed

	KindInt   = internalmodel.KindInt
	KindFloat = internalmodel.KindFloat
	KindID    = internalmodel.KindID
	KindJSON  = internalmodel.KindJSON

	KindArray = internalmodel.KindArray
)

type Type = internalmodel.Type
type TypePair = internalmodel.TypePair
type FieldDescriptor = internalmodel.FieldDescriptor
type FieldModel = internalmodel.FieldModel
type Summary = internalmodel.Summary

// Scalar returns the scalar type for a kind.
func Scalar(kind Kind) Type {
	return internalmodel.Scalar(kind)
}

// ArrayOf wraps an element type in the array variant.
func ArrayOf(elem Type) Type {
	return internalmodel.ArrayOf(elem)
}

// MergeFunc resolves type conflicts between samples; see the internal
// strategies re-exported below.
type MergeFunc = internalmodel.MergeFunc

// FirstSeenWins keeps the first inferred type for the life of a field.
var FirstSeenWins MergeFunc = internalmodel.FirstSeenWins

// WidenToMixed collapses a field to Mixed/JSON on the first type conflict.
var WidenToMixed MergeFunc = internalmodel.WidenToMixed

// StrictConflict fails the analysis on the first type conflict.
var StrictConflict MergeFunc = internalmodel.StrictConflict

// ErrTypeConflict is the sentinel StrictConflict surfaces through Analyze.
var ErrTypeConflict = internalmodel.ErrTypeConflict

// Reserved keys the analyzer always skips.
const (
	IdentityKey = internalmodel.IdentityKey
	RevisionKey = internalmodel.RevisionKey
)

// DefaultSampleLimit is the number of samples one inference run examines
// unless overridden with WithSampleLimit.
const DefaultSampleLimit = internalmodel.DefaultSampleLimit
