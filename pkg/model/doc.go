// Package model defines the typed field model consumed by artifact renderers.
// The analyzer resides in internal/model but returns the types re-exported
// here. A FieldModel is built once per inference run over one sample set,
// lists fields in first-observed order, and is immutable after construction;
// the storage and API projections of each field travel together as a TypePair
// so renderers never re-derive types. Type unification between samples is an
// injected MergeFunc: FirstSeenWins preserves the historical behaviour,
// WidenToMixed surfaces inter-sample conflicts as Mixed/JSON fields, and
// StrictConflict rejects conflicting sample sets with ErrTypeConflict.
package model
