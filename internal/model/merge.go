package model

import "errors"

// ErrTypeConflict is returned by StrictConflict when two samples disagree on
// a field's inferred type. The analyzer wraps it with the field name.
var ErrTypeConflict = errors.New("model: conflicting field types between samples")

// MergeFunc resolves the type of a field when a later sample disagrees with
// the type already on record. The analyzer calls it for every repeat
// observation, passing the stored pair and the pair inferred from the current
// value, and stores whatever the strategy returns. A non-nil error aborts the
// analysis; the bundled strategies other than StrictConflict never error.
type MergeFunc func(existing, observed TypePair) (TypePair, error)

// FirstSeenWins keeps the type inferred from the first sampled value for the
// life of the descriptor, matching the historical generator behaviour. Later
// samples that disagree in shape are ignored.
func FirstSeenWins(existing, _ TypePair) (TypePair, error) {
	return existing, nil
}

// WidenToMixed keeps the existing type while samples agree and collapses the
// field to Mixed/JSON on the first conflicting observation. Stricter than
// FirstSeenWins on heterogeneous exports: a conflict becomes visible in the
// generated schema instead of being silently dropped.
func WidenToMixed(existing, observed TypePair) (TypePair, error) {
	if pairsAgree(existing, observed) {
		return existing, nil
	}
	return TypePair{
		Storage: Scalar(KindMixed),
		API:     Scalar(KindJSON),
	}, nil
}

// StrictConflict rejects the sample set outright on the first conflicting
// observation, for callers that treat disagreeing samples as bad input
// rather than something to degrade around.
func StrictConflict(existing, observed TypePair) (TypePair, error) {
	if pairsAgree(existing, observed) {
		return existing, nil
	}
	return TypePair{}, ErrTypeConflict
}

func pairsAgree(existing, observed TypePair) bool {
	return existing.Storage.Equal(observed.Storage) && existing.API.Equal(observed.API)
}
