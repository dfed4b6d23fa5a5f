package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"

	pkgsample "github.com/goliatone/go-modelgen/pkg/sample"
)

// requiredThreshold is strict: a field present in exactly 80% of the examined
// samples is optional.
const requiredThreshold = 0.8

const maxSampleValues = 3

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// Analyzer scans sample documents and derives a FieldModel. It keeps no state
// between runs; concurrent Analyze calls are safe.
type Analyzer struct {
	opts     Options
	reserved map[string]struct{}
}

// New creates an Analyzer with the supplied options.
func New(options Options) *Analyzer {
	opts := defaultOptions()
	if options.SampleLimit > 0 {
		opts.SampleLimit = options.SampleLimit
	}
	if options.Merge != nil {
		opts.Merge = options.Merge
	}

	reserved := map[string]struct{}{
		IdentityKey: {},
		RevisionKey: {},
	}
	for _, key := range options.ReservedKeys {
		reserved[key] = struct{}{}
	}

	return &Analyzer{opts: opts, reserved: reserved}
}

// Analyze scans the document's samples, up to the configured limit, and
// returns the inferred field model. Fields appear in first-observed order.
// The run is pure: the same document always yields an identical model.
func (a *Analyzer) Analyze(doc pkgsample.Document) (FieldModel, error) {
	samples := doc.Samples()
	if len(samples) == 0 {
		return FieldModel{}, errors.New("model: document has no samples")
	}
	if len(samples) > a.opts.SampleLimit {
		samples = samples[:a.opts.SampleLimit]
	}

	var order []string
	index := make(map[string]*FieldDescriptor)

	for _, obj := range samples {
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			if _, skip := a.reserved[pair.Key]; skip {
				continue
			}

			desc, seen := index[pair.Key]
			if !seen {
				inferred := inferValue(pair.Value)
				desc = &FieldDescriptor{
					Name:    pair.Key,
					Storage: inferred.Storage,
					API:     inferred.API,
				}
				index[pair.Key] = desc
				order = append(order, pair.Key)
			} else {
				merged, err := a.opts.Merge(
					TypePair{Storage: desc.Storage, API: desc.API},
					inferValue(pair.Value),
				)
				if err != nil {
					return FieldModel{}, fmt.Errorf("model: merge field %q: %w", pair.Key, err)
				}
				desc.Storage = merged.Storage
				desc.API = merged.API
			}

			desc.Occurrences++
			if len(desc.SampleValues) < maxSampleValues {
				desc.SampleValues = append(desc.SampleValues, pair.Value)
			}
		}
	}

	model := FieldModel{
		Fields:          make([]FieldDescriptor, 0, len(order)),
		SamplesExamined: len(samples),
	}
	for _, name := range order {
		desc := index[name]
		desc.Required = float64(desc.Occurrences)/float64(len(samples)) > requiredThreshold
		model.Fields = append(model.Fields, *desc)
	}
	return model, nil
}

// inferValue maps a single sampled value to its storage/API type pair. Nested
// objects are never expanded into sub-fields; they collapse to Mixed/JSON.
func inferValue(value any) TypePair {
	switch v := value.(type) {
	case nil:
		// Deliberate fallback, not a precise inference.
		return TypePair{Storage: Scalar(KindMixed), API: Scalar(KindString)}
	case string:
		return inferString(v)
	case bool:
		return TypePair{Storage: Scalar(KindBoolean), API: Scalar(KindBoolean)}
	case float64:
		return inferNumber(v)
	case int:
		return TypePair{Storage: Scalar(KindNumber), API: Scalar(KindInt)}
	case int64:
		return TypePair{Storage: Scalar(KindNumber), API: Scalar(KindInt)}
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return TypePair{Storage: Scalar(KindNumber), API: Scalar(KindFloat)}
		}
		return inferNumber(f)
	case []any:
		return inferArray(v)
	default:
		// Plain objects and anything else we do not model.
		return TypePair{Storage: Scalar(KindMixed), API: Scalar(KindJSON)}
	}
}

func inferString(v string) TypePair {
	if isoDatePrefix.MatchString(v) {
		return TypePair{Storage: Scalar(KindDate), API: Scalar(KindDate)}
	}
	if _, err := primitive.ObjectIDFromHex(v); err == nil {
		return TypePair{Storage: Scalar(KindObjectID), API: Scalar(KindID)}
	}
	return TypePair{Storage: Scalar(KindString), API: Scalar(KindString)}
}

func inferNumber(v float64) TypePair {
	api := KindFloat
	if v == math.Trunc(v) {
		api = KindInt
	}
	return TypePair{Storage: Scalar(KindNumber), API: Scalar(api)}
}

// inferArray types an array from its first element only. Heterogeneous arrays
// are not detected; empty arrays fall back to Mixed elements in storage and
// String elements in the API projection.
func inferArray(v []any) TypePair {
	if len(v) == 0 {
		return TypePair{
			Storage: ArrayOf(Scalar(KindMixed)),
			API:     ArrayOf(Scalar(KindString)),
		}
	}
	elem := inferValue(v[0])
	return TypePair{
		Storage: ArrayOf(elem.Storage),
		API:     ArrayOf(elem.API),
	}
}
