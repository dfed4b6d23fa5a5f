package model

import (
	internalmodel "github.com/goliatone/go-modelgen/internal/model"
	"github.com/goliatone/go-modelgen/pkg/sample"
)

// Analyzer converts sample documents into field models.
type Analyzer interface {
	Analyze(doc sample.Document) (FieldModel, error)
}

// AnalyzerOption configures the analyzer behaviour.
type AnalyzerOption func(*analyzerOptions)

type analyzerOptions struct {
	sampleLimit  int
	merge        MergeFunc
	reservedKeys []string
}

// WithSampleLimit overrides the default cap on examined samples.
func WithSampleLimit(limit int) AnalyzerOption {
	return func(opts *analyzerOptions) {
		opts.sampleLimit = limit
	}
}

// WithMergeStrategy overrides the default FirstSeenWins type unification.
func WithMergeStrategy(merge MergeFunc) AnalyzerOption {
	return func(opts *analyzerOptions) {
		opts.merge = merge
	}
}

// WithReservedKeys excludes additional keys from inference on top of the
// built-in identity and revision keys.
func WithReservedKeys(keys ...string) AnalyzerOption {
	return func(opts *analyzerOptions) {
		opts.reservedKeys = append(opts.reservedKeys, keys...)
	}
}

// NewAnalyzer returns an Analyzer backed by the internal implementation.
func NewAnalyzer(options ...AnalyzerOption) Analyzer {
	cfg := analyzerOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalmodel.Options{
		SampleLimit:  cfg.sampleLimit,
		Merge:        cfg.merge,
		ReservedKeys: cfg.reservedKeys,
	}

	return internalmodel.New(internalOpts)
}
