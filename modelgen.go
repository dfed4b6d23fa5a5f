// Package modelgen derives Mongoose models, GraphQL schemas, and CRUD
// resolver stubs from sampled JSON documents. The top-level package exposes
// convenience constructors and the single-call entry points; the pipeline
// pieces live under pkg/ for callers that need to swap parts out.
package modelgen

import (
	"context"

	internalsample "github.com/goliatone/go-modelgen/internal/sample"
	"github.com/goliatone/go-modelgen/pkg/generator"
	"github.com/goliatone/go-modelgen/pkg/sample"
)

// Request aliases the generator request for root-package callers.
type Request = generator.Request

// Result aliases the generator result for root-package callers.
type Result = generator.Result

// Artifact aliases one rendered artifact for root-package callers.
type Artifact = generator.Artifact

// NewLoader constructs a sample loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...sample.LoaderOption) sample.Loader {
	cfg := sample.NewLoaderOptions(options...)
	return internalsample.New(cfg)
}

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// ParseAndGenerate analyzes an already-parsed sample document and renders the
// default artifact set for the named type. It is the simplest entry point for
// callers that hold their samples in memory.
func ParseAndGenerate(ctx context.Context, doc sample.Document, typeName string, options ...generator.Option) (generator.Result, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Document: &doc,
		TypeName: typeName,
	})
}

// GenerateFromSource loads a sample document from a source, then analyzes and
// renders it, delegating to the generator for both stages.
func GenerateFromSource(ctx context.Context, src sample.Source, typeName string, options ...generator.Option) (generator.Result, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Source:   src,
		TypeName: typeName,
	})
}
