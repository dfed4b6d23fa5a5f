package generator

import (
	"context"
	"errors"
	"fmt"

	internalsample "github.com/goliatone/go-modelgen/internal/sample"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
	"github.com/goliatone/go-modelgen/pkg/renderers/graphql"
	"github.com/goliatone/go-modelgen/pkg/renderers/mongoose"
	"github.com/goliatone/go-modelgen/pkg/renderers/resolver"
	"github.com/goliatone/go-modelgen/pkg/sample"
)

// Renderer names registered by default, in artifact order.
var defaultRenderers = []string{"mongoose", "graphql", "resolver"}

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom sample loader.
func WithLoader(loader sample.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithAnalyzer injects a custom field-model analyzer.
func WithAnalyzer(analyzer model.Analyzer) Option {
	return func(g *Generator) {
		g.analyzer = analyzer
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithRenderers overrides the renderer names used when a request omits an
// explicit Renderers list.
func WithRenderers(names ...string) Option {
	return func(g *Generator) {
		if len(names) == 0 {
			return
		}
		g.defaultNames = append([]string(nil), names...)
	}
}

// Generator coordinates the full pipeline from sample document to rendered
// artifacts. It applies sensible defaults (built-in analyzer and the three
// stock renderers) while remaining open to dependency injection for advanced
// callers. Each Generate call is independent; the generator holds no state
// between runs.
type Generator struct {
	loader          sample.Loader
	analyzer        model.Analyzer
	registry        *render.Registry
	defaultNames    []string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to generate artifacts for one entity.
type Request struct {
	// Source identifies where the sample document lives. Optional when
	// Document is supplied.
	Source sample.Source

	// Document allows callers to bypass the loader when they already have a
	// parsed sample set.
	Document *sample.Document

	// TypeName names the generated entity. The generator uses it verbatim;
	// identifier validation is the caller's responsibility.
	TypeName string

	// Renderers names the artifacts to produce. If empty, the generator falls
	// back to the configured default set.
	Renderers []string
}

// Artifact is one rendered output plus the file name the caller should write
// it to.
type Artifact struct {
	Renderer string
	Filename string
	Content  []byte
}

// Result carries everything one generation run produced: the field model for
// preview display, the rendered artifacts, and the field count summary.
type Result struct {
	TypeName  string
	Model     model.FieldModel
	Artifacts []Artifact
	Summary   model.Summary
}

// Artifact looks up a rendered artifact by renderer name.
func (r Result) Artifact(renderer string) (Artifact, bool) {
	for _, artifact := range r.Artifacts {
		if artifact.Renderer == renderer {
			return artifact, true
		}
	}
	return Artifact{}, false
}

// Generate executes the loader → analyzer → renderer sequence and returns the
// collected result. This is the sole entry point callers need in normal
// operation; individual renderers remain addressable through the registry for
// preview-style flows.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := g.initialiseErr; err != nil {
		return Result{}, err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
		if err := g.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	if req.TypeName == "" {
		return Result{}, errors.New("generator: type name is required")
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	fields, err := g.analyzer.Analyze(doc)
	if err != nil {
		return Result{}, fmt.Errorf("generator: analyze samples: %w", err)
	}

	names := req.Renderers
	if len(names) == 0 {
		names = g.defaultNames
	}

	result := Result{
		TypeName:  req.TypeName,
		Model:     fields,
		Artifacts: make([]Artifact, 0, len(names)),
		Summary:   fields.Summarize(),
	}

	for _, name := range names {
		renderer, err := g.registry.Get(name)
		if err != nil {
			return Result{}, fmt.Errorf("generator: renderer %q: %w", name, err)
		}
		content, err := renderer.Render(ctx, req.TypeName, fields)
		if err != nil {
			return Result{}, fmt.Errorf("generator: render %q: %w", name, err)
		}
		result.Artifacts = append(result.Artifacts, Artifact{
			Renderer: name,
			Filename: renderer.Filename(req.TypeName),
			Content:  content,
		})
	}

	return result, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (sample.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return sample.Document{}, errors.New("generator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return sample.Document{}, fmt.Errorf("generator: load document: %w", err)
	}
	return doc, nil
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.loader == nil {
		g.loader = internalsample.New(sample.NewLoaderOptions())
	}
	if g.analyzer == nil {
		g.analyzer = model.NewAnalyzer()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		if err := g.registerDefaults(); err != nil {
			g.initialiseErr = fmt.Errorf("generator: default renderers: %w", err)
		}
	}
	if len(g.defaultNames) == 0 {
		g.defaultNames = append([]string(nil), defaultRenderers...)
	}

	g.defaultsApplied = true
}

func (g *Generator) registerDefaults() error {
	storageRenderer, err := mongoose.New()
	if err != nil {
		return err
	}
	schemaRenderer, err := graphql.New()
	if err != nil {
		return err
	}
	crudRenderer, err := resolver.New()
	if err != nil {
		return err
	}

	g.registry.MustRegister(storageRenderer)
	g.registry.MustRegister(schemaRenderer)
	g.registry.MustRegister(crudRenderer)
	return nil
}
