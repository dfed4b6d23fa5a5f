// Package resolver renders the CRUD operation stubs artifact.
//
// The stubs encode a deliberate failure taxonomy for their future runtime:
// get-by-id and update throw a distinguishable "not found" error, create has
// no precondition to violate at this layer, and delete is idempotent,
// signalling through its boolean return rather than an error.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
	rendertemplate "github.com/goliatone/go-modelgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-modelgen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the resolver renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("resolver renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "resolver"
}

// Filename returns the resolver file name for a type.
func (r *Renderer) Filename(typeName string) string {
	return typeName + ".js"
}

// Render emits the resolver source for the type. The field model is accepted
// for parity with the other renderers and for future field-aware stubs; the
// current templates only need the type name.
func (r *Renderer) Render(_ context.Context, typeName string, _ model.FieldModel) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("resolver renderer: template renderer is nil")
	}
	if typeName == "" {
		return nil, errors.New("resolver renderer: type name is required")
	}

	result, err := r.templates.RenderTemplate("templates/resolvers.tpl", map[string]any{
		"typeName": typeName,
		"singular": render.LowerFirst(typeName),
		"plural":   render.Plural(render.LowerFirst(typeName)),
	})
	if err != nil {
		return nil, fmt.Errorf("resolver renderer: render template: %w", err)
	}
	return []byte(result), nil
}
