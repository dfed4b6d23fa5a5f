// Package graphql renders the typed-API schema artifact: an SDL fragment with
// the entity type, its mutation input, and the query/mutation surfaces.
//
// The object type always carries a non-null id plus nullable createdAt and
// updatedAt timestamps; the input type carries neither. Query and mutation
// names derive mechanically from the type name (lowercase first letter for
// the singular, trailing "s" for the collection).
package graphql

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

// New constructs the graphql renderer applying any provided options.
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
			return nil, fmt.Errorf("graphql renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "graphql"
}

// Filename returns the schema file name for a type.
func (r *Renderer) Filename(typeName string) string {
	return typeName + ".graphql"
}

// Render emits the GraphQL schema source for the field model.
func (r *Renderer) Render(_ context.Context, typeName string, fields model.FieldModel) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("graphql renderer: template renderer is nil")
	}
	if typeName == "" {
		return nil, errors.New("graphql renderer: type name is required")
	}

	result, err := r.templates.RenderTemplate("templates/schema.tpl", map[string]any{
		"typeName": typeName,
		"singular": render.LowerFirst(typeName),
		"plural":   render.Plural(render.LowerFirst(typeName)),
		"fields":   fieldViews(fields),
	})
	if err != nil {
		return nil, fmt.Errorf("graphql renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type fieldView struct {
	Name     string `json:"name"`
	TypeRef  string `json:"typeRef"`
	Required bool   `json:"required"`
}

func fieldViews(fields model.FieldModel) []fieldView {
	views := make([]fieldView, 0, len(fields.Fields))
	for _, field := range fields.Fields {
		views = append(views, fieldView{
			Name:     field.Name,
			TypeRef:  apiRef(field.API),
			Required: field.Required,
		})
	}
	return views
}

// apiRef renders the SDL type reference for an inferred API type.
func apiRef(t model.Type) string {
	if t.IsArray() {
		elem := ""
		if t.Elem != nil {
			elem = apiRef(*t.Elem)
		}
		return "[" + elem + "]"
	}
	return string(t.Kind)
}
