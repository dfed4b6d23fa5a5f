// Package mongoose renders the storage-schema artifact: a Mongoose model
// definition with one entry per inferred field, in field-model order.
package mongoose

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-modelgen/pkg/model"
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

// New constructs the mongoose renderer applying any provided options.
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
			return nil, fmt.Errorf("mongoose renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "mongoose"
}

// Filename returns the model file name for a type.
func (r *Renderer) Filename(typeName string) string {
	return typeName + ".js"
}

// Render emits the Mongoose model source for the field model.
func (r *Renderer) Render(_ context.Context, typeName string, fields model.FieldModel) ([]byte, error) {
	if r.templates == nil {
		return nil, errors.New("mongoose renderer: template renderer is nil")
	}
	if typeName == "" {
		return nil, errors.New("mongoose renderer: type name is required")
	}

	result, err := r.templates.RenderTemplate("templates/model.tpl", map[string]any{
		"typeName": typeName,
		"fields":   fieldViews(fields),
	})
	if err != nil {
		return nil, fmt.Errorf("mongoose renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type fieldView struct {
	Name     string `json:"name"`
	TypeRef  string `json:"typeRef"`
	Ref      bool   `json:"ref"`
	Required bool   `json:"required"`
}

func fieldViews(fields model.FieldModel) []fieldView {
	views := make([]fieldView, 0, len(fields.Fields))
	for _, field := range fields.Fields {
		views = append(views, fieldView{
			Name:     field.Name,
			TypeRef:  storageRef(field.Storage),
			Ref:      leafKind(field.Storage) == model.KindObjectID,
			Required: field.Required,
		})
	}
	return views
}

// storageRef renders the Mongoose type reference for an inferred storage
// type. Arrays render bracketed; Mixed and ObjectId use the schema type
// namespace.
func storageRef(t model.Type) string {
	if t.IsArray() {
		elem := ""
		if t.Elem != nil {
			elem = storageRef(*t.Elem)
		}
		return "[" + elem + "]"
	}
	switch t.Kind {
	case model.KindMixed:
		return "mongoose.Schema.Types.Mixed"
	case model.KindObjectID:
		return "mongoose.Schema.Types.ObjectId"
	default:
		return string(t.Kind)
	}
}

func leafKind(t model.Type) model.Kind {
	for t.IsArray() && t.Elem != nil {
		t = *t.Elem
	}
	return t.Kind
}
