package render

import (
	"context"

	"github.com/goliatone/go-modelgen/pkg/model"
)

// Renderer projects a FieldModel into one generated artifact (a Mongoose
// model, a GraphQL schema, resolver stubs). Renderers are pure: the same
// inputs always produce the same bytes.
type Renderer interface {
	Name() string

	// Filename returns the artifact file name for a type, e.g. "User.js".
	Filename(typeName string) string

	Render(ctx context.Context, typeName string, fields model.FieldModel) ([]byte, error)
}
