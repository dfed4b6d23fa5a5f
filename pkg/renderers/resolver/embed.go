package resolver

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// tweak the built-in resolver rendering.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
