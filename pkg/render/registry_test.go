package render_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/render"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string { return s.name }

func (s stubRenderer) Filename(typeName string) string { return typeName + ".txt" }

func (s stubRenderer) Render(context.Context, string, model.FieldModel) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "stub"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !registry.Has("stub") {
		t.Fatal("Has must report registered renderer")
	}

	renderer, err := registry.Get("stub")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "stub" {
		t.Fatalf("name = %q, want stub", renderer.Name())
	}
}

func TestRegistry_DuplicateAndMissing(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "stub"})

	if err := registry.Register(stubRenderer{name: "stub"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if _, err := registry.Get("absent"); err == nil {
		t.Fatal("expected missing renderer error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	names := registry.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("list = %v, want [alpha zeta]", names)
	}
}

func TestNamingHelpers(t *testing.T) {
	if got := render.LowerFirst("User"); got != "user" {
		t.Fatalf("LowerFirst = %q, want user", got)
	}
	if got := render.Plural("user"); got != "users" {
		t.Fatalf("Plural = %q, want users", got)
	}
	if got := render.Plural("person"); got != "persons" {
		t.Fatalf("Plural = %q, want persons (literal suffix)", got)
	}
}
