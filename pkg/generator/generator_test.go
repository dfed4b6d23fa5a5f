package generator_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-modelgen/pkg/generator"
	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/testsupport"
)

const fixtureJSON = `[{"username":"a","age":1},{"username":"b","age":2},{"username":"c"}]`

func TestGenerator_EndToEnd(t *testing.T) {
	doc := testsupport.MustParseDocument(t, fixtureJSON)

	gen := generator.New()
	result, err := gen.Generate(context.Background(), generator.Request{
		Document: &doc,
		TypeName: "User",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	wantSummary := model.Summary{TotalFields: 2, RequiredFields: 1, OptionalFields: 1}
	if diff := testsupport.CompareGolden(wantSummary, result.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	if len(result.Artifacts) != 3 {
		t.Fatalf("artifact count = %d, want 3", len(result.Artifacts))
	}

	wantFiles := map[string]string{
		"mongoose": "User.js",
		"graphql":  "User.graphql",
		"resolver": "User.js",
	}
	for renderer, filename := range wantFiles {
		artifact, ok := result.Artifact(renderer)
		if !ok {
			t.Fatalf("missing %s artifact", renderer)
		}
		if artifact.Filename != filename {
			t.Fatalf("%s filename = %q, want %q", renderer, artifact.Filename, filename)
		}
		if len(artifact.Content) == 0 {
			t.Fatalf("%s artifact is empty", renderer)
		}
	}
}

func TestGenerator_FieldsAppearOnceInOrder(t *testing.T) {
	doc := testsupport.MustParseDocument(t, fixtureJSON)

	result, err := generator.New().Generate(context.Background(), generator.Request{
		Document: &doc,
		TypeName: "User",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	storage, _ := result.Artifact("mongoose")
	testsupport.RequireContainsInOrder(t, string(storage.Content), "username:", "age:")
	testsupport.RequireCount(t, string(storage.Content), "username:", 1)
	testsupport.RequireCount(t, string(storage.Content), "age:", 1)

	schema, _ := result.Artifact("graphql")
	// Once in the type declaration, once in the input declaration.
	testsupport.RequireContainsInOrder(t, string(schema.Content), "username:", "age:", "username:", "age:")
	testsupport.RequireCount(t, string(schema.Content), "username:", 2)
	testsupport.RequireCount(t, string(schema.Content), "age:", 2)
}

func TestGenerator_RendererSubset(t *testing.T) {
	doc := testsupport.MustParseDocument(t, fixtureJSON)

	result, err := generator.New().Generate(context.Background(), generator.Request{
		Document:  &doc,
		TypeName:  "User",
		Renderers: []string{"graphql"},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("artifact count = %d, want 1", len(result.Artifacts))
	}
	if result.Artifacts[0].Renderer != "graphql" {
		t.Fatalf("renderer = %q, want graphql", result.Artifacts[0].Renderer)
	}
}

func TestGenerator_UnknownRenderer(t *testing.T) {
	doc := testsupport.MustParseDocument(t, fixtureJSON)

	_, err := generator.New().Generate(context.Background(), generator.Request{
		Document:  &doc,
		TypeName:  "User",
		Renderers: []string{"protobuf"},
	})
	if err == nil || !strings.Contains(err.Error(), "protobuf") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerator_InputValidation(t *testing.T) {
	doc := testsupport.MustParseDocument(t, fixtureJSON)
	gen := generator.New()

	if _, err := gen.Generate(nil, generator.Request{Document: &doc, TypeName: "User"}); err == nil { //nolint:staticcheck
		t.Fatal("expected error for nil context")
	}
	if _, err := gen.Generate(context.Background(), generator.Request{Document: &doc}); err == nil {
		t.Fatal("expected error for missing type name")
	}
	if _, err := gen.Generate(context.Background(), generator.Request{TypeName: "User"}); err == nil {
		t.Fatal("expected error for missing source and document")
	}
}

func TestGenerator_CustomAnalyzer(t *testing.T) {
	doc := testsupport.MustParseDocument(t, `[{"v":"hello"},{"v":42}]`)

	gen := generator.New(generator.WithAnalyzer(
		model.NewAnalyzer(model.WithMergeStrategy(model.WidenToMixed)),
	))
	result, err := gen.Generate(context.Background(), generator.Request{
		Document: &doc,
		TypeName: "Doc",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	field, ok := result.Model.Field("v")
	if !ok {
		t.Fatal("field missing")
	}
	if field.API.Kind != model.KindJSON {
		t.Fatalf("api kind = %s, want JSON via injected merge strategy", field.API.Kind)
	}
}
