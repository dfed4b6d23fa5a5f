package resolver_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-modelgen/pkg/model"
	"github.com/goliatone/go-modelgen/pkg/renderers/resolver"
	"github.com/goliatone/go-modelgen/pkg/testsupport"
)

func renderFixture(t *testing.T, typeName string) string {
	t.Helper()

	renderer, err := resolver.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(context.Background(), typeName, model.FieldModel{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_QueryStubs(t *testing.T) {
	output := renderFixture(t, "User")

	testsupport.RequireContainsInOrder(t, output,
		"const User = require('../models/User');",
		"Query: {",
		"users: async () => User.find(),",
		"user: async (_, { id }) => {",
		"await User.findById(id);",
		"throw new Error('User not found');",
	)
}

func TestRenderer_MutationStubs(t *testing.T) {
	output := renderFixture(t, "User")

	testsupport.RequireContainsInOrder(t, output,
		"Mutation: {",
		"createUser: async (_, { input }) => User.create(input),",
		"updateUser: async (_, { id, input }) => {",
		"await User.findByIdAndUpdate(id, input, { new: true });",
		"deleteUser: async (_, { id }) => {",
		"await User.findByIdAndDelete(id);",
		"return removed !== null;",
	)

	// Get-by-id and update fail with not-found; create and delete never do.
	testsupport.RequireCount(t, output, "throw new Error('User not found');", 2)
}

func TestRenderer_MechanicalNaming(t *testing.T) {
	output := renderFixture(t, "Person")

	testsupport.RequireContainsInOrder(t, output,
		"persons: async () => Person.find(),",
		"person: async (_, { id }) => {",
	)
}

func TestRenderer_Filename(t *testing.T) {
	renderer, err := resolver.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if got := renderer.Filename("User"); got != "User.js" {
		t.Fatalf("filename = %q, want User.js", got)
	}
}
