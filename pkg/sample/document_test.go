package sample_test

import (
	"testing"

	"github.com/goliatone/go-modelgen/pkg/sample"
)

func TestParseDocument_SingleObject(t *testing.T) {
	doc, err := sample.ParseDocument(sample.SourceFromBytes(""), []byte(`{"name":"x"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Len() != 1 {
		t.Fatalf("len = %d, want 1", doc.Len())
	}
}

func TestParseDocument_ObjectArray(t *testing.T) {
	doc, err := sample.ParseDocument(sample.SourceFromBytes(""), []byte(`[{"a":1},{"b":2}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("len = %d, want 2", doc.Len())
	}
}

func TestParseDocument_PreservesKeyOrder(t *testing.T) {
	doc, err := sample.ParseDocument(sample.SourceFromBytes(""), []byte(`{"zeta":1,"alpha":2,"mid":3}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var keys []string
	for pair := doc.Samples()[0].Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestParseDocument_RejectsNonObjectInputs(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"scalar", `42`},
		{"string", `"hello"`},
		{"number array", `[1,2,3]`},
		{"empty payload", ``},
		{"empty array", `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := sample.ParseDocument(sample.SourceFromBytes(""), []byte(tc.raw)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestNewDocument_RequiresSourceAndSamples(t *testing.T) {
	if _, err := sample.NewDocument(nil, []*sample.Object{sample.NewObject()}); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := sample.NewDocument(sample.SourceFromBytes(""), nil); err == nil {
		t.Fatal("expected error for empty sample set")
	}
}
