package sample_test

import (
	"testing"

	"github.com/goliatone/go-modelgen/pkg/sample"
)

func TestDefaultTypeName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"user.json", "User"},
		{"user_posts.json", "UserPosts"},
		{"blog-entries.json", "BlogEntries"},
		{"data/orders.json", "Orders"},
		{"already Capital.json", "AlreadyCapital"},
		{"v2_things.json", "V2Things"},
		{"...", ""},
	}
	for _, tc := range cases {
		if got := sample.DefaultTypeName(tc.path); got != tc.want {
			t.Fatalf("DefaultTypeName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
