package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "My Site", "my-site"},
		{"punctuation collapses", "My Site!!", "my-site"},
		{"leading and trailing junk", "  --Hello World--  ", "hello-world"},
		{"run of separators", "a   &   b", "a-b"},
		{"already a slug", "my-cafe", "my-cafe"},
		{"digits survive", "Shop 24/7", "shop-24-7"},
		{"unicode stripped", "Café Münchner", "caf-m-nchner"},
		{"all junk", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestValidSubdomain(t *testing.T) {
	valid := []string{"my-cafe", "a", "shop-24-7", "x1"}
	for _, s := range valid {
		assert.True(t, ValidSubdomain(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "My-Cafe", "my cafe", "my_cafe", "café", "a.b"}
	for _, s := range invalid {
		assert.False(t, ValidSubdomain(s), "expected %q to be invalid", s)
	}
}

func TestSlugifyProducesValidSubdomains(t *testing.T) {
	for _, name := range []string{"My Cafe", "Shop 24/7", "  weird -- Name  "} {
		slug := Slugify(name)
		assert.True(t, ValidSubdomain(slug), "Slugify(%q) = %q", name, slug)
	}
}
