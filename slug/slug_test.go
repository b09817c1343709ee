package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prompt-gallery/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Cyberpunk City at Night", "cyberpunk-city-at-night"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Symbols!@# are$% stripped", "symbols-are-stripped"},
		{"Multiple   spaces", "multiple-spaces"},
		{"already-hyphenated-title", "already-hyphenated-title"},
		{"UPPER Case", "upper-case"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.in), "input %q", tc.in)
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	a := slug.Make("The Same Title")
	b := slug.Make("The Same Title")
	assert.Equal(t, a, b)
}

func TestWithSuffix(t *testing.T) {
	base := slug.Make("Popular Title")
	suffixed := slug.WithSuffix(base)

	assert.True(t, strings.HasPrefix(suffixed, base+"-"))
	assert.Len(t, suffixed, len(base)+1+6)
	assert.NotEqual(t, suffixed, slug.WithSuffix(base))
}
