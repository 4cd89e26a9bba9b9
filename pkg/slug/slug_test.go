package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Go & GORM: a love story", "go-gorm-a-love-story"},
		{"  spaced    out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
		{"UPPER case 123", "upper-case-123"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Make(tc.in), "input %q", tc.in)
	}
}

func TestMakeWithID(t *testing.T) {
	assert.Equal(t, "hello-world-42", MakeWithID("Hello, World!", 42))

	// a title with no usable characters still gets a unique slug
	assert.Equal(t, "-1", MakeWithID("   ", 1))
}
