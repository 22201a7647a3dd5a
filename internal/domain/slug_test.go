package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Maasai Mara Weekend Safari", "maasai-mara-weekend-safari"},
		{"Mt. Kenya Summit!", "mt-kenya-summit"},
		{"  Diani --- Beach  ", "diani-beach"},
		{"2026 New Year's Eve", "2026-new-year-s-eve"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), tc.in)
	}
}
