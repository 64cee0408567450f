package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Phone", "phone"},
		{"spaces become hyphens", "Blue Phone Case", "blue-phone-case"},
		{"punctuation collapses", "50% off!! (today)", "50-off-today"},
		{"edge hyphens trimmed", "  trimmed  ", "trimmed"},
		{"runs collapse", "a --- b", "a-b"},
		{"digits kept", "iphone 15 pro", "iphone-15-pro"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
