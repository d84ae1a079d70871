package novice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{"name", "red", Color{R: 255}, false},
		{"name uppercase", "RED", Color{R: 255}, false},
		{"name black", "black", Color{}, false},
		{"short hex", "#f0a", Color{R: 0xFF, G: 0x00, B: 0xAA}, false},
		{"long hex", "#102030", Color{R: 0x10, G: 0x20, B: 0x30}, false},
		{"long hex white", "#ffffff", Color{R: 255, G: 255, B: 255}, false},
		{"unknown name", "mauve-ish", Color{}, true},
		{"bad length", "#ff", Color{}, true},
		{"not hex", "#zzzzzz", Color{}, true},
		{"empty", "", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadColor)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#0a1400", Color{R: 10, G: 20, B: 0}.String())
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{R: 255, G: 128, B: 0}.RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0x0000), b)
	assert.Equal(t, uint32(0xFFFF), a)
}
