package novice

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleRGBA(t *testing.T) {
	tests := []struct {
		name         string
		sourceWidth  int
		sourceHeight int
		targetWidth  int
		targetHeight int
	}{
		{
			name:         "downscale square image",
			sourceWidth:  100,
			sourceHeight: 100,
			targetWidth:  50,
			targetHeight: 50,
		},
		{
			name:         "upscale small image",
			sourceWidth:  10,
			sourceHeight: 10,
			targetWidth:  20,
			targetHeight: 20,
		},
		{
			name:         "rectangular to square",
			sourceWidth:  100,
			sourceHeight: 50,
			targetWidth:  75,
			targetHeight: 75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := toRGBA(createTestImage(tt.sourceWidth, tt.sourceHeight))
			got := scaleRGBA(src, tt.targetWidth, tt.targetHeight)
			assert.Equal(t, tt.targetWidth, got.Bounds().Dx())
			assert.Equal(t, tt.targetHeight, got.Bounds().Dy())
		})
	}
}

func TestInflate(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 123, A: 255})

	same := inflate(src, 1)
	assert.Same(t, src, same)

	big := inflate(src, 4)
	assert.Equal(t, 12, big.Bounds().Dx())
	assert.Equal(t, 8, big.Bounds().Dy())

	// Nearest neighbor: the whole top-left block keeps the source value.
	r, _, _, _ := big.At(3, 3).RGBA()
	assert.Equal(t, uint32(123), r>>8)
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		maxW, maxH   int
		wantW, wantH int
	}{
		{"already fits", 10, 10, 20, 20, 10, 10},
		{"wide image", 200, 50, 100, 100, 100, 25},
		{"tall image", 50, 200, 100, 100, 25, 100},
		{"exact fit", 100, 100, 100, 100, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitWithin(createTestImage(tt.srcW, tt.srcH), tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}
