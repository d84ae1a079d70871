package novice

import (
	"image"

	"golang.org/x/image/draw"
)

// scaleRGBA resamples src to width x height with a Catmull-Rom kernel,
// preserving the visual content approximately.
func scaleRGBA(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// inflate blows every pixel up into an NxN block using nearest-neighbor
// sampling. Factor 1 returns src unchanged.
func inflate(src *image.RGBA, factor int) image.Image {
	if factor <= 1 {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// fitWithin scales img down so it fits inside maxW x maxH, keeping the
// aspect ratio. Images that already fit are returned unchanged; this
// never upscales.
func fitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	srcW, srcH := float64(b.Dx()), float64(b.Dy())
	if srcW == 0 || srcH == 0 {
		return img
	}

	ratioW := float64(maxW) / srcW
	ratioH := float64(maxH) / srcH
	ratio := min(ratioW, ratioH)
	if ratio >= 1 {
		return img
	}

	w := max(int(srcW*ratio), 1)
	h := max(int(srcH*ratio), 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
