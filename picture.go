package novice

import (
	"fmt"
	"image"
	"image/draw"
	"iter"
	"path/filepath"
)

// Picture wraps a decoded image buffer and tracks whether the in-memory
// pixels still correspond to a file on disk. All pixel coordinates are
// Cartesian: the origin is the bottom-left corner and y grows upward.
//
// A Picture exclusively owns its buffer; it is never shared between
// Pictures and is not safe for concurrent use.
type Picture struct {
	rgba      *image.RGBA
	path      string
	format    string
	modified  bool
	inflation int
}

// Open decodes the image file at path and returns a Picture backed by
// its pixels. The format is taken from the decoded stream, not the file
// suffix. The returned Picture is unmodified and remembers its absolute
// path until the first mutation.
func Open(path string) (*Picture, error) {
	img, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve path %q: %w", path, err)
	}

	return &Picture{
		rgba:      toRGBA(img),
		path:      abs,
		format:    format,
		inflation: 1,
	}, nil
}

// New creates a blank picture of the given size filled with the given
// color. The zero Color is black. A blank picture has no path and no
// format, and counts as modified until it is saved.
func New(width, height int, fill Color) (*Picture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	return &Picture{
		rgba:      rgba,
		modified:  true,
		inflation: 1,
	}, nil
}

// FromImage copies the pixels of img into a new Picture. The Picture
// owns its copy; later changes to img are not reflected.
func FromImage(img image.Image) *Picture {
	return &Picture{
		rgba:      toRGBA(img),
		modified:  true,
		inflation: 1,
	}
}

// Copy returns an independent deep copy of the picture's pixels. The
// copy has no path and counts as modified.
func (p *Picture) Copy() *Picture {
	return FromImage(p.rgba)
}

// Path returns the file the picture's pixels correspond to, or "" once
// the picture has been mutated without being saved.
func (p *Picture) Path() string { return p.path }

// Format returns the picture's encoding name, e.g. "png" or "jpeg".
// Blank pictures have no format until they are saved.
func (p *Picture) Format() string { return p.format }

// Modified reports whether the in-memory pixels differ from the file
// they were loaded from or last saved to.
func (p *Picture) Modified() bool { return p.modified }

// Size returns the picture dimensions in pixels.
func (p *Picture) Size() (width, height int) {
	b := p.rgba.Bounds()
	return b.Dx(), b.Dy()
}

// Width returns the picture width in pixels.
func (p *Picture) Width() int {
	w, _ := p.Size()
	return w
}

// Height returns the picture height in pixels.
func (p *Picture) Height() int {
	_, h := p.Size()
	return h
}

// Inflation returns the pixel block-up factor applied when the picture
// is saved or shown. Each pixel becomes an NxN block for factor N.
func (p *Picture) Inflation() int { return p.inflation }

// SetInflation sets the block-up factor. It must be at least 1.
// Inflation only affects output; it does not mutate the buffer.
func (p *Picture) SetInflation(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: inflation factor %d", ErrBadSize, n)
	}
	p.inflation = n
	return nil
}

// SetSize resizes the picture to width x height, resampling the current
// content with a Catmull-Rom kernel. Resizing to the current size is a
// no-op. On success the picture is marked modified and loses its path.
// Pixel aliases created before the resize are stale afterwards.
func (p *Picture) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}

	w, h := p.Size()
	if width == w && height == h {
		return nil
	}

	p.rgba = scaleRGBA(p.rgba, width, height)
	p.setModified()
	return nil
}

// SetWidth resizes the picture to the given width, keeping its height.
func (p *Picture) SetWidth(width int) error {
	return p.SetSize(width, p.Height())
}

// SetHeight resizes the picture to the given height, keeping its width.
func (p *Picture) SetHeight(height int) error {
	return p.SetSize(p.Width(), height)
}

// Image returns the picture's pixels as an image.Image for use with
// other imaging packages. Mutating the picture through its own methods
// after the call may be visible through the returned value.
func (p *Picture) Image() image.Image { return p.rgba }

// row maps a Cartesian y coordinate (bottom = 0) onto the buffer's
// top-left row space. Every pixel access goes through this one flip.
func (p *Picture) row(y int) int {
	return p.Height() - y - 1
}

// check validates a single Cartesian coordinate.
func (p *Picture) check(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: negative index (%d, %d)", ErrOutOfBounds, x, y)
	}
	if w, h := p.Size(); x >= w || y >= h {
		return fmt.Errorf("%w: (%d, %d) in %dx%d picture", ErrOutOfBounds, x, y, w, h)
	}
	return nil
}

// checkRange validates a half-open Cartesian rectangle.
func (p *Picture) checkRange(x0, y0, x1, y1 int) error {
	if x0 < 0 || y0 < 0 {
		return fmt.Errorf("%w: negative range (%d:%d, %d:%d)", ErrOutOfBounds, x0, x1, y0, y1)
	}
	if x1 < x0 || y1 < y0 {
		return fmt.Errorf("%w: empty or inverted range (%d:%d, %d:%d)", ErrOutOfBounds, x0, x1, y0, y1)
	}
	if w, h := p.Size(); x1 > w || y1 > h {
		return fmt.Errorf("%w: range (%d:%d, %d:%d) in %dx%d picture", ErrOutOfBounds, x0, x1, y0, y1, w, h)
	}
	return nil
}

// colorAt reads the channel triple at a checked Cartesian coordinate.
func (p *Picture) colorAt(x, y int) Color {
	i := p.rgba.PixOffset(x, p.row(y))
	s := p.rgba.Pix[i : i+3 : i+3]
	return Color{R: s[0], G: s[1], B: s[2]}
}

// setColorAt writes the channel triple at a checked Cartesian
// coordinate and records the mutation.
func (p *Picture) setColorAt(x, y int, c Color) {
	i := p.rgba.PixOffset(x, p.row(y))
	s := p.rgba.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, 0xFF
	p.setModified()
}

// setModified marks the buffer dirty. A modified picture no longer
// corresponds to any file, so its path is cleared until the next save.
func (p *Picture) setModified() {
	p.modified = true
	p.path = ""
}

// PixelAt returns a live alias for the pixel at (x, y). The alias reads
// and writes the picture's buffer directly; it caches nothing.
func (p *Picture) PixelAt(x, y int) (*Pixel, error) {
	if err := p.check(x, y); err != nil {
		return nil, err
	}
	return &Pixel{pic: p, x: x, y: y}, nil
}

// Region returns aliases for every pixel in the half-open rectangle
// [x0, x1) x [y0, y1). Row i, column j of the result is the pixel at
// (x0+j, y0+i).
func (p *Picture) Region(x0, y0, x1, y1 int) ([][]*Pixel, error) {
	if err := p.checkRange(x0, y0, x1, y1); err != nil {
		return nil, err
	}

	rows := make([][]*Pixel, y1-y0)
	for i := range rows {
		row := make([]*Pixel, x1-x0)
		for j := range row {
			row[j] = &Pixel{pic: p, x: x0 + j, y: y0 + i}
		}
		rows[i] = row
	}
	return rows, nil
}

// SetPixel writes one pixel and marks the picture modified.
func (p *Picture) SetPixel(x, y int, c Color) error {
	if err := p.check(x, y); err != nil {
		return err
	}
	p.setColorAt(x, y, c)
	return nil
}

// Fill writes the same color to every pixel in the half-open rectangle
// [x0, x1) x [y0, y1) and marks the picture modified.
func (p *Picture) Fill(x0, y0, x1, y1 int, c Color) error {
	if err := p.checkRange(x0, y0, x1, y1); err != nil {
		return err
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.setColorAt(x, y, c)
		}
	}
	return nil
}

// SetRegion writes a grid of colors element-wise into the half-open
// rectangle [x0, x1) x [y0, y1). The grid must have y1-y0 rows of
// x1-x0 colors each; row i, column j lands on pixel (x0+j, y0+i).
func (p *Picture) SetRegion(x0, y0, x1, y1 int, colors [][]Color) error {
	if err := p.checkRange(x0, y0, x1, y1); err != nil {
		return err
	}
	if len(colors) != y1-y0 {
		return fmt.Errorf("%w: got %d rows, region has %d", ErrShapeMismatch, len(colors), y1-y0)
	}
	for i, row := range colors {
		if len(row) != x1-x0 {
			return fmt.Errorf("%w: row %d has %d colors, region has %d columns",
				ErrShapeMismatch, i, len(row), x1-x0)
		}
	}

	for i, row := range colors {
		for j, c := range row {
			p.setColorAt(x0+j, y0+i, c)
		}
	}
	return nil
}

// Pixels iterates over every pixel of the picture, column by column
// from x = 0 and bottom to top within each column. The sequence is lazy
// and can be ranged over more than once. Aliases yielded before a
// resize are stale afterwards.
func (p *Picture) Pixels() iter.Seq[*Pixel] {
	return func(yield func(*Pixel) bool) {
		w, h := p.Size()
		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				if !yield(&Pixel{pic: p, x: x, y: y}) {
					return
				}
			}
		}
	}
}

// Save encodes the picture to path, inferring the format from the file
// suffix (".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff",
// matched case-insensitively). The file is written atomically: the
// encoder runs against a temporary file which is renamed into place
// only on success. On success the picture's path and format are
// updated and it is no longer considered modified.
func (p *Picture) Save(path string) error {
	format, err := formatForPath(path)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("could not resolve path %q: %w", path, err)
	}

	if err := encodeFile(abs, format, inflate(p.rgba, p.inflation)); err != nil {
		return err
	}

	p.path = abs
	p.format = format
	p.modified = false
	return nil
}

func (p *Picture) String() string {
	path := p.path
	if path == "" {
		path = "<none>"
	}
	return fmt.Sprintf("Picture (format: %s, path: %s, modified: %t)", p.format, path, p.modified)
}

// toRGBA copies img into an origin-normalized RGBA buffer.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
