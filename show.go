package novice

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/charmbracelet/x/mosaic"
	"github.com/mattn/go-sixel"
)

// Assumed character cell geometry for protocols that address pixels.
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// sixelColors is the palette size used for sixel output.
const sixelColors = 256

// Render returns an escape-sequence string that draws the picture in
// the current terminal, sized to fit it. The drawing protocol is
// auto-detected; see RenderAs for a fixed choice.
func (p *Picture) Render() (string, error) {
	return p.RenderAs(DetectProtocol())
}

// RenderAs renders the picture with a specific terminal protocol. The
// picture is inflated first, then scaled down to fit the terminal.
func (p *Picture) RenderAs(proto Protocol) (string, error) {
	cols, rows := terminalCells()
	if rows > 1 {
		rows-- // keep the prompt line visible
	}
	return p.renderCells(proto, cols, rows)
}

// renderCells renders the picture into a cols x rows character budget.
func (p *Picture) renderCells(proto Protocol, cols, rows int) (string, error) {
	img := inflate(p.rgba, p.inflation)

	switch proto {
	case ITerm2:
		return renderITerm2(fitWithin(img, cols*cellPixelWidth, rows*cellPixelHeight))
	case Sixel:
		return renderSixel(fitWithin(img, cols*cellPixelWidth, rows*cellPixelHeight))
	default:
		return renderHalfblocks(fitWithin(img, cols, rows*2)), nil
	}
}

// Show draws the picture to stdout.
func (p *Picture) Show() error {
	out, err := p.Render()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// ShowFile opens an image file and draws it to stdout.
func ShowFile(path string) error {
	pic, err := Open(path)
	if err != nil {
		return err
	}
	return pic.Show()
}

// renderHalfblocks draws the image with Unicode half blocks, two image
// rows per character cell.
func renderHalfblocks(img image.Image) string {
	b := img.Bounds()
	m := mosaic.New().Width(b.Dx()).Height((b.Dy() + 1) / 2)
	return m.Render(img)
}

// renderSixel encodes the image as a sixel escape sequence.
func renderSixel(img image.Image) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Colors = sixelColors
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("could not encode sixel data: %w", err)
	}
	return buf.String(), nil
}

// renderITerm2 encodes the image as an iTerm2 inline-image sequence.
// PNG keeps the preview lossless regardless of the picture's format.
func renderITerm2(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("could not encode preview image: %w", err)
	}

	b := img.Bounds()
	return fmt.Sprintf("\x1b]1337;File=inline=1;size=%d;width=%dpx;height=%dpx:%s\x07",
		buf.Len(), b.Dx(), b.Dy(), base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}
