package novice

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/soniakeys/quant/median"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// jpegQuality is the encoder quality used for saved JPEG files.
const jpegQuality = 95

// gifColors is the palette size used when quantizing for GIF output.
const gifColors = 256

// decodeFile opens and decodes an image file. The returned format name
// comes from the codec that recognized the stream ("png", "jpeg",
// "gif", "bmp", "tiff", "webp", "vp8l").
func decodeFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return img, format, nil
}

// formatForPath maps a file suffix onto an encodable format name.
// Matching is case-insensitive.
func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".gif":
		return "gif", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: cannot infer format from %q", ErrUnknownFormat, path)
	}
}

// encodeFile writes img to path in the given format. The encoder runs
// against a temporary file in the destination directory which is
// renamed into place only after a successful sync, so a failed save
// never leaves a truncated file behind.
func encodeFile(path, format string, img image.Image) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, name)
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := tmp.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush destination %q: %w", path, defErr)
		}
		if defErr := tmp.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", path, defErr)
		}
		if err != nil || !canRename {
			os.Remove(tmp.Name())
			return
		}
		if defErr := os.Rename(tmp.Name(), path); defErr != nil {
			err = fmt.Errorf("could not rename destination %q: %w", path, defErr)
		}
	}()

	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err = enc.Encode(tmp, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", path, err)
		}
	case "jpeg":
		if err = jpeg.Encode(tmp, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return fmt.Errorf("could not encode JPEG destination %q: %w", path, err)
		}
	case "gif":
		paletted := median.Quantizer(gifColors).Paletted(img)
		if err = gif.Encode(tmp, paletted, nil); err != nil {
			return fmt.Errorf("could not encode GIF destination %q: %w", path, err)
		}
	case "bmp":
		if err = bmp.Encode(tmp, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", path, err)
		}
	case "tiff":
		if err = tiff.Encode(tmp, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	canRename = true
	return err
}
