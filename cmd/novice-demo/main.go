// Command novice-demo exercises the novice package from the command
// line: inspect picture attributes, draw images in the terminal,
// resize them and generate test pictures.
package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/pixelschool/novice"
)

type cli struct {
	Info struct {
		Path string `arg:"" help:"Image file to inspect."`
	} `cmd:"" help:"Print picture attributes."`

	Show struct {
		Path     string `arg:"" help:"Image file to display."`
		Protocol string `help:"Drawing protocol." enum:"auto,halfblocks,sixel,iterm2" default:"auto"`
		Inflate  int    `help:"Pixel block-up factor." default:"1"`
	} `cmd:"" help:"Draw an image in the terminal."`

	Resize struct {
		Path   string `arg:"" help:"Source image file."`
		Dest   string `arg:"" help:"Destination file; format is guessed from the suffix."`
		Width  int    `required:"" help:"Target width in pixels."`
		Height int    `required:"" help:"Target height in pixels."`
	} `cmd:"" help:"Resize an image and save it."`

	Gradient struct {
		Dest   string `arg:"" help:"Destination file; format is guessed from the suffix."`
		Width  int    `help:"Width in pixels." default:"256"`
		Height int    `help:"Height in pixels." default:"128"`
	} `cmd:"" help:"Generate a test gradient picture."`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("novice-demo"),
		kong.Description("Demos for the novice picture package."))

	var err error
	switch kctx.Command() {
	case "info <path>":
		err = runInfo(c.Info.Path)
	case "show <path>":
		err = runShow(c.Show.Path, c.Show.Protocol, c.Show.Inflate)
	case "resize <path> <dest>":
		err = runResize(c.Resize.Path, c.Resize.Dest, c.Resize.Width, c.Resize.Height)
	case "gradient <dest>":
		err = runGradient(c.Gradient.Dest, c.Gradient.Width, c.Gradient.Height)
	}
	kctx.FatalIfErrorf(err)
}

func runInfo(path string) error {
	pic, err := novice.Open(path)
	if err != nil {
		return err
	}

	fmt.Println(pic)
	fmt.Printf("format:   %s\n", pic.Format())
	fmt.Printf("path:     %s\n", pic.Path())
	fmt.Printf("size:     %dx%d\n", pic.Width(), pic.Height())
	fmt.Printf("modified: %t\n", pic.Modified())
	return nil
}

func runShow(path, protocol string, inflation int) error {
	pic, err := novice.Open(path)
	if err != nil {
		return err
	}
	if err := pic.SetInflation(inflation); err != nil {
		return err
	}

	proto := novice.DetectProtocol()
	switch protocol {
	case "halfblocks":
		proto = novice.Halfblocks
	case "sixel":
		proto = novice.Sixel
	case "iterm2":
		proto = novice.ITerm2
	}
	slog.Debug("drawing", "file", path, "protocol", proto)

	out, err := pic.RenderAs(proto)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runResize(path, dest string, width, height int) error {
	pic, err := novice.Open(path)
	if err != nil {
		return err
	}
	if err := pic.SetSize(width, height); err != nil {
		return err
	}
	if err := pic.Save(dest); err != nil {
		return err
	}

	slog.Info("saved", "file", pic.Path(), "format", pic.Format(),
		"width", pic.Width(), "height", pic.Height())
	return nil
}

func runGradient(dest string, width, height int) error {
	pic, err := novice.New(width, height, novice.Color{})
	if err != nil {
		return err
	}

	for px := range pic.Pixels() {
		px.SetRGB(novice.Color{
			R: uint8(px.X() * 255 / width),
			G: uint8(px.Y() * 255 / height),
			B: uint8((px.X() + px.Y()) % 256),
		})
	}

	if err := pic.Save(dest); err != nil {
		return err
	}
	slog.Info("saved", "file", pic.Path(), "format", pic.Format())
	return nil
}
