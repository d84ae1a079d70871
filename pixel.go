package novice

import "fmt"

// Pixel is a live alias into one coordinate of a Picture. It holds no
// pixel data of its own: every read dereferences the owning buffer and
// every write passes through to it, marking the Picture modified.
//
// A Pixel is bound to its coordinate, not its content. After the owning
// Picture is resized the alias is stale and should be discarded.
type Pixel struct {
	pic  *Picture
	x, y int
}

// X returns the horizontal location (left = 0).
func (px *Pixel) X() int { return px.x }

// Y returns the vertical location (bottom = 0).
func (px *Pixel) Y() int { return px.y }

// Red returns the red channel value, 0-255.
func (px *Pixel) Red() int { return int(px.pic.colorAt(px.x, px.y).R) }

// Green returns the green channel value, 0-255.
func (px *Pixel) Green() int { return int(px.pic.colorAt(px.x, px.y).G) }

// Blue returns the blue channel value, 0-255.
func (px *Pixel) Blue() int { return int(px.pic.colorAt(px.x, px.y).B) }

// RGB returns all three channels as one Color.
func (px *Pixel) RGB() Color { return px.pic.colorAt(px.x, px.y) }

// SetRed writes the red channel. Values outside 0-255 are rejected
// with ErrChannelRange and leave the pixel untouched.
func (px *Pixel) SetRed(v int) error {
	if err := validChannel(v); err != nil {
		return err
	}
	c := px.pic.colorAt(px.x, px.y)
	c.R = uint8(v)
	px.pic.setColorAt(px.x, px.y, c)
	return nil
}

// SetGreen writes the green channel. Values outside 0-255 are rejected.
func (px *Pixel) SetGreen(v int) error {
	if err := validChannel(v); err != nil {
		return err
	}
	c := px.pic.colorAt(px.x, px.y)
	c.G = uint8(v)
	px.pic.setColorAt(px.x, px.y, c)
	return nil
}

// SetBlue writes the blue channel. Values outside 0-255 are rejected.
func (px *Pixel) SetBlue(v int) error {
	if err := validChannel(v); err != nil {
		return err
	}
	c := px.pic.colorAt(px.x, px.y)
	c.B = uint8(v)
	px.pic.setColorAt(px.x, px.y, c)
	return nil
}

// SetRGB writes all three channels at once.
func (px *Pixel) SetRGB(c Color) {
	px.pic.setColorAt(px.x, px.y, c)
}

func (px *Pixel) String() string {
	c := px.RGB()
	return fmt.Sprintf("Pixel (red: %d, green: %d, blue: %d)", c.R, c.G, c.B)
}
