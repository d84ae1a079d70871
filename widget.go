package novice

import "fmt"

// PictureWidget wraps a Picture for embedding in TUI frameworks such as
// Bubbletea. It caches the rendered output and only re-renders when the
// picture, size or protocol changes.
type PictureWidget struct {
	pic         *Picture
	cols, rows  int
	proto       Protocol
	rendered    string
	needsUpdate bool
}

// NewPictureWidget creates a widget for an existing Picture.
func NewPictureWidget(pic *Picture) *PictureWidget {
	return &PictureWidget{
		pic:         pic,
		proto:       DetectProtocol(),
		needsUpdate: true,
	}
}

// NewPictureWidgetFromFile creates a widget by opening an image file.
func NewPictureWidgetFromFile(path string) (*PictureWidget, error) {
	pic, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewPictureWidget(pic), nil
}

// Picture returns the wrapped picture.
func (w *PictureWidget) Picture() *Picture { return w.pic }

// SetSize sets the widget budget in character cells.
func (w *PictureWidget) SetSize(cols, rows int) *PictureWidget {
	if w.cols != cols || w.rows != rows {
		w.cols = cols
		w.rows = rows
		w.needsUpdate = true
	}
	return w
}

// SetProtocol fixes the drawing protocol instead of auto-detecting.
func (w *PictureWidget) SetProtocol(proto Protocol) *PictureWidget {
	if w.proto != proto {
		w.proto = proto
		w.needsUpdate = true
	}
	return w
}

// Invalidate forces a re-render on the next View call. Call it after
// mutating the wrapped picture.
func (w *PictureWidget) Invalidate() {
	w.needsUpdate = true
}

// View returns the rendered picture for the TUI. Renders are cached
// between calls until the widget is invalidated.
func (w *PictureWidget) View() (string, error) {
	if !w.needsUpdate && w.rendered != "" {
		return w.rendered, nil
	}

	cols, rows := w.cols, w.rows
	if cols <= 0 || rows <= 0 {
		cols, rows = terminalCells()
	}

	out, err := w.pic.renderCells(w.proto, cols, rows)
	if err != nil {
		return "", fmt.Errorf("could not render picture widget: %w", err)
	}

	w.rendered = out
	w.needsUpdate = false
	return out, nil
}
