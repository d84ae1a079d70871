// Command picview is an interactive picture viewer built on Bubbletea.
// It doubles as a playground for the novice package: pictures can be
// inverted, darkened and blacked out live, and saved back to disk.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelschool/novice"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: picview <image> [output]")
		os.Exit(1)
	}

	widget, err := novice.NewPictureWidgetFromFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := "picview-out.png"
	if len(os.Args) > 2 {
		output = os.Args[2]
	}

	m := model{widget: widget, output: output}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	widget *novice.PictureWidget
	output string
	status string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.widget.SetSize(msg.Width, msg.Height-2)

	case tea.KeyMsg:
		pic := m.widget.Picture()
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "i": // invert
			for px := range pic.Pixels() {
				c := px.RGB()
				px.SetRGB(novice.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B})
			}
			m.widget.Invalidate()
			m.status = "inverted"

		case "d": // darken
			for px := range pic.Pixels() {
				c := px.RGB()
				px.SetRGB(novice.Color{R: c.R / 2, G: c.G / 2, B: c.B / 2})
			}
			m.widget.Invalidate()
			m.status = "darkened"

		case "b": // black out the lower-left corner
			w, h := pic.Size()
			if err := pic.Fill(0, 0, w/4, h/4, novice.Color{}); err != nil {
				m.status = err.Error()
			} else {
				m.widget.Invalidate()
				m.status = "blacked out lower-left corner"
			}

		case "s":
			if err := pic.Save(m.output); err != nil {
				m.status = err.Error()
			} else {
				m.status = fmt.Sprintf("saved %s (%s)", pic.Path(), pic.Format())
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	out, err := m.widget.View()
	if err != nil {
		return err.Error()
	}

	pic := m.widget.Picture()
	bar := fmt.Sprintf("%dx%d modified=%t  [i]nvert [d]arken [b]lack [s]ave [q]uit  %s",
		pic.Width(), pic.Height(), pic.Modified(), m.status)
	return out + "\n" + bar
}
