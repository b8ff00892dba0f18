// SPDX-License-Identifier: Unlicense OR MIT

// Command panlist is a terminal demonstration of the pannable area.
// Drag the list with the mouse and release mid-motion to fling it;
// the content coasts, overshoots the edges and bounces back while the
// scroll indicator fades in and out.
//
// With -profile the tuning is read from a YAML file and re-applied
// live whenever the file changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pannable.org/f32"
	"pannable.org/io/pointer"
	"pannable.org/pan"
	"pannable.org/profile"
	"pannable.org/unit"
)

// A terminal cell stands in for a block of pixels so the engine's
// pixel-tuned defaults behave sensibly on a character grid.
const (
	cellW = 8
	cellH = 16
)

var (
	itemStyle   = lipgloss.NewStyle().PaddingLeft(1)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	barDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type advanceMsg struct{ gen int }

type paramsMsg struct {
	params pan.Params
	err    error
}

type model struct {
	area  *pan.Area
	start time.Time
	// gen invalidates stale wakeup ticks after the schedule moved.
	gen int

	lines    []string
	width    int
	height   int
	dragging bool
	status   string
}

func newModel(params pan.Params) *model {
	m := &model{
		area:  pan.New(unit.Metric{PxPerDp: 1}, params),
		start: time.Now(),
		lines: make([]string, 200),
	}
	for i := range m.lines {
		m.lines[i] = fmt.Sprintf("Item %03d", i)
	}
	m.area.SetChild(pan.NewChild(f32.Point{}, nil))
	return m
}

func (m *model) now() time.Duration {
	return time.Since(m.start)
}

// schedule asks bubbletea to wake us at the engine's next deadline.
func (m *model) schedule() tea.Cmd {
	wake, ok := m.area.NextWake()
	if !ok {
		return nil
	}
	m.gen++
	gen := m.gen
	d := wake - m.now()
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{gen: gen}
	})
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.area.ScrollTo(pan.Skip, 0)
		case "b":
			m.area.ScrollTo(pan.Skip, m.area.VAdjustment().Upper())
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		listRows := m.height - 1
		if listRows < 1 {
			listRows = 1
		}
		size := f32.Pt(float32(m.width*cellW), float32(listRows*cellH))
		m.area.Resize(size)
		m.area.VAdjustment().Configure(0, float32(len(m.lines)*cellH), size.Y)
	case tea.MouseMsg:
		m.mouse(msg)
	case advanceMsg:
		if msg.gen == m.gen {
			m.area.Advance(m.now())
		}
	case paramsMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("profile: %v", msg.err)
		} else {
			m.area.SetParams(msg.params)
			m.status = "profile reloaded"
		}
	}
	return m, m.schedule()
}

func (m *model) mouse(msg tea.MouseMsg) {
	pos := f32.Pt(float32(msg.X*cellW), float32(msg.Y*cellH))
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.area.Event(pointer.Event{
			Kind:   pointer.Scroll,
			Time:   m.now(),
			Scroll: f32.Pt(0, -1),
		})
	case msg.Button == tea.MouseButtonWheelDown:
		m.area.Event(pointer.Event{
			Kind:   pointer.Scroll,
			Time:   m.now(),
			Scroll: f32.Pt(0, 1),
		})
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.area.Event(pointer.Event{
			Kind:     pointer.Press,
			Buttons:  pointer.ButtonLeft,
			Time:     m.now(),
			Position: pos,
		})
	case msg.Action == tea.MouseActionMotion && m.dragging:
		m.area.Event(pointer.Event{
			Kind:     pointer.Move,
			Buttons:  pointer.ButtonLeft,
			Time:     m.now(),
			Position: pos,
		})
	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		m.area.Event(pointer.Event{
			Kind:     pointer.Release,
			Buttons:  pointer.ButtonLeft,
			Time:     m.now(),
			Position: pos,
		})
	}
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	listRows := m.height - 1
	adj := m.area.VAdjustment()
	// Overshoot shifts the content visually past the boundary.
	top := adj.Value() - m.area.Overshoot().Y
	row := int(top) / cellH
	if top < 0 {
		row = -(int(-top) + cellH - 1) / cellH
	}

	bar := m.area.VScrollRect()
	alpha := m.area.IndicatorAlpha()
	barFrom := int(bar.Min.Y) / cellH
	barTo := int(bar.Max.Y+cellH-1) / cellH

	out := make([]byte, 0, m.width*m.height)
	for y := 0; y < listRows; y++ {
		line := ""
		if i := row + y; i >= 0 && i < len(m.lines) {
			line = m.lines[i]
		}
		cell := itemStyle.Width(m.width - 1).Render(line)
		out = append(out, cell...)
		if m.area.VScrollVisible() && alpha > 0 && y >= barFrom && y < barTo {
			style := barDimStyle
			if alpha > 0.5 {
				style = barStyle
			}
			out = append(out, style.Render("┃")...)
		} else {
			out = append(out, ' ')
		}
		out = append(out, '\n')
	}
	status := m.status
	if status == "" {
		status = "drag to pan, flick to coast, t/b to scroll, q to quit"
	}
	out = append(out, statusStyle.Width(m.width).Render(status)...)
	return string(out)
}

func main() {
	profilePath := flag.String("profile", "", "YAML tuning profile, watched for changes")
	flag.Parse()

	params := pan.DefaultParams()
	if *profilePath != "" {
		p, err := profile.Load(*profilePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		params = p
	}

	m := newModel(params)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if *profilePath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		err := profile.Watch(ctx, *profilePath,
			func(p pan.Params) { prog.Send(paramsMsg{params: p}) },
			func(err error) { prog.Send(paramsMsg{err: err}) })
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if _, err := prog.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
