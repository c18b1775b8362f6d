package render

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/tmaitland/charart/block"
)

// Viewer displays classified rows on a terminal screen until the user
// quits with q, Escape or an interrupt.
type Viewer struct {
	screen tcell.Screen
	rows   [][]block.ClassifiedBlock
}

// NewViewer initializes a terminal screen for the given rows.
func NewViewer(rows [][]block.ClassifiedBlock) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &Viewer{
		screen: screen,
		rows:   rows,
	}, nil
}

// Run draws the art and blocks until the viewer is dismissed.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	v.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	v.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	v.draw()
	v.screen.Show()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
				v.draw()
				v.screen.Show()
			}
		case <-signals:
			return nil
		}
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()
	for y, row := range v.rows {
		for x, cb := range row {
			style := tcell.StyleDefault.Foreground(
				tcell.NewRGBColor(int32(cb.Color.R), int32(cb.Color.G), int32(cb.Color.B)))
			v.screen.SetContent(x, y, glyphs[cb.Class], nil, style)
		}
	}
}
