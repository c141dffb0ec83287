package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-dnd/internal/debug"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drag list items around in the terminal with the mouse",
		Long: `Draws the configured lists and lets you drag items with the mouse.
Displaced items are highlighted while dragging. Esc cancels a drag,
Esc or q outside a drag quits. Set log.file to capture debug logs, console
logging is disabled while the screen is active.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to init screen: %w", err)
			}
			defer screen.Fini()

			log := zap.NewNop()
			if a.cfg.Log.File != "" {
				log = debug.Logger()
			}

			width, height := screen.Size()
			b, err := newBoard(a.cfg.Demo, width, height, log)
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), screen, b)
		},
	}

	cmd.Flags().String("axis", "vertical", "list direction: vertical or horizontal")
	cmd.Flags().Int("lists", 2, "number of lists")
	cmd.Flags().Int("items", 5, "items per list")
	cmd.Flags().Bool("combine", false, "allow dropping items onto each other")
	a.bind("demo.axis", cmd.Flags().Lookup("axis"))
	a.bind("demo.lists", cmd.Flags().Lookup("lists"))
	a.bind("demo.items", cmd.Flags().Lookup("items"))
	a.bind("demo.combine", cmd.Flags().Lookup("combine"))
	return cmd
}

// runDemo processes screen events until the user quits or ctx is done.
func runDemo(ctx context.Context, screen tcell.Screen, b *board) error {
	screen.EnableMouse()
	defer screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		b.draw(screen)
		screen.Show()

		quit, err := handle(b, screen.PollEvent())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if w, h := screen.Size(); w > 0 && h > 0 {
			b.resize(w, h)
		}
	}
}

// handle applies one event to the board. It reports whether to quit.
func handle(b *board, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case nil:
		return true, nil
	case *tcell.EventInterrupt:
		return true, nil
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC:
			return true, nil
		case ev.Key() == tcell.KeyEscape && b.dragging():
			return false, b.cancel()
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true, nil
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		p := cellCenter(x, y)
		held := ev.Buttons()&tcell.Button1 != 0
		switch {
		case held && !b.dragging():
			_, err := b.press(p)
			return false, err
		case held:
			return false, b.motion(p)
		case b.dragging():
			if err := b.motion(p); err != nil {
				return false, err
			}
			return false, b.release()
		}
	}
	return false, nil
}
