package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/pixbreak/internal/config"
	"github.com/diegok/pixbreak/internal/game"
	"github.com/diegok/pixbreak/internal/gfx"
	"github.com/diegok/pixbreak/internal/protocol"
	"github.com/diegok/pixbreak/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *game.Session
	mover    *ui.MoveTimer

	// Inputs collected between two frames
	pending []protocol.Input
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:   cfg,
		mover: ui.NewMoveTimer(),
	}
}

// Run is the main entry point for the application.
// It sets up logging and plays in the terminal or in a window.
func (a *App) Run() error {
	closeLog, err := setupLogging(a.cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if a.cfg.Window {
		log.Infof("Opening %dx window", a.cfg.Scale)
		if err := gfx.Run(a.cfg.Scale, a.newSession); err != nil {
			return fmt.Errorf("window: %w", err)
		}
		return nil
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx, screen)
}

// run plays on screen until the player quits or ctx is done. The screen is
// finalized on return.
func (a *App) run(ctx context.Context, screen *ui.Screen) error {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.restart()

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan tcell.Event)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		defer cancel()
		// Unblocks PollEvent
		defer a.screen.Fini()
		return a.mainLoop(ctx, events)
	})

	return eg.Wait()
}

// mainLoop is the main event loop that handles input and advances the
// session one frame per tick.
func (a *App) mainLoop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Infof("Interrupted")
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick()
		}
	}
}

// tick advances the session by one frame and redraws it
func (a *App) tick() {
	if !a.session.Running() {
		return
	}
	if a.mover.Expired(a.session.Tick()) {
		a.pending = append(a.pending, protocol.MoveStop())
	}
	a.session.Update(a.pending...)
	a.pending = a.pending[:0]
	a.render()
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, r := ev.Key(), ev.Rune()
		// Quit keys always work
		if ui.IsQuitKey(key, r) {
			return true
		}

		if !a.session.Running() {
			if ui.IsStartKey(key) {
				a.restart()
			}
			return false
		}

		in, ok := ui.KeyToInput(key, r)
		if !ok {
			return false
		}
		switch in.Kind {
		case protocol.InputMoveStart:
			a.mover.Touch(a.session.Tick())
		case protocol.InputMoveStop:
			a.mover.Reset()
		}
		a.pending = append(a.pending, in)

	case *tcell.EventResize:
		a.screen.Clear()
		a.render()
	}

	return false
}

// render draws the playfield, or the outcome box once the session ended
func (a *App) render() {
	f := a.session.Frame()
	if f.Phase == protocol.PhaseEnded {
		a.renderer.RenderOutcome(f)
		return
	}
	a.renderer.RenderGame(f)
}

// restart replaces the session with a fresh one
func (a *App) restart() {
	a.session = a.newSession()
	a.pending = a.pending[:0]
	a.mover.Reset()
	a.render()
}

// newSession creates a session seeded from the config, or from the clock
// when no seed was given.
func (a *App) newSession() *game.Session {
	seed := a.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // clock is positive
	}
	s := game.NewSession(seed)
	s.SetListener(sessionLog{})
	log.Infof("Session %s started with seed %d", s.ID(), seed)
	return s
}
