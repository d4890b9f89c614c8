// sista-demo plays a scripted pawn scene in the terminal
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/sista/api"
	"github.com/lixenwraith/sista/core"
	"github.com/lixenwraith/sista/render"
	"github.com/lixenwraith/sista/scene"
	"github.com/lixenwraith/sista/stream"
	"github.com/lixenwraith/sista/terminal"
)

//go:embed default.toml
var defaultScene []byte

var (
	sceneFlag    = flag.String("scene", "", "Scene file (TOML); built-in demo when empty")
	intervalFlag = flag.Duration("interval", 0, "Delay between steps; scene value when zero")
	backendFlag  = flag.String("backend", "ansi", "Output backend: ansi, tcell")
	serveFlag    = flag.String("serve", "", "Also stream output to websocket viewers on this address, e.g. :8080")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to logs/sista.log")
	versionFlag  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSISTA CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	if *versionFlag {
		fmt.Println("sista", api.Version)
		return
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "sista: %v\n", err)
		os.Exit(1)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Parse(defaultScene)
	}
	return scene.LoadFile(path)
}

func run() error {
	log := logrus.StandardLogger()

	sc, err := loadScene(*sceneFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	var hub *stream.Hub
	var joined <-chan struct{}
	if *serveFlag != "" {
		hub = stream.NewHub(log)
		joined = hub.Joined()
		srv := &http.Server{Addr: *serveFlag, Handler: hub}
		g.Go(func() error {
			log.WithField("addr", *serveFlag).Info("streaming")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			hub.Close()
			shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	var out render.Renderer
	var teardown func()
	switch *backendFlag {
	case "ansi":
		checkTerminal(sc, log)
		var w io.Writer = os.Stdout
		if hub != nil {
			w = io.MultiWriter(os.Stdout, hub)
		}
		out, teardown = setupANSI(w, log)
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		out, teardown, err = setupTcell(gctx, g, cancel, screen, hub, log)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown backend %q", *backendFlag)
	}
	defer teardown()

	st, err := sc.Build(out, core.Origin, log)
	if err != nil {
		return err
	}

	g.Go(func() error {
		if err := st.Play(gctx, *intervalFlag, joined); err != nil {
			return err
		}
		log.Info("scene finished")
		if hub == nil {
			// Leave the final frame up briefly before restoring the screen
			select {
			case <-gctx.Done():
			case <-time.After(sc.Delay()):
			}
			cancel()
			return nil
		}
		// Keep serving the final frame to late viewers until interrupted
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-joined:
				if err := st.Repaint(); err != nil {
					return err
				}
			}
		}
	})

	return g.Wait()
}

// checkTerminal warns when stdout cannot hold the framed field
func checkTerminal(sc *scene.Scene, log logrus.FieldLogger) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		log.Warn("stdout is not a terminal")
	} else if cols, rows, err := term.GetSize(fd); err == nil && (cols < sc.Width+2 || rows < sc.Height+2) {
		log.WithFields(logrus.Fields{"cols": cols, "rows": rows}).Warn("terminal smaller than framed field")
	}
}

// setupANSI renders through raw escape sequences on w
func setupANSI(w io.Writer, log logrus.FieldLogger) (render.Renderer, func()) {
	r := render.NewANSIRenderer(w)
	cw := r.Cursor().Writer()
	terminal.EnterFullscreen(cw)
	r.Cursor().Hide()
	if err := r.Clear(); err != nil {
		log.WithError(err).Warn("clear screen")
	}

	return r, func() {
		r.Cursor().Show()
		terminal.ExitFullscreen(cw)
		if err := r.Flush(); err != nil {
			log.WithError(err).Warn("restore screen")
		}
	}
}

// setupTcell renders onto screen, quitting on Escape, Ctrl-C or Ctrl-Q
// The screen is finalized by the returned teardown, after every drawer has stopped
func setupTcell(ctx context.Context, g *errgroup.Group, cancel context.CancelFunc, screen tcell.Screen, hub *stream.Hub, log logrus.FieldLogger) (render.Renderer, func(), error) {
	if err := screen.Init(); err != nil {
		return nil, nil, err
	}
	screen.Clear()

	var out render.Renderer = render.NewScreenRenderer(screen)
	if hub != nil {
		out = render.Multi(out, render.NewANSIRenderer(hub))
	}

	g.Go(func() error {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil, *tcell.EventInterrupt:
				return nil
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers()&tcell.ModCtrl != 0) {
					cancel()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	})
	// Wake the event loop on shutdown
	g.Go(func() error {
		<-ctx.Done()
		if err := screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			log.WithError(err).Warn("stop event loop")
		}
		return nil
	})

	return out, screen.Fini, nil
}
