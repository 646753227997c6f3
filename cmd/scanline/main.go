// scanline - Terminal 3D Model Viewer
// Rasterize OBJ and glTF models, or a built-in sphere or cube, into the
// terminal with half-block pixels.
//
// Controls:
//
//	W/S         - Spin about Y
//	A/D         - Spin about Z
//	Q/E         - Spin about X
//	Up/Down     - Move camera forward/back
//	Left/Right  - Turn camera
//	Space       - Random spin
//	R           - Reset view
//	T           - Toggle texture
//	X           - Toggle wireframe
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/internal/viewer"
	"github.com/taigrr/scanline/pkg/render"
)

var (
	configPath = flag.String("config", "", "Path to a JSON config file")
	logPath    = flag.String("log", "", "Write debug logs to this file")
	verbose    = flag.Bool("v", false, "Log debug output to stderr")
)

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanline - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanline [options] [model.obj|model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n%s", viewer.Help)
	}
	flag.Parse()
	flags.Model = flag.Arg(0)

	closeLog, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(flags); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() (func(), error) {
	switch {
	case *logPath != "":
		f, err := os.Create(*logPath)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		render.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		return func() { f.Close() }, nil
	case *verbose:
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return func() {}, nil
}

func loadConfig(flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	cfg.Resolve(flags)
	return cfg, nil
}

func run(flags config.Flags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		v, err := viewer.FromConfig(cfg, cfg.Width, cfg.Height)
		if err != nil {
			return err
		}
		return v.Save(cfg.Out, cfg.Upscale)
	}
	return interactive(cfg)
}

func interactive(cfg config.Config) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	fbWidth, fbHeight := render.CellSize(cols, rows)
	v, err := viewer.FromConfig(cfg, fbWidth, fbHeight)
	if err != nil {
		return err
	}

	defer v.LogTotals()

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Events are translated here and applied on the render loop, which
	// owns the viewer.
	actions := make(chan viewer.Action, 64)
	sizes := make(chan [2]int, 1)
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				select {
				case <-sizes:
				default:
				}
				sizes <- [2]int{ev.Width, ev.Height}

			case uv.KeyPressEvent:
				for _, key := range viewer.Keys {
					if ev.MatchString(key) {
						select {
						case actions <- viewer.ActionForKey(key):
						default:
						}
						break
					}
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(cfg.FPS)
	for {
		now := time.Now()

		select {
		case <-ctx.Done():
			return nil
		case size := <-sizes:
			cols, rows = size[0], size[1]
			term.Erase()
			term.Resize(cols, rows)
			v.Resize(render.CellSize(cols, rows))
		default:
		}

	drain:
		for {
			select {
			case a := <-actions:
				if !v.Apply(a) {
					return nil
				}
			default:
				break drain
			}
		}

		v.Step()
		v.Frame()

		v.Renderer.FrameBuffer().Draw(term, uv.Rectangle(image.Rect(0, 0, cols, rows)))
		if err := term.Display(); err != nil {
			return fmt.Errorf("display: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
