// scanwin - Desktop window 3D Model Viewer
// Same scenes and controls as scanline, drawn into an ebiten window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/internal/viewer"
	"github.com/taigrr/scanline/pkg/render"
)

var (
	configPath = flag.String("config", "", "Path to a JSON config file")
	scale      = flag.Int("scale", 2, "Window pixels per frame pixel")
	verbose    = flag.Bool("v", false, "Log debug output to stderr")
)

// keyNames binds ebiten keys to the viewer's key names.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyQ:          "q",
	ebiten.KeyE:          "e",
	ebiten.KeyArrowUp:    "up",
	ebiten.KeyArrowDown:  "down",
	ebiten.KeyArrowLeft:  "left",
	ebiten.KeyArrowRight: "right",
	ebiten.KeySpace:      "space",
	ebiten.KeyR:          "r",
	ebiten.KeyT:          "t",
	ebiten.KeyX:          "x",
	ebiten.KeyEscape:     "escape",
}

// held keys repeat every frame; the rest fire once per press.
var held = map[string]bool{
	"w": true, "s": true, "a": true, "d": true, "q": true, "e": true,
	"up": true, "down": true, "left": true, "right": true,
}

type game struct {
	v     *viewer.Viewer
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	for key, name := range keyNames {
		pressed := inpututil.IsKeyJustPressed(key)
		if held[name] {
			pressed = ebiten.IsKeyPressed(key)
		}
		if pressed && !g.v.Apply(viewer.ActionForKey(name)) {
			return ebiten.Termination
		}
	}
	g.v.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.v.Frame()

	fb := g.v.Renderer.FrameBuffer()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.Width || g.fbImg.Bounds().Dy() != fb.Height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.Width, fb.Height)
	}
	g.fbImg.WritePixels(fb.ToImage().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.v.Renderer.FrameBuffer()
	return fb.Width, fb.Height
}

func main() {
	var flags config.Flags
	flags.Bind(flag.CommandLine)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "scanwin - Desktop window 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: scanwin [options] [model.obj|model.glb|model.gltf]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n%s", viewer.Help)
	}
	flag.Parse()
	flags.Model = flag.Arg(0)

	if *verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags config.Flags) error {
	var cfg config.Config
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	cfg.Resolve(flags)

	v, err := viewer.FromConfig(cfg, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	if cfg.Out != "" {
		return v.Save(cfg.Out, cfg.Upscale)
	}

	ebiten.SetWindowTitle("scanline - " + v.Mesh.Name)
	ebiten.SetWindowSize(cfg.Width*max(*scale, 1), cfg.Height*max(*scale, 1))
	ebiten.SetTPS(cfg.FPS)

	err = ebiten.RunGame(&game{v: v})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
