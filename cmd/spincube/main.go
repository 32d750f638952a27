// Command spincube opens a surface and spins a cube on it until stopped.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"spincube/internal/animation"
	"spincube/internal/config"
	"spincube/internal/host"
	"spincube/internal/logging"
	"spincube/internal/render"
	"spincube/internal/render/ebitenwin"
	"spincube/internal/render/rlnative"
	"spincube/internal/render/soft"
	"spincube/internal/world"
)

func init() {
	// raylib and ebiten both need the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "spincube: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "JSON config file")
		width      = flag.Int("width", 0, "surface width (default 1000)")
		height     = flag.Int("height", 0, "surface height (default 1000)")
		backend    = flag.String("backend", "", "raylib, ebiten or png")
		fps        = flag.Int("fps", 0, "target frames per second")
		frames     = flag.Uint64("frames", 0, "stop after this many frames (0 = run until closed)")
		outDir     = flag.String("out", "", "directory for PNG frames (png backend)")
		snapshot   = flag.String("snapshot", "", "write the final scene as JSON to this path")
		scenePath  = flag.String("scene", "", "restore a scene written by -snapshot before starting")
		hud        = flag.Bool("hud", true, "show the raylib HUD")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, *width, *height, *backend, *fps, *frames, *outDir)
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory, err := rendererFactory(cfg, *hud)
	if err != nil {
		return err
	}
	w, err := world.Init(world.Context{
		Root:        host.NewRoot(),
		Config:      cfg,
		NewRenderer: factory,
	}, nil)
	if err != nil {
		return err
	}
	defer w.Close()

	if *scenePath != "" {
		sf, err := world.LoadScene(*scenePath)
		if err != nil {
			return err
		}
		if err := w.Restore(sf); err != nil {
			return err
		}
	}

	if err := drive(ctx, cfg, w); err != nil {
		return err
	}

	if *snapshot != "" {
		if err := w.SaveScene(*snapshot); err != nil {
			return err
		}
		logging.Logger().Info("scene saved", "path", *snapshot)
	}
	return nil
}

func applyFlags(cfg *config.Config, width, height int, backend string, fps int, frames uint64, outDir string) {
	if width > 0 {
		cfg.Viewport.Width = width
	}
	if height > 0 {
		cfg.Viewport.Height = height
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if fps > 0 {
		cfg.Loop.FPS = fps
	}
	if frames > 0 {
		cfg.Loop.Frames = frames
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
}

func rendererFactory(cfg config.Config, hud bool) (render.Factory, error) {
	switch cfg.Backend {
	case "raylib":
		return rlnative.Factory(rlnative.Options{TargetFPS: cfg.Loop.FPS, HUD: hud}), nil
	case "ebiten":
		return ebitenwin.Factory(ebitenwin.Options{TPS: cfg.Loop.FPS}), nil
	case "png":
		return soft.Factory(soft.Options{OutDir: cfg.OutDir}), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// drive runs the world loop the way the backend needs it.
func drive(ctx context.Context, cfg config.Config, w *world.World) error {
	switch r := w.Renderer.(type) {
	case *rlnative.Renderer:
		// EndDrawing paces the frames.
		return w.Run(ctx, animation.Paced{})

	case *ebitenwin.Window:
		iv := animation.NewInterval(cfg.Loop.FPS)
		defer iv.Close()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		h := w.Start(ctx, iv)
		go func() {
			// Close the window once the loop ends on its own (frame budget).
			<-h.Done()
			cancel()
		}()
		winErr := r.Run(ctx)
		h.Stop()
		return errors.Join(winErr, h.Wait())

	default:
		if cfg.Loop.Frames == 0 {
			logging.Logger().Info("no frame budget set, running until interrupted")
		}
		iv := animation.NewInterval(cfg.Loop.FPS)
		defer iv.Close()
		return w.Run(ctx, iv)
	}
}
