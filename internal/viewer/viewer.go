package viewer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goview/internal/assets"
	"github.com/philipparndt/goview/internal/camera"
	"github.com/philipparndt/goview/internal/config"
	"github.com/philipparndt/goview/internal/interaction"
	"github.com/philipparndt/goview/pkg/geometry"
	"github.com/philipparndt/goview/pkg/watcher"
)

const reloadDebounce = 300 * time.Millisecond

// Viewer holds all state owned by the main loop
type Viewer struct {
	cfg    *config.Config
	logger *log.Logger

	camera    *camera.Controller
	assets    *assets.Library
	selection interaction.Selection
	spin      *interaction.Spin
	watcher   *watcher.FileWatcher

	status string
}

// New builds a viewer from cfg. No window is opened until Run.
func New(cfg *config.Config, logger *log.Logger) (*Viewer, error) {
	projection, err := camera.ParseProjection(cfg.Camera.Projection)
	if err != nil {
		return nil, err
	}

	cam := camera.New(vector(cfg.Camera.Position), vector(cfg.Camera.Forward), camera.Settings{
		MoveSpeed:     cfg.Camera.MoveSpeed,
		VerticalSpeed: cfg.Camera.VerticalSpeed,
		LookSpeed:     cfg.Camera.LookSpeed,
	})
	cam.Fovy = cfg.Camera.Fovy
	cam.Projection = projection

	return &Viewer{
		cfg:    cfg,
		logger: logger,
		camera: cam,
		assets: assets.NewLibrary(raylibBackend{}, assets.WithLogger(logger)),
		spin:   interaction.NewSpin(cfg.Viewer.SpinSpeed),
	}, nil
}

func vector(v [3]float64) geometry.Vector3 {
	return geometry.NewVector3(v[0], v[1], v[2])
}

// Run opens the window and blocks until it is closed or ctx is done
func (v *Viewer) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(v.cfg.Window.Width, v.cfg.Window.Height, v.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(v.cfg.Window.TargetFPS)

	if err := v.assets.Open(v.cfg.Assets.Model, v.cfg.Assets.Texture); err != nil {
		v.logger.Warn("Startup assets incomplete", "err", err)
		v.status = "startup assets incomplete"
	}
	defer v.assets.Close()

	if v.cfg.Assets.Watch {
		if err := v.startWatcher(ctx); err != nil {
			v.logger.Warn("Hot reload disabled", "err", err)
		} else {
			defer v.watcher.Close()
		}
	}

	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		v.drainChanges()
		v.update(float64(rl.GetFrameTime()), pollInput())
		v.draw()
	}

	v.logger.Info("Shutting down")
	return nil
}

func (v *Viewer) update(dt float64, in frameInput) {
	v.camera.Update(dt, in.camera)

	if len(in.dropped) > 0 {
		change, err := v.assets.HandleDrop(in.dropped)
		v.applied("drop", change, err)
	}

	if in.click {
		ray := v.camera.Pose().ScreenRay(
			float64(in.mouse.X), float64(in.mouse.Y),
			float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()),
		)
		if hit, ok := v.selection.Pick(ray, v.assets.Bounds()); ok {
			v.logger.Debug("Model picked", "point", hit.Point, "distance", hit.Distance, "selected", v.selection.Selected())
		}
	}

	if in.frame {
		v.camera.Frame(v.assets.Bounds())
	}

	v.spin.Update(dt, in.spin)
}

func (v *Viewer) startWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(reloadDebounce, v.logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Watch(v.assets.WatchPaths()...); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fw.Start(ctx)
	v.watcher = fw
	return nil
}

// drainChanges applies pending hot reloads without blocking the frame
func (v *Viewer) drainChanges() {
	if v.watcher == nil {
		return
	}
	for {
		select {
		case path := <-v.watcher.Changes():
			change, err := v.assets.Reload(path)
			v.applied("reload", change, err)
		default:
			return
		}
	}
}

func (v *Viewer) applied(source string, change assets.Change, err error) {
	if err != nil {
		v.logger.Warn("Asset update failed", "source", source, "err", err)
		v.status = fmt.Sprintf("%s failed", source)
	}
	if change == assets.Unchanged {
		return
	}

	switch change {
	case assets.ModelReplaced:
		v.status = "loaded " + filepath.Base(v.assets.ModelPath())
	case assets.TextureReplaced:
		v.status = "loaded " + filepath.Base(v.assets.TexturePath())
	}
	if err != nil {
		v.status += " (with errors)"
	}

	if v.watcher != nil {
		if err := v.watcher.Watch(v.assets.WatchPaths()...); err != nil {
			v.logger.Warn("Failed to update watched files", "err", err)
		}
	}
}
