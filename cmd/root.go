package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/goview/internal/config"
	"github.com/philipparndt/goview/internal/logging"
	"github.com/philipparndt/goview/internal/viewer"
	"github.com/philipparndt/goview/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	texturePath string
	width       int32
	height      int32
	targetFPS   int32
	logLevel    string
	noWatch     bool
)

var rootCmd = &cobra.Command{
	Use:   "goview [model]",
	Short: "3D model viewer with a first-person camera",
	Long: `goview opens a window showing a 3D model (glTF, GLB, OBJ, VOX, IQM, M3D or STL).
Fly around with W/A/S/D, Q/E and the mouse, drop a model or a .png onto the
window to swap it, and click the model to select it.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runViewer,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&texturePath, "texture", "t", "", "diffuse texture (.png)")
	flags.Int32Var(&width, "width", 0, "window width")
	flags.Int32Var(&height, "height", 0, "window height")
	flags.Int32Var(&targetFPS, "fps", 0, "target frame rate")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&noWatch, "no-watch", false, "disable reloading the model and texture when they change on disk")
}

// loadConfig merges defaults, the optional config file and explicit flags
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		cfg.Assets.Model = args[0]
	}
	if flags.Changed("texture") {
		cfg.Assets.Texture = texturePath
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.Window.TargetFPS = targetFPS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if noWatch {
		cfg.Assets.Watch = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.Log.Level)
	if err != nil {
		return err
	}

	if dir := cfg.ResolveAssets(); dir != "" {
		logger.Debug("Using resource directory", "dir", dir)
	}

	v, err := viewer.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return v.Run(ctx)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
