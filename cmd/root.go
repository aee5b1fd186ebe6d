package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/orbitfield/internal/config"
	"github.com/iburimskiy/orbitfield/internal/game"
	"github.com/iburimskiy/orbitfield/internal/ui"
)

var version = "0.3.0"

var (
	configPath string
	pageName   string
	overrides  config.Overrides
)

var rootCmd = &cobra.Command{
	Use:   "orbitfield",
	Short: "orbitfield — an orbiting star field landing page",
	Long: ui.Brand.Sprint("orbitfield") + " — stars orbiting an anchor, meteor showers and clickable orbit nodes\n" +
		ui.Subtle.Sprint("Press E to reveal the rings, click a node to open its panel, Esc or Q to quit"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			ui.Warnf("read .env: %v", err)
		}
		flags := cmd.Flags()
		if !flags.Changed("config") {
			if v := os.Getenv(config.EnvConfig); v != "" {
				configPath = v
			}
		}
		if !flags.Changed("page") {
			if v := os.Getenv(config.EnvPage); v != "" {
				pageName = v
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		g, err := game.New(game.Options{Config: cfg, Page: pageName, Mute: overrides.Mute})
		if err != nil {
			return err
		}
		ui.Banner(pageName, cfg.Window.Width, cfg.Window.Height)
		return game.Run(g, cfg.Window.Title)
	},
}

func init() {
	rootCmd.SetVersionTemplate("orbitfield {{ .Version }}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "TOML config file (default "+config.Path()+")")
	pf.StringVar(&pageName, "page", config.DefaultPage, "page profile to show")
	pf.BoolVar(&overrides.Mute, "mute", false, "disable the hover and click chime")
	pf.BoolVar(&overrides.NoMeteors, "no-meteors", false, "disable meteor showers")
	pf.Uint64Var(&overrides.Seed, "seed", 0, "star field seed (0 picks one at random)")

	rootCmd.AddCommand(
		ttyCmd(),
		configCmd(),
	)
}

// loadConfig reads the config file, applies the flag overrides and checks
// the selected page exists.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.Apply(overrides)
	if _, err := cfg.Page(pageName); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf("%v", err)
		return err
	}
	return nil
}
