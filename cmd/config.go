package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/orbitfield/internal/config"
	"github.com/iburimskiy/orbitfield/internal/ui"
)

func configCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if save {
				path := configPath
				if path == "" {
					path = config.Path()
				}
				if err := config.Save(cfg, path); err != nil {
					return err
				}
				ui.Good.Fprintf(os.Stderr, "wrote %s\n", path)
				return nil
			}
			return config.Write(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "write the configuration to the config file instead of stdout")
	return cmd
}
