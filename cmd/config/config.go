// Package config resolves the generator configuration from flags, the
// environment, and an optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jornvdb/menugen/pkg/generator"
	"github.com/jornvdb/menugen/pkg/models"
)

var cfgFile string

// InitConfig wires viper: explicit --config file, or
// $HOME/.config/menugen/config.yaml, with MENUGEN_* env overrides.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "menugen")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MENUGEN")

	// Set defaults
	viper.SetDefault("main_menu_name", "Tools Menu")
	viper.SetDefault("quad_menu_name", "Tools Quad Menu")
	viper.SetDefault("quad_modifier_keys", string(models.DefaultModifierKeys))
	viper.SetDefault("quad_position", string(models.DefaultQuadPosition))
	viper.SetDefault("print_tree", false)

	// The config file is optional; flags and env cover everything.
	_ = viper.ReadInConfig()
}

// Load returns the resolved generator configuration.
func Load() (models.Config, error) {
	cfg := models.Config{
		RootDir:      viper.GetString("root_dir"),
		MainMenuName: viper.GetString("main_menu_name"),
		QuadMenuName: viper.GetString("quad_menu_name"),
		ModifierKeys: models.ModifierKeys(viper.GetString("quad_modifier_keys")),
		QuadPosition: models.QuadPosition(viper.GetString("quad_position")),
		PrintTree:    viper.GetBool("print_tree"),
	}

	if cfg.RootDir == "" {
		return cfg, fmt.Errorf("no root directory configured (use --root, MENUGEN_ROOT_DIR, or root_dir in the config file)")
	}

	return cfg, nil
}

// InitGenerator builds a generator from the resolved configuration.
func InitGenerator() (*generator.Generator, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel) // Keep it quiet unless there are issues.

	g, err := generator.New(cfg, os.Stdout, logrus.NewEntry(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}

	return g, nil
}

// AddGlobalFlags attaches the persistent flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/menugen/config.yaml)")
	cmd.PersistentFlags().StringP("root", "r", "", "root directory whose structure the menus mirror")
	cobra.CheckErr(viper.BindPFlag("root_dir", cmd.PersistentFlags().Lookup("root")))
}
