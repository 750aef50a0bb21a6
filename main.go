package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jornvdb/menugen/cmd"
	"github.com/jornvdb/menugen/cmd/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "menugen",
		Short: "Build host application menus from a directory structure",
		Long: `menugen mirrors a directory of .mcr macro descriptors into a main
pull-down menu and a right-click quad menu: every recognized descriptor
becomes a menu action, every subdirectory a submenu.`,
		SilenceUsage: true,
	}

	config.AddGlobalFlags(rootCmd)
	cobra.OnInitialize(config.InitConfig)

	rootCmd.AddCommand(cmd.NewTreeCmd())
	rootCmd.AddCommand(cmd.NewPreviewCmd())
	rootCmd.AddCommand(cmd.NewExportCmd())
	rootCmd.AddCommand(cmd.NewRegisterCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
