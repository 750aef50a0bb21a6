package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jornvdb/menugen/cmd/config"
	"github.com/jornvdb/menugen/pkg/tree"
)

func NewTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the scanned directory tree",
		Long:  "Scan the configured root directory and print it as an ASCII tree, the same dump the generator's print_tree diagnostic produces.",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := config.InitGenerator()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tree.Render(g.Tree()))
			return nil
		},
	}
}
