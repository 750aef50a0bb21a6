package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jornvdb/menugen/cmd/config"
	"github.com/jornvdb/menugen/pkg/generator"
	"github.com/jornvdb/menugen/pkg/host"
	"github.com/jornvdb/menugen/pkg/menu"
)

func NewRegisterCmd() *cobra.Command {
	var (
		mainCallbackID string
		quadCallbackID string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Run the registration flow and report what it built",
		Long: `Register the menu callbacks against an in-memory host, trigger the
configuration reload, and summarize the menus that came out. This is the
same flow a host adapter runs inside the application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := config.InitGenerator()
			if err != nil {
				return err
			}

			h := host.NewMemoryHost()
			g.RegisterMenus(h, mainCallbackID, quadCallbackID)

			out := cmd.OutOrStdout()
			cfg := g.Config()

			actions, submenus := countEntries(h.MainMenuSpec().Entries)
			fmt.Fprintf(out, "main menu %q: %d actions, %d submenus\n", cfg.MainMenuName, actions, submenus)

			for _, qm := range h.QuadMenus() {
				for _, quadrant := range qm.Quadrants() {
					actions, submenus := countEntries(qm.Menu(quadrant).Entries)
					fmt.Fprintf(out, "quad menu %q [%s, %s]: %d actions, %d submenus\n",
						qm.Label, quadrant, qm.Modifier, actions, submenus)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mainCallbackID, "main-callback-id", generator.DefaultMainMenuCallbackID, "callback id for the main menu registration")
	cmd.Flags().StringVar(&quadCallbackID, "quad-callback-id", generator.DefaultQuadMenuCallbackID, "callback id for the quad menu registration")

	return cmd
}

func countEntries(entries []*menu.Entry) (actions, submenus int) {
	for _, e := range entries {
		if e.Kind == menu.EntryAction {
			actions++
			continue
		}
		submenus++
		a, s := countEntries(e.Children)
		actions += a
		submenus += s
	}
	return actions, submenus
}
