package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jornvdb/menugen/cmd/config"
	"github.com/jornvdb/menugen/pkg/host"
	"github.com/jornvdb/menugen/pkg/menu"
)

func NewPreviewCmd() *cobra.Command {
	var (
		previewQuad   bool
		previewPretty bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the menus the generator would build",
		Long: `Run the full registration flow against an in-memory host and print the
resulting menu structure. Submenus end in a slash; actions show their label.

Examples:
  menugen preview --root ~/macros          # main menu
  menugen preview --root ~/macros --quad   # quad menu`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := config.InitGenerator()
			if err != nil {
				return err
			}

			h := host.NewMemoryHost()
			g.RegisterMenus(h, "", "")

			out := cmd.OutOrStdout()
			if previewQuad {
				for _, qm := range h.QuadMenus() {
					fmt.Fprintf(out, "%s (right-click: %s)\n", qm.Label, qm.Modifier)
					for _, quadrant := range qm.Quadrants() {
						fmt.Fprintf(out, "  [%s]\n", quadrant)
						printEntries(out, qm.Menu(quadrant).Entries, "    ", previewPretty)
					}
				}
				return nil
			}

			printEntries(out, h.MainMenuSpec().Entries, "", previewPretty)
			return nil
		},
	}

	cmd.Flags().BoolVar(&previewQuad, "quad", false, "preview the quad menu instead of the main menu")
	cmd.Flags().BoolVar(&previewPretty, "pretty", false, "title-case labels for display")

	return cmd
}

var titleCaser = cases.Title(language.English)

// printEntries renders a recorded menu as an indented listing. Pretty mode
// only restyles the display; the recorded labels are untouched.
func printEntries(w io.Writer, entries []*menu.Entry, indent string, pretty bool) {
	for _, e := range entries {
		label := e.Label
		if pretty {
			label = titleCaser.String(strings.ToLower(label))
		}
		if e.Kind == menu.EntrySubMenu {
			fmt.Fprintf(w, "%s%s/\n", indent, label)
			printEntries(w, e.Children, indent+"  ", pretty)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
	}
}
