package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jornvdb/menugen/cmd/config"
	"github.com/jornvdb/menugen/pkg/host"
	"github.com/jornvdb/menugen/pkg/menu"
)

// exportDocument is the serialized form of one complete synthesis pass.
type exportDocument struct {
	MainMenu  *menu.Spec   `yaml:"main_menu" json:"main_menu"`
	QuadMenus []exportQuad `yaml:"quad_menus" json:"quad_menus"`
}

type exportQuad struct {
	Label    string                `yaml:"label" json:"label"`
	Modifier string                `yaml:"modifier" json:"modifier"`
	Menus    map[string]*menu.Spec `yaml:"menus" json:"menus"`
}

func NewExportCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the synthesized menu structure",
		Long:  "Run the full registration flow against an in-memory host and emit the recorded menu structure as YAML (or JSON with --json).",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := config.InitGenerator()
			if err != nil {
				return err
			}

			h := host.NewMemoryHost()
			g.RegisterMenus(h, "", "")

			doc := exportDocument{MainMenu: h.MainMenuSpec()}
			for _, qm := range h.QuadMenus() {
				quad := exportQuad{
					Label:    qm.Label,
					Modifier: qm.Modifier,
					Menus:    make(map[string]*menu.Spec),
				}
				for _, quadrant := range qm.Quadrants() {
					quad.Menus[quadrant] = qm.Menu(quadrant)
				}
				doc.QuadMenus = append(doc.QuadMenus, quad)
			}

			if jsonOutput {
				return outputJSON(cmd.OutOrStdout(), doc)
			}
			return outputYAML(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON instead of YAML")

	return cmd
}

func outputJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(v)
}
