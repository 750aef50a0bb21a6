// Package generator ties the pieces together: it scans the configured root
// directory once, then rebuilds the main menu and the quad menu from the
// cached tree whenever the host fires its menu-rebuild events.
package generator

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/jornvdb/menugen/pkg/host"
	"github.com/jornvdb/menugen/pkg/menu"
	"github.com/jornvdb/menugen/pkg/models"
	"github.com/jornvdb/menugen/pkg/tree"
)

const (
	// DefaultMainMenuCallbackID is used when RegisterMenus gets no main id.
	DefaultMainMenuCallbackID = "menu_callback"
	// DefaultQuadMenuCallbackID is used when RegisterMenus gets no quad id.
	DefaultQuadMenuCallbackID = "quad_menu_callback"
)

// Generator owns one cached directory tree and the two menu definition entry
// points. Rescanning the filesystem means constructing a new Generator; an
// existing one never mutates its tree.
type Generator struct {
	cfg    models.Config
	tree   *tree.Node
	synth  *menu.Synthesizer
	output io.Writer
	logger *logrus.Entry

	printedTree bool
}

// New scans cfg.RootDir once and returns a generator over the cached tree.
// output receives the optional diagnostic tree dump (defaults to stdout).
func New(cfg models.Config, output io.Writer, logger *logrus.Entry) (*Generator, error) {
	if output == nil {
		output = os.Stdout
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.New()) // Fallback to a null logger
	}

	root, err := tree.Build(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("scan root directory: %w", err)
	}

	return &Generator{
		cfg:    cfg,
		tree:   root,
		synth:  menu.NewSynthesizer(cfg.RootDir),
		output: output,
		logger: logger.WithField("component", "generator"),
	}, nil
}

// Config returns the configuration the generator was built from.
func (g *Generator) Config() models.Config {
	return g.cfg
}

// Tree returns the cached directory tree.
func (g *Generator) Tree() *tree.Node {
	return g.tree
}

// DefineMainMenu creates one submenu named after the configuration on the
// host's main menu bar and synthesizes the cached tree into it. Safe to call
// on every menu-rebuild event; the diagnostic tree dump happens at most once
// per generator.
func (g *Generator) DefineMainMenu(mgr host.MenuManager) {
	target := mgr.MainMenuBar().CreateSubMenu(menu.NewID(), g.cfg.MainMenuName)

	if g.cfg.PrintTree && !g.printedTree {
		fmt.Fprint(g.output, tree.Render(g.tree))
		fmt.Fprintln(g.output)
		g.printedTree = true
	}

	g.synth.Synthesize(g.tree, target)
}

// DefineQuadMenu creates the quad menu in the host's viewport context, gated
// on the configured modifier keys, and synthesizes the cached tree into the
// configured quadrant. Unrecognized modifier or quadrant values degrade to
// the documented defaults with a warning.
func (g *Generator) DefineQuadMenu(mgr host.QuadMenuManager) error {
	ctx := mgr.ContextByID(host.ViewportContextID)
	if ctx == nil {
		return fmt.Errorf("resolve viewport context %s: not found", host.ViewportContextID)
	}

	quadMenu := ctx.CreateQuadMenu(menu.NewID(), g.cfg.QuadMenuName)

	modifier, ok := g.cfg.ModifierKeys.HostName()
	if !ok {
		g.logger.WithField("modifier_keys", string(g.cfg.ModifierKeys)).
			Warnf("invalid modifier key combination %q, using default %q", g.cfg.ModifierKeys, models.DefaultModifierKeys)
		modifier, _ = models.DefaultModifierKeys.HostName()
	}
	quadMenu.SetRightClickModifiers(modifier)

	quadrant, ok := g.cfg.QuadPosition.HostName()
	if !ok {
		g.logger.WithField("quad_position", string(g.cfg.QuadPosition)).
			Warnf("invalid quad menu position %q, using default %q", g.cfg.QuadPosition, models.DefaultQuadPosition)
		quadrant, _ = models.DefaultQuadPosition.HostName()
	}

	g.synth.Synthesize(g.tree, quadMenu.CreateMenu(menu.NewID(), quadrant))
	return nil
}

// RegisterMenus binds the two definition entry points to the host's rebuild
// events under the given callback ids (empty ids take the defaults), then
// reloads both current configurations so the menus appear immediately.
// Registration under an id replaces any previous registration under it.
func (g *Generator) RegisterMenus(h host.Host, mainID, quadID string) {
	if mainID == "" {
		mainID = DefaultMainMenuCallbackID
	}
	if quadID == "" {
		quadID = DefaultQuadMenuCallbackID
	}

	callbacks := h.Callbacks()

	callbacks.RemoveScripts(mainID)
	callbacks.AddScript(host.EventRegisterMenus, mainID, func(param interface{}) {
		mgr, ok := param.(host.MenuManager)
		if !ok {
			g.logger.Warn("menu rebuild notification did not carry a menu manager")
			return
		}
		g.DefineMainMenu(mgr)
	})

	callbacks.RemoveScripts(quadID)
	callbacks.AddScript(host.EventRegisterQuadMenus, quadID, func(param interface{}) {
		mgr, ok := param.(host.QuadMenuManager)
		if !ok {
			g.logger.Warn("quad menu rebuild notification did not carry a quad menu manager")
			return
		}
		if err := g.DefineQuadMenu(mgr); err != nil {
			g.logger.WithError(err).Warn("quad menu definition failed")
		}
	})

	menuMgr := h.MenuManager()
	menuMgr.LoadConfiguration(menuMgr.CurrentConfiguration())

	quadMgr := h.QuadMenuManager()
	quadMgr.LoadConfiguration(quadMgr.CurrentConfiguration())
}
