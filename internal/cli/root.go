// Package cli implements the gmscreen terminal commands: rules lookup and
// dice rolling against the same catalog and roller the web service uses.
package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/louisbranch/gmscreen/internal/core/dice"
	"github.com/louisbranch/gmscreen/internal/platform/config"
	"github.com/louisbranch/gmscreen/internal/rules/lookup"
	"github.com/louisbranch/gmscreen/internal/rules/source"
)

// Env holds environment defaults for the persistent flags.
type Env struct {
	CatalogFile string `env:"CATALOG_FILE"`
	ContentDB   string `env:"CONTENT_DB"`
	Locale      string `env:"CATALOG_LOCALE"`
}

// Options configures NewRootCommand. Zero values use the environment, the
// crypto/rand roller and source.Load.
type Options struct {
	Version string
	Roller  *dice.Roller
	Load    func(context.Context, source.Options) (*lookup.Service, error)
}

type app struct {
	source  source.Options
	noColor bool
	roller  dice.Roller
	load    func(context.Context, source.Options) (*lookup.Service, error)
	rules   *lookup.Service
}

// NewRootCommand builds the command tree.
func NewRootCommand(opts Options) (*cobra.Command, error) {
	var env Env
	if err := config.ParseEnv(&env); err != nil {
		return nil, err
	}

	a := &app{
		source: source.Options{DBPath: env.ContentDB, File: env.CatalogFile, Locale: env.Locale},
		roller: dice.NewRoller(),
		load:   loadService,
	}
	if opts.Roller != nil {
		a.roller = *opts.Roller
	}
	if opts.Load != nil {
		a.load = opts.Load
	}

	root := &cobra.Command{
		Use:           "gmscreen",
		Short:         "GM screen rules reference and dice roller",
		Long:          "Look up rules from the catalog and roll dice from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if opts.Version != "" {
		root.Version = opts.Version
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.source.File, "catalog-file", a.source.File, "catalog data file (.yaml or .json)")
	flags.StringVar(&a.source.DBPath, "content-db", a.source.DBPath, "imported content database; wins over --catalog-file")
	flags.StringVar(&a.source.Locale, "locale", a.source.Locale, "catalog locale to read from the content database")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddGroup(
		&cobra.Group{ID: "rules", Title: "Rules Commands:"},
		&cobra.Group{ID: "dice", Title: "Dice Commands:"},
	)

	rulesC := a.rulesCmd()
	rulesC.GroupID = "rules"
	rollC := a.rollCmd()
	rollC.GroupID = "dice"
	checkC := a.checkCmd()
	checkC.GroupID = "dice"

	root.AddCommand(rulesC)
	root.AddCommand(rollC)
	root.AddCommand(checkC)
	return root, nil
}

func loadService(ctx context.Context, opts source.Options) (*lookup.Service, error) {
	c, err := source.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	return lookup.New(c), nil
}

// service loads the catalog once per process.
func (a *app) service(ctx context.Context) (*lookup.Service, error) {
	if a.rules != nil {
		return a.rules, nil
	}
	svc, err := a.load(ctx, a.source)
	if err != nil {
		return nil, err
	}
	a.rules = svc
	return svc, nil
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
