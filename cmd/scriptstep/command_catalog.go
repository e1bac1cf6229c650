package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/shibukawa/scriptstep/catalog"
	"github.com/shibukawa/scriptstep/script"
)

// CatalogCmd represents the catalog command
type CatalogCmd struct {
	IDs []string `arg:"" optional:"" name:"id" help:"Numeric step ids to look up (all known kinds when omitted)"`
}

// Run executes the catalog command
func (cmd *CatalogCmd) Run(ctx *Context) error {
	setupColor(ctx, true)

	dispatcher := script.NewDispatcher(nil)
	w := tabwriter.NewWriter(ctx.Stdout, 0, 4, 2, ' ', 0)

	printKind := func(id string, kind catalog.StepKind) {
		supported := ""
		if dispatcher.Supported(kind) {
			supported = "supported"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", id, kind, supported)
	}

	if len(cmd.IDs) == 0 {
		for kind := range catalog.All() {
			printKind(fmt.Sprint(kind.ID()), kind)
		}

		return w.Flush()
	}

	for _, id := range cmd.IDs {
		kind, err := catalog.ParseID(id)
		if err != nil {
			return err
		}

		if kind == catalog.Unknown {
			warn(ctx, "step id %s is unknown or unsupported", id)
		}

		printKind(id, kind)
	}

	return w.Flush()
}
