package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wcoget/internal/extract"
	"wcoget/internal/pace"
)

// resolveRun is the default command: wcoget <show>
func resolveRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client := newSession()

	catalog, err := search(ctx, client, args)
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No hits.")
		return nil
	}

	if err := applySelection(catalog, flagSelect); err != nil {
		return fmt.Errorf("selecting episodes: %w", err)
	}
	selected := catalog.Selected()
	if len(selected) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing selected.")
		return nil
	}

	debugf("resolving %d of %d episodes with %d workers", len(selected), catalog.Len(), cfg.Workers)

	pacer := pace.New(cfg.Pacing, cfg.RateDuration())
	resolver := extract.NewResolver(client, pacer, cfg.Base)
	outcomes := extract.ResolveAll(ctx, resolver, selected, cfg.Workers)

	if err := writeOutcomes(os.Stdout, os.Stderr, outcomes); err != nil {
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d episodes failed", failed, len(outcomes))
	}
	return nil
}
